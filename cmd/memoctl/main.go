// memoctl은 memo API 서버용 커맨드라인 클라이언트.
//
// 사용법:
//
//	memoctl signup -email a@x.com
//	memoctl login  -email a@x.com
//	memoctl create -title "제목" -content "내용"
//	memoctl list / get -id 1 / update -id 1 -title "..." / delete -id 1
//
// 서버 주소는 MEMO_SERVER(기본 http://localhost:8080),
// 인증 토큰은 MEMO_TOKEN 또는 각 명령의 -token 플래그로 전달한다.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/memoapp/backend/internal/client"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	server := os.Getenv("MEMO_SERVER")
	if server == "" {
		server = "http://localhost:8080"
	}

	api := client.New(server)
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "signup":
		err = runSignup(ctx, api, os.Args[2:])
	case "login":
		err = runLogin(ctx, api, os.Args[2:])
	case "list":
		err = runList(ctx, api, os.Args[2:])
	case "get":
		err = runGet(ctx, api, os.Args[2:])
	case "create":
		err = runCreate(ctx, api, os.Args[2:])
	case "update":
		err = runUpdate(ctx, api, os.Args[2:])
	case "delete":
		err = runDelete(ctx, api, os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: memoctl <command> [flags]

commands:
  signup   create an account (-email, password prompted)
  login    authenticate and print a bearer token
  list     list all notes
  get      print one note (-id)
  create   create a note (-title, -content)
  update   update a note (-id, -title and/or -content)
  delete   delete a note (-id)`)
}

func runSignup(ctx context.Context, api *client.APIClient, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when empty)")
	_ = fs.Parse(args)

	if *email == "" {
		return fmt.Errorf("-email is required")
	}
	pw, err := resolvePassword(*password)
	if err != nil {
		return err
	}

	user, err := api.Signup(ctx, *email, pw)
	if err != nil {
		return err
	}
	fmt.Printf("account created: id=%d email=%s\n", user.ID, user.Email)
	return nil
}

func runLogin(ctx context.Context, api *client.APIClient, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when empty)")
	_ = fs.Parse(args)

	if *email == "" {
		return fmt.Errorf("-email is required")
	}
	pw, err := resolvePassword(*password)
	if err != nil {
		return err
	}

	res, err := api.Login(ctx, *email, pw)
	if err != nil {
		return err
	}
	// 토큰만 stdout으로 출력한다. export MEMO_TOKEN=$(memoctl login ...) 형태로 쓰기 위함.
	fmt.Println(res.Token)
	return nil
}

func runList(ctx context.Context, api *client.APIClient, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	_ = fs.Parse(args)

	notes, err := api.ListNotes(ctx)
	if err != nil {
		return err
	}
	return printJSON(notes)
}

func runGet(ctx context.Context, api *client.APIClient, args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	id := fs.Int64("id", 0, "note id")
	_ = fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("-id is required")
	}
	note, err := api.GetNote(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(note)
}

func runCreate(ctx context.Context, api *client.APIClient, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	title := fs.String("title", "", "note title")
	content := fs.String("content", "", "note content")
	token := fs.String("token", "", "bearer token (default: MEMO_TOKEN)")
	_ = fs.Parse(args)

	if *title == "" || *content == "" {
		return fmt.Errorf("-title and -content are required")
	}
	note, err := api.CreateNote(ctx, resolveToken(*token), *title, *content)
	if err != nil {
		return err
	}
	return printJSON(note)
}

func runUpdate(ctx context.Context, api *client.APIClient, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	id := fs.Int64("id", 0, "note id")
	title := fs.String("title", "", "new title")
	content := fs.String("content", "", "new content")
	token := fs.String("token", "", "bearer token (default: MEMO_TOKEN)")
	_ = fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	// 지정한 플래그만 부분 갱신으로 보낸다
	var titlePtr, contentPtr *string
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			titlePtr = title
		case "content":
			contentPtr = content
		}
	})
	if titlePtr == nil && contentPtr == nil {
		return fmt.Errorf("nothing to update: pass -title and/or -content")
	}

	note, err := api.UpdateNote(ctx, resolveToken(*token), *id, titlePtr, contentPtr)
	if err != nil {
		return err
	}
	return printJSON(note)
}

func runDelete(ctx context.Context, api *client.APIClient, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "note id")
	token := fs.String("token", "", "bearer token (default: MEMO_TOKEN)")
	_ = fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("-id is required")
	}
	if err := api.DeleteNote(ctx, resolveToken(*token), *id); err != nil {
		return err
	}
	fmt.Println("deleted")
	return nil
}

func resolveToken(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("MEMO_TOKEN")
}

// resolvePassword는 플래그로 받은 값이 없으면 입력을 요청한다.
// 터미널이면 에코 없이 읽는다.
func resolvePassword(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	fmt.Fprint(os.Stderr, "password: ")
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

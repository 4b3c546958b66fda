package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/memoapp/backend/internal/auth"
	"github.com/memoapp/backend/internal/config"
	"github.com/memoapp/backend/internal/db"
	"github.com/memoapp/backend/internal/handler"
	"github.com/memoapp/backend/internal/service"
)

func main() {
	// .env 파일이 있으면 읽어온다 (없어도 무방)
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	ctx := context.Background()

	// 토큰 서비스는 JWT_SECRET 없이는 기동할 수 없다
	tokens, err := auth.TokenServiceFromEnv()
	if err != nil {
		slog.Error("token service init failed", "error", err)
		os.Exit(1)
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("store init failed", "backend", cfg.Store.Backend, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		slog.Error("schema init failed", "error", err)
		os.Exit(1)
	}

	authSvc := service.NewAuthService(store, auth.NewArgon2Hasher())
	noteSvc := service.NewNoteService(store)

	authHandler := handler.NewAuthHandler(authSvc, tokens)
	noteHandler := handler.NewNoteHandler(noteSvc)

	router := gin.Default()
	router.Use(handler.CORSMiddleware(cfg.HTTP.AllowedOrigins))

	// 건강 체크 및 테스트용 기본 엔드포인트
	router.GET("/ping", handler.Ping)
	router.GET("/", handler.Root)

	// 인증 불필요
	router.POST("/auth/signup", authHandler.Signup)
	router.POST("/auth/login", authHandler.Login)
	router.GET("/notes", noteHandler.ListNotes)
	router.GET("/notes/:id", noteHandler.GetNote)

	// 인증 필요
	authed := router.Group("/", handler.AuthMiddleware(tokens))
	authed.GET("/auth/me", authHandler.Me)
	authed.POST("/notes", noteHandler.CreateNote)
	authed.PUT("/notes/:id", noteHandler.UpdateNote)
	authed.DELETE("/notes/:id", noteHandler.DeleteNote)

	slog.Info("starting memo API server", "addr", cfg.HTTP.Addr, "backend", cfg.Store.Backend)
	if err := router.Run(cfg.HTTP.Addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// openStore는 DB_BACKEND 설정에 따라 저장소를 연다. 기본은 sqlite.
func openStore(ctx context.Context, cfg config.Config) (db.Store, error) {
	switch cfg.Store.Backend {
	case "postgres":
		return db.NewPostgres(ctx, cfg.Postgres)
	default:
		return db.NewSQLite(cfg.SQLite.Path)
	}
}

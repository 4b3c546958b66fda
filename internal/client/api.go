// memo API 서버와 통신하는 HTTP 클라이언트. memoctl에서 사용한다.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/memoapp/backend/internal/model"
)

// APIError는 2xx가 아닌 응답. 서버의 {"error": "..."} 본문을 담는다.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *APIClient) Signup(ctx context.Context, email, password string) (*model.SignupResponse, error) {
	var res model.SignupResponse
	err := c.do(ctx, http.MethodPost, "/auth/signup", "", model.AuthRequest{Email: email, Password: password}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *APIClient) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	var res model.TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", "", model.AuthRequest{Email: email, Password: password}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *APIClient) ListNotes(ctx context.Context) ([]model.Note, error) {
	var notes []model.Note
	if err := c.do(ctx, http.MethodGet, "/notes", "", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *APIClient) GetNote(ctx context.Context, id int64) (*model.Note, error) {
	var note model.Note
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/notes/%d", id), "", nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *APIClient) CreateNote(ctx context.Context, token, title, content string) (*model.Note, error) {
	var note model.Note
	err := c.do(ctx, http.MethodPost, "/notes", token, model.CreateNoteRequest{Title: title, Content: content}, &note)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *APIClient) UpdateNote(ctx context.Context, token string, id int64, title, content *string) (*model.Note, error) {
	var note model.Note
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/notes/%d", id), token, model.UpdateNoteRequest{Title: title, Content: content}, &note)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *APIClient) DeleteNote(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notes/%d", id), token, nil, nil)
}

// do는 JSON 요청/응답과 bearer 헤더, 오류 매핑을 한 곳에서 처리한다.
func (c *APIClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var buf io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		buf = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{Status: res.StatusCode}
		var errBody model.ErrorResponse
		if data, readErr := io.ReadAll(io.LimitReader(res.Body, 4096)); readErr == nil {
			if json.Unmarshal(data, &errBody) == nil {
				apiErr.Message = errBody.Error
			}
		}
		return apiErr
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

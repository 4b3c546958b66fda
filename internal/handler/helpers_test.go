package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/memoapp/backend/internal/auth"
	"github.com/memoapp/backend/internal/db"
	"github.com/memoapp/backend/internal/model"
	"github.com/memoapp/backend/internal/service"
	"github.com/stretchr/testify/require"
)

// UserStore/NoteStore 인메모리 구현. 핸들러 테스트 전용.
type fakeStore struct {
	users      map[string]*model.User
	notes      map[int64]*model.Note
	nextUserID int64
	nextNoteID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      map[string]*model.User{},
		notes:      map[int64]*model.Note{},
		nextUserID: 1,
		nextNoteID: 1,
	}
}

func (f *fakeStore) CreateUser(ctx context.Context, email, passwordHash string) (*model.User, error) {
	if _, ok := f.users[email]; ok {
		return nil, db.ErrEmailTaken
	}
	user := &model.User{ID: f.nextUserID, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now().Unix()}
	f.nextUserID++
	f.users[email] = user
	return user, nil
}

func (f *fakeStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, db.ErrNotFound
	}
	return user, nil
}

func (f *fakeStore) CreateNote(ctx context.Context, authorID int64, title, content string) (*model.Note, error) {
	now := time.Now().Unix()
	note := &model.Note{ID: f.nextNoteID, AuthorID: authorID, Title: title, Content: content, CreatedAt: now, UpdatedAt: now}
	f.nextNoteID++
	f.notes[note.ID] = note
	return note, nil
}

func (f *fakeStore) GetNote(ctx context.Context, id int64) (*model.Note, error) {
	note, ok := f.notes[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *note
	return &copied, nil
}

func (f *fakeStore) UpdateNote(ctx context.Context, id, authorID int64, title, content *string) (*model.Note, error) {
	note, ok := f.notes[id]
	if !ok || note.AuthorID != authorID {
		return nil, db.ErrNotFound
	}
	if title != nil {
		note.Title = *title
	}
	if content != nil {
		note.Content = *content
	}
	note.UpdatedAt = time.Now().Unix()
	copied := *note
	return &copied, nil
}

func (f *fakeStore) DeleteNote(ctx context.Context, id, authorID int64) (bool, error) {
	note, ok := f.notes[id]
	if !ok || note.AuthorID != authorID {
		return false, nil
	}
	delete(f.notes, id)
	return true, nil
}

func (f *fakeStore) ListNotes(ctx context.Context) ([]model.Note, error) {
	notes := []model.Note{}
	for id := f.nextNoteID - 1; id >= 1; id-- {
		if note, ok := f.notes[id]; ok {
			notes = append(notes, *note)
		}
	}
	return notes, nil
}

// argon2 비용 없는 해셔
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) Verify(password, encodedHash string) bool {
	return encodedHash == "hashed:"+password
}

// 운영 라우팅과 같은 구성으로 테스트 라우터를 만든다
func newTestRouter(t *testing.T) (*gin.Engine, *fakeStore, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newFakeStore()
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	authSvc := service.NewAuthService(store, plainHasher{})
	noteSvc := service.NewNoteService(store)

	authHandler := NewAuthHandler(authSvc, tokens)
	noteHandler := NewNoteHandler(noteSvc)

	r := gin.New()
	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/notes", noteHandler.ListNotes)
	r.GET("/notes/:id", noteHandler.GetNote)

	authed := r.Group("/", AuthMiddleware(tokens))
	authed.GET("/auth/me", authHandler.Me)
	authed.POST("/notes", noteHandler.CreateNote)
	authed.PUT("/notes/:id", noteHandler.UpdateNote)
	authed.DELETE("/notes/:id", noteHandler.DeleteNote)

	return r, store, tokens
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func signupAndLogin(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/auth/signup", "", model.AuthRequest{Email: email, Password: password})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", model.AuthRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code)

	return decodeBody[model.TokenResponse](t, w).Token
}

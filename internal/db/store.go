package db

import (
	"context"
	"errors"

	"github.com/memoapp/backend/internal/model"
)

var (
	// 이메일 unique 제약 위반. 저장소 계층에서 백엔드별 오류를 이 값으로 정규화한다.
	// 실패가 아니라 구분되는 정상 결과이므로 상위 계층은 내부 오류로 다루면 안 된다.
	ErrEmailTaken = errors.New("email already taken")

	ErrNotFound = errors.New("not found")
)

// UserStore는 계정 저장소 계약. 동일 이메일의 동시 생성 경쟁은
// 애플리케이션 잠금이 아니라 DB unique 제약으로만 중재된다.
type UserStore interface {
	// CreateUser는 unique 제약 위반 시 ErrEmailTaken을 반환한다.
	CreateUser(ctx context.Context, email, passwordHash string) (*model.User, error)
	// GetUserByEmail은 해당 계정이 없으면 ErrNotFound를 반환한다.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type NoteStore interface {
	CreateNote(ctx context.Context, authorID int64, title, content string) (*model.Note, error)
	// GetNote는 해당 노트가 없으면 ErrNotFound를 반환한다.
	GetNote(ctx context.Context, id int64) (*model.Note, error)
	// UpdateNote는 nil이 아닌 필드만 갱신한다. authorID가 일치하는 행이 없으면 ErrNotFound.
	UpdateNote(ctx context.Context, id, authorID int64, title, content *string) (*model.Note, error)
	// DeleteNote는 삭제된 행이 있으면 true를 반환한다.
	DeleteNote(ctx context.Context, id, authorID int64) (bool, error)
	// ListNotes는 최신 생성 순으로 반환한다.
	ListNotes(ctx context.Context) ([]model.Note, error)
}

// Store는 서버가 사용하는 저장소 전체 계약. Postgres/SQLite 구현을 교체할 수 있다.
type Store interface {
	UserStore
	NoteStore
	EnsureSchema(ctx context.Context) error
	Close()
}

package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/memoapp/backend/internal/model"
)

func (db *SQLite) CreateUser(ctx context.Context, email, passwordHash string) (*model.User, error) {
	query := `
		INSERT INTO users (email, password_hash, created_at)
		VALUES (?, ?, strftime('%s','now'))
		RETURNING id, email, password_hash, created_at
	`
	var user model.User
	err := db.DB.QueryRowContext(ctx, query, email, passwordHash).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if isSQLiteUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

func (db *SQLite) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = ?
	`
	var user model.User
	err := db.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// modernc 드라이버는 제약 위반 오류 코드를 타입으로 노출하지 않으므로
// SQLite가 만드는 메시지로 판별한다.
func isSQLiteUniqueViolation(err error) bool {
	return err != nil &&
		strings.Contains(err.Error(), "UNIQUE constraint failed") &&
		strings.Contains(err.Error(), "users.email")
}

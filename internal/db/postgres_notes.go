package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/memoapp/backend/internal/model"
)

const pgNoteColumns = `id, user_id, title, content,
	EXTRACT(EPOCH FROM created_at)::bigint,
	EXTRACT(EPOCH FROM updated_at)::bigint`

func (db *Postgres) CreateNote(ctx context.Context, authorID int64, title, content string) (*model.Note, error) {
	query := `
		INSERT INTO notes (user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + pgNoteColumns

	var note model.Note
	err := db.Pool.QueryRow(ctx, query, authorID, title, content).Scan(
		&note.ID,
		&note.AuthorID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (db *Postgres) GetNote(ctx context.Context, id int64) (*model.Note, error) {
	query := `SELECT ` + pgNoteColumns + ` FROM notes WHERE id = $1`

	var note model.Note
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&note.ID,
		&note.AuthorID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

func (db *Postgres) UpdateNote(ctx context.Context, id, authorID int64, title, content *string) (*model.Note, error) {
	// COALESCE로 nil 필드는 기존 값을 유지한다
	query := `
		UPDATE notes
		SET title = COALESCE($1, title),
		    content = COALESCE($2, content),
		    updated_at = NOW()
		WHERE id = $3 AND user_id = $4
		RETURNING ` + pgNoteColumns

	var note model.Note
	err := db.Pool.QueryRow(ctx, query, title, content, id, authorID).Scan(
		&note.ID,
		&note.AuthorID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

func (db *Postgres) DeleteNote(ctx context.Context, id, authorID int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, id, authorID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (db *Postgres) ListNotes(ctx context.Context) ([]model.Note, error) {
	query := `SELECT ` + pgNoteColumns + ` FROM notes ORDER BY created_at DESC, id DESC`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []model.Note{}
	for rows.Next() {
		var note model.Note
		if err := rows.Scan(
			&note.ID,
			&note.AuthorID,
			&note.Title,
			&note.Content,
			&note.CreatedAt,
			&note.UpdatedAt,
		); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

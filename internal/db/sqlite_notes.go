package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/memoapp/backend/internal/model"
)

const sqliteNoteColumns = `id, user_id, title, content, created_at, updated_at`

func (db *SQLite) CreateNote(ctx context.Context, authorID int64, title, content string) (*model.Note, error) {
	query := `
		INSERT INTO notes (user_id, title, content, created_at, updated_at)
		VALUES (?, ?, ?, strftime('%s','now'), strftime('%s','now'))
		RETURNING ` + sqliteNoteColumns

	var note model.Note
	err := db.DB.QueryRowContext(ctx, query, authorID, title, content).Scan(
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

func (db *SQLite) GetNote(ctx context.Context, id int64) (*model.Note, error) {
	query := `SELECT ` + sqliteNoteColumns + ` FROM notes WHERE id = ?`

	var note model.Note
	err := db.DB.QueryRowContext(ctx, query, id).Scan(
		&note.ID,
		&note.AuthorID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

func (db *SQLite) UpdateNote(ctx context.Context, id, authorID int64, title, content *string) (*model.Note, error) {
	query := `
		UPDATE notes
		SET title = COALESCE(?, title),
		    content = COALESCE(?, content),
		    updated_at = strftime('%s','now')
		WHERE id = ? AND user_id = ?
		RETURNING ` + sqliteNoteColumns

	var note model.Note
	err := db.DB.QueryRowContext(ctx, query, title, content, id, authorID).Scan(
		&note.ID,
		&note.AuthorID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

func (db *SQLite) DeleteNote(ctx context.Context, id, authorID int64) (bool, error) {
	res, err := db.DB.ExecContext(ctx, `DELETE FROM notes WHERE id = ? AND user_id = ?`, id, authorID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (db *SQLite) ListNotes(ctx context.Context) ([]model.Note, error) {
	query := `SELECT ` + sqliteNoteColumns + ` FROM notes ORDER BY created_at DESC, id DESC`

	rows, err := db.DB.QueryContext(ctx, query)
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

package service

import (
	"context"

	"github.com/memoapp/backend/internal/db"
	"github.com/memoapp/backend/internal/model"
)

// NoteService는 노트 CRUD를 저장소 계약 위에서 제공한다.
// 소유권 판정은 핸들러 계층에서 Claims와 함께 수행한다.
type NoteService struct {
	store db.NoteStore
}

func NewNoteService(store db.NoteStore) *NoteService {
	return &NoteService{store: store}
}

func (s *NoteService) Create(ctx context.Context, authorID int64, title, content string) (*model.Note, error) {
	return s.store.CreateNote(ctx, authorID, title, content)
}

func (s *NoteService) Get(ctx context.Context, id int64) (*model.Note, error) {
	return s.store.GetNote(ctx, id)
}

func (s *NoteService) Update(ctx context.Context, id, authorID int64, title, content *string) (*model.Note, error) {
	return s.store.UpdateNote(ctx, id, authorID, title, content)
}

func (s *NoteService) Delete(ctx context.Context, id, authorID int64) (bool, error) {
	return s.store.DeleteNote(ctx, id, authorID)
}

func (s *NoteService) List(ctx context.Context) ([]model.Note, error) {
	return s.store.ListNotes(ctx)
}

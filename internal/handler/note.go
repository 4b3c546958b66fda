package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/memoapp/backend/internal/db"
	"github.com/memoapp/backend/internal/model"
	"github.com/memoapp/backend/internal/service"
)

type NoteHandler struct {
	svc *service.NoteService
}

func NewNoteHandler(svc *service.NoteService) *NoteHandler {
	return &NoteHandler{svc: svc}
}

// ListNotes godoc
// @Summary List notes
// @Tags notes
// @Produce json
// @Success 200 {array} model.Note
// @Failure 500 {object} model.ErrorResponse
// @Router /notes [get]
func (h *NoteHandler) ListNotes(c *gin.Context) {
	notes, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, notes)
}

// GetNote godoc
// @Summary Get a note
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} model.Note
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /notes/{id} [get]
func (h *NoteHandler) GetNote(c *gin.Context) {
	id, ok := noteID(c)
	if !ok {
		return
	}

	note, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeNoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// CreateNote godoc
// @Summary Create a note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateNoteRequest true "Note payload"
// @Success 201 {object} model.Note
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /notes [post]
func (h *NoteHandler) CreateNote(c *gin.Context) {
	claims := GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	note, err := h.svc.Create(c.Request.Context(), claims.UserID, req.Title, req.Content)
	if err != nil {
		writeNoteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// UpdateNote godoc
// @Summary Update a note (partial)
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param request body model.UpdateNoteRequest true "Fields to update"
// @Success 200 {object} model.Note
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /notes/{id} [put]
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	claims := GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, ok := noteID(c)
	if !ok {
		return
	}

	var req model.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	// 소유권 확인을 위해 먼저 조회한다. 없는 노트는 404, 남의 노트는 403.
	existing, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeNoteError(c, err)
		return
	}
	if !existing.IsOwner(claims.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	note, err := h.svc.Update(c.Request.Context(), id, claims.UserID, req.Title, req.Content)
	if err != nil {
		writeNoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// DeleteNote godoc
// @Summary Delete a note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 204 "No Content"
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /notes/{id} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	claims := GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, ok := noteID(c)
	if !ok {
		return
	}

	deleted, err := h.svc.Delete(c.Request.Context(), id, claims.UserID)
	if err != nil {
		writeNoteError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func noteID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note id"})
		return 0, false
	}
	return id, true
}

func writeNoteError(c *gin.Context, err error) {
	if errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
}

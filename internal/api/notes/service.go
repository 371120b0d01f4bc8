// Package notes is the HTTP adapter over the notes usecase. It stays thin:
// decode, call, encode. All access decisions live in the usecase.
package notes

import (
	"context"
	"net/http"

	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
)

type notesUsecase interface {
	ListNotes(ctx context.Context, userID int64, query string, page int) (entity.NotesPage, error)
	GetNote(ctx context.Context, userID, noteID int64) (entity.NoteWithParticipants, error)
	ListSharedNotes(ctx context.Context, userID int64, limit, skip int) ([]entity.Note, error)
	CreateNote(ctx context.Context, userID int64, title, detail string) (entity.Note, error)
	UpdateNote(ctx context.Context, userID, noteID int64, title, detail string) (entity.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
	ShareNote(ctx context.Context, ownerID, noteID, granteeID int64, permission entity.Permission) (entity.SharedResponse, error)
	UnshareNote(ctx context.Context, ownerID, noteID, granteeID int64) error
	UpdatePermission(ctx context.Context, ownerID, noteID, granteeID int64, permission entity.Permission) (entity.SharedResponse, error)
}

type Service struct {
	notes notesUsecase
}

func New(notes notesUsecase) *Service {
	return &Service{notes: notes}
}

// Routes registers the note endpoints. The mux is expected to sit behind
// the bearer middleware.
func (s *Service) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/notes", s.handleListNotes)
	mux.HandleFunc("POST /api/notes", s.handleCreateNote)
	mux.HandleFunc("GET /api/notes/{id}", s.handleGetNote)
	mux.HandleFunc("PUT /api/notes/{id}", s.handleUpdateNote)
	mux.HandleFunc("DELETE /api/notes/{id}", s.handleDeleteNote)
	mux.HandleFunc("POST /api/notes/{id}/share", s.handleShareNote)
	mux.HandleFunc("PUT /api/notes/{id}/share/{user_id}", s.handleUpdatePermission)
	mux.HandleFunc("DELETE /api/notes/{id}/share/{user_id}", s.handleUnshareNote)
	mux.HandleFunc("GET /api/shared-notes", s.handleListSharedNotes)
}

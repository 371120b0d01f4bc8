package notes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/smark-ARK/mind-castle-gql-server/internal/api/respond"
	"github.com/smark-ARK/mind-castle-gql-server/internal/auth"
	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
)

func (s *Service) handleListNotes(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		respond.Err(w, err)
		return
	}

	page := intQuery(r, "page", 1)
	query := r.URL.Query().Get("q")

	result, err := s.notes.ListNotes(r.Context(), userID, query, page)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, notesPageResponse{
		Notes:      toNotesResponse(result.Notes),
		TotalPages: result.TotalPages,
	})
}

func (s *Service) handleGetNote(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		respond.Err(w, err)
		return
	}

	noteID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := s.notes.GetNote(r.Context(), userID, noteID)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, noteWithParticipantsResponse{
		Note:         toNoteResponse(result.Note),
		Participants: toParticipantsResponse(result.Participants),
	})
}

func (s *Service) handleListSharedNotes(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		respond.Err(w, err)
		return
	}

	limit := intQuery(r, "limit", 0)
	skip := intQuery(r, "skip", 0)

	items, err := s.notes.ListSharedNotes(r.Context(), userID, limit, skip)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toNotesResponse(items))
}

func (s *Service) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		respond.Err(w, err)
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := s.notes.CreateNote(r.Context(), userID, req.Title, req.Detail)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toNoteResponse(note))
}

func (s *Service) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		respond.Err(w, err)
		return
	}

	noteID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := s.notes.UpdateNote(r.Context(), userID, noteID, req.Title, req.Detail)
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toNoteResponse(note))
}

func (s *Service) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		respond.Err(w, err)
		return
	}

	noteID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.notes.DeleteNote(r.Context(), userID, noteID); err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusNoContent, nil)
}

func (s *Service) handleShareNote(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		respond.Err(w, err)
		return
	}

	noteID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req shareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	shared, err := s.notes.ShareNote(r.Context(), userID, noteID, req.UserID, entity.Permission(req.Permission))
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toSharedResponse(shared))
}

func (s *Service) handleUnshareNote(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		respond.Err(w, err)
		return
	}

	noteID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	granteeID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}

	if err := s.notes.UnshareNote(r.Context(), userID, noteID, granteeID); err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusNoContent, nil)
}

func (s *Service) handleUpdatePermission(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		respond.Err(w, err)
		return
	}

	noteID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	granteeID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}

	var req permissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	shared, err := s.notes.UpdatePermission(r.Context(), userID, noteID, granteeID, entity.Permission(req.Permission))
	if err != nil {
		respond.Err(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toSharedResponse(shared))
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}

	return id, true
}

func intQuery(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return v
}

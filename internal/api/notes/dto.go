package notes

import (
	"time"

	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
)

type noteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
	OwnerID   int64     `json:"owner_id"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type participantResponse struct {
	User       userResponse `json:"user"`
	Permission string       `json:"permission"`
}

type notesPageResponse struct {
	Notes      []noteResponse `json:"notes"`
	TotalPages int            `json:"total_pages"`
}

type noteWithParticipantsResponse struct {
	Note         noteResponse          `json:"note"`
	Participants []participantResponse `json:"participants"`
}

type sharedResponse struct {
	Note       noteResponse `json:"note"`
	User       userResponse `json:"user"`
	Permission string       `json:"permission"`
}

type noteRequest struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type shareRequest struct {
	UserID     int64  `json:"user_id"`
	Permission string `json:"permission"`
}

type permissionRequest struct {
	Permission string `json:"permission"`
}

func toNoteResponse(n entity.Note) noteResponse {
	return noteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Detail:    n.Detail,
		CreatedAt: n.CreatedAt,
		OwnerID:   n.OwnerID,
	}
}

func toNotesResponse(notes []entity.Note) []noteResponse {
	out := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteResponse(n))
	}

	return out
}

func toUserResponse(u entity.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

func toParticipantsResponse(participants []entity.Participant) []participantResponse {
	out := make([]participantResponse, 0, len(participants))
	for _, p := range participants {
		out = append(out, participantResponse{
			User:       toUserResponse(p.User),
			Permission: string(p.Permission),
		})
	}

	return out
}

func toSharedResponse(s entity.SharedResponse) sharedResponse {
	return sharedResponse{
		Note:       toNoteResponse(s.Note),
		User:       toUserResponse(s.User),
		Permission: string(s.Permission),
	}
}

package entity

import (
	"errors"
	"time"
)

var ErrNoteNotFound = errors.New("note not found")

type Note struct {
	ID        int64
	Title     string
	Detail    string
	CreatedAt time.Time
	OwnerID   int64
}

// NoteWithParticipants is the result of a single-note lookup: the note plus
// every user it is shared with and their permission.
type NoteWithParticipants struct {
	Note         Note
	Participants []Participant
}

type Participant struct {
	User       User
	Permission Permission
}

// NotesPage is one page of an owner's notes listing.
type NotesPage struct {
	Notes      []Note
	TotalPages int
}

// Package notes is the core of the service: it decides who may read, edit
// or manage a note, and executes every note and sharing operation inside a
// per-call transaction.
package notes

import (
	"context"
	"fmt"

	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
)

const (
	// pageSize is the fixed page size of the owner listing. TotalPages is
	// floor(total/pageSize), matching the behavior the API always had: a
	// trailing partial page is not counted. Switch to ceiling division
	// here if that ever becomes the contract.
	pageSize = 10

	defaultSharedLimit = 10
	// maxSharedLimit caps caller-supplied limits so a client cannot force
	// an unbounded scan.
	maxSharedLimit = 100
)

type notesRepository interface {
	CreateNote(ctx context.Context, ownerID int64, title, detail string) (entity.Note, error)
	GetNote(ctx context.Context, id int64) (entity.Note, error)
	GetOwnedNote(ctx context.Context, id, ownerID int64) (entity.Note, error)
	ListNotes(ctx context.Context, ownerID int64, query string, limit, offset int) ([]entity.Note, error)
	CountNotes(ctx context.Context, ownerID int64, query string) (int, error)
	UpdateNote(ctx context.Context, id int64, title, detail string) (entity.Note, error)
	DeleteNote(ctx context.Context, id, ownerID int64) error
}

type sharesRepository interface {
	GetShare(ctx context.Context, noteID, userID int64) (entity.SharedNote, error)
	CreateShare(ctx context.Context, noteID, userID int64, permission entity.Permission) (entity.SharedNote, error)
	UpdateSharePermission(ctx context.Context, noteID, userID int64, permission entity.Permission) (entity.SharedNote, error)
	DeleteShare(ctx context.Context, noteID, userID int64) error
	ListParticipants(ctx context.Context, noteID int64) ([]entity.Participant, error)
	GetSharedNote(ctx context.Context, noteID, userID int64) (entity.Note, error)
	ListSharedNotes(ctx context.Context, userID int64, limit, offset int) ([]entity.Note, error)
}

type usersRepository interface {
	GetUser(ctx context.Context, id int64) (entity.User, error)
}

// transactor scopes a function to a single transaction; the transaction is
// carried in the context it passes down.
type transactor interface {
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	notesRepo  notesRepository  `option:"mandatory" validate:"required"`
	sharesRepo sharesRepository `option:"mandatory" validate:"required"`
	usersRepo  usersRepository  `option:"mandatory" validate:"required"`
	tx         transactor       `option:"mandatory" validate:"required"`
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

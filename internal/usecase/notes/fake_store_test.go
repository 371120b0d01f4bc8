package notes

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/smark-ARK/mind-castle-gql-server/internal/entity"
)

// fakeStore is an in-memory stand-in for the pgx repositories. It keeps the
// store-level invariants the real schema enforces: at most one share per
// (note, user) pair, and cascade removal of shares when a note goes away.
type fakeStore struct {
	mu sync.Mutex

	nextNoteID int64
	nextUserID int64
	clock      time.Time

	notes  map[int64]entity.Note
	users  map[int64]entity.User
	shares map[shareKey]entity.SharedNote

	// lastSharedLimit records what the usecase actually asked for, so limit
	// clamping is observable from tests.
	lastSharedLimit int
}

type shareKey struct {
	noteID int64
	userID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		clock:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		notes:  make(map[int64]entity.Note),
		users:  make(map[int64]entity.User),
		shares: make(map[shareKey]entity.SharedNote),
	}
}

// RunInTx implements the transactor interface. The fake applies mutations
// immediately; atomicity is not under test here.
func (s *fakeStore) RunInTx(ctx context.Context, f func(context.Context) error) error {
	return f(ctx)
}

// tick advances the fake clock so creation times are strictly ordered.
func (s *fakeStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *fakeStore) addUser(username string) entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUserID++
	u := entity.User{
		ID:       s.nextUserID,
		Username: username,
		Email:    username + "@example.com",
	}
	s.users[u.ID] = u

	return u
}

func (s *fakeStore) CreateNote(_ context.Context, ownerID int64, title, detail string) (entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextNoteID++
	n := entity.Note{
		ID:        s.nextNoteID,
		Title:     title,
		Detail:    detail,
		CreatedAt: s.tick(),
		OwnerID:   ownerID,
	}
	s.notes[n.ID] = n

	return n, nil
}

func (s *fakeStore) GetNote(_ context.Context, id int64) (entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return entity.Note{}, entity.ErrNoteNotFound
	}

	return n, nil
}

func (s *fakeStore) GetOwnedNote(_ context.Context, id, ownerID int64) (entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok || n.OwnerID != ownerID {
		return entity.Note{}, entity.ErrNoteNotFound
	}

	return n, nil
}

func matches(n entity.Note, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Detail), q)
}

func (s *fakeStore) ownedNotes(ownerID int64, query string) []entity.Note {
	out := make([]entity.Note, 0)
	for _, n := range s.notes {
		if n.OwnerID == ownerID && matches(n, query) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}

func page(notes []entity.Note, limit, offset int) []entity.Note {
	if offset >= len(notes) {
		return []entity.Note{}
	}
	end := offset + limit
	if end > len(notes) {
		end = len(notes)
	}

	return notes[offset:end]
}

func (s *fakeStore) ListNotes(_ context.Context, ownerID int64, query string, limit, offset int) ([]entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return page(s.ownedNotes(ownerID, query), limit, offset), nil
}

func (s *fakeStore) CountNotes(_ context.Context, ownerID int64, query string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.ownedNotes(ownerID, query)), nil
}

func (s *fakeStore) UpdateNote(_ context.Context, id int64, title, detail string) (entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return entity.Note{}, entity.ErrNoteNotFound
	}

	n.Title = title
	n.Detail = detail
	s.notes[id] = n

	return n, nil
}

func (s *fakeStore) DeleteNote(_ context.Context, id, ownerID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok || n.OwnerID != ownerID {
		return entity.ErrNoteNotFound
	}

	delete(s.notes, id)
	for key := range s.shares {
		if key.noteID == id {
			delete(s.shares, key)
		}
	}

	return nil
}

func (s *fakeStore) GetShare(_ context.Context, noteID, userID int64) (entity.SharedNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	share, ok := s.shares[shareKey{noteID, userID}]
	if !ok {
		return entity.SharedNote{}, entity.ErrShareNotFound
	}

	return share, nil
}

func (s *fakeStore) CreateShare(_ context.Context, noteID, userID int64, permission entity.Permission) (entity.SharedNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := shareKey{noteID, userID}
	if _, exists := s.shares[key]; exists {
		return entity.SharedNote{}, entity.ErrAlreadyShared
	}

	share := entity.SharedNote{
		NoteID:     noteID,
		UserID:     userID,
		Permission: permission,
		CreatedAt:  s.tick(),
	}
	s.shares[key] = share

	return share, nil
}

func (s *fakeStore) UpdateSharePermission(_ context.Context, noteID, userID int64, permission entity.Permission) (entity.SharedNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := shareKey{noteID, userID}
	share, ok := s.shares[key]
	if !ok {
		return entity.SharedNote{}, entity.ErrShareNotFound
	}

	share.Permission = permission
	s.shares[key] = share

	return share, nil
}

func (s *fakeStore) DeleteShare(_ context.Context, noteID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := shareKey{noteID, userID}
	if _, ok := s.shares[key]; !ok {
		return entity.ErrShareNotFound
	}
	delete(s.shares, key)

	return nil
}

func (s *fakeStore) ListParticipants(_ context.Context, noteID int64) ([]entity.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Participant, 0)
	for key, share := range s.shares {
		if key.noteID != noteID {
			continue
		}
		out = append(out, entity.Participant{
			User:       s.users[key.userID],
			Permission: share.Permission,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].User.ID < out[j].User.ID })

	return out, nil
}

func (s *fakeStore) GetSharedNote(_ context.Context, noteID, userID int64) (entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shares[shareKey{noteID, userID}]; !ok {
		return entity.Note{}, entity.ErrNoteNotFound
	}
	n, ok := s.notes[noteID]
	if !ok {
		return entity.Note{}, entity.ErrNoteNotFound
	}

	return n, nil
}

func (s *fakeStore) ListSharedNotes(_ context.Context, userID int64, limit, offset int) ([]entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSharedLimit = limit

	out := make([]entity.Note, 0)
	for key := range s.shares {
		if key.userID != userID {
			continue
		}
		if n, ok := s.notes[key.noteID]; ok {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return page(out, limit, offset), nil
}

func (s *fakeStore) GetUser(_ context.Context, id int64) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return entity.User{}, entity.ErrUserNotFound
	}

	return u, nil
}

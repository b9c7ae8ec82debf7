package services

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"wanderly/internal/models/db_models"
	"wanderly/pkg/utils"
)

type fakeAccountRepo struct {
	mu    sync.Mutex
	users map[string]*db_models.User

	findErr   error
	insertErr error
	appendErr error
	linked    []string
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{users: make(map[string]*db_models.User)}
}

func (f *fakeAccountRepo) Insert(_ context.Context, user *db_models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return utils.ErrEmailAlreadyExists
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	cp := *user
	f.users[user.ID.Hex()] = &cp
	return nil
}

func (f *fakeAccountRepo) FindById(_ context.Context, id string) (*db_models.User, error) {
	return f.find(func(u *db_models.User) bool { return u.ID.Hex() == id })
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	return f.find(func(u *db_models.User) bool { return u.Email == email })
}

func (f *fakeAccountRepo) FindByGoogleID(_ context.Context, googleID string) (*db_models.User, error) {
	return f.find(func(u *db_models.User) bool { return u.GoogleID != "" && u.GoogleID == googleID })
}

func (f *fakeAccountRepo) find(match func(*db_models.User) bool) (*db_models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) LinkGoogleID(_ context.Context, id string, profile utils.GoogleProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return utils.ErrUserNotFound
	}
	u.GoogleID = profile.ID
	if profile.Photo != "" {
		u.Photo = profile.Photo
	}
	f.linked = append(f.linked, id)
	return nil
}

func (f *fakeAccountRepo) AppendItinerary(_ context.Context, id string, itinerary db_models.StoredItinerary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	u, ok := f.users[id]
	if !ok {
		return utils.ErrUserNotFound
	}
	u.Itineraries = append(u.Itineraries, itinerary)
	return nil
}

func (f *fakeAccountRepo) ListItineraries(_ context.Context, id string) ([]db_models.StoredItinerary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, utils.ErrUserNotFound
	}
	return append([]db_models.StoredItinerary{}, u.Itineraries...), nil
}

func (f *fakeAccountRepo) EnsureIndexes(context.Context) error { return nil }

type fakeGenerator struct {
	content string
	err     error

	calls        int
	systemPrompt string
	prompt       string
}

func (f *fakeGenerator) Generate(_ context.Context, systemInstruction, prompt string) (string, error) {
	f.calls++
	f.systemPrompt = systemInstruction
	f.prompt = prompt
	return f.content, f.err
}

func (f *fakeGenerator) Provider() string { return "fake" }

func (f *fakeGenerator) Model() string { return "fake-model" }

type fakeAuditRepo struct {
	entries []*db_models.GenerationLog
}

func (f *fakeAuditRepo) Insert(_ context.Context, entry *db_models.GenerationLog) error {
	f.entries = append(f.entries, entry)
	return nil
}

package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"wanderly/internal/models/db_models"
	"wanderly/internal/repositories"
	"wanderly/internal/services"
	mem "wanderly/pkg/memcache"
	"wanderly/pkg/middleware"
	"wanderly/pkg/utils"
)

type memoryAccountRepo struct {
	mu    sync.Mutex
	users []*db_models.User
}

func (m *memoryAccountRepo) Insert(_ context.Context, user *db_models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return utils.ErrEmailAlreadyExists
		}
	}
	user.ID = primitive.NewObjectID()
	cp := *user
	m.users = append(m.users, &cp)
	return nil
}

func (m *memoryAccountRepo) find(match func(*db_models.User) bool) *db_models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if match(u) {
			cp := *u
			return &cp
		}
	}
	return nil
}

func (m *memoryAccountRepo) FindById(_ context.Context, id string) (*db_models.User, error) {
	return m.find(func(u *db_models.User) bool { return u.ID.Hex() == id }), nil
}

func (m *memoryAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	return m.find(func(u *db_models.User) bool { return u.Email == email }), nil
}

func (m *memoryAccountRepo) FindByGoogleID(_ context.Context, googleID string) (*db_models.User, error) {
	return m.find(func(u *db_models.User) bool { return u.GoogleID == googleID }), nil
}

func (m *memoryAccountRepo) LinkGoogleID(_ context.Context, id string, profile utils.GoogleProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID.Hex() == id {
			u.GoogleID = profile.ID
			return nil
		}
	}
	return utils.ErrUserNotFound
}

func (m *memoryAccountRepo) AppendItinerary(_ context.Context, id string, itinerary db_models.StoredItinerary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID.Hex() == id {
			u.Itineraries = append(u.Itineraries, itinerary)
			return nil
		}
	}
	return utils.ErrUserNotFound
}

func (m *memoryAccountRepo) ListItineraries(_ context.Context, id string) ([]db_models.StoredItinerary, error) {
	if u := m.find(func(u *db_models.User) bool { return u.ID.Hex() == id }); u != nil {
		return append([]db_models.StoredItinerary{}, u.Itineraries...), nil
	}
	return nil, utils.ErrUserNotFound
}

func (m *memoryAccountRepo) EnsureIndexes(context.Context) error { return nil }

type stubGenerator struct {
	content string
	err     error
}

func (s *stubGenerator) Generate(context.Context, string, string) (string, error) {
	return s.content, s.err
}

func (s *stubGenerator) Provider() string { return "stub" }

func (s *stubGenerator) Model() string { return "stub-model" }

type stubGoogle struct {
	profile *utils.GoogleProfile
	err     error
}

func (s *stubGoogle) AuthCodeURL(state string) string {
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (s *stubGoogle) ExchangeProfile(context.Context, string) (*utils.GoogleProfile, error) {
	return s.profile, s.err
}

const testFrontend = "http://localhost:3000"

type testApp struct {
	router    *gin.Engine
	repo      *memoryAccountRepo
	generator *stubGenerator
	google    *stubGoogle
	signer    *utils.StateSigner
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := &testApp{
		repo:      &memoryAccountRepo{},
		generator: &stubGenerator{},
		google:    &stubGoogle{},
		signer:    utils.NewStateSigner("test-secret"),
	}

	sessions := services.NewSessionService(mem.NewMemorySessions(), time.Hour)
	accounts := NewAccountController(
		services.NewAccountService(app.repo),
		sessions,
		app.google,
		app.signer,
		CookieSettings{FrontendURL: testFrontend},
	)
	itineraries := NewItineraryController(
		services.NewItineraryService(app.generator, app.repo, repositories.NewNoopGenerationLogRepository()),
	)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.SessionMiddleware(sessions, SessionCookieName))
	r.GET("/", Health)
	r.POST("/auth/register", accounts.Register)
	r.POST("/auth/login", accounts.Login)
	r.GET("/auth/google", accounts.GoogleLogin)
	r.GET("/auth/google/callback", accounts.GoogleCallback)
	r.GET("/auth/logout", accounts.Logout)
	r.GET("/auth/me", accounts.Me)
	r.POST("/api/itinerary", itineraries.GenerateItinerary)
	saved := r.Group("/api/itineraries", middleware.RequireAuth())
	saved.POST("", itineraries.SaveItinerary)
	saved.GET("", itineraries.ListItineraries)

	app.router = r
	return app
}

func (a *testApp) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func cookieNamed(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wanderly/internal/models/request_models"
	"wanderly/pkg/utils"
)

func TestCreateAccountAndLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName: "Asha",
		Email:       " Asha@Example.com ",
		Password:    "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", created.Email)
	assert.NotEqual(t, "hunter22", created.PasswordHash)
	assert.False(t, created.ID.IsZero())

	logged, err := svc.Login(ctx, request_models.LoginRequest{Email: "asha@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, logged.ID)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)
	ctx := context.Background()

	req := request_models.SignUpRequest{DisplayName: "A", Email: "a@example.com", Password: "secret1"}
	_, err := svc.CreateAccount(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateAccount(ctx, req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, request_models.SignUpRequest{DisplayName: "A", Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = svc.LoginWithGoogle(ctx, utils.GoogleProfile{ID: "g-2", Email: "google-only@example.com", DisplayName: "G", EmailVerified: true})
	require.NoError(t, err)

	cases := map[string]request_models.LoginRequest{
		"wrong password":   {Email: "a@example.com", Password: "nope"},
		"unknown email":    {Email: "nobody@example.com", Password: "secret1"},
		"google-only user": {Email: "google-only@example.com", Password: "secret1"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Login(ctx, req)
			assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
		})
	}
}

func TestLoginDatabaseError(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.findErr = errors.New("server selection timeout")

	_, err := NewAccountService(repo).Login(context.Background(), request_models.LoginRequest{Email: "a@example.com", Password: "x"})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestLoginWithGoogle(t *testing.T) {
	ctx := context.Background()
	profile := utils.GoogleProfile{ID: "g-1", Email: "new@example.com", DisplayName: "New", Photo: "https://img/p.png", EmailVerified: true}

	t.Run("creates then finds", func(t *testing.T) {
		repo := newFakeAccountRepo()
		svc := NewAccountService(repo)

		first, err := svc.LoginWithGoogle(ctx, profile)
		require.NoError(t, err)
		assert.Equal(t, "g-1", first.GoogleID)
		assert.Empty(t, first.PasswordHash)

		second, err := svc.LoginWithGoogle(ctx, profile)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Len(t, repo.users, 1)
	})

	t.Run("links existing local account", func(t *testing.T) {
		repo := newFakeAccountRepo()
		svc := NewAccountService(repo)

		local, err := svc.CreateAccount(ctx, request_models.SignUpRequest{DisplayName: "New", Email: "new@example.com", Password: "secret1"})
		require.NoError(t, err)

		linked, err := svc.LoginWithGoogle(ctx, profile)
		require.NoError(t, err)
		assert.Equal(t, local.ID, linked.ID)
		assert.Equal(t, "g-1", linked.GoogleID)
		assert.Equal(t, []string{local.ID.Hex()}, repo.linked)
		assert.Len(t, repo.users, 1)

		// password login keeps working after linking
		_, err = svc.Login(ctx, request_models.LoginRequest{Email: "new@example.com", Password: "secret1"})
		assert.NoError(t, err)
	})
}

func TestLoginWithGoogleUnverifiedEmail(t *testing.T) {
	ctx := context.Background()
	unverified := utils.GoogleProfile{ID: "g-9", Email: "victim@example.com", DisplayName: "Mallory"}

	t.Run("does not take over a local account", func(t *testing.T) {
		repo := newFakeAccountRepo()
		svc := NewAccountService(repo)
		_, err := svc.CreateAccount(ctx, request_models.SignUpRequest{DisplayName: "Victim", Email: "victim@example.com", Password: "secret1"})
		require.NoError(t, err)

		_, err = svc.LoginWithGoogle(ctx, unverified)
		assert.ErrorIs(t, err, utils.ErrUnverifiedEmail)
		assert.Empty(t, repo.linked)
		for _, u := range repo.users {
			assert.Empty(t, u.GoogleID)
		}
	})

	t.Run("does not create an account", func(t *testing.T) {
		repo := newFakeAccountRepo()
		_, err := NewAccountService(repo).LoginWithGoogle(ctx, unverified)
		assert.ErrorIs(t, err, utils.ErrUnverifiedEmail)
		assert.Empty(t, repo.users)
	})

	t.Run("already linked google id still signs in", func(t *testing.T) {
		repo := newFakeAccountRepo()
		svc := NewAccountService(repo)
		verified := unverified
		verified.EmailVerified = true
		first, err := svc.LoginWithGoogle(ctx, verified)
		require.NoError(t, err)

		again, err := svc.LoginWithGoogle(ctx, unverified)
		require.NoError(t, err)
		assert.Equal(t, first.ID, again.ID)
	})
}

func TestLoginComparesHashForUnknownEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo).(*AccountService)
	var hashes []string
	svc.compare = func(hash, plain string) error {
		hashes = append(hashes, hash)
		return utils.ComparePasswords(hash, plain)
	}

	_, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	assert.Equal(t, []string{""}, hashes)
}

func TestGetAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, request_models.SignUpRequest{DisplayName: "A", Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)

	got, err := svc.GetAccount(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Email)

	_, err = svc.GetAccount(ctx, "not-an-id")
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

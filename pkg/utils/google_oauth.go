package utils

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// GoogleProfile is the subset of the Google account we keep on the user record.
type GoogleProfile struct {
	ID          string
	Email       string
	DisplayName string
	Photo       string
	// EmailVerified is Google's claim that the account owns Email.
	EmailVerified bool
}

type GoogleIdentityProvider interface {
	AuthCodeURL(state string) string
	// ExchangeProfile trades an authorization code for the signed-in profile.
	ExchangeProfile(ctx context.Context, code string) (*GoogleProfile, error)
}

type googleOAuthProvider struct {
	cfg *oauth2.Config
}

func NewGoogleOAuthProvider(clientID, clientSecret, callbackURL string) GoogleIdentityProvider {
	return &googleOAuthProvider{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"openid", googleoauth.UserinfoProfileScope, googleoauth.UserinfoEmailScope},
			Endpoint:     google.Endpoint,
		},
	}
}

func (p *googleOAuthProvider) AuthCodeURL(state string) string {
	return p.cfg.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

func (p *googleOAuthProvider) ExchangeProfile(ctx context.Context, code string) (*GoogleProfile, error) {
	if code == "" {
		return nil, errors.New("missing authorization code")
	}

	tok, err := p.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google code exchange: %w", err)
	}

	svc, err := googleoauth.NewService(ctx, option.WithTokenSource(p.cfg.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("google userinfo client: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("google userinfo: %w", err)
	}
	if info.Id == "" || info.Email == "" {
		return nil, errors.New("google profile missing id or email")
	}

	displayName := info.Name
	if displayName == "" {
		displayName = info.Email
	}

	return &GoogleProfile{
		ID:            info.Id,
		Email:         info.Email,
		DisplayName:   displayName,
		Photo:         info.Picture,
		EmailVerified: info.VerifiedEmail != nil && *info.VerifiedEmail,
	}, nil
}

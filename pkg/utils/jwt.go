package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const oauthStateTTL = 10 * time.Minute

// StateClaims is the signed OAuth "state" parameter. Nonce is also stored in a
// short-lived cookie so a callback can only complete in the browser that started it.
type StateClaims struct {
	Nonce string `json:"nonce"`
	jwt.RegisteredClaims
}

type StateSigner struct {
	key []byte
	now func() time.Time
}

func NewStateSigner(secret string) *StateSigner {
	return &StateSigner{key: []byte(secret), now: time.Now}
}

// CreateState returns the signed state and the nonce it carries.
func (s *StateSigner) CreateState() (string, string, error) {
	nonce := uuid.NewString()
	now := s.now()
	claims := &StateClaims{
		Nonce: nonce,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(oauthStateTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   "oauth-state",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", "", err
	}
	return signed, nonce, nil
}

func (s *StateSigner) ValidateState(state, nonce string) error {
	if state == "" || nonce == "" {
		return ErrInvalidOAuthState
	}
	claims := &StateClaims{}
	token, err := jwt.ParseWithClaims(state, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.key, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return ErrInvalidOAuthState
	}
	if claims.Nonce != nonce {
		return ErrInvalidOAuthState
	}
	return nil
}

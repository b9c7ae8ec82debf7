package utils

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const passwordCost = 10

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	return string(bytes), err
}

// dummyHash is compared against when there is no stored hash, so a missing
// account costs the same bcrypt work as a wrong password.
var dummyHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("wanderly-no-password"), passwordCost)
	if err != nil {
		panic(err)
	}
	return hash
})

// ComparePasswords always runs a bcrypt comparison. An empty hashedPassword
// never matches.
func ComparePasswords(hashedPassword string, plainPassword string) error {
	if hashedPassword == "" {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(plainPassword))
		return bcrypt.ErrMismatchedHashAndPassword
	}
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

// GenerateSessionID returns an opaque, unguessable session key.
func GenerateSessionID() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

package db_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"wanderly/internal/models/response_models"
)

// User is one document in the users collection. Saved itineraries live inside
// it as an append-only array.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	GoogleID     string             `bson:"googleId,omitempty"`
	DisplayName  string             `bson:"displayName"`
	Email        string             `bson:"email"`
	Photo        string             `bson:"photo,omitempty"`
	PasswordHash string             `bson:"passwordHash,omitempty"`
	Itineraries  []StoredItinerary  `bson:"itineraries,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

func (u *User) ToResponse() *response_models.AccountResponse {
	return &response_models.AccountResponse{
		ID:          u.ID.Hex(),
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Photo:       u.Photo,
		HasGoogle:   u.GoogleID != "",
		HasPassword: u.PasswordHash != "",
		CreatedAt:   u.CreatedAt.Unix(),
	}
}

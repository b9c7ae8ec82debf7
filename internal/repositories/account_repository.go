package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"wanderly/internal/models/db_models"
	"wanderly/pkg/utils"
)

const UsersCollection = "users"

type AccountRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindById(ctx context.Context, id string) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*db_models.User, error)
	LinkGoogleID(ctx context.Context, id string, profile utils.GoogleProfile) error
	AppendItinerary(ctx context.Context, id string, itinerary db_models.StoredItinerary) error
	ListItineraries(ctx context.Context, id string) ([]db_models.StoredItinerary, error)
	EnsureIndexes(ctx context.Context) error
}

type accountRepository struct {
	users *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) AccountRepository {
	return &accountRepository{
		users: db.Collection(UsersCollection),
	}
}

func (a *accountRepository) EnsureIndexes(ctx context.Context) error {
	_, err := a.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "googleId", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	})
	return err
}

func (a *accountRepository) Insert(ctx context.Context, user *db_models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := a.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return a.findOne(ctx, bson.M{"_id": oid})
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return a.findOne(ctx, bson.M{"email": email})
}

func (a *accountRepository) FindByGoogleID(ctx context.Context, googleID string) (*db_models.User, error) {
	return a.findOne(ctx, bson.M{"googleId": googleID})
}

func (a *accountRepository) findOne(ctx context.Context, filter bson.M) (*db_models.User, error) {
	var user db_models.User
	// saved itineraries can be large; callers that need them use ListItineraries
	opts := options.FindOne().SetProjection(bson.M{"itineraries": 0})
	err := a.users.FindOne(ctx, filter, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (a *accountRepository) LinkGoogleID(ctx context.Context, id string, profile utils.GoogleProfile) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrUserNotFound
	}

	set := bson.M{"googleId": profile.ID}
	if profile.Photo != "" {
		set["photo"] = profile.Photo
	}
	res, err := a.users.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrUserNotFound
	}
	return nil
}

// AppendItinerary pushes a snapshot onto the user's saved list. Existing
// entries are never rewritten.
func (a *accountRepository) AppendItinerary(ctx context.Context, id string, itinerary db_models.StoredItinerary) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrUserNotFound
	}

	res, err := a.users.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"itineraries": itinerary}},
	)
	if err != nil {
		return fmt.Errorf("push itinerary: %w", err)
	}
	if res.MatchedCount == 0 {
		return utils.ErrUserNotFound
	}
	return nil
}

func (a *accountRepository) ListItineraries(ctx context.Context, id string) ([]db_models.StoredItinerary, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}

	var user db_models.User
	opts := options.FindOne().SetProjection(bson.M{"itineraries": 1})
	if err := a.users.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.ErrUserNotFound
		}
		return nil, err
	}
	if user.Itineraries == nil {
		return []db_models.StoredItinerary{}, nil
	}
	return user.Itineraries, nil
}

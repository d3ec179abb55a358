package db

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"courtroom/apperrors"
	"courtroom/models"
)

// ProfileStore wraps the user_profiles collection. It is safe for concurrent
// use; the driver owns the connection pool.
type ProfileStore struct {
	collection *mongo.Collection
}

func NewProfileStore(database *mongo.Database) *ProfileStore {
	return &ProfileStore{collection: database.Collection("user_profiles")}
}

// EnsureIndexes creates the unique username index that backs the
// duplicate-insert detection in Login.
func (s *ProfileStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}
	return nil
}

// LoginResult carries the greeting and the profile as it stands after login.
type LoginResult struct {
	Message string             `json:"message"`
	User    models.UserProfile `json:"user"`
}

// Login looks up a profile by exact username, creating it on first sight.
// For an existing profile only difficulty and avatar are mutable, and only
// the supplied fields that actually differ are written back; the update is a
// single document operation. A duplicate-insert race returns ErrConflict.
func (s *ProfileStore) Login(ctx context.Context, username, difficulty string, avatar *int) (*LoginResult, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required: %w", apperrors.ErrValidation)
	}

	var user models.UserProfile
	err := s.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == nil {
		return s.welcomeBack(ctx, user, difficulty, avatar)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("profile lookup failed: %w: %w", apperrors.ErrUpstream, err)
	}

	return s.createProfile(ctx, username, difficulty, avatar)
}

func (s *ProfileStore) welcomeBack(ctx context.Context, user models.UserProfile, difficulty string, avatar *int) (*LoginResult, error) {
	changes := bson.M{}
	if difficulty != "" && difficulty != user.Difficulty {
		changes["difficulty"] = difficulty
		user.Difficulty = difficulty
	}
	if avatar != nil {
		if av := strconv.Itoa(*avatar); av != user.Avatar {
			changes["avatar"] = av
			user.Avatar = av
		}
	}

	if len(changes) > 0 {
		_, err := s.collection.UpdateOne(ctx, bson.M{"username": user.Username}, bson.M{"$set": changes})
		if err != nil {
			return nil, fmt.Errorf("profile update failed: %w: %w", apperrors.ErrUpstream, err)
		}
	}

	return &LoginResult{
		Message: fmt.Sprintf("Welcome back, %s.", user.Username),
		User:    user,
	}, nil
}

func (s *ProfileStore) createProfile(ctx context.Context, username, difficulty string, avatar *int) (*LoginResult, error) {
	user := models.UserProfile{
		Username:   username,
		Difficulty: difficulty,
		Avatar:     models.DefaultAvatar,
		Level:      0,
	}
	if user.Difficulty == "" {
		user.Difficulty = models.DifficultyEasy
	}
	if avatar != nil {
		user.Avatar = strconv.Itoa(*avatar)
	}

	result, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("username %q: %w", username, apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("profile insert failed: %w: %w", apperrors.ErrUpstream, err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}

	return &LoginResult{
		Message: fmt.Sprintf("Welcome, %s.", username),
		User:    user,
	}, nil
}

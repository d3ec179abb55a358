package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserProfile defines a debate-practice user. Avatar is stored as a string
// because a profile created without an explicit avatar gets the literal
// "Default" marker; explicit avatars are the decimal form of the small
// integer ids the frontend uses (1..3).
type UserProfile struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username   string             `bson:"username" json:"username"`
	Difficulty string             `bson:"difficulty" json:"difficulty"`
	Avatar     string             `bson:"avatar" json:"avatar"`
	Level      int                `bson:"level" json:"level"`
}

// Difficulty tiers selecting the AI opponent's persona strength.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// DefaultAvatar marks a profile created without an explicit avatar choice.
const DefaultAvatar = "Default"

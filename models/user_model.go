package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is one document per registered account. The password is stored and
// compared as plain text, matching the existing stored credentials.
type User struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	Email        string             `json:"email" bson:"email"`
	Phone        string             `json:"phone" bson:"phone"`
	Password     string             `json:"password" bson:"password"`
	FavoriteNews []Favorite         `json:"favoriteNews" bson:"favoriteNews"`
}

// Favorite is an embedded bookmark. The url is the entry's identity key;
// the description is a snapshot of the article at bookmark time.
type Favorite struct {
	URL         string `json:"url" bson:"url"`
	Description string `json:"description" bson:"description"`
}

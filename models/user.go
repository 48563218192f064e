package models

import "time"

// User is an end-user account that creates bookings.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfilePic   string    `bson:"profile_pic,omitempty" json:"profilePic,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

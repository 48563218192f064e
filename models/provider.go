package models

import "time"

// ServiceRef links a provider account to its single service registration.
// Set exactly once at registration time and immutable thereafter.
type ServiceRef struct {
	Type Vertical `bson:"type" json:"type"`
	ID   string   `bson:"id" json:"id"`
}

// ServiceProvider is an account owning at most one service registration.
type ServiceProvider struct {
	ID           string      `bson:"id" json:"id"`
	Email        string      `bson:"email" json:"email"`
	Password     string      `bson:"-" json:"password,omitempty"`
	PasswordHash string      `bson:"password_hash" json:"-"`
	TokenHash    string      `bson:"token_hash,omitempty" json:"-"`
	Service      *ServiceRef `bson:"service,omitempty" json:"service,omitempty"`
	Verified     bool        `bson:"verified" json:"verified"`
	CreatedAt    time.Time   `bson:"created_at" json:"createdAt"`
}

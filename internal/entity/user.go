package entity

import "time"

// User is an account created through signup. The password hash never leaves
// the server.
type User struct {
	ID           string    `json:"uid" bson:"id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time `json:"created_at" bson:"createdAt"`
}

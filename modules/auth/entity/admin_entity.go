package entity

import "time"

// Admin is a principal allowed through the admin gate. Password holds the
// hex-encoded sha256 hash, never the plaintext.
type Admin struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

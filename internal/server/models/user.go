package models

import "time"

// User is a registered shopper. The password never appears here: Salt and
// Verifier hold the argon2id-derived verification material.
type User struct {
	ID        string
	Name      string
	Email     string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}

// Package models contains persistence-level types shared by repositories
// and services.
package models

import "time"

// Account is a registered user. The credential hash is never serialized.
type Account struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	CredentialHash string    `json:"-"`
	CreatedAt      time.Time `json:"-"`
}

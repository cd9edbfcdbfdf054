// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the persisted account record stored in the "users" table.
// It carries the password digest and therefore must never leave the
// service layer as-is: callers receive a [PublicUser] instead.
type User struct {
	// UserID is the opaque unique identifier assigned by the storage layer
	// when the record is created.
	UserID string `json:"id"`

	// Username is the unique, human-chosen login key.
	Username string `json:"username"`

	// Email is the contact address given at registration. It is not used
	// for login.
	Email string `json:"email"`

	// PasswordDigest is the encoded one-way digest of the password.
	// It is never the plaintext and is never serialized.
	PasswordDigest string `json:"-"`

	// CreatedAt is set once when the record is created.
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the caller-facing projection of u without the digest.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUser is the only user shape returned across the service boundary.
// It has no digest field, so a digest cannot leak through it.
type PublicUser struct {
	UserID    string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

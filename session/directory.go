/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package session

import (
	"context"
	"strings"

	"github.com/suparena/recordstore/storagemodels"
)

// Field names on user records.
const (
	FieldEmail    = "email"
	FieldFullName = "full_name"
	FieldRole     = "role"
)

// Directory is the static list of dashboard users.
type Directory struct {
	users []storagemodels.Record
}

// NewDirectory creates a directory over users. The first user is the default.
func NewDirectory(users []storagemodels.Record) *Directory {
	copied := make([]storagemodels.Record, len(users))
	for i, u := range users {
		copied[i] = u.Clone()
	}
	return &Directory{users: copied}
}

// DefaultDirectory returns the four built-in users.
func DefaultDirectory() *Directory {
	return NewDirectory(defaultUsers)
}

// List returns every user.
func (d *Directory) List(ctx context.Context) ([]storagemodels.Record, error) {
	out := make([]storagemodels.Record, len(d.users))
	for i, u := range d.users {
		out[i] = u.Clone()
	}
	return out, nil
}

// FindByEmail returns the user with the given email, compared
// case-insensitively, or nil if there is none.
func (d *Directory) FindByEmail(email string) storagemodels.Record {
	for _, u := range d.users {
		if addr, ok := u[FieldEmail].(string); ok && strings.EqualFold(addr, strings.TrimSpace(email)) {
			return u.Clone()
		}
	}
	return nil
}

// Default returns the user a new session starts as, or nil for an empty
// directory.
func (d *Directory) Default() storagemodels.Record {
	if len(d.users) == 0 {
		return nil
	}
	return d.users[0].Clone()
}

var defaultUsers = []storagemodels.Record{
	{
		"id":           "user-1",
		"email":        "admin@carenetwork.example",
		"full_name":    "Jordan Avery",
		"role":         "admin",
		"created_date": "2024-09-01T12:00:00.000Z",
		"updated_date": "2024-09-01T12:00:00.000Z",
	},
	{
		"id":           "user-2",
		"email":        "billing@carenetwork.example",
		"full_name":    "Priya Natarajan",
		"role":         "biller",
		"created_date": "2024-09-01T12:00:00.000Z",
		"updated_date": "2024-09-01T12:00:00.000Z",
	},
	{
		"id":           "user-3",
		"email":        "intake@carenetwork.example",
		"full_name":    "Marcus Bell",
		"role":         "coordinator",
		"created_date": "2024-09-02T12:00:00.000Z",
		"updated_date": "2024-09-02T12:00:00.000Z",
	},
	{
		"id":           "user-4",
		"email":        "dr.okafor@carenetwork.example",
		"full_name":    "Dr. Ngozi Okafor",
		"role":         "physician",
		"created_date": "2024-09-03T12:00:00.000Z",
		"updated_date": "2024-09-03T12:00:00.000Z",
	},
}

// ABOUTME: Shared scan/bind helpers for nullable foreign keys and dates
// ABOUTME: Converts between sql null types and pointer fields on models
package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// uuidStr renders an optional UUID as a nullable TEXT bind value.
func uuidStr(u *uuid.UUID) *string {
	if u == nil {
		return nil
	}
	s := u.String()
	return &s
}

// uuidPtr parses a nullable TEXT column back into an optional UUID.
// Unparseable values are treated as absent.
func uuidPtr(ns sql.NullString) *uuid.UUID {
	if !ns.Valid {
		return nil
	}
	id, err := uuid.Parse(ns.String)
	if err != nil {
		return nil
	}
	return &id
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

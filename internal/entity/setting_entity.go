package entity

import (
	"time"

	"github.com/google/uuid"
)

// Setting is one admin-configured key/value row, grouped per concern
// (e.g. group "payment.stripe" holds that gateway's credential bundle).
type Setting struct {
	Id        uuid.UUID
	Group     string
	Key       string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

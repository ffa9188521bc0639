package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidResumeIndex = errors.New("resume index must not be negative")
	ErrUnknownTab         = errors.New("unknown tab")
)

// TabState is the persisted part of a tab's feed state.
type TabState struct {
	TabID       string    `db:"tab_id" json:"tab_id"`
	ResumeIndex int       `db:"resume_index" json:"resume_index"`
	ViewedCount int       `db:"viewed_count" json:"viewed_count"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

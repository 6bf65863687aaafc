package models

import "time"

// SaveCode is the 4-digit code grouping a set of characters. The engine
// treats it purely as an opaque partition key.
type SaveCode struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Code      string    `json:"code" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSaveCodeRequest is the payload for registering a save code.
type CreateSaveCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// SaveCodeResponse returns the stored code together with a session token
// scoping later character requests to it.
type SaveCodeResponse struct {
	SaveCode *SaveCode `json:"save_code"`
	Token    string    `json:"token,omitempty"`
}

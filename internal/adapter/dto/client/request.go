package client

import "time"

// CreateClientRequest represents the request to create a single client record
type CreateClientRequest struct {
	Name           string    `json:"name" validate:"required,min=1,max=255"`
	Email          string    `json:"email" validate:"required,email"`
	Phone          *string   `json:"phone,omitempty" validate:"omitempty,max=50"`
	AssignedSeller *string   `json:"assigned_seller,omitempty" validate:"omitempty,max=255"`
	MeetingDate    time.Time `json:"meeting_date" validate:"required"`
	Closed         bool      `json:"closed"`
	Transcription  string    `json:"transcription" validate:"required,min=1"`
}

// UpdateClientRequest represents the request to update a client record
type UpdateClientRequest struct {
	Name           *string    `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Email          *string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone          *string    `json:"phone,omitempty" validate:"omitempty,max=50"`
	AssignedSeller *string    `json:"assigned_seller,omitempty" validate:"omitempty,max=255"`
	MeetingDate    *time.Time `json:"meeting_date,omitempty"`
	Closed         *bool      `json:"closed,omitempty"`
	Transcription  *string    `json:"transcription,omitempty" validate:"omitempty,min=1"`
}

// ListClientsRequest represents query parameters for listing client records
type ListClientsRequest struct {
	Search    string  `query:"search"`
	Processed *bool   `query:"processed"`
	Closed    *bool   `query:"closed"`
	Industry  *string `query:"industry"`
	Page      int     `query:"page" validate:"omitempty,min=1"`
	PageSize  int     `query:"page_size" validate:"omitempty,min=1,max=200"`
}

// ProcessPendingRequest represents the request to categorize pending records
type ProcessPendingRequest struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=500"`
}

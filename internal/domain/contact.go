package domain

import (
	"context"
	"strings"
)

// ContactRequest represents a contact form submission. No binding constraints
// are declared here on purpose: absent fields arrive as empty strings and the
// usecase validates everything server-side after trimming, so the endpoint
// never trusts whatever checks the frontend ran.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubjectCategories is the fixed set of categories offered by the contact
// form's subject selector. The subject field itself accepts free text.
var SubjectCategories = []string{
	"web-development",
	"mobile-application",
	"ai-ml",
	"consultation",
	"other",
}

// ValidationError aggregates every failed field check from one submission.
// All checks run; failures accumulate instead of short-circuiting, so the
// caller sees the full list at once.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and relays it by email.
	// It returns *ValidationError for input failures, email.ErrNotConfigured
	// when SMTP credentials are absent, or the transport error as-is.
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}

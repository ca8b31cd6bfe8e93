package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// contactInput mirrors ContactRequest with the server-side contract applied
// to the trimmed values. Field order matters: the validator reports failures
// in struct order, which fixes the order of the aggregated error messages.
type contactInput struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,contact_email"`
	Subject string `validate:"required"`
	Message string `validate:"required,min=10"`
}

type contactUsecase struct {
	mailer   email.Service
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase. The validator instance
// must have the custom validators from pkg/validation registered.
func NewContactUsecase(mailer email.Service, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		mailer:   mailer,
		validate: validate,
	}
}

// SendContactMessage trims and validates the submission, then relays it as a
// transactional email. Validation runs over every field before anything is
// sent so the caller gets the complete failure list in one pass.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	input := contactInput{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}

	if err := uc.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &domain.ValidationError{Messages: validation.ContactMessages(verrs)}
		}
		return err
	}

	// Fail before any network I/O when the mail account is not set up
	if !uc.mailer.IsConfigured() {
		return email.ErrNotConfigured
	}

	data := email.ContactEmailData{
		SenderName:  input.Name,
		SenderEmail: input.Email,
		Subject:     input.Subject,
		Message:     input.Message,
		SubmittedAt: time.Now(),
	}

	return uc.mailer.SendContactEmail(ctx, data)
}

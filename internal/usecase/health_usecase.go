package usecase

import (
	"context"

	"portfolio-backend/pkg/email"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	mailer email.Service
}

func NewHealthUsecase(mailer email.Service) HealthUsecase {
	return &healthUsecase{mailer: mailer}
}

// Check reports liveness plus whether the contact form can actually deliver,
// so an unconfigured deployment is visible before the first submission fails.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	contactForm := "ready"
	if !u.mailer.IsConfigured() {
		contactForm = "unconfigured"
	}
	return map[string]string{
		"status":       "ok",
		"contact_form": contactForm,
	}
}

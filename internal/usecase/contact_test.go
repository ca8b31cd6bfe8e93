package usecase_test

import (
	"context"
	"errors"
	"testing"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMailer stands in for the SMTP service
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendContactEmail(ctx context.Context, data email.ContactEmailData) error {
	return m.Called(ctx, data).Error(0)
}

func (m *MockMailer) IsConfigured() bool {
	return m.Called().Bool(0)
}

func newContactUC(mailer *MockMailer) domain.ContactUsecase {
	validate := validator.New()
	validation.RegisterValidators(validate)
	return usecase.NewContactUsecase(mailer, validate)
}

func validRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "John Doe",
		Email:   "john@example.com",
		Subject: "web-development",
		Message: "I would like to discuss a new project.",
	}
}

func TestContactValidationRequiredFields(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*domain.ContactRequest)
		message string
	}{
		{"missing name", func(r *domain.ContactRequest) { r.Name = "" }, "Name is required"},
		{"whitespace name", func(r *domain.ContactRequest) { r.Name = "   " }, "Name is required"},
		{"missing email", func(r *domain.ContactRequest) { r.Email = "" }, "Email is required"},
		{"missing subject", func(r *domain.ContactRequest) { r.Subject = "\t " }, "Subject is required"},
		{"missing message", func(r *domain.ContactRequest) { r.Message = "" }, "Message is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mailer := new(MockMailer)
			uc := newContactUC(mailer)

			req := validRequest()
			tc.mutate(req)

			err := uc.SendContactMessage(context.Background(), req)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
			// No dispatch on invalid input
			mailer.AssertNotCalled(t, "SendContactEmail", mock.Anything, mock.Anything)
		})
	}
}

func TestContactValidationEmailFormat(t *testing.T) {
	invalid := []string{"no-at-sign.com", "missing@dotcom", "white space@mail.com", "double@@example.com"}
	for _, addr := range invalid {
		t.Run("rejects "+addr, func(t *testing.T) {
			uc := newContactUC(new(MockMailer))
			req := validRequest()
			req.Email = addr
			err := uc.SendContactMessage(context.Background(), req)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "Invalid email format")
		})
	}

	valid := []string{"a@b.c", "john.doe+tag@sub.example.co.uk"}
	for _, addr := range valid {
		t.Run("accepts "+addr, func(t *testing.T) {
			mailer := new(MockMailer)
			mailer.On("IsConfigured").Return(true)
			mailer.On("SendContactEmail", mock.Anything, mock.Anything).Return(nil)
			uc := newContactUC(mailer)
			req := validRequest()
			req.Email = addr
			assert.NoError(t, uc.SendContactMessage(context.Background(), req))
		})
	}
}

func TestContactValidationMessageLength(t *testing.T) {
	t.Run("nine characters fails with echoed count", func(t *testing.T) {
		uc := newContactUC(new(MockMailer))
		req := validRequest()
		req.Message = "123456789"
		err := uc.SendContactMessage(context.Background(), req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Message must be at least 10 characters long (currently 9 characters)")
	})

	t.Run("length measured after trimming", func(t *testing.T) {
		uc := newContactUC(new(MockMailer))
		req := validRequest()
		req.Message = "   short   "
		err := uc.SendContactMessage(context.Background(), req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "(currently 5 characters)")
	})

	t.Run("exactly ten characters passes", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("IsConfigured").Return(true)
		mailer.On("SendContactEmail", mock.Anything, mock.Anything).Return(nil)
		uc := newContactUC(mailer)
		req := validRequest()
		req.Message = "1234567890"
		assert.NoError(t, uc.SendContactMessage(context.Background(), req))
	})
}

func TestContactValidationAggregatesAllFailures(t *testing.T) {
	uc := newContactUC(new(MockMailer))
	req := &domain.ContactRequest{Name: "", Email: "bad", Subject: "", Message: "short"}

	err := uc.SendContactMessage(context.Background(), req)
	assert.Error(t, err)

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t,
		"Name is required, Invalid email format, Subject is required, Message must be at least 10 characters long (currently 5 characters)",
		vErr.Error())

	// Idempotent: same input, same aggregated message
	err2 := uc.SendContactMessage(context.Background(), req)
	assert.EqualError(t, err2, vErr.Error())
}

func TestContactConfigurationMissing(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("IsConfigured").Return(false)
	uc := newContactUC(mailer)

	err := uc.SendContactMessage(context.Background(), validRequest())
	assert.ErrorIs(t, err, email.ErrNotConfigured)
	assert.EqualError(t, err, "Email configuration is missing")
	// The transport is never reached
	mailer.AssertNotCalled(t, "SendContactEmail", mock.Anything, mock.Anything)
}

func TestContactDelivery(t *testing.T) {
	t.Run("valid submission dispatches trimmed values", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("IsConfigured").Return(true)
		mailer.On("SendContactEmail", mock.Anything, mock.AnythingOfType("email.ContactEmailData")).
			Return(nil).
			Run(func(args mock.Arguments) {
				data := args.Get(1).(email.ContactEmailData)
				assert.Equal(t, "John Doe", data.SenderName)
				assert.Equal(t, "john@example.com", data.SenderEmail)
				assert.Equal(t, "web-development", data.Subject)
				assert.Equal(t, "I would like to discuss a new project.", data.Message)
				assert.False(t, data.SubmittedAt.IsZero())
			})
		uc := newContactUC(mailer)

		req := validRequest()
		req.Name = "  John Doe  "
		req.Email = "\tjohn@example.com\n"

		assert.NoError(t, uc.SendContactMessage(context.Background(), req))
		mailer.AssertExpectations(t)
	})

	t.Run("transport failure bubbles up", func(t *testing.T) {
		sendErr := errors.New("failed to send email: relay refused")
		mailer := new(MockMailer)
		mailer.On("IsConfigured").Return(true)
		mailer.On("SendContactEmail", mock.Anything, mock.Anything).Return(sendErr)
		uc := newContactUC(mailer)

		err := uc.SendContactMessage(context.Background(), validRequest())
		assert.ErrorIs(t, err, sendErr)
	})
}

package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-backend/config"
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

// stubMailer records dispatches instead of talking SMTP
type stubMailer struct {
	configured bool
	sendErr    error
	sent       []email.ContactEmailData
}

func (s *stubMailer) SendContactEmail(ctx context.Context, data email.ContactEmailData) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, data)
	return nil
}

func (s *stubMailer) IsConfigured() bool { return s.configured }

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	m.Run()
}

func testConfig() *config.Config {
	return &config.Config{
		Port:                      "8080",
		FrontendURL:               "http://localhost:3000",
		RateLimitWindowSeconds:    60,
		RateLimitContactThreshold: 1000,
		RateLimitGlobalThreshold:  100000,
		DefaultLanguage:           "en",
	}
}

func newTestRouter(mailer *stubMailer, cfg *config.Config) *gin.Engine {
	validate := validator.New()
	validation.RegisterValidators(validate)

	return v1.NewRouter(v1.RouterDeps{
		ContactUC:   usecase.NewContactUsecase(mailer, validate),
		PortfolioUC: usecase.NewPortfolioUsecase(cfg.DefaultLanguage),
		HealthUC:    usecase.NewHealthUsecase(mailer),
		Config:      cfg,
	})
}

func postContact(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSubmitContact(t *testing.T) {
	validBody := `{"name":"John Doe","email":"john@example.com","subject":"web-development","message":"I would like to discuss a new project."}`

	t.Run("valid submission returns 200", func(t *testing.T) {
		mailer := &stubMailer{configured: true}
		router := newTestRouter(mailer, testConfig())

		w := postContact(router, validBody)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Email sent successfully", decodeBody(t, w)["message"])
		assert.Len(t, mailer.sent, 1)
		assert.Equal(t, "John Doe", mailer.sent[0].SenderName)
	})

	t.Run("validation failure returns 400 with aggregated message", func(t *testing.T) {
		mailer := &stubMailer{configured: true}
		router := newTestRouter(mailer, testConfig())

		w := postContact(router, `{"name":"","email":"bad","subject":"","message":"short"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		errMsg := decodeBody(t, w)["error"]
		assert.Contains(t, errMsg, "Name is required")
		assert.Contains(t, errMsg, "Invalid email format")
		assert.Contains(t, errMsg, "Subject is required")
		assert.Contains(t, errMsg, "currently 5 characters")
		assert.Empty(t, mailer.sent)
	})

	t.Run("absent fields are treated as empty strings", func(t *testing.T) {
		router := newTestRouter(&stubMailer{configured: true}, testConfig())

		w := postContact(router, `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody(t, w)["error"], "Name is required")
	})

	t.Run("malformed JSON returns 500", func(t *testing.T) {
		router := newTestRouter(&stubMailer{configured: true}, testConfig())

		w := postContact(router, `{"name": `)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", decodeBody(t, w)["error"])
	})

	t.Run("missing configuration returns 400 before any send", func(t *testing.T) {
		mailer := &stubMailer{configured: false}
		router := newTestRouter(mailer, testConfig())

		w := postContact(router, validBody)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email configuration is missing", decodeBody(t, w)["error"])
		assert.Empty(t, mailer.sent)
	})

	t.Run("transport failure returns 400 with transport message", func(t *testing.T) {
		mailer := &stubMailer{configured: true, sendErr: errors.New("failed to send email: relay refused")}
		router := newTestRouter(mailer, testConfig())

		w := postContact(router, validBody)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody(t, w)["error"], "failed to send email")
	})
}

func TestContactRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitContactThreshold = 2
	router := newTestRouter(&stubMailer{configured: true}, cfg)

	body := `{"name":"John Doe","email":"john@example.com","subject":"other","message":"I would like to discuss a new project."}`

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		// Fixed address keeps this test's counter apart from other tests
		req.RemoteAddr = "10.9.8.7:4321"
		last = httptest.NewRecorder()
		router.ServeHTTP(last, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.NotEmpty(t, last.Header().Get("Retry-After"))
}

func TestListSubjects(t *testing.T) {
	router := newTestRouter(&stubMailer{configured: true}, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/contact/subjects", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string][]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["subjects"], "web-development")
	assert.Contains(t, body["subjects"], "other")
}

func TestHealth(t *testing.T) {
	t.Run("reports ready when mailer configured", func(t *testing.T) {
		router := newTestRouter(&stubMailer{configured: true}, testConfig())
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "ready", body["contact_form"])
	})

	t.Run("flags unconfigured contact form", func(t *testing.T) {
		router := newTestRouter(&stubMailer{configured: false}, testConfig())
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "unconfigured", decodeBody(t, w)["contact_form"])
	})
}

func TestPortfolioEndpoints(t *testing.T) {
	router := newTestRouter(&stubMailer{configured: true}, testConfig())

	t.Run("content with explicit language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/portfolio?lang=tr", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"language":"tr"`)
	})

	t.Run("unknown language falls back", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/portfolio?lang=xx", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"language":"en"`)
	})

	t.Run("languages endpoint", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/portfolio/languages", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string][]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "en", body["languages"][0])
	})
}

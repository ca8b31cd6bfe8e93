// Package contactform is the client-side counterpart of the contact endpoint:
// it owns the four field values, a submission status, and the rules around
// submitting (local pre-check, single in-flight request, auto-reset).
// Frontends embed it instead of re-implementing the submission lifecycle.
package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// Status is the form's UI state
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// DefaultResetDelay is how long the success state is shown before the form
// returns to idle
const DefaultResetDelay = 5 * time.Second

// preCheckMessage is shown by the local empty-field short-circuit. It is a
// UX nicety only; the server re-validates everything.
const preCheckMessage = "Please fill in all fields"

// Fields holds the four free-text inputs of the form
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type serverResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Option configures a Controller
type Option func(*Controller)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Controller) { c.httpc = hc }
}

// WithResetDelay changes how long success is displayed before reverting to idle
func WithResetDelay(d time.Duration) Option {
	return func(c *Controller) { c.resetDelay = d }
}

// Controller drives one contact form instance. Safe for concurrent use; at
// most one submission is in flight at a time.
type Controller struct {
	endpoint   string
	httpc      *http.Client
	resetDelay time.Duration

	mu         sync.Mutex
	fields     Fields
	status     Status
	lastError  string
	resetTimer *time.Timer
}

// New creates a controller posting to endpoint (the full URL of the contact
// route, e.g. https://api.example.com/api/contact).
func New(endpoint string, opts ...Option) *Controller {
	c := &Controller{
		endpoint:   endpoint,
		httpc:      &http.Client{Timeout: 30 * time.Second},
		resetDelay: DefaultResetDelay,
		status:     StatusIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetFields updates the form values. Editing while a terminal status is
// showing dismisses it and returns the form to idle.
func (c *Controller) SetFields(f Fields) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields = f
	if c.status == StatusSuccess || c.status == StatusError {
		c.stopResetTimerLocked()
		c.status = StatusIdle
		c.lastError = ""
	}
}

// Fields returns the current form values
func (c *Controller) Fields() Fields {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// Status returns the current form status
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// LastError returns the message to display when Status is error
func (c *Controller) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}

// Submit runs one submission attempt and returns the resulting status.
//
// While a submission is in flight, further calls return StatusLoading without
// issuing a request (double-submit guard). An empty field short-circuits to
// StatusError locally without touching the network. A successful submission
// clears the fields and reverts to idle after the reset delay. No automatic
// retry: resubmitting is the user's job.
func (c *Controller) Submit(ctx context.Context) Status {
	c.mu.Lock()
	if c.status == StatusLoading {
		c.mu.Unlock()
		return StatusLoading
	}
	snapshot := c.fields
	if snapshot.Name == "" || snapshot.Email == "" || snapshot.Subject == "" || snapshot.Message == "" {
		c.stopResetTimerLocked()
		c.status = StatusError
		c.lastError = preCheckMessage
		c.mu.Unlock()
		return StatusError
	}
	c.stopResetTimerLocked()
	c.status = StatusLoading
	c.lastError = ""
	c.mu.Unlock()

	ok, serverMsg := c.post(ctx, snapshot)

	c.mu.Lock()
	defer c.mu.Unlock()
	if ok {
		c.status = StatusSuccess
		c.lastError = ""
		c.fields = Fields{}
		c.scheduleResetLocked()
		return StatusSuccess
	}
	c.status = StatusError
	if serverMsg != "" {
		c.lastError = serverMsg
	} else {
		c.lastError = "Something went wrong. Please try again."
	}
	return StatusError
}

// post performs the single outbound request. Returns whether it succeeded
// and the server-provided error text, if any.
func (c *Controller) post(ctx context.Context, f Fields) (bool, string) {
	payload, err := json.Marshal(f)
	if err != nil {
		return false, ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return false, ""
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		// Network failure collapses into the same error state as a rejection
		return false, ""
	}
	defer resp.Body.Close()

	var body serverResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode == http.StatusOK {
		return true, ""
	}
	return false, body.Error
}

// scheduleResetLocked arms the success-to-idle timer. Caller holds mu.
func (c *Controller) scheduleResetLocked() {
	if c.resetDelay <= 0 {
		return
	}
	c.resetTimer = time.AfterFunc(c.resetDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.status == StatusSuccess {
			c.status = StatusIdle
		}
	})
}

// stopResetTimerLocked cancels a pending reset. Caller holds mu.
func (c *Controller) stopResetTimerLocked() {
	if c.resetTimer != nil {
		c.resetTimer.Stop()
		c.resetTimer = nil
	}
}

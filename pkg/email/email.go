package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"time"

	"portfolio-backend/config"
)

// ErrNotConfigured is returned before any network I/O when the SMTP account
// identity or credential is absent. It is an environment problem, not a user
// input problem, even though both travel the same error channel outward.
var ErrNotConfigured = errors.New("Email configuration is missing")

// subjectPrefix marks contact notifications in the recipient's inbox
const subjectPrefix = "Portfolio Contact: "

// Service abstracts notification delivery so usecases can be tested against
// a mock transport.
type Service interface {
	// SendContactEmail renders and dispatches the contact notification.
	// The context bounds the SMTP round-trip.
	SendContactEmail(ctx context.Context, data ContactEmailData) error
	// IsConfigured reports whether the account identity and credential are set.
	IsConfigured() bool
}

// ContactEmailData holds the pre-trimmed values embedded in the notification
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
	// SubmittedAt is stamped by the service when zero
	SubmittedAt time.Time
}

// SMTPService sends contact notifications through an SMTP relay
type SMTPService struct {
	host     string
	port     string
	username string
	password string
	toEmail  string
	timeout  time.Duration
}

// NewSMTPService creates the mail service from SMTP configuration. The login
// account doubles as the From address; the notification recipient defaults to
// the same account in config.
func NewSMTPService(cfg *config.Config) *SMTPService {
	return &SMTPService{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		toEmail:  cfg.ContactEmailTo,
		timeout:  cfg.SMTPTimeout,
	}
}

// contactEmailTemplate is the HTML body of the contact notification.
// The message box keeps the submitter's line breaks via pre-wrap.
var contactEmailTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Portfolio Contact</title>
    <style>
        body { font-family: 'Segoe UI', Arial, sans-serif; line-height: 1.6; color: #2d2d2d; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a1a2e; color: #e4e4e4; padding: 24px; text-align: center; border-radius: 6px 6px 0 0; }
        .content { padding: 20px; background: #f7f7fb; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #6c63ff; margin-top: 10px; white-space: pre-wrap; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Portfolio Contact</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{.SenderName}} (<a href="mailto:{{.SenderEmail}}">{{.SenderEmail}}</a>)</div>
            </div>
            <div class="field">
                <div class="label">Subject:</div>
                <div class="value">{{.Subject}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
            <div class="field">
                <div class="label">Submitted:</div>
                <div class="value">{{.SubmittedAt.Format "Monday, January 2, 2006 at 15:04 MST"}}</div>
            </div>
        </div>
        <div class="footer">
            <p>Sent from the portfolio contact form.</p>
            <p>Reply to this email to answer {{.SenderName}} directly.</p>
        </div>
    </div>
</body>
</html>`))

// SendContactEmail renders the notification and dispatches it once. No retry,
// no queue; a failed send is reported to the caller and the submitter retries
// by resubmitting the form.
func (s *SMTPService) SendContactEmail(ctx context.Context, data ContactEmailData) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	if data.SubmittedAt.IsZero() {
		data.SubmittedAt = time.Now()
	}

	var body bytes.Buffer
	if err := contactEmailTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := subjectPrefix + data.Subject

	// Reply-To points at the submitter so a plain reply answers them
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.username,
		s.toEmail,
		data.SenderEmail,
		subject,
		body.String(),
	))

	if err := s.send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// send performs the SMTP conversation with an explicit deadline so a stalled
// relay cannot hang the request. net/smtp.SendMail offers no timeout, hence
// the manual client.
func (s *SMTPService) send(ctx context.Context, msg []byte) error {
	addr := net.JoinHostPort(s.host, s.port)

	dialer := net.Dialer{Timeout: s.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	if s.timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(s.timeout))
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return err
		}
	}
	if ok, _ := client.Extension("AUTH"); ok {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(s.username); err != nil {
		return err
	}
	if err := client.Rcpt(s.toEmail); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

// IsConfigured checks that both the account identity and credential are set
func (s *SMTPService) IsConfigured() bool {
	return s.username != "" && s.password != ""
}

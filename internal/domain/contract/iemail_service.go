package contract

import "context"

// IEmailService sends plain-text mail. Used for best-effort admin
// notifications; failures are logged, never surfaced to members.
type IEmailService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// Package mailer sends transactional email through the Brevo API.
// Delivery is best effort for everything except the contact relay: a
// failed or slow send must never block the operation that triggered it.
package mailer

import (
	"context"
	"log"
	"time"
)

// Mailer is the notification transport. Implementations must honor the
// context deadline.
type Mailer interface {
	SendOTP(ctx context.Context, email, code string) error
	SendStatusChange(ctx context.Context, email, fullName, status string) error
	SendPasswordReset(ctx context.Context, email, link string) error
	SendContact(ctx context.Context, name, fromEmail, message string) error
}

// SendBounded races a send attempt against a hard ceiling. On timeout or
// failure the error is logged and swallowed so the primary flow proceeds;
// the goroutine is bounded by the cancelled context rather than left to
// run free.
func SendBounded(timeout time.Duration, what string, send func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- send(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("mailer: %s failed, continuing: %v", what, err)
		}
	case <-ctx.Done():
		log.Printf("mailer: %s timed out after %s, continuing", what, timeout)
	}
}

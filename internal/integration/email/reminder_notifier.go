// Package email delivers reminder notifications via Resend.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/khazna-app/backend/internal/application/adapter"
)

// ResendReminderNotifier implements the adapter.ReminderNotifier interface
// using Resend.
type ResendReminderNotifier struct {
	client    *resend.Client
	apiKey    string
	fromName  string
	fromEmail string
	toEmail   string
}

// NewResendReminderNotifier creates a new Resend-backed reminder notifier.
func NewResendReminderNotifier(apiKey, fromName, fromEmail, toEmail string) *ResendReminderNotifier {
	return &ResendReminderNotifier{
		client:    resend.NewClient(apiKey),
		apiKey:    apiKey,
		fromName:  fromName,
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
}

// IsAvailable checks if the notifier is properly configured.
func (n *ResendReminderNotifier) IsAvailable() bool {
	return n.apiKey != "" && n.toEmail != ""
}

// Notify sends the catch-up notification email.
func (n *ResendReminderNotifier) Notify(ctx context.Context, notification adapter.ReminderNotification) error {
	if !n.IsAvailable() {
		return fmt.Errorf("reminder notifier is not configured")
	}
	if len(notification.Generated) == 0 && len(notification.Upcoming) == 0 {
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", n.fromName, n.fromEmail),
		To:      []string{n.toEmail},
		Subject: "تنبيه المصروفات الدورية",
		Text:    buildReminderBody(notification),
	}

	if _, err := n.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}
	return nil
}

// buildReminderBody renders the plain-text reminder message.
func buildReminderBody(notification adapter.ReminderNotification) string {
	var sb strings.Builder

	if len(notification.Generated) > 0 {
		sb.WriteString("تم تسجيل المصروفات الدورية التالية:\n")
		for _, tx := range notification.Generated {
			sb.WriteString(fmt.Sprintf("- %s: %s %s بتاريخ %s\n",
				tx.Description, tx.Amount, tx.Currency, tx.Date.Format("2006-01-02")))
		}
	}

	if len(notification.Upcoming) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("مصروفات مستحقة غدا:\n")
		for _, expense := range notification.Upcoming {
			sb.WriteString(fmt.Sprintf("- %s: %s %s\n",
				expense.Description, expense.Amount, expense.Currency))
		}
	}

	return sb.String()
}

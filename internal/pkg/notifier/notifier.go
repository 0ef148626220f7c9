package notifier

import (
	"fmt"
	"log"

	"github.com/stashboxhq/stashpay/app/models"
	"github.com/stashboxhq/stashpay/internal/pkg/mail"
)

// Notifier sends transactional mail after a settlement has committed.
// Sending is best-effort: the webhook has already been acknowledged to the
// provider and must not be retried because mail delivery failed, so every
// failure here is logged and swallowed.
type Notifier struct{}

func New() *Notifier {
	return &Notifier{}
}

// PaymentConfirmation mails the account owner that their storage purchase
// went through. It returns immediately; the send runs in the background.
func (n *Notifier) PaymentConfirmation(account *models.Account, amountMinor int64, planSize string) {
	if account == nil || account.Email == "" {
		log.Printf("payment confirmation skipped: no recipient")
		return
	}

	go func() {
		body, err := mail.RenderMail("payment_confirmation", map[string]interface{}{
			"Name":     account.Name,
			"Amount":   FormatAmount(amountMinor),
			"PlanSize": planSize,
		})
		if err != nil {
			log.Printf("payment confirmation render failed for %s: %v", account.Email, err)
			return
		}

		subject := fmt.Sprintf("Your %s storage upgrade is active", planSize)
		if err := mail.SendMail(account.Email, subject, body); err != nil {
			log.Printf("payment confirmation mail to %s failed: %v", account.Email, err)
		}
	}()
}

// FormatAmount renders an amount in minor currency units as a decimal
// string, e.g. 1000 -> "10.00", -1050 -> "-10.50".
func FormatAmount(amountMinor int64) string {
	sign := ""
	if amountMinor < 0 {
		sign = "-"
		amountMinor = -amountMinor
	}
	return fmt.Sprintf("%s%d.%02d", sign, amountMinor/100, amountMinor%100)
}

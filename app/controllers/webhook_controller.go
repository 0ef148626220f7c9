package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stashboxhq/stashpay/app/models"
	"github.com/stashboxhq/stashpay/internal/pkg/env"
	"github.com/stashboxhq/stashpay/internal/pkg/settlement"
)

const settleTimeout = 15 * time.Second

// PaymentSettler is the settlement service surface the webhook handler needs.
type PaymentSettler interface {
	Settle(ctx context.Context, event settlement.PaymentEvent) (settlement.SettlementResult, error)
}

// ConfirmationSender sends the best-effort confirmation mail after settlement.
type ConfirmationSender interface {
	PaymentConfirmation(account *models.Account, amountMinor int64, planSize string)
}

var (
	webhookSettler  PaymentSettler
	webhookNotifier ConfirmationSender
)

// InitializeWebhookController wires the settlement service and notifier into
// the webhook handler. Called once during router installation.
func InitializeWebhookController(settler PaymentSettler, sender ConfirmationSender) {
	webhookSettler = settler
	webhookNotifier = sender
}

// HandleStripeWebhook processes provider payment notifications.
//
// Signature verification over the raw body is the authentication mechanism
// for this endpoint; no store access happens before it passes. Status codes:
// 200 handled/ignored/duplicate, 400 bad signature or payload, 404 unknown
// payment record, 500 store failure (provider redelivers).
func HandleStripeWebhook(c *fiber.Ctx) error {
	rawBody := append([]byte(nil), c.BodyRaw()...)
	signature := c.Get("Stripe-Signature")
	secret := env.GetEnv("STRIPE_WEBHOOK_SECRET", "")

	event, err := settlement.VerifyWebhook(rawBody, signature, secret)
	if err != nil {
		if errors.Is(err, settlement.ErrMalformedPayload) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid_payload"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid_signature"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), settleTimeout)
	defer cancel()

	result, err := webhookSettler.Settle(ctx, event)
	if err != nil {
		if errors.Is(err, settlement.ErrPaymentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown_payment"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "settlement_failed"})
	}

	switch result.Status {
	case settlement.StatusSettled:
		webhookNotifier.PaymentConfirmation(result.Account, result.Payment.AmountMinor, result.Payment.PlanSize)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
	case settlement.StatusAlreadySettled:
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true, "duplicate": true})
	default:
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true, "ignored": true})
	}
}

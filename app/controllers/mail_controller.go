package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stashboxhq/stashpay/internal/pkg/mail"
	"github.com/stashboxhq/stashpay/internal/pkg/notifier"
)

// Operational test routes for checking SMTP and template configuration
// against a real mailbox. Not part of the webhook flow.

func HandleTestEmail(c *fiber.Ctx) error {
	to := c.Query("to")
	if to == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing_recipient"})
	}

	body, err := mail.RenderMail("payment_confirmation", map[string]interface{}{
		"Name":     "Test User",
		"Amount":   notifier.FormatAmount(1000),
		"PlanSize": "1GB",
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "render_failed"})
	}

	if err := mail.SendMail(to, "StashPay test email", body); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "send_failed"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true, "to": to})
}

func HandleTestPlainEmail(c *fiber.Ctx) error {
	to := c.Query("to")
	if to == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing_recipient"})
	}

	if err := mail.SendPlainMail(to, "StashPay test email", "This is a plain-text test email from StashPay."); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "send_failed"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true, "to": to})
}

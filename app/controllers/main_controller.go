package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stashboxhq/stashpay/internal/pkg/env"
)

func HandleIndex(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"service": "stashpay",
		"status":  "ok",
		"env":     env.GetEnv("APP_ENV", "prod"),
	})
}

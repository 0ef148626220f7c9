package router

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redisstorage "github.com/gofiber/storage/redis"
	"github.com/stashboxhq/stashpay/app/controllers"
	"github.com/stashboxhq/stashpay/internal/pkg/database"
	"github.com/stashboxhq/stashpay/internal/pkg/env"
	"github.com/stashboxhq/stashpay/internal/pkg/notifier"
	"github.com/stashboxhq/stashpay/internal/pkg/settlement"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// Initialize webhook controller with the settlement service and notifier
	controllers.InitializeWebhookController(
		settlement.NewServiceFromDB(database.GetDB()),
		notifier.New(),
	)

	app.Get("/", controllers.HandleIndex)

	webhooks := app.Group("/webhook", limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		Storage:    newLimiterStorage(),
	}))
	webhooks.Post("/stripe", controllers.HandleStripeWebhook)

	h.registerMailTestRoutes(app)
}

// registerMailTestRoutes installs the operational mail test routes. They send
// real mail to caller-chosen addresses, so they only exist in dev
// environments.
func (h HttpRouter) registerMailTestRoutes(app *fiber.App) {
	if !env.IsDev() {
		return
	}
	app.Post("/test-email", controllers.HandleTestEmail)
	app.Post("/test-plain-email", controllers.HandleTestPlainEmail)
}

func newLimiterStorage() *redisstorage.Storage {
	port, err := strconv.Atoi(env.GetEnv("CACHE_PORT", "6379"))
	if err != nil {
		port = 6379
	}
	return redisstorage.New(redisstorage.Config{
		Host: env.GetEnv("CACHE_HOST", "localhost"),
		Port: port,
	})
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

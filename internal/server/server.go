// Package server assembles the HTTP application and runs it.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/errs"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/services"
)

// Deps is everything the application needs, created once at startup.
type Deps struct {
	Config    *config.Config
	Store     *database.Store
	Publisher services.EventPublisher
	Log       zerolog.Logger
}

// New builds the fiber application: middleware chain, static assets, then
// the API routes.
func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "storefront",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(d.Log),
	})

	app.Use(cors.New())
	app.Use(middleware.RequestLogger(d.Log))
	app.Use(recover.New())
	app.Use(middleware.JSONBody())
	if d.Config.StaticDir != "" {
		app.Static("/", d.Config.StaticDir)
	}

	productService := services.NewProductService(d.Store.Products, d.Log)
	enquiryService := services.NewEnquiryService(d.Store.Enquiries, d.Publisher, d.Log)

	productHandler := handlers.NewProductHandler(productService, d.Log)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryService, d.Config.StrictEnquiryFields(), d.Log)
	healthHandler := handlers.NewHealthHandler(d.Store.Driver)

	api := app.Group("/api")
	productHandler.RegisterRoutes(api)
	enquiryHandler.RegisterRoutes(api)
	healthHandler.RegisterRoutes(app)

	return app
}

// errorHandler renders any error that escapes a handler as {message, error}.
func errorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := errs.HTTPStatus(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		}
		return c.Status(status).JSON(fiber.Map{
			"message": utils.StatusMessage(status),
			"error":   err.Error(),
		})
	}
}

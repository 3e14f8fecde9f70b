package api

import (
	"errors"
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const accessLogFormat = "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n"

type AppOptions struct {
	// AccessLog receives one line per request. Defaults to stdout.
	AccessLog io.Writer
}

// NewApp wires the middleware stack and every route around handler.
func NewApp(handler *Handler, options AppOptions) *fiber.App {
	accessLog := options.AccessLog
	if accessLog == nil {
		accessLog = os.Stdout
	}

	app := fiber.New(fiber.Config{
		AppName:               "Florette",
		DisableStartupMessage: true,
		ErrorHandler:          jsonErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: accessLogFormat,
		Output: accessLog,
	}))
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)

	RegisterRoutes(app, handler)
	return app
}

func jsonErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return apiError(c, fiberErr.Code, fiberErr.Message)
	}
	return apiError(c, fiber.StatusInternalServerError, "internal server error")
}

package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Post("/password", handler.AuthRequired, handler.ChangePassword)

	symptoms := api.Group("/symptoms", handler.AuthRequired)
	symptoms.Get("/today", handler.GetTodaySymptoms)
	symptoms.Post("/today", handler.SaveTodaySymptoms)
	symptoms.Get("/history", handler.GetSymptomHistory)
	symptoms.Get("/predictions", handler.GetPredictions)
	symptoms.Get("/suggestions", handler.GetSuggestions)
	symptoms.Put("/:date", handler.SaveSymptomsForDate)
	symptoms.Delete("/:id", handler.DeleteSymptom)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

package auth

import "github.com/gofiber/fiber/v2"

func SetupAuthRoutes(app *fiber.App, accounts AccountStore) {
	h := NewHandlers(accounts)

	api := app.Group("/api/auth")
	api.Get("/check", h.CheckAPI)
	api.Post("/login", h.LoginAPI)
	api.Post("/logout", h.LogoutAPI)
}

package meetings

import (
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupMeetingsRoutes(app *fiber.App, store MeetingStore) {
	h := NewHandlers(store)

	api := app.Group("/api/meetings")

	// Public listing, no session needed.
	api.Get("/public", h.PublicMeetingsAPI)

	api.Get("/parent", auth.RequireSession, h.ParentMeetingsAPI)
	api.Get("/", auth.RequireSession, h.TeacherMeetingsAPI)
	api.Post("/", auth.RequireSession, h.CreateMeetingAPI)
	api.Patch("/", auth.RequireSession, h.UpdateMeetingAPI)
}

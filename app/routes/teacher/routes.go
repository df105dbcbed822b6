package teacher

import (
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupTeacherRoutes(app *fiber.App) {
	pages := app.Group("/teacher", auth.PortalGuard)
	pages.Get("/dashboard", ShowDashboard)
}

func ShowDashboard(c *fiber.Ctx) error {
	user := auth.SessionIdentity(c)
	return c.Render("teacher/dashboard", fiber.Map{
		"Title": "Teacher Dashboard - Parent-Teacher Portal",
		"User":  user,
	})
}

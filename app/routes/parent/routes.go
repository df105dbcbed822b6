package parent

import (
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupParentRoutes registers the parent dashboard pages. The pages are
// shells: data arrives through the meetings API so the repository stays
// the single read path.
func SetupParentRoutes(app *fiber.App) {
	pages := app.Group("/parent", auth.PortalGuard)
	pages.Get("/dashboard", ShowDashboard)
}

func ShowDashboard(c *fiber.Ctx) error {
	user := auth.SessionIdentity(c)
	return c.Render("parent/dashboard", fiber.Map{
		"Title": "Parent Dashboard - Parent-Teacher Portal",
		"User":  user,
	})
}

package home

import (
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupHomeRoutes(app *fiber.App) {
	app.Get("/", ShowHomePage)
	app.Get("/login", ShowLoginPage)
	app.Get("/meetings", ShowMeetingsPage)
}

// ShowHomePage renders the portal chooser. It doubles as the landing
// spot for every guard redirect, so it must stay reachable without a
// session.
func ShowHomePage(c *fiber.Ctx) error {
	return c.Render("home", fiber.Map{
		"Title": "Parent-Teacher Interaction Portal",
	})
}

func ShowLoginPage(c *fiber.Ctx) error {
	role := c.Query("role", "parent")

	// Already signed in: skip the form and go straight to the dashboard.
	if user, ok := auth.ReadSession(c); ok {
		return c.Redirect("/" + string(user.Role) + "/dashboard")
	}

	return c.Render("login", fiber.Map{
		"Title": "Login - Parent-Teacher Portal",
		"Role":  role,
	})
}

func ShowMeetingsPage(c *fiber.Ctx) error {
	return c.Render("meetings", fiber.Map{
		"Title": "All Meetings - Parent-Teacher Portal",
	})
}

package auth

import (
	"strings"

	"github.com/Eahtasham/Parent-Teacher-DBMS/app/models"
	"github.com/gofiber/fiber/v2"
)

// PortalGuard gates the /parent and /teacher dashboard path families.
// The portal home and login page always pass, a request without a valid
// session is bounced to the portal home, and a wrong-role request gets
// the identical bounce so a probing client cannot tell the two apart.
func PortalGuard(c *fiber.Ctx) error {
	path := c.Path()

	// Exactly-root and exactly-login bypass every check. This also keeps
	// the redirect target itself unguarded, so there is no loop.
	if path == "/" || path == "/login" {
		return c.Next()
	}

	user, ok := ReadSession(c)
	if !ok {
		return c.Redirect("/")
	}

	if strings.HasPrefix(path, "/parent") && user.Role != models.ParentRole {
		return c.Redirect("/")
	}
	if strings.HasPrefix(path, "/teacher") && user.Role != models.TeacherRole {
		return c.Redirect("/")
	}

	c.Locals("identity", user)
	return c.Next()
}

// RequireSession protects API routes. Unlike the page guard it answers
// with JSON, since fetch callers cannot follow a redirect to a page.
func RequireSession(c *fiber.Ctx) error {
	user, ok := ReadSession(c)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Not authenticated"})
	}

	c.Locals("identity", user)
	return c.Next()
}

// SessionIdentity pulls the identity a middleware stored on the request.
// It returns nil when no guard ran, which handlers treat as
// unauthenticated.
func SessionIdentity(c *fiber.Ctx) *models.Identity {
	user, _ := c.Locals("identity").(*models.Identity)
	return user
}

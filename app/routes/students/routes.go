package students

import (
	"context"
	"log"

	"github.com/Eahtasham/Parent-Teacher-DBMS/app/models"
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// StudentLister is the slice of the database layer the listing needs.
type StudentLister interface {
	ListStudentsForParent(ctx context.Context, parentID int) ([]*models.Student, error)
}

func SetupStudentsRoutes(app *fiber.App, store StudentLister) {
	app.Get("/api/students", auth.RequireSession, GetStudentsAPI(store))
}

// GetStudentsAPI lists the session parent's own children for the
// booking form. Teachers have no use for it and are turned away.
func GetStudentsAPI(store StudentLister) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := auth.SessionIdentity(c)
		if user == nil || user.Role != models.ParentRole {
			return c.Status(403).JSON(fiber.Map{"success": false, "error": "Parent account required"})
		}

		students, err := store.ListStudentsForParent(c.UserContext(), user.ID)
		if err != nil {
			log.Printf("Failed to fetch students for parent %d: %v", user.ID, err)
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch students"})
		}

		return c.JSON(fiber.Map{
			"success":  true,
			"students": students,
		})
	}
}

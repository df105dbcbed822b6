package teachers

import (
	"context"
	"log"

	"github.com/Eahtasham/Parent-Teacher-DBMS/app/models"
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// TeacherLister is the slice of the database layer the listing needs.
type TeacherLister interface {
	ListTeachers(ctx context.Context) ([]*models.Teacher, error)
}

func SetupTeachersRoutes(app *fiber.App, store TeacherLister) {
	app.Get("/api/teachers", auth.RequireSession, GetTeachersAPI(store))
}

// GetTeachersAPI lists teacher accounts so a parent can pick one while
// booking a meeting.
func GetTeachersAPI(store TeacherLister) fiber.Handler {
	return func(c *fiber.Ctx) error {
		teachers, err := store.ListTeachers(c.UserContext())
		if err != nil {
			log.Printf("Failed to fetch teachers: %v", err)
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch teachers"})
		}

		return c.JSON(fiber.Map{
			"success":  true,
			"teachers": teachers,
		})
	}
}

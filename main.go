package main

import (
	"log"
	"strings"

	"github.com/Eahtasham/Parent-Teacher-DBMS/app/config"
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/database"
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/routes/auth"
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/routes/home"
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/routes/meetings"
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/routes/parent"
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/routes/students"
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/routes/teacher"
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/routes/teachers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler translates anything that escapes a handler into the
// boundary contract: JSON for /api requests, rendered pages otherwise.
// Internals never reach the client.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   message,
			"code":    code,
		})
	}

	if code == 404 {
		return c.Status(404).Render("404", fiber.Map{
			"Title": "Page Not Found - Parent-Teacher Portal",
		})
	}

	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error - Parent-Teacher Portal",
		"ErrorCode":    code,
		"ErrorMessage": message,
	})
}

func main() {
	// Load configuration and connect to the database
	config.Load()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize template engine
	engine := html.New("./app/templates", ".html")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Repositories
	accountRepo := database.NewAccountRepo(config.GetDB())
	meetingRepo := database.NewMeetingRepo(config.GetDB())

	// Public pages
	home.SetupHomeRoutes(app)

	// Auth API
	auth.SetupAuthRoutes(app, accountRepo)

	// Meetings API
	meetings.SetupMeetingsRoutes(app, meetingRepo)

	// Directory listings for the booking form
	teachers.SetupTeachersRoutes(app, accountRepo)
	students.SetupStudentsRoutes(app, accountRepo)

	// Guarded dashboards
	parent.SetupParentRoutes(app)
	teacher.SetupTeacherRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	port := config.AppConfig.Port
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}

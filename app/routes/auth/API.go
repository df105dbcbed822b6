package auth

import (
	"context"
	"errors"
	"log"

	"github.com/Eahtasham/Parent-Teacher-DBMS/app/database"
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AccountStore is the slice of the database layer login needs.
type AccountStore interface {
	GetParentByUsername(ctx context.Context, username string) (*models.Parent, error)
	GetTeacherByUsername(ctx context.Context, username string) (*models.Teacher, error)
}

var validate = validator.New()

type Handlers struct {
	accounts AccountStore
}

func NewHandlers(accounts AccountStore) *Handlers {
	return &Handlers{accounts: accounts}
}

func (h *Handlers) LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Username string      `json:"username" validate:"required"`
		Password string      `json:"password" validate:"required"`
		Role     models.Role `json:"role" validate:"required,oneof=parent teacher"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Username, password and role are required"})
	}

	// Parents and teachers live in separate tables; the requested role
	// picks which one we check.
	var user models.Identity
	var hashed string
	switch req.Role {
	case models.ParentRole:
		p, err := h.accounts.GetParentByUsername(c.UserContext(), req.Username)
		if err != nil {
			return loginLookupError(c, err)
		}
		user = models.Identity{ID: p.ID, Username: p.Username, Role: models.ParentRole}
		hashed = p.Password
	case models.TeacherRole:
		t, err := h.accounts.GetTeacherByUsername(c.UserContext(), req.Username)
		if err != nil {
			return loginLookupError(c, err)
		}
		user = models.Identity{ID: t.ID, Username: t.Username, Role: models.TeacherRole}
		hashed = t.Password
	}

	if !CheckPasswordHash(req.Password, hashed) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	if err := CreateSession(c, &user); err != nil {
		log.Printf("Failed to create session for %s: %v", user.Username, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create session"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

func loginLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, database.ErrAccountNotFound) {
		// Same answer as a bad password, so usernames cannot be probed.
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}
	log.Printf("Login lookup failed: %v", err)
	return c.Status(500).JSON(fiber.Map{"error": "Database error"})
}

// CheckAPI reports the identity behind the request's session cookie. It
// never fails past this boundary: any bad cookie is just a 401 with a
// null user.
func (h *Handlers) CheckAPI(c *fiber.Ctx) error {
	user, ok := ReadSession(c)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"user": nil})
	}
	return c.JSON(fiber.Map{"user": user})
}

func (h *Handlers) LogoutAPI(c *fiber.Ctx) error {
	ClearSession(c)
	return c.JSON(fiber.Map{"success": true})
}

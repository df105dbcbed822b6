package meetings

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Eahtasham/Parent-Teacher-DBMS/app/database"
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/models"
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/routes/auth"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MeetingStore is the slice of the database layer the meeting endpoints
// need.
type MeetingStore interface {
	ListPublic(ctx context.Context) ([]*models.PublicMeeting, error)
	ListForTeacher(ctx context.Context, teacherID int) ([]*models.Meeting, error)
	ListForParent(ctx context.Context, parentID int) ([]*models.Meeting, error)
	GetByID(ctx context.Context, id int) (*models.Meeting, error)
	Create(ctx context.Context, m *models.Meeting) error
	UpdateStatus(ctx context.Context, id int, status models.MeetingStatus, message string) error
	OwnsStudent(ctx context.Context, parentID, studentID int) (bool, error)
}

var validate = validator.New()

type Handlers struct {
	store MeetingStore
}

func NewHandlers(store MeetingStore) *Handlers {
	return &Handlers{store: store}
}

// PublicMeetingsAPI serves the open listing. No auth on purpose: the
// public board is a product decision, and it only exposes names, dates
// and subjects.
func (h *Handlers) PublicMeetingsAPI(c *fiber.Ctx) error {
	list, err := h.store.ListPublic(c.UserContext())
	if err != nil {
		log.Printf("Failed to fetch public meetings: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch meetings"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"meetings": list,
	})
}

// TeacherMeetingsAPI serves a teacher's own meetings across all
// statuses. The teacherId query parameter is kept for the dashboard's
// sake but must match the session identity.
func (h *Handlers) TeacherMeetingsAPI(c *fiber.Ctx) error {
	user := auth.SessionIdentity(c)
	if user == nil || user.Role != models.TeacherRole {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Teacher account required"})
	}

	teacherID := c.QueryInt("teacherId", user.ID)
	if teacherID != user.ID {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Cannot read another teacher's meetings"})
	}

	list, err := h.store.ListForTeacher(c.UserContext(), teacherID)
	if err != nil {
		log.Printf("Failed to fetch meetings for teacher %d: %v", teacherID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch meetings"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"meetings": list,
	})
}

// ParentMeetingsAPI serves the session parent's own requests, including
// any rejection message left by the teacher.
func (h *Handlers) ParentMeetingsAPI(c *fiber.Ctx) error {
	user := auth.SessionIdentity(c)
	if user == nil || user.Role != models.ParentRole {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Parent account required"})
	}

	list, err := h.store.ListForParent(c.UserContext(), user.ID)
	if err != nil {
		log.Printf("Failed to fetch meetings for parent %d: %v", user.ID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch meetings"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"meetings": list,
	})
}

// CreateMeetingAPI books a new meeting request for the session parent.
// The parent id always comes from the session, never the body.
func (h *Handlers) CreateMeetingAPI(c *fiber.Ctx) error {
	user := auth.SessionIdentity(c)
	if user == nil || user.Role != models.ParentRole {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Parent account required"})
	}

	type CreateMeetingRequest struct {
		TeacherID   int    `json:"teacherId" validate:"required,min=1"`
		StudentID   int    `json:"studentId" validate:"required,min=1"`
		MeetingDate string `json:"meetingDate" validate:"required,datetime=2006-01-02"`
		MeetingTime string `json:"meetingTime" validate:"required"`
		Subject     string `json:"subject" validate:"required"`
		Reason      string `json:"reason" validate:"required"`
	}

	var req CreateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "All meeting fields are required"})
	}

	owns, err := h.store.OwnsStudent(c.UserContext(), user.ID, req.StudentID)
	if err != nil {
		log.Printf("Failed to check student ownership: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create meeting"})
	}
	if !owns {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Student is not registered under this account"})
	}

	date, err := time.Parse("2006-01-02", req.MeetingDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "meetingDate must be YYYY-MM-DD"})
	}
	m := &models.Meeting{
		ParentID:    user.ID,
		TeacherID:   req.TeacherID,
		StudentID:   req.StudentID,
		MeetingDate: date,
		MeetingTime: req.MeetingTime,
		Subject:     req.Subject,
		Reason:      req.Reason,
	}

	if err := h.store.Create(c.UserContext(), m); err != nil {
		log.Printf("Failed to create meeting: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create meeting"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"meeting": m,
	})
}

// UpdateMeetingAPI resolves a pending meeting. The transition is one-way
// and only the assigned teacher may drive it; every failure leaves the
// stored status untouched.
func (h *Handlers) UpdateMeetingAPI(c *fiber.Ctx) error {
	var req TransitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "meetingId and status are required"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	m, err := h.store.GetByID(c.UserContext(), req.MeetingID)
	if err != nil {
		if errors.Is(err, database.ErrMeetingNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Meeting not found"})
		}
		log.Printf("Failed to load meeting %d: %v", req.MeetingID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update meeting"})
	}

	if err := Authorize(m, auth.SessionIdentity(c)); err != nil {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if !models.CanTransition(m.Status, req.Status) {
		return c.Status(409).JSON(fiber.Map{"success": false, "error": "Meeting is already resolved"})
	}

	// The store re-checks the pending state inside the UPDATE, so a
	// concurrent resolve between the read above and here still cannot
	// overwrite a terminal status.
	if err := h.store.UpdateStatus(c.UserContext(), req.MeetingID, req.Status, req.Message); err != nil {
		switch {
		case errors.Is(err, database.ErrMeetingNotFound):
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Meeting not found"})
		case errors.Is(err, database.ErrMeetingClosed):
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "Meeting is already resolved"})
		}
		log.Printf("Failed to update meeting %d: %v", req.MeetingID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update meeting"})
	}

	return c.JSON(fiber.Map{"success": true})
}

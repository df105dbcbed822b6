package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Eahtasham/Parent-Teacher-DBMS/app/models"
)

var (
	// ErrMeetingNotFound is returned when the meeting id does not exist.
	ErrMeetingNotFound = errors.New("meeting not found")
	// ErrMeetingClosed is returned when a status update targets a meeting
	// that is already accepted or rejected.
	ErrMeetingClosed = errors.New("meeting already resolved")
)

type MeetingRepo struct {
	db *sql.DB
}

func NewMeetingRepo(db *sql.DB) *MeetingRepo {
	return &MeetingRepo{db: db}
}

// ListPublic returns every meeting with display names for the public
// listing, ordered by date then time so output is stable regardless of
// insertion order.
func (r *MeetingRepo) ListPublic(ctx context.Context) ([]*models.PublicMeeting, error) {
	query := `
		SELECT m.id, m.meeting_date, m.meeting_time, m.subject,
			   p.username AS parent_name,
			   t.username AS teacher_name,
			   s.name AS student_name
		FROM meetings m
		JOIN parents p ON m.parent_id = p.id
		JOIN teachers t ON m.teacher_id = t.id
		JOIN students s ON m.student_id = s.id
		ORDER BY m.meeting_date ASC, m.meeting_time ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list public meetings: %w", err)
	}
	defer rows.Close()

	meetings := []*models.PublicMeeting{}
	for rows.Next() {
		m := &models.PublicMeeting{}
		if err := rows.Scan(&m.ID, &m.MeetingDate, &m.MeetingTime, &m.Subject,
			&m.ParentName, &m.TeacherName, &m.StudentName); err != nil {
			return nil, fmt.Errorf("scan public meeting: %w", err)
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// ListForTeacher returns the meetings assigned to one teacher across all
// statuses; the dashboard partitions them client-side.
func (r *MeetingRepo) ListForTeacher(ctx context.Context, teacherID int) ([]*models.Meeting, error) {
	query := `
		SELECT m.id, m.parent_id, m.teacher_id, m.student_id,
			   m.meeting_date, m.meeting_time, m.subject, m.reason,
			   m.status, COALESCE(m.message, ''),
			   p.username AS parent_name,
			   s.name AS student_name
		FROM meetings m
		JOIN parents p ON m.parent_id = p.id
		JOIN students s ON m.student_id = s.id
		WHERE m.teacher_id = $1
		ORDER BY m.meeting_date ASC, m.meeting_time ASC`

	rows, err := r.db.QueryContext(ctx, query, teacherID)
	if err != nil {
		return nil, fmt.Errorf("list meetings for teacher %d: %w", teacherID, err)
	}
	defer rows.Close()

	meetings := []*models.Meeting{}
	for rows.Next() {
		m := &models.Meeting{}
		if err := rows.Scan(&m.ID, &m.ParentID, &m.TeacherID, &m.StudentID,
			&m.MeetingDate, &m.MeetingTime, &m.Subject, &m.Reason,
			&m.Status, &m.Message, &m.ParentName, &m.StudentName); err != nil {
			return nil, fmt.Errorf("scan teacher meeting: %w", err)
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// ListForParent returns the meetings a parent has requested, including
// any rejection message the teacher left.
func (r *MeetingRepo) ListForParent(ctx context.Context, parentID int) ([]*models.Meeting, error) {
	query := `
		SELECT m.id, m.parent_id, m.teacher_id, m.student_id,
			   m.meeting_date, m.meeting_time, m.subject, m.reason,
			   m.status, COALESCE(m.message, ''),
			   t.username AS teacher_name,
			   s.name AS student_name
		FROM meetings m
		JOIN teachers t ON m.teacher_id = t.id
		JOIN students s ON m.student_id = s.id
		WHERE m.parent_id = $1
		ORDER BY m.meeting_date ASC, m.meeting_time ASC`

	rows, err := r.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list meetings for parent %d: %w", parentID, err)
	}
	defer rows.Close()

	meetings := []*models.Meeting{}
	for rows.Next() {
		m := &models.Meeting{}
		if err := rows.Scan(&m.ID, &m.ParentID, &m.TeacherID, &m.StudentID,
			&m.MeetingDate, &m.MeetingTime, &m.Subject, &m.Reason,
			&m.Status, &m.Message, &m.TeacherName, &m.StudentName); err != nil {
			return nil, fmt.Errorf("scan parent meeting: %w", err)
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// GetByID fetches a single meeting without joins, for ownership and
// transition checks.
func (r *MeetingRepo) GetByID(ctx context.Context, id int) (*models.Meeting, error) {
	query := `
		SELECT id, parent_id, teacher_id, student_id,
			   meeting_date, meeting_time, subject, reason,
			   status, COALESCE(message, '')
		FROM meetings
		WHERE id = $1`

	m := &models.Meeting{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.ParentID, &m.TeacherID, &m.StudentID,
		&m.MeetingDate, &m.MeetingTime, &m.Subject, &m.Reason,
		&m.Status, &m.Message,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMeetingNotFound
		}
		return nil, fmt.Errorf("get meeting %d: %w", id, err)
	}
	return m, nil
}

// Create inserts a new meeting request. Status always starts pending no
// matter what the caller put in the struct.
func (r *MeetingRepo) Create(ctx context.Context, m *models.Meeting) error {
	query := `
		INSERT INTO meetings (parent_id, teacher_id, student_id, meeting_date, meeting_time, subject, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	m.Status = models.MeetingPending
	err := r.db.QueryRowContext(ctx, query,
		m.ParentID, m.TeacherID, m.StudentID,
		m.MeetingDate, m.MeetingTime, m.Subject, m.Reason, m.Status,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("create meeting: %w", err)
	}
	return nil
}

// OwnsStudent reports whether the student is registered under the
// parent. Meeting creation uses it so a parent cannot book on behalf of
// another family's child.
func (r *MeetingRepo) OwnsStudent(ctx context.Context, parentID, studentID int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE id = $1 AND parent_id = $2)`,
		studentID, parentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check student %d ownership: %w", studentID, err)
	}
	return exists, nil
}

// UpdateStatus resolves a pending meeting in a single conditional UPDATE.
// The WHERE clause is the one-way guarantee: a meeting that already left
// pending is never touched, and the statement itself is the atomicity
// boundary. Returns ErrMeetingNotFound or ErrMeetingClosed when no row
// was updated.
func (r *MeetingRepo) UpdateStatus(ctx context.Context, id int, status models.MeetingStatus, message string) error {
	query := `
		UPDATE meetings
		SET status = $2, message = NULLIF($3, '')
		WHERE id = $1 AND status = 'pending'`

	res, err := r.db.ExecContext(ctx, query, id, status, message)
	if err != nil {
		return fmt.Errorf("update meeting %d status: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update meeting %d status: %w", id, err)
	}
	if affected > 0 {
		return nil
	}

	// Nothing updated: either the id is unknown or the meeting is already
	// in a terminal state.
	var current models.MeetingStatus
	err = r.db.QueryRowContext(ctx, `SELECT status FROM meetings WHERE id = $1`, id).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrMeetingNotFound
	}
	if err != nil {
		return fmt.Errorf("check meeting %d status: %w", id, err)
	}
	return ErrMeetingClosed
}

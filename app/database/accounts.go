package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Eahtasham/Parent-Teacher-DBMS/app/models"
)

// ErrAccountNotFound is returned when no account matches the username
// for the requested role.
var ErrAccountNotFound = errors.New("account not found")

type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// GetParentByUsername looks a parent account up for login.
func (r *AccountRepo) GetParentByUsername(ctx context.Context, username string) (*models.Parent, error) {
	p := &models.Parent{}
	query := `SELECT id, username, password FROM parents WHERE username = $1`

	err := r.db.QueryRowContext(ctx, query, username).Scan(&p.ID, &p.Username, &p.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get parent by username: %w", err)
	}
	return p, nil
}

// GetTeacherByUsername looks a teacher account up for login.
func (r *AccountRepo) GetTeacherByUsername(ctx context.Context, username string) (*models.Teacher, error) {
	t := &models.Teacher{}
	query := `SELECT id, username, password FROM teachers WHERE username = $1`

	err := r.db.QueryRowContext(ctx, query, username).Scan(&t.ID, &t.Username, &t.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get teacher by username: %w", err)
	}
	return t, nil
}

// ListTeachers returns all teacher accounts for the booking form.
func (r *AccountRepo) ListTeachers(ctx context.Context) ([]*models.Teacher, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, username FROM teachers ORDER BY username ASC`)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	for rows.Next() {
		t := &models.Teacher{}
		if err := rows.Scan(&t.ID, &t.Username); err != nil {
			return nil, fmt.Errorf("scan teacher: %w", err)
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// ListStudentsForParent returns the students registered under a parent,
// used when the parent books a meeting.
func (r *AccountRepo) ListStudentsForParent(ctx context.Context, parentID int) ([]*models.Student, error) {
	query := `SELECT id, name, parent_id FROM students WHERE parent_id = $1 ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list students for parent %d: %w", parentID, err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.Name, &s.ParentID); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// CreateParent inserts a parent account with an already-hashed password.
func (r *AccountRepo) CreateParent(ctx context.Context, username, hashedPassword string) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO parents (username, password) VALUES ($1, $2) RETURNING id`,
		username, hashedPassword).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create parent: %w", err)
	}
	return id, nil
}

// CreateTeacher inserts a teacher account with an already-hashed password.
func (r *AccountRepo) CreateTeacher(ctx context.Context, username, hashedPassword string) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO teachers (username, password) VALUES ($1, $2) RETURNING id`,
		username, hashedPassword).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create teacher: %w", err)
	}
	return id, nil
}

// CreateStudent registers a student under a parent.
func (r *AccountRepo) CreateStudent(ctx context.Context, name string, parentID int) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO students (name, parent_id) VALUES ($1, $2) RETURNING id`,
		name, parentID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create student: %w", err)
	}
	return id, nil
}

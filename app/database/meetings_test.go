package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/models"
)

func newMeetingRepoMock(t *testing.T) (*MeetingRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewMeetingRepo(db), mock
}

// TestListPublicOrdersByDateThenTime pins the ordering contract to the
// statement itself: the public listing must ask the store for
// (meeting_date, meeting_time) ascending, and hand rows back exactly as
// the store emits them.
func TestListPublicOrdersByDateThenTime(t *testing.T) {
	repo, mock := newMeetingRepoMock(t)

	rows := sqlmock.NewRows([]string{
		"id", "meeting_date", "meeting_time", "subject",
		"parent_name", "teacher_name", "student_name",
	}).
		AddRow(3, time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC), "09:00", "Science", "parent2", "teacher1", "Ben").
		AddRow(1, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "10:00", "Mathematics", "parent1", "teacher1", "Alex").
		AddRow(2, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "14:30", "English", "parent1", "teacher2", "Alex")

	mock.ExpectQuery(`ORDER BY m\.meeting_date ASC, m\.meeting_time ASC`).WillReturnRows(rows)

	list, err := repo.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 meetings, got %d", len(list))
	}
	for i, wantID := range []int{3, 1, 2} {
		if list[i].ID != wantID {
			t.Errorf("position %d: expected meeting %d, got %d", i, wantID, list[i].ID)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("query shape not satisfied: %v", err)
	}
}

func TestListPublicStoreFailure(t *testing.T) {
	repo, mock := newMeetingRepoMock(t)
	mock.ExpectQuery(`FROM meetings m`).WillReturnError(errors.New("connection refused"))

	if _, err := repo.ListPublic(context.Background()); err == nil {
		t.Fatal("expected an error from a failing store")
	}
}

func TestUpdateStatusResolvesPendingRow(t *testing.T) {
	repo, mock := newMeetingRepoMock(t)

	mock.ExpectExec(`UPDATE meetings`).
		WithArgs(1, string(models.MeetingRejected), "schedule conflict").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 1, models.MeetingRejected, "schedule conflict")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestUpdateStatusTerminalRow checks the zero-rows path: the guarded
// UPDATE touches nothing, and the follow-up status read turns that into
// ErrMeetingClosed.
func TestUpdateStatusTerminalRow(t *testing.T) {
	repo, mock := newMeetingRepoMock(t)

	mock.ExpectExec(`UPDATE meetings`).
		WithArgs(1, string(models.MeetingAccepted), "").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT status FROM meetings`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("rejected"))

	err := repo.UpdateStatus(context.Background(), 1, models.MeetingAccepted, "")
	if !errors.Is(err, ErrMeetingClosed) {
		t.Fatalf("expected ErrMeetingClosed, got %v", err)
	}
}

func TestUpdateStatusMissingRow(t *testing.T) {
	repo, mock := newMeetingRepoMock(t)

	mock.ExpectExec(`UPDATE meetings`).
		WithArgs(123, string(models.MeetingAccepted), "").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT status FROM meetings`).
		WithArgs(123).
		WillReturnRows(sqlmock.NewRows([]string{"status"}))

	err := repo.UpdateStatus(context.Background(), 123, models.MeetingAccepted, "")
	if !errors.Is(err, ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
}

package meetings

import (
	"errors"
	"strings"

	"github.com/Eahtasham/Parent-Teacher-DBMS/app/models"
)

var (
	// ErrUnknownStatus means the requested status is not accept or rejected.
	ErrUnknownStatus = errors.New("status must be accept or rejected")
	// ErrBlankReason means a rejection arrived without a usable reason.
	ErrBlankReason = errors.New("a rejection reason is required")
	// ErrUnexpectedMessage means a message was sent with an accept, which
	// never records one.
	ErrUnexpectedMessage = errors.New("accepting a meeting does not take a message")
	// ErrNotOwner means the caller is not the teacher the meeting targets.
	ErrNotOwner = errors.New("only the assigned teacher may resolve this meeting")
)

// TransitionRequest is the PATCH /api/meetings body.
type TransitionRequest struct {
	MeetingID int                  `json:"meetingId" validate:"required,min=1"`
	Status    models.MeetingStatus `json:"status" validate:"required"`
	Message   string               `json:"message"`
}

// Validate applies the workflow rules that do not need the stored
// meeting: the status whitelist and the rejection-reason contract. It
// runs before any store access so a bad request never touches the
// database.
func (req *TransitionRequest) Validate() error {
	switch req.Status {
	case models.MeetingAccepted:
		if req.Message != "" {
			return ErrUnexpectedMessage
		}
	case models.MeetingRejected:
		if strings.TrimSpace(req.Message) == "" {
			return ErrBlankReason
		}
	default:
		return ErrUnknownStatus
	}
	return nil
}

// Authorize checks that the session identity owns the transition: the
// caller must be a teacher and must be the teacher the meeting targets.
// The meeting id and teacher id in the request body are never trusted on
// their own.
func Authorize(m *models.Meeting, user *models.Identity) error {
	if user == nil || user.Role != models.TeacherRole || m.TeacherID != user.ID {
		return ErrNotOwner
	}
	return nil
}

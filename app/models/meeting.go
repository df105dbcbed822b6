package models

import "time"

// Meeting is a meeting request between a parent and a teacher about a
// student. A meeting is created in the pending state and is resolved
// exactly once by the assigned teacher. Message carries the teacher's
// rejection reason and must be empty unless Status is rejected.
type Meeting struct {
	ID          int           `json:"id"`
	ParentID    int           `json:"parent_id"`
	TeacherID   int           `json:"teacher_id"`
	StudentID   int           `json:"student_id"`
	MeetingDate time.Time     `json:"meeting_date"`
	MeetingTime string        `json:"meeting_time"`
	Subject     string        `json:"subject"`
	Reason      string        `json:"reason"`
	Status      MeetingStatus `json:"status"`
	Message     string        `json:"message,omitempty"`

	// Display names resolved by joining the identity tables.
	ParentName  string `json:"parent_name,omitempty"`
	TeacherName string `json:"teacher_name,omitempty"`
	StudentName string `json:"student_name,omitempty"`
}

// PublicMeeting is the reduced shape served on the public listing. It
// deliberately omits status, reason and message.
type PublicMeeting struct {
	ID          int       `json:"id"`
	MeetingDate time.Time `json:"meeting_date"`
	MeetingTime string    `json:"meeting_time"`
	Subject     string    `json:"subject"`
	ParentName  string    `json:"parent_name"`
	TeacherName string    `json:"teacher_name"`
	StudentName string    `json:"student_name"`
}

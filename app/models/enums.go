package models

// Role defines the two account types that can sign in to the portal.
type Role string

const (
	ParentRole  Role = "parent"
	TeacherRole Role = "teacher"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == ParentRole || r == TeacherRole
}

// MeetingStatus defines the possible status values for a meeting request.
type MeetingStatus string

const (
	MeetingPending  MeetingStatus = "pending"
	MeetingAccepted MeetingStatus = "accept"
	MeetingRejected MeetingStatus = "rejected"
)

// Valid reports whether s is one of the known meeting statuses.
func (s MeetingStatus) Valid() bool {
	switch s {
	case MeetingPending, MeetingAccepted, MeetingRejected:
		return true
	}
	return false
}

// Terminal reports whether s is a final state. Accepted and rejected
// meetings never change status again.
func (s MeetingStatus) Terminal() bool {
	return s == MeetingAccepted || s == MeetingRejected
}

// CanTransition reports whether a meeting may move from one status to
// another. The only legal moves are out of pending and into a terminal
// state; nothing ever goes back to pending.
func CanTransition(from, to MeetingStatus) bool {
	return from == MeetingPending && to.Terminal()
}

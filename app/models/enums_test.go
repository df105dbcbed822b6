package models

import "testing"

func TestMeetingStatusValid(t *testing.T) {
	for _, s := range []MeetingStatus{MeetingPending, MeetingAccepted, MeetingRejected} {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []MeetingStatus{"", "accepted", "PENDING", "cancelled"} {
		if s.Valid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestMeetingStatusTerminal(t *testing.T) {
	if MeetingPending.Terminal() {
		t.Error("pending must not be terminal")
	}
	if !MeetingAccepted.Terminal() {
		t.Error("accept must be terminal")
	}
	if !MeetingRejected.Terminal() {
		t.Error("rejected must be terminal")
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to MeetingStatus
		want     bool
	}{
		{MeetingPending, MeetingAccepted, true},
		{MeetingPending, MeetingRejected, true},
		{MeetingPending, MeetingPending, false},
		{MeetingAccepted, MeetingRejected, false},
		{MeetingAccepted, MeetingPending, false},
		{MeetingRejected, MeetingAccepted, false},
		{MeetingRejected, MeetingPending, false},
		{MeetingAccepted, MeetingAccepted, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

// The legal targets out of pending are exactly the terminal states, so
// the two predicates must always agree.
func TestCanTransitionMatchesTerminal(t *testing.T) {
	for _, s := range []MeetingStatus{MeetingPending, MeetingAccepted, MeetingRejected, "cancelled"} {
		if CanTransition(MeetingPending, s) != s.Terminal() {
			t.Errorf("CanTransition(pending, %q) disagrees with %q.Terminal()", s, s)
		}
	}
}

func TestRoleValid(t *testing.T) {
	if !ParentRole.Valid() || !TeacherRole.Valid() {
		t.Error("parent and teacher must be valid roles")
	}
	if Role("admin").Valid() || Role("").Valid() {
		t.Error("unknown roles must be invalid")
	}
}

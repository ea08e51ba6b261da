package domain

import "time"

// Role represents user role in the system
type Role string

const (
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
)

// Member represents a league member in the domain layer.
// Members are never hard-deleted; Active=false keeps historical stats intact
// while excluding the member from attendance and round-entry flows.
type Member struct {
	ID           uint
	Name         string
	TargetScore  int
	NextTarget   *int
	Active       bool
	DuesPaid     bool
	GoalAchieved bool
}

// Score is one member's stroke count within a round.
// Slice order is insertion order and is significant: rank and worst-scorer
// tie-breaks rely on a stable sort over this order.
type Score struct {
	MemberID uint
	Strokes  int
}

// Award is a prize recorded against a round. WinnerName must match an attendee
// and a winner name may appear at most once per round.
type Award struct {
	TypeCode   string
	WinnerName string
}

// Expense is one spending line item attached to a round.
type Expense struct {
	ID       uint
	Category string
	ItemName string
	Amount   int64
}

// Round is one scored league event. Immutable after save except for expense
// line-item add/delete.
type Round struct {
	ID        uint
	Date      time.Time
	Course    string
	Attendees []uint
	Scores    []Score
	CartTeams [][]uint
	Awards    []Award
	Expenses  []Expense
}

// Settings is the season singleton. The hat holder fields change only as a
// side effect of saving a round that has scores.
type Settings struct {
	HatHolderID *uint
	HatSince    *time.Time
	SeasonYear  int
}

// Snapshot is the immutable full read the derivation engine consumes.
// Rounds are ordered date ascending (id ascending on equal dates).
type Snapshot struct {
	Members  []Member
	Rounds   []Round
	Settings Settings
}

// MemberByID returns the member with the given id, or nil.
func (s *Snapshot) MemberByID(id uint) *Member {
	for i := range s.Members {
		if s.Members[i].ID == id {
			return &s.Members[i]
		}
	}
	return nil
}

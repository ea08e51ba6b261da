package league

import (
	"sort"

	"gjb-leaguehub/internal/core/domain"
)

// AttendancePolicy is the charter's attendance quota: the months the league
// plays in, and how many of them a member must show up for.
type AttendancePolicy struct {
	ActiveMonths []int `json:"active_months"`
	Required     int   `json:"required"`
}

// AttendanceRow is one member's monthly presence and compliance verdict.
type AttendanceRow struct {
	MemberID      uint  `json:"member_id"`
	MonthsPresent []int `json:"months_present"`
	ActiveCount   int   `json:"active_count"`
	Compliant     bool  `json:"compliant"`
}

// Attendance derives the month-presence set per member from round attendee
// lists. Repeat rounds in the same month count once. Presence in a month
// outside the active set is still recorded (for the matrix view) but never
// counts toward the quota.
func Attendance(members []domain.Member, rounds []domain.Round, policy AttendancePolicy) []AttendanceRow {
	active := make(map[int]bool, len(policy.ActiveMonths))
	for _, m := range policy.ActiveMonths {
		active[m] = true
	}

	present := make(map[uint]map[int]bool, len(members))
	for _, m := range members {
		present[m.ID] = make(map[int]bool)
	}
	for _, r := range rounds {
		month := int(r.Date.Month())
		for _, id := range r.Attendees {
			if months, ok := present[id]; ok {
				months[month] = true
			}
		}
	}

	rows := make([]AttendanceRow, len(members))
	for i, m := range members {
		row := AttendanceRow{MemberID: m.ID}
		for month := range present[m.ID] {
			row.MonthsPresent = append(row.MonthsPresent, month)
			if active[month] {
				row.ActiveCount++
			}
		}
		sort.Ints(row.MonthsPresent)
		row.Compliant = row.ActiveCount >= policy.Required
		rows[i] = row
	}
	return rows
}

package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gjb-leaguehub/internal/core/domain"
)

var charterPolicy = AttendancePolicy{
	ActiveMonths: []int{3, 4, 5, 6, 8, 9, 10, 11},
	Required:     5,
}

func TestAttendance_MonthlyPresence(t *testing.T) {
	members := []domain.Member{{ID: 1, Active: true}, {ID: 2, Active: true}}
	rounds := []domain.Round{
		round(1, date(3, 3), []uint{1, 2}, nil),
		round(2, date(3, 24), []uint{1}, nil), // same month, counts once
		round(3, date(4, 21), []uint{1}, nil),
		round(4, date(5, 19), []uint{1}, nil),
		round(5, date(6, 16), []uint{1}, nil),
		round(6, date(8, 18), []uint{1}, nil),
	}

	rows := Attendance(members, rounds, charterPolicy)
	require.Len(t, rows, 2)

	assert.Equal(t, []int{3, 4, 5, 6, 8}, rows[0].MonthsPresent)
	assert.Equal(t, 5, rows[0].ActiveCount)
	assert.True(t, rows[0].Compliant)

	assert.Equal(t, []int{3}, rows[1].MonthsPresent)
	assert.False(t, rows[1].Compliant)
}

func TestAttendance_RepeatAttendeeSameRound(t *testing.T) {
	// duplicate attendee entries in a single round must not double-count
	members := []domain.Member{{ID: 1, Active: true}}
	rounds := []domain.Round{
		round(1, date(3, 3), []uint{1, 1}, nil),
	}
	rows := Attendance(members, rounds, charterPolicy)
	assert.Equal(t, []int{3}, rows[0].MonthsPresent)
	assert.Equal(t, 1, rows[0].ActiveCount)
}

func TestAttendance_OffSeasonMonthRecordedButNotCounted(t *testing.T) {
	members := []domain.Member{{ID: 1, Active: true}}
	rounds := []domain.Round{
		round(1, date(7, 15), []uint{1}, nil), // July is not an active month
		round(2, date(3, 3), []uint{1}, nil),
	}
	rows := Attendance(members, rounds, charterPolicy)
	assert.Equal(t, []int{3, 7}, rows[0].MonthsPresent, "off-season presence still shows in the matrix")
	assert.Equal(t, 1, rows[0].ActiveCount, "but never counts toward the quota")
}

func TestAttendance_EmptySeason(t *testing.T) {
	members := []domain.Member{{ID: 1, Active: true}}
	rows := Attendance(members, nil, charterPolicy)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].MonthsPresent)
	assert.False(t, rows[0].Compliant)
}

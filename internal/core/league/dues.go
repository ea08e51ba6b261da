package league

import "gjb-leaguehub/internal/core/domain"

// DuesPolicy carries the charter's fixed per-member dues and the payout for
// hitting the season target.
type DuesPolicy struct {
	DuesAmount int64 `json:"dues_amount"`
	GoalRefund int64 `json:"goal_refund"`
}

// DuesRow is one member's dues ledger line. RefundEligible is an
// informational hint (best score met the target); the GoalAchieved flag
// itself is an admin-set fact and is never derived from it.
type DuesRow struct {
	MemberID       uint `json:"member_id"`
	TargetScore    int  `json:"target_score"`
	BestScore      *int `json:"best_score"`
	DuesPaid       bool `json:"dues_paid"`
	GoalAchieved   bool `json:"goal_achieved"`
	RefundEligible bool `json:"refund_eligible"`
}

// DuesSummary is the season dues ledger for active members.
type DuesSummary struct {
	PerMemberDues  int64     `json:"per_member_dues"`
	GoalRefund     int64     `json:"goal_refund"`
	TotalCollected int64     `json:"total_collected"`
	TotalRefund    int64     `json:"total_refund"`
	Rows           []DuesRow `json:"rows"`
}

// Dues builds the dues ledger: collected total over paid-up active members,
// refund total over members the admin marked as goal achievers, and a
// per-member eligibility hint (best score at or under target). Inactive
// members are excluded.
func Dues(members []domain.Member, rounds []domain.Round, policy DuesPolicy) DuesSummary {
	summary := DuesSummary{
		PerMemberDues: policy.DuesAmount,
		GoalRefund:    policy.GoalRefund,
	}
	for _, m := range members {
		if !m.Active {
			continue
		}
		stats := MemberStatistics(rounds, m.ID)
		row := DuesRow{
			MemberID:     m.ID,
			TargetScore:  m.TargetScore,
			BestScore:    stats.BestScore,
			DuesPaid:     m.DuesPaid,
			GoalAchieved: m.GoalAchieved,
		}
		row.RefundEligible = stats.BestScore != nil && *stats.BestScore <= m.TargetScore
		if m.DuesPaid {
			summary.TotalCollected += policy.DuesAmount
		}
		if m.GoalAchieved {
			summary.TotalRefund += policy.GoalRefund
		}
		summary.Rows = append(summary.Rows, row)
	}
	return summary
}

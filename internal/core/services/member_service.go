package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"gjb-leaguehub/internal/adapters/persistence/models"
	"gjb-leaguehub/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Member service errors
var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrMemberNameTaken    = errors.New("member name already exists")
	ErrMemberNameRequired = errors.New("member name is required")
	ErrInvalidTarget      = errors.New("target score must be positive")
)

// MemberService handles roster management business logic
type MemberService struct {
	memberRepo repositories.MemberRepository
	notify     *NotifyService
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo repositories.MemberRepository, notify *NotifyService) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
		notify:     notify,
	}
}

// CreateMemberInput represents create member input
type CreateMemberInput struct {
	Name        string `json:"name" validate:"required"`
	TargetScore int    `json:"target_score" validate:"required"`
	NextTarget  *int   `json:"next_target"`
}

// UpdateMemberInput represents update member input. Pointer fields are
// optional: nil means leave unchanged. DuesPaid and GoalAchieved are
// admin-set facts and are only ever moved through this input, never
// derived.
type UpdateMemberInput struct {
	Name         *string `json:"name"`
	TargetScore  *int    `json:"target_score"`
	NextTarget   *int    `json:"next_target"`
	ClearNext    bool    `json:"clear_next_target"`
	IsActive     *bool   `json:"is_active"`
	DuesPaid     *bool   `json:"dues_paid"`
	GoalAchieved *bool   `json:"goal_achieved"`
}

// ListMembers lists the roster in id order
func (s *MemberService) ListMembers(ctx context.Context, activeOnly bool) ([]*models.MemberResponse, error) {
	members, err := s.memberRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.MemberResponse, len(members))
	for i, m := range members {
		responses[i] = m.ToResponse()
	}
	return responses, nil
}

// GetMember gets a member by ID
func (s *MemberService) GetMember(ctx context.Context, id uint) (*models.MemberResponse, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member.ToResponse(), nil
}

// CreateMember adds a member to the roster
func (s *MemberService) CreateMember(ctx context.Context, input *CreateMemberInput, isAdmin bool) (*models.MemberResponse, error) {
	if !writeAllowed(isAdmin, "member create") {
		return nil, nil
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrMemberNameRequired
	}
	if input.TargetScore <= 0 {
		return nil, ErrInvalidTarget
	}

	exists, err := s.memberRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrMemberNameTaken
	}

	member := &models.Member{
		Name:        name,
		TargetScore: input.TargetScore,
		NextTarget:  input.NextTarget,
		IsActive:    true,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	log.Printf("✅ Member added: %s (target %d)", member.Name, member.TargetScore)
	s.notify.MarkDirty("member_created")

	return member.ToResponse(), nil
}

// UpdateMember updates roster fields. A request that changes nothing is a
// silent no-op: no write, no broadcast.
func (s *MemberService) UpdateMember(ctx context.Context, id uint, input *UpdateMemberInput, isAdmin bool) (*models.MemberResponse, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	if !writeAllowed(isAdmin, "member update") {
		return member.ToResponse(), nil
	}

	changed := false

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrMemberNameRequired
		}
		if name != member.Name {
			exists, err := s.memberRepo.ExistsByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, ErrMemberNameTaken
			}
			member.Name = name
			changed = true
		}
	}

	if input.TargetScore != nil && *input.TargetScore != member.TargetScore {
		if *input.TargetScore <= 0 {
			return nil, ErrInvalidTarget
		}
		member.TargetScore = *input.TargetScore
		changed = true
	}

	if input.ClearNext {
		if member.NextTarget != nil {
			member.NextTarget = nil
			changed = true
		}
	} else if input.NextTarget != nil {
		if member.NextTarget == nil || *member.NextTarget != *input.NextTarget {
			member.NextTarget = input.NextTarget
			changed = true
		}
	}

	if input.IsActive != nil && *input.IsActive != member.IsActive {
		member.IsActive = *input.IsActive
		changed = true
	}
	if input.DuesPaid != nil && *input.DuesPaid != member.DuesPaid {
		member.DuesPaid = *input.DuesPaid
		changed = true
	}
	if input.GoalAchieved != nil && *input.GoalAchieved != member.GoalAchieved {
		member.GoalAchieved = *input.GoalAchieved
		changed = true
	}

	if !changed {
		return member.ToResponse(), nil
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	log.Printf("✅ Member updated: %s", member.Name)
	s.notify.MarkDirty("member_updated")

	return member.ToResponse(), nil
}

// DeactivateMember retires a member from the roster. History stays; the
// member just stops appearing in attendance and round entry.
func (s *MemberService) DeactivateMember(ctx context.Context, id uint, isAdmin bool) error {
	if !writeAllowed(isAdmin, "member deactivate") {
		return nil
	}

	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return err
	}

	if !member.IsActive {
		return nil
	}

	member.IsActive = false
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return err
	}

	log.Printf("✅ Member deactivated: %s", member.Name)
	s.notify.MarkDirty("member_updated")
	return nil
}

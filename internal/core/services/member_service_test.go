package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gjb-leaguehub/internal/adapters/persistence/models"
)

// fakeMemberRepo is an in-memory MemberRepository for service tests
type fakeMemberRepo struct {
	members map[uint]*models.Member
	nextID  uint
	updates int
}

func newFakeMemberRepo(members ...*models.Member) *fakeMemberRepo {
	r := &fakeMemberRepo{members: make(map[uint]*models.Member), nextID: 1}
	for _, m := range members {
		if m.ID >= r.nextID {
			r.nextID = m.ID + 1
		}
		r.members[m.ID] = m
	}
	return r
}

func (r *fakeMemberRepo) Create(_ context.Context, member *models.Member) error {
	member.ID = r.nextID
	r.nextID++
	r.members[member.ID] = member
	return nil
}

func (r *fakeMemberRepo) GetByID(_ context.Context, id uint) (*models.Member, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMemberRepo) Update(_ context.Context, member *models.Member) error {
	r.members[member.ID] = member
	r.updates++
	return nil
}

func (r *fakeMemberRepo) List(_ context.Context, activeOnly bool) ([]*models.Member, error) {
	var out []*models.Member
	for id := uint(1); id < r.nextID; id++ {
		m, ok := r.members[id]
		if !ok {
			continue
		}
		if activeOnly && !m.IsActive {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMemberRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, m := range r.members {
		if m.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func newTestMemberService(repo *fakeMemberRepo) *MemberService {
	return NewMemberService(repo, NewNotifyService())
}

func TestCreateMember_Valid(t *testing.T) {
	repo := newFakeMemberRepo()
	svc := newTestMemberService(repo)

	resp, err := svc.CreateMember(context.Background(), &CreateMemberInput{
		Name:        "이희진",
		TargetScore: 85,
	}, true)
	require.NoError(t, err)
	assert.Equal(t, "이희진", resp.Name)
	assert.True(t, resp.IsActive)
}

func TestCreateMember_Validation(t *testing.T) {
	repo := newFakeMemberRepo(&models.Member{ID: 1, Name: "김기현", TargetScore: 90, IsActive: true})
	svc := newTestMemberService(repo)

	_, err := svc.CreateMember(context.Background(), &CreateMemberInput{Name: "  ", TargetScore: 90}, true)
	assert.ErrorIs(t, err, ErrMemberNameRequired)

	_, err = svc.CreateMember(context.Background(), &CreateMemberInput{Name: "박지유", TargetScore: 0}, true)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = svc.CreateMember(context.Background(), &CreateMemberInput{Name: "김기현", TargetScore: 88}, true)
	assert.ErrorIs(t, err, ErrMemberNameTaken)
}

func TestWrites_IgnoredWithoutAdminFlag(t *testing.T) {
	repo := newFakeMemberRepo(&models.Member{ID: 1, Name: "정승윤", TargetScore: 95, IsActive: true})
	svc := newTestMemberService(repo)

	resp, err := svc.CreateMember(context.Background(), &CreateMemberInput{Name: "새회원", TargetScore: 90}, false)
	require.NoError(t, err)
	assert.Nil(t, resp)
	assert.Len(t, repo.members, 1)

	lower := 80
	resp, err = svc.UpdateMember(context.Background(), 1, &UpdateMemberInput{TargetScore: &lower}, false)
	require.NoError(t, err)
	assert.Equal(t, 95, resp.TargetScore, "non-admin update must leave state untouched")
	assert.Zero(t, repo.updates)

	require.NoError(t, svc.DeactivateMember(context.Background(), 1, false))
	m, _ := repo.GetByID(context.Background(), 1)
	assert.True(t, m.IsActive)
}

func TestUpdateMember_NoChangeIsNoOp(t *testing.T) {
	repo := newFakeMemberRepo(&models.Member{ID: 1, Name: "정승윤", TargetScore: 95, IsActive: true})
	svc := newTestMemberService(repo)

	same := 95
	resp, err := svc.UpdateMember(context.Background(), 1, &UpdateMemberInput{TargetScore: &same}, true)
	require.NoError(t, err)
	assert.Equal(t, 95, resp.TargetScore)
	assert.Zero(t, repo.updates, "identical values must not trigger a write")
}

func TestUpdateMember_ClearNextTarget(t *testing.T) {
	next := 88
	repo := newFakeMemberRepo(&models.Member{ID: 1, Name: "문민구", TargetScore: 75, NextTarget: &next, IsActive: true})
	svc := newTestMemberService(repo)

	resp, err := svc.UpdateMember(context.Background(), 1, &UpdateMemberInput{ClearNext: true}, true)
	require.NoError(t, err)
	assert.Nil(t, resp.NextTarget)
	assert.Equal(t, 1, repo.updates)
}

func TestUpdateMember_NotFound(t *testing.T) {
	svc := newTestMemberService(newFakeMemberRepo())

	name := "없는사람"
	_, err := svc.UpdateMember(context.Background(), 42, &UpdateMemberInput{Name: &name}, true)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestDeactivateMember(t *testing.T) {
	repo := newFakeMemberRepo(&models.Member{ID: 1, Name: "임종윤", TargetScore: 90, IsActive: true})
	svc := newTestMemberService(repo)

	require.NoError(t, svc.DeactivateMember(context.Background(), 1, true))
	m, _ := repo.GetByID(context.Background(), 1)
	assert.False(t, m.IsActive)

	// already inactive: second call is a no-op, not an error
	require.NoError(t, svc.DeactivateMember(context.Background(), 1, true))
	assert.Equal(t, 1, repo.updates)
}

func TestListMembers_ActiveFilter(t *testing.T) {
	repo := newFakeMemberRepo(
		&models.Member{ID: 1, Name: "이희진", TargetScore: 85, IsActive: true},
		&models.Member{ID: 2, Name: "조형석", TargetScore: 100, IsActive: false},
	)
	svc := newTestMemberService(repo)

	all, err := svc.ListMembers(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := svc.ListMembers(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "이희진", active[0].Name)
}

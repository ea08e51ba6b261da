package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gjb-leaguehub/internal/core/domain"
)

func TestDraftStore_GetCreatesEmptyDraft(t *testing.T) {
	store := NewDraftStore()

	draft := store.Get(7)
	require.NotNil(t, draft)
	assert.Empty(t, draft.Attendees)
	assert.Empty(t, draft.Scores)
	assert.False(t, draft.UpdatedAt.IsZero())
}

func TestDraftStore_GetReturnsCopy(t *testing.T) {
	store := NewDraftStore()
	store.Put(7, &RoundDraft{Course: "레이크힐스", Attendees: []uint{1, 2}})

	draft := store.Get(7)
	draft.Course = "scratch"

	again := store.Get(7)
	assert.Equal(t, "레이크힐스", again.Course, "mutating a Get result must not touch the store")
}

func TestDraftStore_PerUserIsolation(t *testing.T) {
	store := NewDraftStore()
	store.Put(1, &RoundDraft{Course: "A"})
	store.Put(2, &RoundDraft{Course: "B"})

	assert.Equal(t, "A", store.Get(1).Course)
	assert.Equal(t, "B", store.Get(2).Course)
}

func TestDraftStore_ClearDiscardsDraft(t *testing.T) {
	store := NewDraftStore()
	store.Put(7, &RoundDraft{
		Course: "한성CC",
		Scores: []domain.Score{{MemberID: 1, Strokes: 85}},
	})

	store.Clear(7)

	draft := store.Get(7)
	assert.Empty(t, draft.Course)
	assert.Empty(t, draft.Scores)
}

package services

import (
	"sync"
	"time"

	"gjb-leaguehub/internal/core/domain"
)

// RoundDraft is an in-progress round entry. It lives in memory only: a
// failed save keeps the draft so the admin never retypes a score sheet.
type RoundDraft struct {
	Date      time.Time      `json:"date"`
	Course    string         `json:"course"`
	Attendees []uint         `json:"attendees"`
	Scores    []domain.Score `json:"scores"`
	CartTeams [][]uint       `json:"cart_teams"`
	Awards    []domain.Award `json:"awards"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// DraftStore holds one draft per admin user
type DraftStore struct {
	mu     sync.Mutex
	drafts map[uint]*RoundDraft
}

// NewDraftStore creates a new draft store
func NewDraftStore() *DraftStore {
	return &DraftStore{
		drafts: make(map[uint]*RoundDraft),
	}
}

// Get returns a copy of the user's draft, creating an empty one if none
// exists. Returning a copy keeps callers from mutating shared state
// outside the lock; changes flow back through Put.
func (s *DraftStore) Get(userID uint) *RoundDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[userID]
	if !ok {
		draft = &RoundDraft{UpdatedAt: time.Now()}
		s.drafts[userID] = draft
	}
	cp := *draft
	return &cp
}

// Put stores the user's draft
func (s *DraftStore) Put(userID uint, draft *RoundDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft.UpdatedAt = time.Now()
	s.drafts[userID] = draft
}

// Clear discards the user's draft. Called only after a successful save.
func (s *DraftStore) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, userID)
}

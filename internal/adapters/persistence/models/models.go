package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth Tables
// ============================================================

// User represents users table (login accounts, separate from members)
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'MEMBER'" json:"role"`
	MemberID  *uint          `gorm:"index" json:"member_id"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	MemberID  *uint     `json:"member_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		MemberID:  u.MemberID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Master Tables
// ============================================================

// AwardType 어워드 종류 (Master)
type AwardType struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Code        string         `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	SortOrder   int            `gorm:"not null" json:"sort_order"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (AwardType) TableName() string {
	return "award_types"
}

// ============================================================
// Main Tables
// ============================================================

// Member 동호회 회원 (roster)
type Member struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:50;uniqueIndex;not null" json:"name"`
	TargetScore  int            `gorm:"not null" json:"target_score"`
	NextTarget   *int           `json:"next_target"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	DuesPaid     bool           `gorm:"default:false" json:"dues_paid"`
	GoalAchieved bool           `gorm:"default:false" json:"goal_achieved"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string {
	return "members"
}

// MemberResponse DTO
type MemberResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	TargetScore  int       `json:"target_score"`
	NextTarget   *int      `json:"next_target"`
	IsActive     bool      `json:"is_active"`
	DuesPaid     bool      `json:"dues_paid"`
	GoalAchieved bool      `json:"goal_achieved"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:           m.ID,
		Name:         m.Name,
		TargetScore:  m.TargetScore,
		NextTarget:   m.NextTarget,
		IsActive:     m.IsActive,
		DuesPaid:     m.DuesPaid,
		GoalAchieved: m.GoalAchieved,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// Round 월례 라운드 (main table)
type Round struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	PlayedOn  time.Time      `gorm:"type:date;not null;index" json:"played_on"`
	Course    string         `gorm:"size:100" json:"course"`
	Remark    string         `gorm:"type:text" json:"remark"`
	CreatedBy uint           `gorm:"not null" json:"created_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Attendees []RoundAttendee  `gorm:"foreignKey:RoundID" json:"attendees,omitempty"`
	Scores    []Score          `gorm:"foreignKey:RoundID" json:"scores,omitempty"`
	Carts     []CartAssignment `gorm:"foreignKey:RoundID" json:"carts,omitempty"`
	Awards    []Award          `gorm:"foreignKey:RoundID" json:"awards,omitempty"`
	Expenses  []Expense        `gorm:"foreignKey:RoundID" json:"expenses,omitempty"`
}

func (Round) TableName() string {
	return "rounds"
}

// RoundAttendee 라운드 참석자 (1:N with round)
type RoundAttendee struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	RoundID  uint `gorm:"not null;index;uniqueIndex:uq_round_attendee,priority:1" json:"round_id"`
	MemberID uint `gorm:"not null;uniqueIndex:uq_round_attendee,priority:2" json:"member_id"`
	Seq      int  `gorm:"not null" json:"seq"`

	// Relations
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (RoundAttendee) TableName() string {
	return "round_attendees"
}

// Score 라운드 스코어. Seq preserves entry order, Rank/Points are frozen
// at save time so past rounds never reshuffle under a points table change.
type Score struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	RoundID  uint `gorm:"not null;index;uniqueIndex:uq_round_score,priority:1" json:"round_id"`
	MemberID uint `gorm:"not null;uniqueIndex:uq_round_score,priority:2" json:"member_id"`
	Strokes  int  `gorm:"not null" json:"strokes"`
	Seq      int  `gorm:"not null" json:"seq"`
	Rank     int  `gorm:"not null" json:"rank"`
	Points   int  `gorm:"not null" json:"points"`

	// Relations
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (Score) TableName() string {
	return "scores"
}

// CartAssignment 카트 배정 (snake-draft result, frozen at save time)
type CartAssignment struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	RoundID  uint `gorm:"not null;index" json:"round_id"`
	CartNo   int  `gorm:"not null" json:"cart_no"`
	Slot     int  `gorm:"not null" json:"slot"`
	MemberID uint `gorm:"not null" json:"member_id"`

	// Relations
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (CartAssignment) TableName() string {
	return "cart_assignments"
}

// Award 라운드 어워드
type Award struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RoundID     uint      `gorm:"not null;index" json:"round_id"`
	AwardTypeID uint      `gorm:"not null" json:"award_type_id"`
	WinnerName  string    `gorm:"size:50;not null" json:"winner_name"`
	Remark      string    `gorm:"type:text" json:"remark"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relations
	AwardType *AwardType `gorm:"foreignKey:AwardTypeID" json:"award_type,omitempty"`
}

func (Award) TableName() string {
	return "awards"
}

// Expense 라운드 지출
type Expense struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	RoundID   uint           `gorm:"not null;index" json:"round_id"`
	Category  string         `gorm:"size:50;not null" json:"category"`
	ItemName  string         `gorm:"size:100;not null" json:"item_name"`
	Amount    int64          `gorm:"not null" json:"amount"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Expense) TableName() string {
	return "expenses"
}

// ============================================================
// Current / History Tables
// ============================================================

// SeasonSettings 시즌 설정 (single row, id=1)
type SeasonSettings struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	SeasonYear  int        `gorm:"not null" json:"season_year"`
	HatHolderID *uint      `json:"hat_holder_id"`
	HatSince    *time.Time `json:"hat_since"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	HatHolder *Member `gorm:"foreignKey:HatHolderID" json:"hat_holder,omitempty"`
}

func (SeasonSettings) TableName() string {
	return "season_settings"
}

// HatHistory 모자 이력 (one row per scored round)
type HatHistory struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	RoundID  uint      `gorm:"not null;uniqueIndex" json:"round_id"`
	MemberID uint      `gorm:"not null;index" json:"member_id"`
	WornOn   time.Time `gorm:"type:date;not null" json:"worn_on"`
	Strokes  int       `gorm:"not null" json:"strokes"`

	// Relations
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (HatHistory) TableName() string {
	return "hat_histories"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Auth
		&User{},
		&RefreshToken{},
		// Master Tables
		&AwardType{},
		// Main Tables
		&Member{},
		&Round{},
		&RoundAttendee{},
		&Score{},
		&CartAssignment{},
		&Award{},
		&Expense{},
		// Current / History
		&SeasonSettings{},
		&HatHistory{},
	)
}

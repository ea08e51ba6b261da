package repositories

import (
	"context"

	"gjb-leaguehub/internal/adapters/persistence/models"
)

// UserRepository defines login account access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository defines refresh token access
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// MemberRepository defines roster repository interface
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	Update(ctx context.Context, member *models.Member) error
	List(ctx context.Context, activeOnly bool) ([]*models.Member, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// SettingsRepository defines season settings / hat history access
type SettingsRepository interface {
	Get(ctx context.Context) (*models.SeasonSettings, error)
	Update(ctx context.Context, settings *models.SeasonSettings) error
	HatCountByMember(ctx context.Context) (map[uint]int, error)
}

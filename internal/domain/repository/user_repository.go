package repository

import (
	"context"

	"github.com/cinelog/cinelog-api/internal/domain/entity"
)

// UserRepository defines the persistence operations for user accounts and
// their favorites relations.
//
// AddFavorite and RemoveFavorite are conditional single-document updates:
// the membership check and the mutation happen in one store operation, so
// two concurrent adds of the same (user, media) pair cannot both succeed.
// Both return false, without error, when the condition did not hold
// (already present for add, absent for remove).
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// ExistsByUsernameOrEmail reports whether any user already holds the
	// given username or email.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	AddFavorite(ctx context.Context, userID string, kind entity.MediaKind, mediaID string) (bool, error)
	RemoveFavorite(ctx context.Context, userID string, kind entity.MediaKind, mediaID string) (bool, error)
}

package repository

import (
	"context"

	"github.com/cinelog/cinelog-api/internal/domain/entity"
)

// MediaRepository defines the read paths over the two catalog collections.
// The kind argument selects the backing collection; implementations must not
// interpret it beyond that.
//
// "Not found" (missing document, malformed identifier) is reported as a nil
// entity with a nil error; slices may be empty but never nil errors for
// empty result sets.
type MediaRepository interface {
	GetByID(ctx context.Context, kind entity.MediaKind, id string) (*entity.Media, error)
	// GetByIDs batch-fetches all existing media for the given identifiers.
	// Identifiers with no matching document are simply absent from the
	// result.
	GetByIDs(ctx context.Context, kind entity.MediaKind, ids []string) ([]entity.Media, error)
	All(ctx context.Context, kind entity.MediaKind) ([]entity.Media, error)
	// SearchByTitle performs a case-insensitive pattern match on the store
	// side. Callers are expected to re-confirm the substring match in
	// process.
	SearchByTitle(ctx context.Context, kind entity.MediaKind, title string) ([]entity.Media, error)
	// TopRated returns up to limit media sorted by rating descending.
	TopRated(ctx context.Context, kind entity.MediaKind, limit int64) ([]entity.Media, error)
	// Page returns one page sorted by rating descending; page is 1-based.
	Page(ctx context.Context, kind entity.MediaKind, page, perPage int64) ([]entity.Media, error)
}

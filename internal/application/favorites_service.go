package application

import (
	"context"
	"errors"

	"github.com/cinelog/cinelog-api/internal/domain/entity"
	"github.com/cinelog/cinelog-api/internal/domain/repository"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrAlreadyFavorited = errors.New("already in favorites")
	ErrNotFavorited     = errors.New("not in favorites")
)

// FavoritesService owns the user↔media favorites relation. It is the only
// service joining the user store and the media registry, and the only one
// that mutates user documents after registration.
//
// Membership checks ride on store-level conditional updates (add-if-absent,
// remove-if-present), so concurrent mutations of the same (user, media)
// pair cannot leave duplicates or phantom removals.
type FavoritesService struct {
	Users repository.UserRepository
	Media repository.MediaRepository
}

func NewFavoritesService(users repository.UserRepository, media repository.MediaRepository) *FavoritesService {
	return &FavoritesService{Users: users, Media: media}
}

// Add puts mediaID into the user's favorites of the given kind and returns
// the updated identifier set. The media must exist at insertion time; a
// duplicate add is rejected, not silently absorbed.
func (s *FavoritesService) Add(ctx context.Context, userID string, kind entity.MediaKind, mediaID string) ([]string, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	m, err := s.Media.GetByID(ctx, kind, mediaID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMediaNotFound
	}

	added, err := s.Users.AddFavorite(ctx, userID, kind, mediaID)
	if err != nil {
		return nil, err
	}
	if !added {
		return nil, ErrAlreadyFavorited
	}

	return s.favoritesOf(ctx, userID, kind)
}

// Remove takes mediaID out of the user's favorites of the given kind and
// returns the updated identifier set. Media existence is not re-checked:
// removing a reference to since-deleted media must still succeed.
func (s *FavoritesService) Remove(ctx context.Context, userID string, kind entity.MediaKind, mediaID string) ([]string, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	removed, err := s.Users.RemoveFavorite(ctx, userID, kind, mediaID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, ErrNotFavorited
	}

	return s.favoritesOf(ctx, userID, kind)
}

// List expands the user's favorites of the given kind into full media
// records with a single batch query. Identifiers whose media no longer
// exists are omitted.
func (s *FavoritesService) List(ctx context.Context, userID string, kind entity.MediaKind) ([]entity.Media, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return s.Media.GetByIDs(ctx, kind, u.Favorites(kind))
}

func (s *FavoritesService) favoritesOf(ctx context.Context, userID string, kind entity.MediaKind) ([]string, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u.Favorites(kind), nil
}

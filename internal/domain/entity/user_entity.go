package entity

import (
	"time"
)

// User is the aggregate root for the account domain. Passwords are stored
// as bcrypt hashes in Password and never serialized.
//
// Favorites are reference-only: the slices hold media identifiers, not
// copies, and the media documents know nothing about who favorited them.
// A referenced item may have been deleted since it was favorited; listing
// tolerates such dangling identifiers by omitting them.
type User struct {
	ID             string    `json:"id,omitempty"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	FavoriteMovies []string  `json:"favoriteMovies"`
	FavoriteSeries []string  `json:"favoriteSeries"`
	CreatedAt      time.Time `json:"created_at"`
}

// Favorites returns the identifier set for the given media kind.
func (u *User) Favorites(kind MediaKind) []string {
	if kind == KindSerie {
		return u.FavoriteSeries
	}
	return u.FavoriteMovies
}

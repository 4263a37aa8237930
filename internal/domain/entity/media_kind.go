package entity

import "errors"

// MediaKind discriminates between the two catalog collections. Every
// kind-dependent decision (collection, favorites field) goes through this
// type rather than string comparisons scattered across handlers.
type MediaKind string

const (
	KindMovie MediaKind = "movie"
	KindSerie MediaKind = "serie"
)

// ErrInvalidMediaKind is returned for any kind value outside {movie, serie}.
// Callers reject the request before touching the store.
var ErrInvalidMediaKind = errors.New("invalid media kind")

// ParseMediaKind validates a client-supplied kind discriminator.
func ParseMediaKind(s string) (MediaKind, error) {
	switch MediaKind(s) {
	case KindMovie:
		return KindMovie, nil
	case KindSerie:
		return KindSerie, nil
	}
	return "", ErrInvalidMediaKind
}

func (k MediaKind) String() string { return string(k) }

// Collection returns the store collection name backing the kind.
func (k MediaKind) Collection() string {
	if k == KindSerie {
		return "series"
	}
	return "movies"
}

// FavoritesField returns the user-document field holding favorites of this
// kind.
func (k MediaKind) FavoritesField() string {
	if k == KindSerie {
		return "favoriteSeries"
	}
	return "favoriteMovies"
}

package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/cinelog/cinelog-api/internal/domain/entity"
	"github.com/cinelog/cinelog-api/internal/domain/repository"
	"github.com/cinelog/cinelog-api/pkg/helpers"
)

var (
	ErrMediaNotFound = errors.New("media not found")
	ErrEmptyQuery    = errors.New("title parameter is missing")
	ErrNoMatch       = errors.New("no media matched the title")
)

const (
	topRatedLimit    = 5
	topRatedCacheTTL = 5 * time.Minute

	defaultPage    = 1
	defaultPerPage = 10
)

// CatalogService serves the read paths over the media registry. It has no
// write surface: catalog entries are seeded externally (cmd/seed).
//
// The redis client is optional; when present, the top-rated lists are
// cached for a short window and every cache failure falls through to the
// store.
type CatalogService struct {
	Media  repository.MediaRepository
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewCatalogService(media repository.MediaRepository, rdb *redis.Client, logger *logrus.Logger) *CatalogService {
	return &CatalogService{Media: media, Redis: rdb, Logger: logger}
}

func (s *CatalogService) All(ctx context.Context, kind entity.MediaKind) ([]entity.Media, error) {
	return s.Media.All(ctx, kind)
}

// Get resolves one media record by identifier.
func (s *CatalogService) Get(ctx context.Context, kind entity.MediaKind, id string) (*entity.Media, error) {
	m, err := s.Media.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMediaNotFound
	}
	return m, nil
}

// Search finds media whose title contains the query, case-insensitively.
// The store does a pattern match first and the result is confirmed with an
// in-process substring check; both must agree for an entry to be included.
func (s *CatalogService) Search(ctx context.Context, kind entity.MediaKind, title string) ([]entity.Media, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyQuery
	}

	found, err := s.Media.SearchByTitle(ctx, kind, title)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(title)
	matching := make([]entity.Media, 0, len(found))
	for _, m := range found {
		if strings.Contains(strings.ToLower(m.Title), needle) {
			matching = append(matching, m)
		}
	}
	if len(matching) == 0 {
		return nil, ErrNoMatch
	}
	return matching, nil
}

// TopRated returns the five highest-rated entries of the kind.
func (s *CatalogService) TopRated(ctx context.Context, kind entity.MediaKind) ([]entity.Media, error) {
	cacheKey := "catalog:toprated:" + kind.String()
	if s.Redis != nil {
		var cached []entity.Media
		ok, err := helpers.RedisGetJSON(ctx, s.Redis, cacheKey, &cached)
		if err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", cacheKey).Warn("top-rated cache read failed")
		}
		if ok {
			return cached, nil
		}
	}

	media, err := s.Media.TopRated(ctx, kind, topRatedLimit)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, cacheKey, media, topRatedCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", cacheKey).Warn("top-rated cache write failed")
		}
	}
	return media, nil
}

// Page returns one rating-sorted page. Out-of-range arguments fall back to
// page 1 and 10 items per page.
func (s *CatalogService) Page(ctx context.Context, kind entity.MediaKind, page, perPage int64) ([]entity.Media, error) {
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	return s.Media.Page(ctx, kind, page, perPage)
}

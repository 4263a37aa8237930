package application

import (
	"context"
	"strconv"
	"sync"

	"github.com/cinelog/cinelog-api/internal/domain/entity"
)

// fakeUserRepo is an in-memory UserRepository. Favorite mutations mirror
// the store's conditional-update semantics: check and mutation happen under
// one lock, and the boolean reports whether the document changed.
type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*entity.User
	nextID int

	getByIDCalls int
	addCalls     int
	removeCalls  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	u.ID = "user-" + strconv.Itoa(r.nextID)
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getByIDCalls++
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	cp.FavoriteMovies = append([]string(nil), u.FavoriteMovies...)
	cp.FavoriteSeries = append([]string(nil), u.FavoriteSeries...)
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) AddFavorite(_ context.Context, userID string, kind entity.MediaKind, mediaID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addCalls++
	u, ok := r.users[userID]
	if !ok {
		return false, nil
	}
	set := u.Favorites(kind)
	for _, id := range set {
		if id == mediaID {
			return false, nil
		}
	}
	if kind == entity.KindSerie {
		u.FavoriteSeries = append(u.FavoriteSeries, mediaID)
	} else {
		u.FavoriteMovies = append(u.FavoriteMovies, mediaID)
	}
	return true, nil
}

func (r *fakeUserRepo) RemoveFavorite(_ context.Context, userID string, kind entity.MediaKind, mediaID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeCalls++
	u, ok := r.users[userID]
	if !ok {
		return false, nil
	}
	set := u.Favorites(kind)
	for i, id := range set {
		if id == mediaID {
			set = append(set[:i], set[i+1:]...)
			if kind == entity.KindSerie {
				u.FavoriteSeries = set
			} else {
				u.FavoriteMovies = set
			}
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) addUser(username, email, password string) *entity.User {
	u := &entity.User{Username: username, Email: email, Password: password}
	_ = r.Create(context.Background(), u)
	return u
}

// fakeMediaRepo is an in-memory MediaRepository over both kinds.
type fakeMediaRepo struct {
	mu    sync.Mutex
	media map[entity.MediaKind]map[string]entity.Media

	searchCalls   int
	lastTopLimit  int64
	lastPage      int64
	lastPerPage   int64
	getByIDCalls  int
	getByIDsCalls int
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{media: map[entity.MediaKind]map[string]entity.Media{
		entity.KindMovie: {},
		entity.KindSerie: {},
	}}
}

func (r *fakeMediaRepo) put(kind entity.MediaKind, m entity.Media) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.media[kind][m.ID] = m
}

func (r *fakeMediaRepo) GetByID(_ context.Context, kind entity.MediaKind, id string) (*entity.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getByIDCalls++
	m, ok := r.media[kind][id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *fakeMediaRepo) GetByIDs(_ context.Context, kind entity.MediaKind, ids []string) ([]entity.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getByIDsCalls++
	out := make([]entity.Media, 0, len(ids))
	for _, id := range ids {
		if m, ok := r.media[kind][id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMediaRepo) All(_ context.Context, kind entity.MediaKind) ([]entity.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Media, 0, len(r.media[kind]))
	for _, m := range r.media[kind] {
		out = append(out, m)
	}
	return out, nil
}

// SearchByTitle returns everything, imitating a store-side pattern match
// with false positives; the service is expected to re-check.
func (r *fakeMediaRepo) SearchByTitle(_ context.Context, kind entity.MediaKind, _ string) ([]entity.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searchCalls++
	out := make([]entity.Media, 0, len(r.media[kind]))
	for _, m := range r.media[kind] {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMediaRepo) TopRated(_ context.Context, kind entity.MediaKind, limit int64) ([]entity.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastTopLimit = limit
	out := make([]entity.Media, 0, len(r.media[kind]))
	for _, m := range r.media[kind] {
		out = append(out, m)
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMediaRepo) Page(_ context.Context, kind entity.MediaKind, page, perPage int64) ([]entity.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastPage = page
	r.lastPerPage = perPage
	return []entity.Media{}, nil
}

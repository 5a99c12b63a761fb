package handlers

import (
	"context"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lostfound-app/apiserver/internal/auth"
	"github.com/lostfound-app/apiserver/internal/services"
	"github.com/lostfound-app/apiserver/internal/store"
	"github.com/lostfound-app/apiserver/types"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// fakeUserRepo is an in-memory services.UserRepository.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]types.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]types.User)}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (r *fakeUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return types.User{}, store.ErrDuplicateEmail
		}
	}
	now := time.Now()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

// fakeItemRepo is an in-memory services.ItemRepository. Creation
// timestamps increase monotonically so ordering tests are deterministic.
type fakeItemRepo struct {
	mu    sync.Mutex
	items map[string]types.Item
	base  time.Time
	seq   int
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{
		items: make(map[string]types.Item),
		base:  time.Now(),
	}
}

func (r *fakeItemRepo) List(ctx context.Context) ([]types.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(""), nil
}

func (r *fakeItemRepo) ListByType(ctx context.Context, itemType string) ([]types.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(itemType), nil
}

func (r *fakeItemRepo) sorted(itemType string) []types.Item {
	items := make([]types.Item, 0, len(r.items))
	for _, item := range r.items {
		if itemType == "" || item.Type == itemType {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items
}

func (r *fakeItemRepo) Get(ctx context.Context, id string) (types.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return types.Item{}, store.ErrNotFound
	}
	return item, nil
}

func (r *fakeItemRepo) Create(ctx context.Context, item types.Item) (types.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	now := r.base.Add(time.Duration(r.seq) * time.Second)
	item.ID = uuid.NewString()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.items[item.ID] = item
	return item, nil
}

func (r *fakeItemRepo) Update(ctx context.Context, item types.Item) (types.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return types.Item{}, store.ErrNotFound
	}
	item.UpdatedAt = time.Now()
	r.items[item.ID] = item
	return item, nil
}

func (r *fakeItemRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// newTestServer wires the real routers over the in-memory fakes.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	tokens := auth.NewTokenService(testJWTSecret, 24)
	userService := services.NewUserService(newFakeUserRepo())
	itemService := services.NewItemService(newFakeItemRepo())

	router := chi.NewRouter()
	router.Route("/api/auth", func(r chi.Router) {
		AuthRouter(r, userService, tokens)
	})
	router.Route("/api/items", func(r chi.Router) {
		ItemRouter(r, itemService, RequireAuth(tokens))
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

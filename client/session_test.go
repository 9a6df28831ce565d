package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type sessionBackend struct {
	token    string
	user     User
	business *Business

	meCalls       atomic.Int64
	businessCalls atomic.Int64
	totalCalls    atomic.Int64
}

func newSessionBackend(token string) *sessionBackend {
	return &sessionBackend{
		token: token,
		user:  User{ID: "u1", Name: "Ana", Email: "ana@example.com"},
	}
}

func (b *sessionBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		b.meCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer "+b.token {
			http.Error(w, `{"error":{"code":"UNAUTHORIZED"}}`, http.StatusUnauthorized)
			return
		}
		writeJSON(w, b.user)
	})
	mux.HandleFunc("GET /business", func(w http.ResponseWriter, r *http.Request) {
		b.businessCalls.Add(1)
		if b.business == nil {
			http.Error(w, `{"error":{"code":"NOT_FOUND"}}`, http.StatusNotFound)
			return
		}
		writeJSON(w, b.business)
	})
	mux.HandleFunc("POST /business", func(w http.ResponseWriter, r *http.Request) {
		var input BusinessInput
		_ = json.NewDecoder(r.Body).Decode(&input)
		b.business = &Business{ID: "b1", UserID: b.user.ID, Name: input.Name, Niche: input.Niche}
		writeJSON(w, b.business)
	})
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"access_token": b.token, "token_type": "bearer"})
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.totalCalls.Add(1)
		mux.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestResolverNoTokenStaysOffline(t *testing.T) {
	backend := newSessionBackend("tok")
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	r := NewResolver(srv.URL, NewMemoryTokenStore())
	require.Equal(t, StateUnauthenticated, r.Snapshot().State)

	snap := r.Resolve(context.Background())
	require.Equal(t, StateUnauthenticated, snap.State)
	require.Zero(t, backend.totalCalls.Load())
}

func TestResolverValidTokenNoBusiness(t *testing.T) {
	backend := newSessionBackend("tok")
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Set("tok"))

	r := NewResolver(srv.URL, store)
	require.Equal(t, StateLoading, r.Snapshot().State)

	snap := r.Resolve(context.Background())
	require.Equal(t, StateAuthenticatedNoBusiness, snap.State)
	require.Equal(t, "u1", snap.User.ID)
	require.Nil(t, snap.Business)
}

func TestResolverValidTokenWithBusiness(t *testing.T) {
	backend := newSessionBackend("tok")
	backend.business = &Business{ID: "b1", UserID: "u1", Name: "Salão X", Niche: "salao_beleza"}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Set("tok"))

	snap := NewResolver(srv.URL, store).Resolve(context.Background())
	require.Equal(t, StateAuthenticatedWithBusiness, snap.State)
	require.Equal(t, "Salão X", snap.Business.Name)
}

func TestResolverInvalidTokenClearsStore(t *testing.T) {
	backend := newSessionBackend("tok")
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Set("expired"))

	r := NewResolver(srv.URL, store)
	snap := r.Resolve(context.Background())
	require.Equal(t, StateUnauthenticated, snap.State)
	require.Nil(t, snap.User)

	_, ok := store.Get()
	require.False(t, ok)
	require.Empty(t, r.API().Token())
}

func TestResolverLoginResolvesSession(t *testing.T) {
	backend := newSessionBackend("fresh-tok")
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	store := NewMemoryTokenStore()
	r := NewResolver(srv.URL, store)

	snap, err := r.Login(context.Background(), "ana@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, StateAuthenticatedNoBusiness, snap.State)

	token, ok := store.Get()
	require.True(t, ok)
	require.Equal(t, "fresh-tok", token)
}

func TestResolverLogoutIsSynchronousAndIdempotent(t *testing.T) {
	store := NewMemoryTokenStore()
	require.NoError(t, store.Set("tok"))

	// Unreachable base URL: logout must not depend on the network.
	r := NewResolver("http://127.0.0.1:1", store)

	r.Logout()
	require.Equal(t, StateUnauthenticated, r.Snapshot().State)
	_, ok := store.Get()
	require.False(t, ok)

	r.Logout()
	require.Equal(t, StateUnauthenticated, r.Snapshot().State)
}

func TestResolverCreateBusinessSkipsReResolution(t *testing.T) {
	backend := newSessionBackend("tok")
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Set("tok"))

	r := NewResolver(srv.URL, store)
	snap := r.Resolve(context.Background())
	require.Equal(t, StateAuthenticatedNoBusiness, snap.State)
	meCalls := backend.meCalls.Load()

	business, err := r.CreateBusiness(context.Background(), BusinessInput{Name: "Salão X", Niche: "salao_beleza"})
	require.NoError(t, err)
	require.Equal(t, "Salão X", business.Name)

	snap = r.Snapshot()
	require.Equal(t, StateAuthenticatedWithBusiness, snap.State)
	require.Equal(t, "b1", snap.Business.ID)
	require.Equal(t, meCalls, backend.meCalls.Load())
}

func TestResolverDiscardsStaleResolution(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		writeJSON(w, User{ID: "u1", Name: "Ana"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Set("token-a"))
	r := NewResolver(srv.URL, store)

	done := make(chan Snapshot, 1)
	go func() { done <- r.Resolve(context.Background()) }()

	<-started
	r.Logout()
	close(release)

	snap := <-done
	require.Equal(t, StateUnauthenticated, snap.State)
	require.Nil(t, snap.User)
	require.Equal(t, StateUnauthenticated, r.Snapshot().State)
}

func TestResolverNotifiesObservers(t *testing.T) {
	store := NewMemoryTokenStore()
	require.NoError(t, store.Set("tok"))
	r := NewResolver("http://127.0.0.1:1", store)

	var seen []State
	unsubscribe := r.Subscribe(func(snap Snapshot) {
		seen = append(seen, snap.State)
	})

	r.Logout()
	require.Equal(t, []State{StateUnauthenticated}, seen)

	unsubscribe()
	r.Logout()
	require.Len(t, seen, 1)
}

func TestResolverRefreshPicksUpNewBusiness(t *testing.T) {
	backend := newSessionBackend("tok")
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Set("tok"))

	r := NewResolver(srv.URL, store)
	require.Equal(t, StateAuthenticatedNoBusiness, r.Resolve(context.Background()).State)

	backend.business = &Business{ID: "b1", UserID: "u1", Name: "Salão X", Niche: "salao_beleza", CreatedAt: time.Now()}
	snap := r.Refresh(context.Background())
	require.Equal(t, StateAuthenticatedWithBusiness, snap.State)
}

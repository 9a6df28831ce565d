package client

import (
	"context"
	"sync"
)

// State is the observable session state derived by the Resolver.
type State int

const (
	// StateLoading means a resolution cycle is in flight for a stored token.
	StateLoading State = iota
	// StateUnauthenticated means no valid session exists.
	StateUnauthenticated
	// StateAuthenticatedNoBusiness means the user is signed in but has not
	// completed onboarding.
	StateAuthenticatedNoBusiness
	// StateAuthenticatedWithBusiness means the user is signed in and owns a
	// business profile.
	StateAuthenticatedWithBusiness
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticatedNoBusiness:
		return "authenticated_no_business"
	case StateAuthenticatedWithBusiness:
		return "authenticated_with_business"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the session at one point in time.
// Business is only meaningful when User is non-nil.
type Snapshot struct {
	State    State
	User     *User
	Business *Business
}

// Observer receives session snapshots as the Resolver publishes transitions.
// Observers run synchronously on the goroutine that caused the transition
// and must not call back into the Resolver.
type Observer func(Snapshot)

// Resolver owns the derived session state. It is the single writer: views
// and guards read snapshots or subscribe, and mutate only through the
// operations below. Every resolution cycle is tagged with the token it was
// issued for; results whose token no longer matches the current one are
// discarded, so a slow resolution can never overwrite state derived for a
// newer credential.
type Resolver struct {
	mu        sync.Mutex
	store     TokenStore
	api       *Client
	loading   bool
	user      *User
	business  *Business
	observers map[int]Observer
	nextObs   int
}

// NewResolver builds a resolver over the API at baseURL using the given
// token store. With a stored token the initial state is Loading and the
// caller should run Resolve; without one it is Unauthenticated immediately
// and no network call is ever issued.
func NewResolver(baseURL string, store TokenStore) *Resolver {
	token, ok := store.Get()
	if !ok {
		token = ""
	}
	return &Resolver{
		store:     store,
		api:       New(baseURL, token),
		loading:   ok,
		observers: make(map[int]Observer),
	}
}

// API returns the client carrying the current credential. Rebuilt, never
// mutated, on every token change.
func (r *Resolver) API() *Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.api
}

// Snapshot returns the current session view.
func (r *Resolver) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Subscribe registers an observer for state transitions and returns its
// unsubscribe function. The observer is not called with the current state.
func (r *Resolver) Subscribe(obs Observer) func() {
	r.mu.Lock()
	id := r.nextObs
	r.nextObs++
	r.observers[id] = obs
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.observers, id)
		r.mu.Unlock()
	}
}

// Resolve runs one resolution cycle for the current token: whoami, then the
// business profile. Whoami failure of any kind invalidates the session and
// clears the stored token. A business fetch failure of any kind is swallowed
// and read as "onboarding not done"; it never invalidates the user.
func (r *Resolver) Resolve(ctx context.Context) Snapshot {
	r.mu.Lock()
	api := r.api
	r.mu.Unlock()

	if api.Token() == "" {
		return r.apply(func() { r.loading = false })
	}

	user, err := api.Me(ctx)
	if err != nil {
		return r.finish(api.Token(), func() {
			_ = r.store.Clear()
			r.api = api.WithToken("")
			r.user = nil
			r.business = nil
		})
	}

	business, err := api.GetBusiness(ctx)
	if err != nil {
		business = nil
	}

	return r.finish(api.Token(), func() {
		r.user = user
		r.business = business
	})
}

// finish applies a resolution outcome unless the token changed while the
// cycle was in flight, in which case the result is dropped unpublished.
func (r *Resolver) finish(token string, mutate func()) Snapshot {
	r.mu.Lock()
	if r.api.Token() != token {
		defer r.mu.Unlock()
		return r.snapshotLocked()
	}
	mutate()
	r.loading = false
	snap, observers := r.transitionLocked()
	r.mu.Unlock()

	notify(snap, observers)
	return snap
}

// apply runs a state mutation and publishes the resulting snapshot.
func (r *Resolver) apply(mutate func()) Snapshot {
	r.mu.Lock()
	mutate()
	snap, observers := r.transitionLocked()
	r.mu.Unlock()

	notify(snap, observers)
	return snap
}

// Login exchanges credentials for a token, stores it, and runs a fresh
// resolution cycle.
func (r *Resolver) Login(ctx context.Context, email, password string) (Snapshot, error) {
	body := map[string]string{"email": email, "password": password}
	return r.authenticate(ctx, "/auth/login", body)
}

// Register creates an account, stores the returned token, and runs a fresh
// resolution cycle.
func (r *Resolver) Register(ctx context.Context, name, email, password string) (Snapshot, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	return r.authenticate(ctx, "/auth/register", body)
}

func (r *Resolver) authenticate(ctx context.Context, path string, body map[string]string) (Snapshot, error) {
	api := r.API()

	var resp tokenResponse
	if err := api.Post(ctx, path, body, &resp); err != nil {
		return r.Snapshot(), err
	}

	if err := r.store.Set(resp.AccessToken); err != nil {
		return r.Snapshot(), err
	}

	r.apply(func() {
		r.api = r.api.WithToken(resp.AccessToken)
		r.user = nil
		r.business = nil
		r.loading = true
	})

	return r.Resolve(ctx), nil
}

// Logout clears the stored token and the derived state synchronously. It is
// idempotent and performs no network call.
func (r *Resolver) Logout() {
	_ = r.store.Clear()

	r.apply(func() {
		r.api = r.api.WithToken("")
		r.user = nil
		r.business = nil
		r.loading = false
	})
}

// CreateBusiness completes onboarding. On success the held business is
// replaced directly; no re-resolution happens.
func (r *Resolver) CreateBusiness(ctx context.Context, input BusinessInput) (*Business, error) {
	business, err := r.API().CreateBusiness(ctx, input)
	if err != nil {
		return nil, err
	}
	r.apply(func() { r.business = business })
	return business, nil
}

// UpdateBusiness rewrites the profile and swaps the held value in place.
func (r *Resolver) UpdateBusiness(ctx context.Context, input BusinessInput) (*Business, error) {
	business, err := r.API().UpdateBusiness(ctx, input)
	if err != nil {
		return nil, err
	}
	r.apply(func() { r.business = business })
	return business, nil
}

// Refresh re-runs the whoami plus business cycle on demand.
func (r *Resolver) Refresh(ctx context.Context) Snapshot {
	r.mu.Lock()
	if r.api.Token() == "" {
		defer r.mu.Unlock()
		return r.snapshotLocked()
	}
	r.mu.Unlock()

	r.apply(func() { r.loading = true })
	return r.Resolve(ctx)
}

func (r *Resolver) snapshotLocked() Snapshot {
	snap := Snapshot{User: r.user, Business: r.business}
	switch {
	case r.loading:
		snap.State = StateLoading
	case r.user == nil:
		snap.State = StateUnauthenticated
	case r.business == nil:
		snap.State = StateAuthenticatedNoBusiness
	default:
		snap.State = StateAuthenticatedWithBusiness
	}
	return snap
}

func (r *Resolver) transitionLocked() (Snapshot, []Observer) {
	snap := r.snapshotLocked()
	observers := make([]Observer, 0, len(r.observers))
	for _, obs := range r.observers {
		observers = append(observers, obs)
	}
	return snap, observers
}

func notify(snap Snapshot, observers []Observer) {
	for _, obs := range observers {
		obs(snap)
	}
}

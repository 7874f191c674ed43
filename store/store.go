// Package store mirrors the marketplace client's operations into shared
// observable state for UI layers: the last result of each operation, a single
// "any request in flight" flag, and a single last-error slot cleared
// explicitly by the caller. Every error is recorded and then returned to the
// caller unchanged; the store never swallows failures.
package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	client "github.com/extmarket/client-go"
)

// Store is a thin state mirror over *client.Client. All methods are safe for
// concurrent use.
type Store struct {
	client *client.Client

	mu         sync.RWMutex
	inflight   int
	lastErr    error
	extensions *client.ExtensionList
	extension  *client.Extension
	categories []client.Category
	versions   []client.Version
	reviews    *client.ReviewList
	download   *client.Download
	health     *client.Health
	subs       map[uuid.UUID]func()
}

// New wraps an already-constructed client.
func New(c *client.Client) *Store {
	return &Store{client: c, subs: make(map[uuid.UUID]func())}
}

// --------------------------------------------------------------------
// Load operations - one per client operation
// --------------------------------------------------------------------

// LoadExtensions fetches a catalog page and mirrors it into the store.
func (s *Store) LoadExtensions(ctx context.Context, params *client.ListExtensionsParams) (*client.ExtensionList, error) {
	s.begin()
	res, err := s.client.ListExtensions(ctx, params)
	s.record(err, func() { s.extensions = res })
	return res, err
}

// LoadExtension fetches one extension's detail record and mirrors it.
func (s *Store) LoadExtension(ctx context.Context, slug string) (*client.Extension, error) {
	s.begin()
	res, err := s.client.GetExtension(ctx, slug)
	s.record(err, func() { s.extension = res })
	return res, err
}

// LoadCategories fetches the category list and mirrors it.
func (s *Store) LoadCategories(ctx context.Context) ([]client.Category, error) {
	s.begin()
	res, err := s.client.ListCategories(ctx)
	s.record(err, func() { s.categories = res })
	return res, err
}

// LoadVersions fetches an extension's version history and mirrors it.
func (s *Store) LoadVersions(ctx context.Context, slug string) ([]client.Version, error) {
	s.begin()
	res, err := s.client.ListVersions(ctx, slug)
	s.record(err, func() { s.versions = res })
	return res, err
}

// LoadReviews fetches a page of reviews and mirrors it.
func (s *Store) LoadReviews(ctx context.Context, slug string, params *client.ListReviewsParams) (*client.ReviewList, error) {
	s.begin()
	res, err := s.client.ListReviews(ctx, slug, params)
	s.record(err, func() { s.reviews = res })
	return res, err
}

// LoadDownloadURL fetches a signed download descriptor and mirrors it. An
// empty version picks the latest release.
func (s *Store) LoadDownloadURL(ctx context.Context, slug, version string) (*client.Download, error) {
	s.begin()
	res, err := s.client.GetDownloadURL(ctx, slug, version)
	s.record(err, func() { s.download = res })
	return res, err
}

// LoadHealth fetches the service status record and mirrors it.
func (s *Store) LoadHealth(ctx context.Context) (*client.Health, error) {
	s.begin()
	res, err := s.client.Health(ctx)
	s.record(err, func() { s.health = res })
	return res, err
}

// --------------------------------------------------------------------
// State snapshots
// --------------------------------------------------------------------

// Loading reports whether any request is currently in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

// Err returns the last recorded error, or nil. It stays set until ClearErr.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// ClearErr empties the error slot.
func (s *Store) ClearErr() {
	s.mu.Lock()
	s.lastErr = nil
	s.mu.Unlock()
	s.notify()
}

// Extensions returns the last loaded catalog page, or nil.
func (s *Store) Extensions() *client.ExtensionList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.extensions
}

// Extension returns the last loaded detail record, or nil.
func (s *Store) Extension() *client.Extension {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.extension
}

// Categories returns the last loaded category list, or nil.
func (s *Store) Categories() []client.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories
}

// Versions returns the last loaded version history, or nil.
func (s *Store) Versions() []client.Version {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.versions
}

// Reviews returns the last loaded review page, or nil.
func (s *Store) Reviews() *client.ReviewList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reviews
}

// Download returns the last loaded download descriptor, or nil.
func (s *Store) Download() *client.Download {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.download
}

// Health returns the last loaded status record, or nil.
func (s *Store) Health() *client.Health {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.health
}

// --------------------------------------------------------------------
// Change notification
// --------------------------------------------------------------------

// Subscribe registers fn to run after every state change and returns a
// cancel function removing the subscription. Callbacks run synchronously on
// the mutating goroutine and must not call back into the Store's Load
// methods.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	id := uuid.New()
	s.mu.Lock()
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.RLock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}

// begin marks a request in flight.
func (s *Store) begin() {
	s.mu.Lock()
	s.inflight++
	s.mu.Unlock()
	s.notify()
}

// record finishes a request: on success apply mirrors the result (called
// with the lock held), on failure the error lands in the shared error slot.
func (s *Store) record(err error, apply func()) {
	s.mu.Lock()
	s.inflight--
	if err != nil {
		s.lastErr = err
	} else if apply != nil {
		apply()
	}
	s.mu.Unlock()
	s.notify()
}

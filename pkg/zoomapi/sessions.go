package zoomapi

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/oszoom/pkg/binding"
	"github.com/dmitrymomot/oszoom/pkg/logger"
	"github.com/dmitrymomot/oszoom/pkg/osdetect"
	"github.com/dmitrymomot/oszoom/pkg/style"
	"github.com/dmitrymomot/oszoom/pkg/zoom"
)

// Session is one page context: a controller rendering into its own
// in-memory document.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	ctrl   *binding.Controller
	doc    *style.MemoryDocument
	result osdetect.Result
}

// Controller returns the session controller.
func (s *Session) Controller() *binding.Controller { return s.ctrl }

// Stylesheet returns the injected stylesheet, or "" when none is present.
func (s *Session) Stylesheet() string {
	css, _ := s.doc.Style(style.ElementID)
	return css
}

// SessionView is the JSON form of a session.
type SessionView struct {
	ID         string          `json:"id"`
	Result     osdetect.Result `json:"result"`
	State      zoom.State      `json:"state"`
	Factor     string          `json:"factor"`
	Stylesheet string          `json:"stylesheet,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// View snapshots the session.
func (s *Session) View() SessionView {
	factor, ok := s.doc.RootProperty(style.FactorProperty)
	if !ok {
		factor = style.FormatFactor(zoom.DefaultZoom)
	}
	return SessionView{
		ID:         s.ID.String(),
		Result:     s.result,
		State:      s.ctrl.State(),
		Factor:     factor,
		Stylesheet: s.Stylesheet(),
		CreatedAt:  s.CreatedAt,
	}
}

// Store keeps live sessions in memory, bounded by a maximum count.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	max      int
	log      *slog.Logger
	now      func() time.Time
}

// NewStore returns a Store holding at most limit sessions; limit <= 0 means
// unbounded.
func NewStore(limit int, log *slog.Logger) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		max:      limit,
		log:      logger.OrDiscard(log),
		now:      time.Now,
	}
}

// Create builds a controller for cfg over env, runs its Init and stores the
// session.
func (s *Store) Create(ctx context.Context, cfg zoom.Config, env osdetect.Environment, opts ...binding.Option) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.max > 0 && len(s.sessions) >= s.max {
		return nil, ErrTooManySessions
	}

	doc := style.NewMemoryDocument()
	ctrl := binding.New(cfg, env, doc, opts...)
	result, err := ctrl.Init(ctx)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		ID:        uuid.New(),
		CreatedAt: s.now().UTC(),
		ctrl:      ctrl,
		doc:       doc,
		result:    result,
	}
	s.sessions[sess.ID] = sess
	s.log.DebugContext(ctx, "session created",
		logger.SessionID(sess.ID.String()),
		logger.OS(result.OS),
	)
	return sess, nil
}

// Get returns the session with id.
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Delete disposes and removes the session with id.
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	sess.ctrl.Dispose()
	return nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// IDs returns live session ids in sorted order.
func (s *Store) IDs() []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.SortedFunc(maps.Keys(s.sessions), func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})
}

// Close disposes every session. It matches httpserver cleanup hooks.
func (s *Store) Close(context.Context) error {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[uuid.UUID]*Session)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.ctrl.Dispose()
	}
	s.log.Debug("sessions closed", slog.Int("count", len(sessions)))
	return nil
}

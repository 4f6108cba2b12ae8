// internal/core/services/manager.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/listview"
	"github.com/ammerola/meta4-erp/internal/core/ports"
)

// ManagerConfig bounds the mounted sessions
type ManagerConfig struct {
	IdleTimeout   time.Duration
	MaxSessions   int
	SweepInterval time.Duration
}

// ViewManager is the registry of mounted view sessions
type ViewManager struct {
	views  map[string]viewBinding
	warmer ports.CollectionWarmer
	cfg    ManagerConfig
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]session
}

// Statically assert that *ViewManager implements the ViewService interface.
var _ ports.ViewService = (*ViewManager)(nil)

// NewViewManager creates a new view manager. warmer may be nil when the
// record source is not cached.
func NewViewManager(
	source ports.RecordSource,
	projects ports.ProjectStore,
	warmer ports.CollectionWarmer,
	cfg ManagerConfig,
	logger *slog.Logger,
) *ViewManager {
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = 15 * time.Minute
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 1000
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}

	return &ViewManager{
		views:    buildViews(source, projects),
		warmer:   warmer,
		cfg:      cfg,
		logger:   logger.With(slog.String("service", "views")),
		sessions: make(map[string]session),
	}
}

func (m *ViewManager) binding(view string) (viewBinding, error) {
	b, ok := m.views[view]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownView, view)
	}
	return b, nil
}

// Mount starts a session for view and waits for its first load while ctx allows
func (m *ViewManager) Mount(ctx context.Context, view string, params ports.ListParams) (*ports.Snapshot, error) {
	b, err := m.binding(view)
	if err != nil {
		return nil, err
	}

	state, err := b.InitialState(params)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if len(m.sessions) >= m.cfg.MaxSessions {
		m.mu.Unlock()
		return nil, domain.ErrTooManySessions
	}
	id := uuid.New().String()
	sess := b.Mount(ctx, id, state, m.invalidator(b), m.logger)
	m.sessions[id] = sess
	count := len(m.sessions)
	m.mu.Unlock()

	m.logger.InfoContext(ctx, "view mounted",
		slog.String("session_id", id),
		slog.String("view", view),
		slog.Int("sessions", count))

	snap, err := sess.Await(ctx)
	if err != nil && (errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)) {
		// the fetch keeps running in the session; report it as loading
		return sess.Snapshot(context.WithoutCancel(ctx))
	}
	return snap, err
}

func (m *ViewManager) session(id string) (session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("view session %s: %w", id, domain.ErrNotFound)
	}
	return sess, nil
}

// Snapshot returns the current rendering of a session
func (m *ViewManager) Snapshot(ctx context.Context, sessionID string) (*ports.Snapshot, error) {
	sess, err := m.session(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Snapshot(ctx)
}

// Dispatch applies an event to a session
func (m *ViewManager) Dispatch(ctx context.Context, sessionID string, event listview.Event) (*ports.Snapshot, error) {
	sess, err := m.session(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Dispatch(ctx, event)
}

// Refresh refetches a session's collection keeping its state
func (m *ViewManager) Refresh(ctx context.Context, sessionID string) (*ports.Snapshot, error) {
	sess, err := m.session(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Refresh(ctx)
}

// Unmount closes a session. Any fetch still in flight is discarded.
func (m *ViewManager) Unmount(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	sess, ok := m.sessions[sessionID]
	delete(m.sessions, sessionID)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("view session %s: %w", sessionID, domain.ErrNotFound)
	}

	sess.Close()
	m.logger.InfoContext(ctx, "view unmounted", slog.String("session_id", sessionID))
	return nil
}

// List runs one pipeline pass over freshly loaded records
func (m *ViewManager) List(ctx context.Context, view string, params ports.ListParams) (*ports.Snapshot, error) {
	b, err := m.binding(view)
	if err != nil {
		return nil, err
	}
	state, err := b.InitialState(params)
	if err != nil {
		return nil, err
	}
	return b.List(ctx, state, m.logger)
}

// Export returns every record of view matching params
func (m *ViewManager) Export(ctx context.Context, view string, params ports.ListParams) (*ports.ExportTable, error) {
	b, err := m.binding(view)
	if err != nil {
		return nil, err
	}
	state, err := b.InitialState(params)
	if err != nil {
		return nil, err
	}
	return b.Export(ctx, state, m.logger)
}

// Count returns the number of mounted sessions
func (m *ViewManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Run sweeps idle sessions until ctx is cancelled, then unmounts everything
func (m *ViewManager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.Close()
			return
		case now := <-ticker.C:
			m.Sweep(now)
		}
	}
}

// Sweep unmounts sessions idle since before now minus the idle timeout
func (m *ViewManager) Sweep(now time.Time) int {
	cutoff := now.Add(-m.cfg.IdleTimeout)

	m.mu.Lock()
	var idle []session
	for id, sess := range m.sessions {
		if sess.LastUsed().Before(cutoff) {
			idle = append(idle, sess)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, sess := range idle {
		sess.Close()
	}
	if len(idle) > 0 {
		m.logger.Info("swept idle view sessions", slog.Int("count", len(idle)))
	}
	return len(idle)
}

// Close unmounts every session and returns once their loops have stopped
func (m *ViewManager) Close() {
	m.mu.Lock()
	all := make([]session, 0, len(m.sessions))
	for id, sess := range m.sessions {
		all = append(all, sess)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, sess := range all {
		sess.Close()
	}
}

// invalidator drops the cached collections of a view before a refresh
func (m *ViewManager) invalidator(b viewBinding) func(ctx context.Context) error {
	if m.warmer == nil || len(b.Collections()) == 0 {
		return nil
	}
	return func(ctx context.Context) error {
		var errs []error
		for _, c := range b.Collections() {
			if err := m.warmer.Invalidate(ctx, c); err != nil {
				errs = append(errs, fmt.Errorf("invalidate %s: %w", c, err))
			}
		}
		return errors.Join(errs...)
	}
}

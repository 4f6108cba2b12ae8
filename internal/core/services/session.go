// internal/core/services/session.go
package services

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/listview"
	"github.com/ammerola/meta4-erp/internal/core/ports"
)

type requestKind int

const (
	reqSnapshot requestKind = iota
	reqAwait
	reqDispatch
	reqRefresh
)

type request struct {
	kind  requestKind
	event listview.Event
	reply chan reply
}

type reply struct {
	snap *ports.Snapshot
	err  error
}

type loadResult[R domain.Record] struct {
	seq     int
	records []R
	err     error
}

// session is the non-generic handle the manager keeps per mounted view
type session interface {
	ID() string
	Snapshot(ctx context.Context) (*ports.Snapshot, error)
	Await(ctx context.Context) (*ports.Snapshot, error)
	Dispatch(ctx context.Context, e listview.Event) (*ports.Snapshot, error)
	Refresh(ctx context.Context) (*ports.Snapshot, error)
	LastUsed() time.Time
	Close()
}

// ViewSession owns one list view controller. A single event loop goroutine
// is the only reader and writer of the controller; callers talk to it over
// channels. Fetches run bound to the session context and deliver their
// result to the loop, so a result arriving after Close has no receiver.
type ViewSession[R domain.Record] struct {
	id         string
	view       string
	schema     listview.Schema[R]
	load       func(ctx context.Context) ([]R, error)
	invalidate func(ctx context.Context) error
	logger     *slog.Logger

	ctx      context.Context
	cancel   context.CancelFunc
	requests chan request
	results  chan loadResult[R]
	done     chan struct{}
	lastUsed atomic.Int64
}

var _ session = (*ViewSession[domain.Item])(nil)

// loopState is owned by the event loop goroutine
type loopState[R domain.Record] struct {
	status     ports.LoadStatus
	refreshing bool
	err        error
	state      listview.State
	ctrl       *listview.Controller[R]
	rejected   int
	loadedAt   time.Time
	seq        int
	waiters    []chan reply
}

// mountSession starts the session loop and the first fetch. parent supplies
// request-scoped values only; the session lives until Close.
func mountSession[R domain.Record](
	parent context.Context,
	id string,
	def *viewDef[R],
	state listview.State,
	invalidate func(ctx context.Context) error,
	logger *slog.Logger,
) *ViewSession[R] {
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))

	s := &ViewSession[R]{
		id:         id,
		view:       def.name,
		schema:     def.schema,
		load:       def.load,
		invalidate: invalidate,
		logger:     logger.With(slog.String("session_id", id), slog.String("view", def.name)),
		ctx:        ctx,
		cancel:     cancel,
		requests:   make(chan request),
		results:    make(chan loadResult[R]),
		done:       make(chan struct{}),
	}
	s.touch()

	go s.run(state)
	return s
}

func (s *ViewSession[R]) ID() string { return s.id }

func (s *ViewSession[R]) LastUsed() time.Time {
	return time.Unix(0, s.lastUsed.Load())
}

func (s *ViewSession[R]) touch() {
	s.lastUsed.Store(time.Now().UnixNano())
}

// Snapshot returns the current rendering without waiting for a load
func (s *ViewSession[R]) Snapshot(ctx context.Context) (*ports.Snapshot, error) {
	return s.call(ctx, request{kind: reqSnapshot})
}

// Await returns the rendering once no load is in flight
func (s *ViewSession[R]) Await(ctx context.Context) (*ports.Snapshot, error) {
	return s.call(ctx, request{kind: reqAwait})
}

// Dispatch applies an interaction event
func (s *ViewSession[R]) Dispatch(ctx context.Context, e listview.Event) (*ports.Snapshot, error) {
	return s.call(ctx, request{kind: reqDispatch, event: e})
}

// Refresh refetches the collection keeping the interaction state, and
// returns once the refetch has completed
func (s *ViewSession[R]) Refresh(ctx context.Context) (*ports.Snapshot, error) {
	return s.call(ctx, request{kind: reqRefresh})
}

// Close unmounts the session and waits for its loop to exit
func (s *ViewSession[R]) Close() {
	s.cancel()
	<-s.done
}

func (s *ViewSession[R]) call(ctx context.Context, req request) (*ports.Snapshot, error) {
	s.touch()
	req.reply = make(chan reply, 1)

	select {
	case s.requests <- req:
	case <-s.done:
		return nil, domain.ErrSessionClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case r := <-req.reply:
		return r.snap, r.err
	case <-s.done:
		return nil, domain.ErrSessionClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *ViewSession[R]) run(initial listview.State) {
	defer close(s.done)

	st := &loopState[R]{
		status: ports.StatusLoading,
		state:  initial,
	}
	s.startLoad(st, false)

	for {
		select {
		case <-s.ctx.Done():
			for _, w := range st.waiters {
				w <- reply{err: domain.ErrSessionClosed}
			}
			s.logger.Debug("view session unmounted")
			return

		case res := <-s.results:
			if res.seq != st.seq {
				continue
			}
			s.applyLoad(st, res)
			snap := s.snapshot(st)
			for _, w := range st.waiters {
				w <- reply{snap: snap}
			}
			st.waiters = nil

		case req := <-s.requests:
			s.handle(st, req)
		}
	}
}

func (s *ViewSession[R]) handle(st *loopState[R], req request) {
	switch req.kind {
	case reqSnapshot:
		req.reply <- reply{snap: s.snapshot(st)}

	case reqAwait:
		if st.status == ports.StatusLoading || st.refreshing {
			st.waiters = append(st.waiters, req.reply)
			return
		}
		req.reply <- reply{snap: s.snapshot(st)}

	case reqDispatch:
		if err := s.dispatch(st, req.event); err != nil {
			req.reply <- reply{err: err}
			return
		}
		req.reply <- reply{snap: s.snapshot(st)}

	case reqRefresh:
		if !st.refreshing && st.status != ports.StatusLoading {
			s.startLoad(st, true)
		}
		st.waiters = append(st.waiters, req.reply)
	}
}

// dispatch applies e to the controller, or to the pending state while the
// collection has not loaded yet
func (s *ViewSession[R]) dispatch(st *loopState[R], e listview.Event) error {
	if st.ctrl != nil {
		_, err := st.ctrl.Dispatch(e)
		return err
	}

	next, err := st.state.Apply(e, 0)
	if err != nil {
		return err
	}
	if err := s.schema.ValidateState(next); err != nil {
		return err
	}
	st.state = next
	return nil
}

func (s *ViewSession[R]) startLoad(st *loopState[R], refresh bool) {
	st.seq++
	seq := st.seq
	if refresh {
		st.refreshing = true
	}
	if st.ctrl == nil {
		st.status = ports.StatusLoading
	}

	go func() {
		if refresh && s.invalidate != nil {
			if err := s.invalidate(s.ctx); err != nil {
				s.logger.Warn("failed to invalidate cached collection",
					slog.String("error", err.Error()))
			}
		}

		records, err := s.load(s.ctx)

		select {
		case s.results <- loadResult[R]{seq: seq, records: records, err: err}:
		case <-s.ctx.Done():
		}
	}()
}

func (s *ViewSession[R]) applyLoad(st *loopState[R], res loadResult[R]) {
	st.refreshing = false

	if res.err != nil {
		s.logger.Error("failed to load records", slog.String("error", res.err.Error()))
		st.err = res.err
		st.status = ports.StatusFailed
		return
	}

	records, rejected := validateRecords(res.records, s.logger)

	if st.ctrl == nil {
		ctrl, err := listview.NewController(s.schema, records, st.state)
		if err != nil {
			st.err = err
			st.status = ports.StatusFailed
			return
		}
		st.ctrl = ctrl
	} else if _, err := st.ctrl.SetRecords(records); err != nil {
		st.err = err
		st.status = ports.StatusFailed
		return
	}

	st.err = nil
	st.status = ports.StatusLoaded
	st.rejected = rejected
	st.loadedAt = time.Now().UTC()
	st.state = st.ctrl.State()
}

func (s *ViewSession[R]) snapshot(st *loopState[R]) *ports.Snapshot {
	snap := &ports.Snapshot{
		SessionID:  s.id,
		View:       s.view,
		Status:     st.status,
		Refreshing: st.refreshing,
		Rejected:   st.rejected,
	}
	if st.err != nil {
		snap.Error = errorMessage(st.err)
	}
	if !st.loadedAt.IsZero() {
		loadedAt := st.loadedAt
		snap.LoadedAt = &loadedAt
	}

	if st.ctrl == nil {
		snap.State = st.state
		snap.Records = []domain.Record{}
		snap.Categories = s.schema.CategoryNames()
		snap.SortKeys = s.schema.SortKeys()
		snap.Pagination = ports.PageInfo{Page: st.state.Page, PageSize: st.state.PageSize}
		return snap
	}

	fillSnapshot(snap, s.schema, st.ctrl.View())
	return snap
}

// fillSnapshot copies a rendered view into the wire snapshot
func fillSnapshot[R domain.Record](snap *ports.Snapshot, schema listview.Schema[R], view listview.View[R]) {
	records := make([]domain.Record, 0, len(view.Records))
	for _, r := range view.Records {
		records = append(records, r)
	}

	snap.State = view.State
	snap.Records = records
	snap.TotalMatched = view.TotalMatched
	snap.TotalRecords = view.TotalRecords
	snap.Empty = view.Empty
	snap.Categories = append(schema.CategoryNames(), view.CategoryOptions...)
	snap.SortKeys = schema.SortKeys()
	snap.Pagination = ports.PageInfo{
		Page:        view.State.Page,
		PageSize:    view.State.PageSize,
		TotalPages:  view.TotalPages,
		From:        view.From,
		To:          view.To,
		HasPrevious: view.HasPrevious,
		HasNext:     view.HasNext,
	}
}

// validateRecords drops records without a usable identifier and logs them
func validateRecords[R domain.Record](records []R, logger *slog.Logger) ([]R, int) {
	kept, rejected := domain.ValidateRecords(records)
	for _, r := range rejected {
		logger.Warn("dropping malformed record",
			slog.Int("index", r.Index),
			slog.String("id", r.ID),
			slog.String("kind", string(r.Kind)),
			slog.String("reason", r.Reason))
	}
	return kept, len(rejected)
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return domain.ErrUnauthorized.Error()
	case errors.Is(err, domain.ErrRetrieval):
		return domain.ErrRetrieval.Error()
	default:
		return err.Error()
	}
}

// internal/core/listview/controller.go
package listview

import (
	"fmt"

	"github.com/ammerola/meta4-erp/internal/core/domain"
)

// EventType names an interaction event
type EventType string

const (
	EventSetSearch    EventType = "set_search"
	EventSetCategory  EventType = "set_category"
	EventToggleSort   EventType = "toggle_sort"
	EventSetSort      EventType = "set_sort"
	EventSetPageSize  EventType = "set_page_size"
	EventGoToPage     EventType = "go_to_page"
	EventFirstPage    EventType = "first_page"
	EventPreviousPage EventType = "previous_page"
	EventNextPage     EventType = "next_page"
	EventLastPage     EventType = "last_page"
)

// Event is one interaction. Only the fields relevant to Type are read.
type Event struct {
	Type      EventType      `json:"type"`
	Text      string         `json:"text,omitempty"`
	Key       domain.SortKey `json:"key,omitempty"`
	Direction Direction      `json:"direction,omitempty"`
	Size      int            `json:"size,omitempty"`
	Page      int            `json:"page,omitempty"`
}

func SetSearch(text string) Event         { return Event{Type: EventSetSearch, Text: text} }
func SetCategory(category string) Event   { return Event{Type: EventSetCategory, Text: category} }
func ToggleSort(key domain.SortKey) Event { return Event{Type: EventToggleSort, Key: key} }
func SetPageSize(size int) Event          { return Event{Type: EventSetPageSize, Size: size} }
func GoToPage(page int) Event             { return Event{Type: EventGoToPage, Page: page} }
func FirstPage() Event                    { return Event{Type: EventFirstPage} }
func PreviousPage() Event                 { return Event{Type: EventPreviousPage} }
func NextPage() Event                     { return Event{Type: EventNextPage} }
func LastPage() Event                     { return Event{Type: EventLastPage} }

func SetSort(key domain.SortKey, dir Direction) Event {
	return Event{Type: EventSetSort, Key: key, Direction: dir}
}

// State is the interaction state of one list view
type State struct {
	Search   string    `json:"search"`
	Category string    `json:"category"`
	Sort     SortState `json:"sort"`
	PageSize int       `json:"page_size"`
	Page     int       `json:"page"`
}

// Apply is the pure transition old state + event -> new state. totalPages
// is the page count of the current filtered collection; navigation past it
// is disabled and leaves the state unchanged. Every change to search,
// category, sort or page size lands on page 1.
func (s State) Apply(e Event, totalPages int) (State, error) {
	next := s
	last := max(totalPages, 1)

	switch e.Type {
	case EventSetSearch:
		next.Search = e.Text
		next.Page = 1
	case EventSetCategory:
		next.Category = e.Text
		if next.Category == "" {
			next.Category = CategoryAll
		}
		next.Page = 1
	case EventToggleSort:
		if e.Key == "" {
			return s, fmt.Errorf("%w: toggle_sort requires a key", domain.ErrInvalidEvent)
		}
		next.Sort = s.Sort.Toggle(e.Key)
		next.Page = 1
	case EventSetSort:
		dir := e.Direction
		if dir == "" {
			dir = DirectionAsc
		}
		if !dir.Valid() {
			return s, fmt.Errorf("%w: %q", domain.ErrInvalidDirection, e.Direction)
		}
		next.Sort = SortState{Key: e.Key, Direction: dir}
		if e.Key == "" {
			next.Sort.Direction = DirectionNone
		}
		next.Page = 1
	case EventSetPageSize:
		if !ValidPageSize(e.Size) {
			return s, fmt.Errorf("%w: %d", domain.ErrInvalidPageSize, e.Size)
		}
		next.PageSize = e.Size
		next.Page = 1
	case EventGoToPage:
		if e.Page < 1 || e.Page > last {
			return s, fmt.Errorf("%w: page %d of %d", domain.ErrPageOutOfRange, e.Page, totalPages)
		}
		next.Page = e.Page
	case EventFirstPage:
		next.Page = 1
	case EventPreviousPage:
		if s.Page > 1 {
			next.Page = s.Page - 1
		}
	case EventNextPage:
		if s.Page < last {
			next.Page = s.Page + 1
		}
	case EventLastPage:
		next.Page = last
	default:
		return s, fmt.Errorf("%w: %q", domain.ErrInvalidEvent, e.Type)
	}

	return next, nil
}

// EmptyReason distinguishes an empty source from filters excluding everything
type EmptyReason string

const (
	EmptyNone      EmptyReason = ""
	EmptyNoRecords EmptyReason = "no-records"
	EmptyNoMatches EmptyReason = "no-matches"
)

// View is the rendered result of one pipeline run
type View[R domain.Record] struct {
	State        State
	Records      []R
	TotalMatched int
	TotalRecords int
	// From and To are the 1-based display range, both 0 for an empty window
	From        int
	To          int
	TotalPages  int
	HasPrevious bool
	HasNext     bool
	Empty       EmptyReason
	// CategoryOptions are the dynamic categories present in the source
	CategoryOptions []string
}

// Matches runs filter then sort and returns every matching record
func Matches[R domain.Record](schema Schema[R], records []R, state State) ([]R, error) {
	filtered, err := Filter(records, schema, state.Search, state.Category)
	if err != nil {
		return nil, err
	}
	return Sort(filtered, schema, state.Sort)
}

// Compute runs filter, sort and paginate for state. A page beyond the
// matched collection is clamped to its last page; the returned view
// carries the state actually rendered.
func Compute[R domain.Record](schema Schema[R], records []R, state State) (View[R], error) {
	if err := schema.ValidateState(state); err != nil {
		return View[R]{}, err
	}

	matched, err := Matches(schema, records, state)
	if err != nil {
		return View[R]{}, err
	}

	total := TotalPages(len(matched), state.PageSize)
	state.Page = min(state.Page, max(total, 1))

	page, err := Paginate(matched, state.PageSize, state.Page)
	if err != nil {
		return View[R]{}, err
	}

	view := View[R]{
		State:           state,
		Records:         page.Records,
		TotalMatched:    len(matched),
		TotalRecords:    len(records),
		TotalPages:      page.TotalPages,
		HasPrevious:     page.HasPrevious(),
		HasNext:         page.HasNext(),
		CategoryOptions: schema.CategoryOptions(records),
	}

	if len(page.Records) > 0 {
		view.From = page.StartIndex + 1
		view.To = page.EndIndex
	}

	switch {
	case len(records) == 0:
		view.Empty = EmptyNoRecords
	case len(matched) == 0:
		view.Empty = EmptyNoMatches
	}

	return view, nil
}

// ComputePage is Compute for a page chosen by the caller up front. A page
// beyond the matched collection is rejected instead of clamped.
func ComputePage[R domain.Record](schema Schema[R], records []R, state State) (View[R], error) {
	view, err := Compute(schema, records, state)
	if err != nil {
		return View[R]{}, err
	}
	if view.State.Page != state.Page {
		return View[R]{}, fmt.Errorf("%w: page %d of %d", domain.ErrPageOutOfRange, state.Page, view.TotalPages)
	}
	return view, nil
}

// Controller binds a schema, a record collection and the interaction state.
// It is not safe for concurrent use; one owner drives it.
type Controller[R domain.Record] struct {
	schema  Schema[R]
	records []R
	state   State
	view    View[R]
}

// NewController computes the initial view for records under state
func NewController[R domain.Record](schema Schema[R], records []R, state State) (*Controller[R], error) {
	view, err := Compute(schema, records, state)
	if err != nil {
		return nil, err
	}
	return &Controller[R]{
		schema:  schema,
		records: records,
		state:   view.State,
		view:    view,
	}, nil
}

// Dispatch applies e and recomputes the pipeline. On error the controller
// is unchanged.
func (c *Controller[R]) Dispatch(e Event) (View[R], error) {
	next, err := c.state.Apply(e, c.view.TotalPages)
	if err != nil {
		return c.view, err
	}

	view, err := Compute(c.schema, c.records, next)
	if err != nil {
		return c.view, err
	}

	c.state = view.State
	c.view = view
	return view, nil
}

// SetRecords replaces the collection after a refresh. State is kept; the
// page is clamped when the new collection has fewer pages.
func (c *Controller[R]) SetRecords(records []R) (View[R], error) {
	view, err := Compute(c.schema, records, c.state)
	if err != nil {
		return c.view, err
	}

	c.records = records
	c.state = view.State
	c.view = view
	return view, nil
}

func (c *Controller[R]) State() State      { return c.state }
func (c *Controller[R]) View() View[R]     { return c.view }
func (c *Controller[R]) Records() []R      { return c.records }
func (c *Controller[R]) Schema() Schema[R] { return c.schema }

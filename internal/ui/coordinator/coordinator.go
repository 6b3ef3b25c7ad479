package coordinator

import (
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"countryexplorer/internal/domain"
	"countryexplorer/internal/eventbus"
	"countryexplorer/internal/ui/services/detail"
	"countryexplorer/internal/ui/services/navigation"
	"countryexplorer/internal/ui/services/query"
	"countryexplorer/internal/ui/services/search"
	"countryexplorer/internal/ui/services/sorting"
)

// Client is everything the UI services need from the countries API
type Client interface {
	query.DataSource
	detail.Source
}

// Options configures the coordinator
type Options struct {
	Debounce  time.Duration
	Sort      sorting.Mode
	Scheduler search.Scheduler // nil uses the wall clock
}

// Coordinator manages all UI services and their interactions
type Coordinator struct {
	// Services
	Navigation *navigation.Service
	Query      *query.Service
	Detail     *detail.Service
	Search     *search.Debouncer
	Sorting    *sorting.Service

	region string
	rows   []domain.CountrySummary
	border int // highlighted neighbour in the detail view

	sendMu sync.RWMutex
	send   func(tea.Msg)
}

// NewCoordinator creates a new coordinator with all services
func NewCoordinator(client Client, bus eventbus.EventBus, opts Options) *Coordinator {
	c := &Coordinator{
		Navigation: navigation.NewService(),
		Query:      query.NewService(client, bus),
		Detail:     detail.NewService(client, bus),
		Sorting:    sorting.NewService(opts.Sort),
	}

	var debounceOpts []search.Option
	if opts.Scheduler != nil {
		debounceOpts = append(debounceOpts, search.WithScheduler(opts.Scheduler))
	}
	c.Search = search.NewDebouncer(opts.Debounce, func(msg search.CommittedMsg) {
		c.dispatch(msg)
	}, debounceOpts...)

	return c
}

// SetSender connects debounced commits to the running program
func (c *Coordinator) SetSender(send func(tea.Msg)) {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	c.send = send
}

func (c *Coordinator) dispatch(msg tea.Msg) {
	c.sendMu.RLock()
	send := c.send
	c.sendMu.RUnlock()
	if send != nil {
		send(msg)
	}
}

// Init loads every country, or the configured region
func (c *Coordinator) Init(region string) tea.Cmd {
	return c.SelectRegion(region)
}

// SelectRegion applies a region filter; "" selects all regions
func (c *Coordinator) SelectRegion(region string) tea.Cmd {
	c.region = domain.Regions[domain.RegionIndex(region)].Key
	return c.Query.FilterByRegion(c.region)
}

// Region returns the selected region key
func (c *Coordinator) Region() string {
	return c.region
}

// Type feeds a raw search input value into the debouncer
func (c *Coordinator) Type(value string) {
	c.Search.Input(value)
}

// SubmitSearch commits the pending search term immediately
func (c *Coordinator) SubmitSearch() tea.Cmd {
	term, ok := c.Search.Flush()
	if !ok {
		return nil
	}
	return c.search(term)
}

// ClearSearch drops the search term and reloads the selected region
func (c *Coordinator) ClearSearch() tea.Cmd {
	c.Search.Reset("")
	return c.Query.FilterByRegion(c.region)
}

// SearchText returns the raw search input
func (c *Coordinator) SearchText() string {
	return c.Search.Raw()
}

// HandleCommitted issues the search for a debounced term unless newer input overtook it
func (c *Coordinator) HandleCommitted(msg search.CommittedMsg) tea.Cmd {
	if !c.Search.Accept(msg) {
		return nil
	}
	return c.search(msg.Term)
}

// search runs term, or reloads the selected region once the term is blank
func (c *Coordinator) search(term string) tea.Cmd {
	if strings.TrimSpace(term) == "" {
		return c.Query.FilterByRegion(c.region)
	}
	return c.Query.Search(term)
}

// HandleQueryResult commits a list result and refreshes the visible rows
func (c *Coordinator) HandleQueryResult(msg query.ResultMsg) bool {
	if !c.Query.Apply(msg) {
		return false
	}
	c.refreshRows()
	c.Navigation.Reset()
	return true
}

// HandleDetailResult commits a detail result
func (c *Coordinator) HandleDetailResult(msg detail.ResultMsg) bool {
	if !c.Detail.Apply(msg) {
		return false
	}
	c.border = 0
	return true
}

// OpenSelected activates the detail loader for the row under the cursor
func (c *Coordinator) OpenSelected() tea.Cmd {
	country := c.Selected()
	if country == nil {
		return nil
	}
	if country.Code == "" {
		return c.Detail.ActivateByName(country.Name.Common)
	}
	return c.Detail.Activate(country.Code)
}

// OpenBorder activates the detail loader for a neighbouring country code
func (c *Coordinator) OpenBorder(code string) tea.Cmd {
	c.border = 0
	return c.Detail.Activate(code)
}

// OpenSelectedBorder opens the highlighted neighbour of the shown country
func (c *Coordinator) OpenSelectedBorder() tea.Cmd {
	borders := c.Borders()
	if c.border < 0 || c.border >= len(borders) {
		return nil
	}
	return c.OpenBorder(borders[c.border])
}

// MoveBorder moves the neighbour highlight, wrapping at both ends
func (c *Coordinator) MoveBorder(delta int) {
	n := len(c.Borders())
	if n == 0 {
		return
	}
	c.border = ((c.border+delta)%n + n) % n
}

// BorderIndex returns the highlighted neighbour
func (c *Coordinator) BorderIndex() int {
	return c.border
}

// Borders returns the neighbour codes of the loaded country
func (c *Coordinator) Borders() []string {
	st := c.Detail.State()
	if st.Status != detail.StatusReady || st.Detail == nil {
		return nil
	}
	return st.Detail.Borders
}

// CloseDetail returns to the list
func (c *Coordinator) CloseDetail() {
	c.border = 0
	c.Detail.Deactivate()
}

// CycleSort switches to the next display order, keeping the cursor on the same country
func (c *Coordinator) CycleSort() {
	selected := c.Selected()
	c.Sorting.NextMode()
	if selected == nil {
		c.refreshRows()
		return
	}

	code := selected.Code
	c.refreshRows()
	for i := range c.rows {
		if c.rows[i].Code == code {
			c.Navigation.MoveToIndex(i)
			return
		}
	}
}

// Rows returns the committed results in display order
func (c *Coordinator) Rows() []domain.CountrySummary {
	return c.rows
}

// Selected returns the country under the cursor, or nil
func (c *Coordinator) Selected() *domain.CountrySummary {
	i := c.Navigation.GetCursor()
	if i < 0 || i >= len(c.rows) {
		return nil
	}
	return &c.rows[i]
}

// Dispose stops the debouncer and makes every in-flight result stale
func (c *Coordinator) Dispose() {
	c.Search.Dispose()
	c.Query.Dispose()
	c.Detail.Deactivate()
}

func (c *Coordinator) refreshRows() {
	c.rows = c.Sorting.Sorted(c.Query.State().Results)
	c.Navigation.SetCount(len(c.rows))
}

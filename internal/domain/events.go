package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryStarted    EventType = "QueryStarted"
	EventQueryCommitted  EventType = "QueryCommitted"
	EventQueryFailed     EventType = "QueryFailed"
	EventResultDiscarded EventType = "ResultDiscarded"
	EventDetailResolved  EventType = "DetailResolved"
	EventError           EventType = "Error"
	EventConfigChanged   EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryStartedEvent is emitted when a list query is issued
type QueryStartedEvent struct {
	Seq   uint64
	Kind  string // "all", "term" or "region"
	Value string
}

func (e QueryStartedEvent) Type() EventType { return EventQueryStarted }

// QueryCommittedEvent is emitted when a list query result becomes the current result set
type QueryCommittedEvent struct {
	Seq   uint64
	Kind  string
	Value string
	Count int
}

func (e QueryCommittedEvent) Type() EventType { return EventQueryCommitted }

// QueryFailedEvent is emitted when the latest list query fails
type QueryFailedEvent struct {
	Seq       uint64
	Kind      string
	Value     string
	ErrorKind string
	Err       error
}

func (e QueryFailedEvent) Type() EventType { return EventQueryFailed }

// ResultDiscardedEvent is emitted when a superseded response arrives and is dropped
type ResultDiscardedEvent struct {
	Source string // "query" or "detail"
	Seq    uint64
	Latest uint64
}

func (e ResultDiscardedEvent) Type() EventType { return EventResultDiscarded }

// DetailResolvedEvent is emitted when the detail loader leaves the Loading state
type DetailResolvedEvent struct {
	Code   string
	Status string
	Err    error
}

func (e DetailResolvedEvent) Type() EventType { return EventDetailResolved }

// ErrorEvent is emitted when an error occurs outside the query state machines
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct {
	Region string // last selected region key
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"countryexplorer/internal/eventbus"
)

// statusTTL is how long a status message stays in the title bar
const statusTTL = 3 * time.Second

// ClearStatusMsg clears the status message once its time is up
type ClearStatusMsg struct {
	ID int
}

// EventHandler turns domain events from outside the update loop into status messages
type EventHandler struct {
	message string
	id      int
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		if e.Err != nil {
			return h.SetStatus(fmt.Sprintf("Error: %s: %v", e.Message, e.Err))
		}
		return h.SetStatus("Error: " + e.Message)

	case eventbus.ConfigChangedEvent:
		return h.SetStatus("Settings saved")
	}
	return nil
}

// SetStatus shows msg and schedules its removal
func (h *EventHandler) SetStatus(msg string) tea.Cmd {
	h.message = msg
	h.id++
	id := h.id
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}

// Clear removes the status message unless a newer one replaced it
func (h *EventHandler) Clear(msg ClearStatusMsg) {
	if msg.ID == h.id {
		h.message = ""
	}
}

// Status returns the current status message
func (h *EventHandler) Status() string {
	return h.message
}

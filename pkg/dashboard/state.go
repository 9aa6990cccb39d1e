package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/travigo/busload/pkg/ctdf"
)

type Tab string

const (
	TabSchedule  Tab = "schedule"
	TabAnalytics Tab = "analytics"
	TabMap       Tab = "map"
)

func (t Tab) IsValid() bool {
	return t == TabSchedule || t == TabAnalytics || t == TabMap
}

// State is a snapshot of what one dashboard session is looking at. It is
// owned by the client and never stored server side.
type State struct {
	LineIdentifier string
	Direction      ctdf.Direction
	ActiveTab      Tab
	SelectedTime   string
	SearchQuery    string
}

func DefaultState(lineIdentifier string) State {
	return State{
		LineIdentifier: lineIdentifier,
		Direction:      ctdf.DirectionIda,
		ActiveTab:      TabSchedule,
	}
}

// Normalise fills in defaults for a state that came from a client and
// rejects values that cannot be displayed.
func (s State) Normalise() (State, error) {
	if s.Direction == "" {
		s.Direction = ctdf.DirectionIda
	} else {
		direction, err := ctdf.ParseDirection(string(s.Direction))
		if err != nil {
			return s, err
		}
		s.Direction = direction
	}

	if s.ActiveTab == "" {
		s.ActiveTab = TabSchedule
	} else if !s.ActiveTab.IsValid() {
		return s, fmt.Errorf("%w %q", ErrUnknownTab, s.ActiveTab)
	}

	return s, nil
}

type EventType string

const (
	EventSelectLine      EventType = "select_line"
	EventSwitchDirection EventType = "switch_direction"
	EventSelectTab       EventType = "select_tab"
	EventToggleTime      EventType = "toggle_time"
	EventClearTime       EventType = "clear_time"
	EventSearch          EventType = "search"
)

type Event struct {
	Type  EventType
	Value string
}

var (
	ErrUnknownEvent = errors.New("unknown dashboard event")
	ErrUnknownTab   = errors.New("unknown tab")
)

// Reduce applies an event to a state and returns the next state. The input
// state is never modified. On error the original state is returned.
func Reduce(state State, event Event) (State, error) {
	next := state

	switch event.Type {
	case EventSelectLine:
		if event.Value == "" {
			return state, fmt.Errorf("%s: line identifier is required", event.Type)
		}

		next = DefaultState(event.Value)
		next.SearchQuery = state.SearchQuery
	case EventSwitchDirection:
		direction, err := ctdf.ParseDirection(event.Value)
		if err != nil {
			return state, fmt.Errorf("%s: %w %q", event.Type, err, event.Value)
		}

		// A selected time that does not exist in the new direction is kept and
		// simply renders an empty detail panel.
		next.Direction = direction
	case EventSelectTab:
		tab := Tab(strings.ToLower(event.Value))
		if !tab.IsValid() {
			return state, fmt.Errorf("%s: %w %q", event.Type, ErrUnknownTab, event.Value)
		}

		next.ActiveTab = tab
	case EventToggleTime:
		if state.SelectedTime == event.Value {
			next.SelectedTime = ""
		} else {
			next.SelectedTime = event.Value
		}
	case EventClearTime:
		next.SelectedTime = ""
	case EventSearch:
		next.SearchQuery = event.Value
	default:
		return state, fmt.Errorf("%w %q", ErrUnknownEvent, event.Type)
	}

	return next, nil
}

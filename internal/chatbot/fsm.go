package chatbot

import (
	"fmt"
	"strconv"
	"strings"
)

// State is a step of the data entry wizard.
type State int

const (
	StateIdle State = iota
	StateAwaitingDate
	StateAwaitingName
	StateAwaitingGoals
	StateAwaitingAssists
	StateAwaitingCleanSheets
	StateAwaitingSuperCups
	StateAwaitingCups
	StateAwaitingChampionships
	StateAwaitingChampionsLeagues
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingDate:
		return "awaiting_date"
	case StateAwaitingName:
		return "awaiting_name"
	case StateAwaitingGoals:
		return "awaiting_goals"
	case StateAwaitingAssists:
		return "awaiting_assists"
	case StateAwaitingCleanSheets:
		return "awaiting_clean_sheets"
	case StateAwaitingSuperCups:
		return "awaiting_super_cups"
	case StateAwaitingCups:
		return "awaiting_cups"
	case StateAwaitingChampionships:
		return "awaiting_championships"
	case StateAwaitingChampionsLeagues:
		return "awaiting_champions_leagues"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Flow is the kind of entry a wizard collects.
type Flow string

const (
	FlowPlayer Flow = "player"
	FlowClub   Flow = "club"
)

// countStates lists the numeric steps of each flow in order.
var countStates = map[Flow][]State{
	FlowPlayer: {StateAwaitingGoals, StateAwaitingAssists, StateAwaitingCleanSheets},
	FlowClub:   {StateAwaitingSuperCups, StateAwaitingCups, StateAwaitingChampionships, StateAwaitingChampionsLeagues},
}

var prompts = map[State]string{
	StateAwaitingDate:             `Enter a date (for example "today" or "01.01.2024"):`,
	StateAwaitingGoals:            "Enter the number of goals (non-negative integer):",
	StateAwaitingAssists:          "Enter the number of assists (non-negative integer):",
	StateAwaitingCleanSheets:      "Enter the number of clean sheets (non-negative integer):",
	StateAwaitingSuperCups:        "Enter the number of super cups (non-negative integer):",
	StateAwaitingCups:             "Enter the number of cups (non-negative integer):",
	StateAwaitingChampionships:    "Enter the number of championships (non-negative integer):",
	StateAwaitingChampionsLeagues: "Enter the number of Champions League titles (non-negative integer):",
}

// InputError rejects a wizard answer. Prompt is shown to the user as is.
type InputError struct {
	Prompt string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Prompt
}

// Session is the persisted progress of one user's wizard.
type Session struct {
	Flow   Flow   `msgpack:"flow"`
	State  State  `msgpack:"state"`
	Date   string `msgpack:"date"`
	Name   string `msgpack:"name"`
	Counts []int  `msgpack:"counts"`
}

// NewSession starts a wizard for flow.
func NewSession(flow Flow) *Session {
	return &Session{Flow: flow, State: StateAwaitingDate}
}

// Prompt is the question for the current state.
func (s *Session) Prompt() string {
	if s.State == StateAwaitingName {
		if s.Flow == FlowClub {
			return "Enter the club name (may contain spaces):"
		}
		return "Enter the footballer's name (may contain spaces):"
	}
	return prompts[s.State]
}

// Advance feeds one answer into the wizard. Invalid input leaves the state
// unchanged and returns an error whose text re-prompts the user.
func (s *Session) Advance(input string) error {
	input = strings.TrimSpace(input)
	switch s.State {
	case StateAwaitingDate:
		if input == "" {
			return &InputError{Prompt: "The date cannot be empty. Enter a date:"}
		}
		s.Date = normalizeDate(input)
		s.State = StateAwaitingName
	case StateAwaitingName:
		if input == "" {
			return &InputError{Prompt: "The name cannot be empty. Enter a name:"}
		}
		steps := countStates[s.Flow]
		if len(steps) == 0 {
			return fmt.Errorf("unknown entry flow %q", s.Flow)
		}
		s.Name = input
		s.State = steps[0]
	case StateIdle, StateDone:
		return fmt.Errorf("no entry in progress")
	default:
		steps := countStates[s.Flow]
		if len(s.Counts) >= len(steps) || steps[len(s.Counts)] != s.State {
			return fmt.Errorf("unexpected state %s for %s entry", s.State, s.Flow)
		}
		n, err := parseCount(input)
		if err != nil {
			return &InputError{Prompt: "Invalid value. " + prompts[s.State]}
		}
		s.Counts = append(s.Counts, n)
		if len(s.Counts) == len(steps) {
			s.State = StateDone
		} else {
			s.State = steps[len(s.Counts)]
		}
	}
	return nil
}

// PlayerEntry returns the collected player. Only valid once Done.
func (s *Session) PlayerEntry() PlayerEntry {
	return PlayerEntry{Date: s.Date, Name: s.Name, Goals: s.Counts[0], Assists: s.Counts[1], CleanSheets: s.Counts[2]}
}

// ClubEntry returns the collected club. Only valid once Done.
func (s *Session) ClubEntry() ClubEntry {
	return ClubEntry{
		Date: s.Date, Name: s.Name,
		SuperCups: s.Counts[0], Cups: s.Counts[1], Championships: s.Counts[2], ChampionsLeagues: s.Counts[3],
	}
}

func normalizeDate(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}

// parseNameAndParams splits "<cmd> <date> <name...> <n1>..<nN>" where the
// name may contain spaces. It reports false if the name is empty or any
// trailing value is not a non-negative integer.
func parseNameAndParams(parts []string, n int) (string, []int, bool) {
	if len(parts) < 3+n {
		return "", nil, false
	}
	name := strings.TrimSpace(strings.Join(parts[2:len(parts)-n], " "))
	if name == "" {
		return "", nil, false
	}
	values := make([]int, 0, n)
	for _, p := range parts[len(parts)-n:] {
		v, err := parseCount(p)
		if err != nil {
			return "", nil, false
		}
		values = append(values, v)
	}
	return name, values, true
}

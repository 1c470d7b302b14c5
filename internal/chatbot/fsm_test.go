package chatbot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_PlayerFlow(t *testing.T) {
	sess := NewSession(FlowPlayer)
	assert.Equal(t, StateAwaitingDate, sess.State)

	steps := []struct {
		input string
		next  State
	}{
		{" 01.05.2024 ", StateAwaitingName},
		{"Erling Haaland", StateAwaitingGoals},
		{"36", StateAwaitingAssists},
		{"8", StateAwaitingCleanSheets},
		{"0", StateDone},
	}
	for _, step := range steps {
		require.NoError(t, sess.Advance(step.input), step.input)
		assert.Equal(t, step.next, sess.State, step.input)
	}

	assert.Equal(t, PlayerEntry{Date: "01.05.2024", Name: "Erling Haaland", Goals: 36, Assists: 8}, sess.PlayerEntry())
}

func TestSession_ClubFlow(t *testing.T) {
	sess := NewSession(FlowClub)
	for _, in := range []string{"TODAY", "Real Madrid", "1", "2", "1", "1"} {
		require.NoError(t, sess.Advance(in))
	}
	assert.Equal(t, StateDone, sess.State)
	assert.Equal(t, ClubEntry{Date: "today", Name: "Real Madrid", SuperCups: 1, Cups: 2, Championships: 1, ChampionsLeagues: 1}, sess.ClubEntry())
}

func TestSession_InvalidInputKeepsState(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		bad     string
		state   State
	}{
		{"empty date", nil, "   ", StateAwaitingDate},
		{"empty name", []string{"today"}, "", StateAwaitingName},
		{"word for goals", []string{"today", "Messi"}, "many", StateAwaitingGoals},
		{"negative assists", []string{"today", "Messi", "20"}, "-1", StateAwaitingAssists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := NewSession(FlowPlayer)
			for _, a := range tt.answers {
				require.NoError(t, sess.Advance(a))
			}
			err := sess.Advance(tt.bad)

			var inputErr *InputError
			require.ErrorAs(t, err, &inputErr)
			assert.NotEmpty(t, inputErr.Prompt)
			assert.Equal(t, tt.state, sess.State)
		})
	}
}

func TestSession_AdvanceWhenDone(t *testing.T) {
	sess := &Session{Flow: FlowPlayer, State: StateDone}
	err := sess.Advance("1")
	require.Error(t, err)
	var inputErr *InputError
	assert.False(t, errors.As(err, &inputErr))
	assert.Equal(t, StateDone, sess.State)
}

func TestParseNameAndParams(t *testing.T) {
	tests := []struct {
		name   string
		parts  []string
		n      int
		want   string
		values []int
		ok     bool
	}{
		{"multi word name", []string{"/add_player", "today", "Virgil", "van", "Dijk", "1", "2", "20"}, 3, "Virgil van Dijk", []int{1, 2, 20}, true},
		{"single word", []string{"/add_club", "d", "Chelsea", "2", "2", "2", "2"}, 4, "Chelsea", []int{2, 2, 2, 2}, true},
		{"no name", []string{"/add_player", "today", "1", "2", "3"}, 3, "", nil, false},
		{"negative", []string{"/add_player", "today", "Messi", "1", "-2", "3"}, 3, "", nil, false},
		{"not a number", []string{"/add_player", "today", "Messi", "1", "x", "3"}, 3, "", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, values, ok := parseNameAndParams(tt.parts, tt.n)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, name)
			assert.Equal(t, tt.values, values)
		})
	}
}

func TestSession_AdvanceWithUnknownFlow(t *testing.T) {
	sess := &Session{Flow: "stadium", State: StateAwaitingName}

	err := sess.Advance("Camp Nou")

	require.Error(t, err)
	var inputErr *InputError
	assert.False(t, errors.As(err, &inputErr))
	assert.Equal(t, StateAwaitingName, sess.State)
}

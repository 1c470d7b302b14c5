package football

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVote() PlayerVote {
	c := 1.5
	return PlayerVote{FirstName: "Luka", LastName: "Modric", Age: 39, Club: "Real Madrid", Goals: 2, Coefficient: &c}
}

func TestPlayerVote_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(v *PlayerVote)
		field  string
	}{
		{"missing first name", func(v *PlayerVote) { v.FirstName = "  " }, "first_name"},
		{"long last name", func(v *PlayerVote) { v.LastName = strings.Repeat("x", 101) }, "last_name"},
		{"missing club", func(v *PlayerVote) { v.Club = "" }, "club"},
		{"negative age", func(v *PlayerVote) { v.Age = -1 }, "age"},
		{"too many wins", func(v *PlayerVote) { v.Victories = 101 }, "wins"},
		{"negative assists", func(v *PlayerVote) { v.Assists = -3 }, "assists"},
		{"coefficient too low", func(v *PlayerVote) { c := 0.5; v.Coefficient = &c }, "gentleman_coef"},
		{"coefficient too high", func(v *PlayerVote) { c := 5.01; v.Coefficient = &c }, "gentleman_coef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validVote()
			tt.mutate(&v)
			v.Normalize()

			err := v.Validate()

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	t.Run("valid", func(t *testing.T) {
		v := validVote()
		assert.NoError(t, v.Validate())
		v.Coefficient = nil
		assert.NoError(t, v.Validate())
	})

	t.Run("multibyte names count runes", func(t *testing.T) {
		v := validVote()
		v.LastName = strings.Repeat("ж", 100)
		assert.NoError(t, v.Validate())
	})
}

func TestClubVote_Validate(t *testing.T) {
	assert.NoError(t, ClubVote{ClubName: "Ajax", SuperCup: 2, Cup: 0}.Validate())

	var verr *ValidationError
	require.ErrorAs(t, ClubVote{ClubName: ""}.Validate(), &verr)
	assert.Equal(t, "club_name", verr.Field)

	require.ErrorAs(t, ClubVote{ClubName: "Ajax", ChampionLeague: -1}.Validate(), &verr)
	assert.Equal(t, "champion_league", verr.Field)
}

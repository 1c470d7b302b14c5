package football

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength      = 100
	maxClubNameLength  = 255
	maxStat            = 100
	maxAge             = 100
	maxTrophiesPerVote = 2
	minCoefficient     = 1.0
	maxCoefficient     = 5.0
)

// ValidationError reports a rejected vote field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Normalize trims the text fields of the vote.
func (v *PlayerVote) Normalize() {
	v.FirstName = strings.TrimSpace(v.FirstName)
	v.LastName = strings.TrimSpace(v.LastName)
	v.Club = strings.TrimSpace(v.Club)
}

// Validate checks a normalized player vote.
func (v PlayerVote) Validate() error {
	if err := validateText("first_name", v.FirstName, maxNameLength); err != nil {
		return err
	}
	if err := validateText("last_name", v.LastName, maxNameLength); err != nil {
		return err
	}
	if err := validateText("club", v.Club, maxClubNameLength); err != nil {
		return err
	}
	if err := validateRange("age", v.Age, 0, maxAge); err != nil {
		return err
	}
	stats := []struct {
		field string
		value int
	}{
		{"wins", v.Victories},
		{"losses", v.Losses},
		{"draws", v.Draws},
		{"goals", v.Goals},
		{"assists", v.Assists},
		{"clean_sheets", v.CleanSheets},
	}
	for _, s := range stats {
		if err := validateRange(s.field, s.value, 0, maxStat); err != nil {
			return err
		}
	}
	if v.Coefficient != nil {
		c := *v.Coefficient
		if c < minCoefficient || c > maxCoefficient {
			return invalid("gentleman_coef", "must be between %.1f and %.1f", minCoefficient, maxCoefficient)
		}
	}
	return nil
}

// Normalize trims the club name.
func (v *ClubVote) Normalize() {
	v.ClubName = strings.TrimSpace(v.ClubName)
}

// Validate checks a normalized club vote.
func (v ClubVote) Validate() error {
	if err := validateText("club_name", v.ClubName, maxClubNameLength); err != nil {
		return err
	}
	for _, t := range v.trophies() {
		if err := validateRange(string(t.kind), t.count, 0, maxTrophiesPerVote); err != nil {
			return err
		}
	}
	return nil
}

type trophyCount struct {
	kind  TrophyType
	count int
}

func (v ClubVote) trophies() []trophyCount {
	return []trophyCount{
		{TrophySuperCup, v.SuperCup},
		{TrophyChampionLeague, v.ChampionLeague},
		{TrophyNationalChampionship, v.NationalChampionship},
		{TrophyCup, v.Cup},
	}
}

func validateText(field, value string, maxLen int) error {
	if value == "" {
		return invalid(field, "is required")
	}
	if utf8.RuneCountInString(value) > maxLen {
		return invalid(field, "must be at most %d characters", maxLen)
	}
	return nil
}

func validateRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return invalid(field, "must be between %d and %d", lo, hi)
	}
	return nil
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/golden-ball/internal/awards"
	"github.com/mauv0809/golden-ball/internal/football"
)

func ListFootballersHandler(store football.FootballStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		footballers, err := store.ListFootballers(r.Context())
		if err != nil {
			log.Error("Failed to get footballers from store", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get footballers")
			return
		}
		if footballers == nil {
			footballers = []football.Footballer{}
		}
		writeJSON(w, http.StatusOK, footballers)
	}
}

func ListClubsHandler(store football.FootballStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clubs, err := store.ListClubs(r.Context())
		if err != nil {
			log.Error("Failed to get clubs from store", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get clubs")
			return
		}
		if clubs == nil {
			clubs = []football.Club{}
		}
		writeJSON(w, http.StatusOK, clubs)
	}
}

// AwardsHandler returns the latest stored award with its Golden Ball holder.
func AwardsHandler(store football.FootballStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		award, err := store.GetAward(r.Context())
		if err != nil {
			log.Error("Failed to get award from store", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get awards")
			return
		}
		if award == nil {
			writeError(w, http.StatusNotFound, "no awards have been calculated yet")
			return
		}
		writeJSON(w, http.StatusOK, award)
	}
}

// LeaderboardHandler ranks every candidate by their current score.
func LeaderboardHandler(svc AwardsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := svc.Leaderboard(r.Context())
		if err != nil {
			log.Error("Failed to build leaderboard", "error", err)
			writeError(w, statusFor(err), "failed to build leaderboard")
			return
		}
		if standings == nil {
			standings = []awards.Standing{}
		}
		writeJSON(w, http.StatusOK, standings)
	}
}

func statusFor(err error) int {
	if errors.Is(err, awards.ErrSnapshotUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

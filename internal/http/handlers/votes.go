package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/golden-ball/internal/football"
	"github.com/mauv0809/golden-ball/internal/metrics"
)

// maxVoteBody caps vote request bodies.
const maxVoteBody = 64 << 10

type voteResponse struct {
	ID     int64 `json:"id,omitempty"`
	Valid  bool  `json:"valid"`
	DryRun bool  `json:"dry_run,omitempty"`
}

// PlayerVoteHandler stores a footballer vote. With dry_run the vote is only
// validated.
func PlayerVoteHandler(store football.FootballStore, metrics metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var vote football.PlayerVote
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxVoteBody)).Decode(&vote); err != nil {
			log.Warn("Rejected malformed player vote", "error", err)
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if IsDryRunFromContext(r) {
			vote.Normalize()
			if err := vote.Validate(); err != nil {
				writeVoteError(w, err)
				return
			}
			log.Info("[Dry Run] Player vote is valid", "player", vote.FullName())
			writeJSON(w, http.StatusOK, voteResponse{Valid: true, DryRun: true})
			return
		}

		id, err := store.AddFootballer(r.Context(), vote)
		if err != nil {
			writeVoteError(w, err)
			return
		}
		metrics.IncVotesRecorded("player")
		log.Info("Recorded player vote", "id", id, "player", vote.FullName(), "club", vote.Club)
		writeJSON(w, http.StatusCreated, voteResponse{ID: id, Valid: true})
	}
}

// ClubVoteHandler adds trophies to a club.
func ClubVoteHandler(store football.FootballStore, metrics metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var vote football.ClubVote
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxVoteBody)).Decode(&vote); err != nil {
			log.Warn("Rejected malformed club vote", "error", err)
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if IsDryRunFromContext(r) {
			vote.Normalize()
			if err := vote.Validate(); err != nil {
				writeVoteError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, voteResponse{Valid: true, DryRun: true})
			return
		}

		if err := store.VoteClub(r.Context(), vote); err != nil {
			writeVoteError(w, err)
			return
		}
		metrics.IncVotesRecorded("club")
		log.Info("Recorded club vote", "club", vote.ClubName)
		writeJSON(w, http.StatusCreated, voteResponse{Valid: true})
	}
}

func writeVoteError(w http.ResponseWriter, err error) {
	var verr *football.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error(), Field: verr.Field})
	case errors.Is(err, football.ErrRosterFull):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.Error("Failed to store vote", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store vote")
	}
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/golden-ball/internal/football"
	"github.com/mauv0809/golden-ball/internal/notifier"
)

const (
	defaultRecentLogs = 20
	maxRecentLogs     = 500
)

// logCount reads an optional audit line count from the query parameter key.
func logCount(r *http.Request, key string) (int, bool) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return defaultRecentLogs, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > maxRecentLogs {
		return 0, false
	}
	return n, true
}

// SummaryHandler reports table counts and the most recent audit lines.
// ?logs=N changes how many lines are returned.
func SummaryHandler(store football.FootballStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, ok := logCount(r, "logs")
		if !ok {
			writeError(w, http.StatusBadRequest, "logs must be between 0 and 500")
			return
		}

		summary, err := store.Summary(r.Context(), n)
		if err != nil {
			log.Error("Failed to build summary", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to build summary")
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

// RecentLogsHandler returns the newest audit lines, newest first. ?n=N
// changes how many.
func RecentLogsHandler(store football.FootballStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, ok := logCount(r, "n")
		if !ok {
			writeError(w, http.StatusBadRequest, "n must be between 0 and 500")
			return
		}

		logs, err := store.RecentLogs(r.Context(), n)
		if err != nil {
			log.Error("Failed to read audit log", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to read audit log")
			return
		}
		writeJSON(w, http.StatusOK, logs)
	}
}

// CalculateAwardsHandler runs an award calculation. With dry_run nothing is
// stored or announced.
func CalculateAwardsHandler(svc AwardsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		calc, err := svc.Calculate(r.Context(), IsDryRunFromContext(r))
		if err != nil {
			log.Error("Award calculation failed", "error", err)
			writeError(w, statusFor(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, calc)
	}
}

func GoldenBallHandler(store football.FootballStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		holders, err := store.GetGoldenBall(r.Context())
		if err != nil {
			log.Error("Failed to get golden ball from store", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get golden ball")
			return
		}
		if holders == nil {
			holders = []football.GoldenBallRecord{}
		}
		writeJSON(w, http.StatusOK, holders)
	}
}

// DeleteRecordHandler removes one row of the kind named in the path.
func DeleteRecordHandler(store football.FootballStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := football.ParseRecordKind(r.PathValue("kind"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil || id <= 0 {
			writeError(w, http.StatusBadRequest, "id must be a positive integer")
			return
		}

		if IsDryRunFromContext(r) {
			log.Info("[Dry Run] Would delete record", "kind", kind, "id", id)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if err := store.DeleteRecord(r.Context(), kind, id); err != nil {
			if errors.Is(err, football.ErrRecordNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			log.Error("Failed to delete record", "error", err, "kind", kind, "id", id)
			writeError(w, http.StatusInternalServerError, "failed to delete record")
			return
		}
		log.Info("Deleted record", "kind", kind, "id", id)
		w.WriteHeader(http.StatusNoContent)
	}
}

// AnnounceLeaderboardHandler posts the current standings to the Slack channel.
func AnnounceLeaderboardHandler(svc AwardsService, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := svc.Leaderboard(r.Context())
		if err != nil {
			log.Error("Failed to build leaderboard", "error", err)
			writeError(w, statusFor(err), "failed to build leaderboard")
			return
		}
		if err := notifier.SendLeaderboard(standings, IsDryRunFromContext(r)); err != nil {
			writeError(w, http.StatusBadGateway, "failed to post leaderboard")
			return
		}
		w.Write([]byte("OK"))
	}
}

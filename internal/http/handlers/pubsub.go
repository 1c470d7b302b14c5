package handlers

import (
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/golden-ball/internal/awards"
	"github.com/mauv0809/golden-ball/internal/notifier"
	"github.com/mauv0809/golden-ball/internal/pubsub"
)

// AwardsCalculatedHandler receives awards-calculated push deliveries and
// announces the result in Slack. A failed announcement answers 500 so that
// Pub/Sub redelivers it.
func AwardsCalculatedHandler(notifier notifier.Notifier, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received awards calculated message", "body", string(bodyBytes))

		rawData, err := pubsub.DecodePush(bodyBytes)
		if err != nil {
			log.Error("Failed to decode push message", "error", err)
			http.Error(w, "Invalid push message", http.StatusBadRequest)
			return
		}

		var event awards.Event
		if err := pubsubClient.ProcessMessage(rawData, &event); err != nil {
			http.Error(w, "Invalid event payload", http.StatusBadRequest)
			return
		}

		if err := notifier.SendAwardsAnnouncement(event, IsDryRunFromContext(r)); err != nil {
			log.Error("Failed to announce awards", "error", err, "runID", event.RunID)
			http.Error(w, "Failed to announce awards", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

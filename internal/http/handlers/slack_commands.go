package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/golden-ball/internal/chatbot"
	"github.com/mauv0809/golden-ball/internal/notifier"
	"github.com/slack-go/slack"
)

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// FootballCommandHandler feeds the text of a slash command to the chat bot.
// An empty command shows the welcome text. Exported documents are uploaded
// to the channel the command came from.
func FootballCommandHandler(bot *chatbot.Bot, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		if cmd.UserID == "" {
			http.Error(w, "Missing required Slack form data", http.StatusBadRequest)
			return
		}

		text := strings.TrimSpace(cmd.Text)
		if text == "" {
			text = "/start"
		}
		log.Info("Received football command", "user", cmd.UserName, "channel", cmd.ChannelID, "text", text)

		reply, err := bot.Handle(r.Context(), chatbot.Message{UserID: cmd.UserID, Text: text})
		if err != nil {
			log.Error("Chat bot failed to handle command", "error", err, "user", cmd.UserID)
			http.Error(w, "Failed to handle command", http.StatusInternalServerError)
			return
		}

		if reply.Document != nil {
			if err := notifier.SendDocument(cmd.ChannelID, reply.Document, IsDryRunFromContext(r)); err != nil {
				reply.Text += "\nThe file could not be uploaded to this channel."
			}
		}

		msg, err := notifier.FormatBotReply(reply)
		if err != nil {
			http.Error(w, "Failed to format reply", http.StatusInternalServerError)
			log.Error("Failed to format bot reply", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}

func LeaderboardCommandHandler(svc AwardsService, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := svc.Leaderboard(r.Context())
		if err != nil {
			http.Error(w, "Failed to get standings", http.StatusInternalServerError)
			log.Error("Failed to build leaderboard", "error", err)
			return
		}

		msg, err := notifier.FormatLeaderboardResponse(standings)
		if err != nil {
			http.Error(w, "Failed to format leaderboard", http.StatusInternalServerError)
			log.Error("Failed to format leaderboard", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}

		respondWithSlackMsg(w, slackMsg)
	}
}

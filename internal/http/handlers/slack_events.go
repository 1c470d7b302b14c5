package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/golden-ball/internal/chatbot"
	"github.com/mauv0809/golden-ball/internal/notifier"
	"github.com/slack-go/slack/slackevents"
)

// SlackEventsHandler lets users talk to the chat bot in a direct message.
// Slack expects an answer within three seconds, so the bot runs after the
// event is acknowledged.
func SlackEventsHandler(bot *chatbot.Bot, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}

		// The signature middleware has already authenticated the request.
		event, err := slackevents.ParseEvent(json.RawMessage(bodyBytes), slackevents.OptionNoVerifyToken())
		if err != nil {
			log.Error("Failed to parse event payload", "error", err)
			http.Error(w, "Invalid event payload", http.StatusBadRequest)
			return
		}

		switch event.Type {
		case slackevents.URLVerification:
			challenge, ok := event.Data.(*slackevents.EventsAPIURLVerificationEvent)
			if !ok {
				http.Error(w, "Invalid challenge", http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(challenge.Challenge))
			return
		case slackevents.CallbackEvent:
			msg, ok := event.InnerEvent.Data.(*slackevents.MessageEvent)
			if ok && isUserDirectMessage(msg) {
				log.Info("Received direct message", "user", msg.User, "channel", msg.Channel)
				go answerDirectMessage(bot, notifier, msg.User, msg.Channel, msg.Text, IsDryRunFromContext(r))
			} else {
				log.Debug("Ignoring event", "type", event.InnerEvent.Type)
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}

// isUserDirectMessage skips bot echoes, edits and channel chatter.
func isUserDirectMessage(msg *slackevents.MessageEvent) bool {
	return msg.ChannelType == "im" && msg.BotID == "" && msg.SubType == "" && msg.User != ""
}

func answerDirectMessage(bot *chatbot.Bot, notifier notifier.Notifier, userID, channelID, text string, dryRun bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	reply, err := bot.Handle(ctx, chatbot.Message{UserID: userID, Text: text})
	if err != nil {
		log.Error("Chat bot failed to handle direct message", "error", err, "user", userID)
		return
	}
	if err := notifier.SendBotReply(channelID, reply, dryRun); err != nil {
		log.Error("Failed to send bot reply", "error", err, "user", userID)
	}
}

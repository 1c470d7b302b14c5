package notifier

import (
	"github.com/mauv0809/golden-ball/internal/awards"
	"github.com/mauv0809/golden-ball/internal/chatbot"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For finished award calculations
	SendAwardsAnnouncement(event awards.Event, dryRun bool) error
	SendLeaderboard(standings []awards.Standing, dryRun bool) error
	// For chat bot conversations outside slash commands
	SendBotReply(channelID string, reply chatbot.Reply, dryRun bool) error
	SendDocument(channelID string, doc *chatbot.Document, dryRun bool) error

	// For formatting responses for slash commands
	FormatLeaderboardResponse(standings []awards.Standing) (any, error)
	FormatBotReply(reply chatbot.Reply) (any, error)
}

package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/golden-ball/internal/awards"
	"github.com/mauv0809/golden-ball/internal/chatbot"
	"github.com/mauv0809/golden-ball/internal/metrics"
	"github.com/mauv0809/golden-ball/internal/notifier"
	"github.com/slack-go/slack"
)

// Slack rejects text objects longer than this.
const maxTextLength = 3000

// Slack rejects messages with more than 50 blocks. Rows are grouped so the
// header, the row sections and the overflow line stay below that.
const (
	leaderboardRowsPerSection = 5
	maxLeaderboardRows        = 45 * leaderboardRowsPerSection
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	UploadFileV2Context(ctx context.Context, params slack.UploadFileV2Parameters) (*slack.FileSummary, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	return s.sendMessageTo(message, s.channelID, dryRun)
}

// sendMessageTo posts message to channelID, which may be a DM channel.
func (s *Notifier) sendMessageTo(message slack.Message, channelID string, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendAwardsAnnouncement posts the outcome of a stored calculation.
func (s *Notifier) SendAwardsAnnouncement(event awards.Event, dryRun bool) error {
	msg := s.formatAwardsAnnouncement(event)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendLeaderboard(standings []awards.Standing, dryRun bool) error {
	msg := s.formatLeaderboard(standings)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// SendBotReply posts a chat bot reply to channelID and uploads its
// document, if any, to the same channel.
func (s *Notifier) SendBotReply(channelID string, reply chatbot.Reply, dryRun bool) error {
	msg := s.formatBotReply(reply)
	if _, _, err := s.sendMessageTo(msg, channelID, dryRun); err != nil {
		return err
	}
	if reply.Document != nil {
		return s.SendDocument(channelID, reply.Document, dryRun)
	}
	return nil
}

// SendDocument uploads doc to channelID, falling back to the configured
// channel when channelID is empty.
func (s *Notifier) SendDocument(channelID string, doc *chatbot.Document, dryRun bool) error {
	if channelID == "" {
		channelID = s.channelID
	}
	if dryRun {
		log.Info("[Dry Run] Would upload Slack file", "channel", channelID, "file", doc.Name, "bytes", len(doc.Content))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	file, err := s.api.UploadFileV2Context(ctx, slack.UploadFileV2Parameters{
		Channel:        channelID,
		Filename:       doc.Name,
		Title:          doc.Name,
		InitialComment: doc.Caption,
		Reader:         bytes.NewReader(doc.Content),
		FileSize:       len(doc.Content),
	})
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to upload Slack file", "error", err, "channel", channelID, "file", doc.Name)
		return fmt.Errorf("failed to upload file: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully uploaded Slack file", "channel", channelID, "file_id", file.ID)
	return nil
}

// FormatLeaderboardResponse formats the standings for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(standings []awards.Standing) (any, error) {
	return s.formatLeaderboard(standings), nil
}

// FormatBotReply formats a chat bot reply for a slash command response.
// Replies are only shown to the user who sent the command.
func (s *Notifier) FormatBotReply(reply chatbot.Reply) (any, error) {
	return s.formatBotReply(reply), nil
}

// formatAwardsAnnouncement creates the Slack message for a finished calculation using Block Kit.
func (s *Notifier) formatAwardsAnnouncement(event awards.Event) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "⚽ Golden Ball results ⚽", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*Top scorer*\n%s", event.Result.TopScorer), false, false),
		slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*Top assist*\n%s", event.Result.TopAssist), false, false),
	}
	blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))

	var winnerText string
	if w := event.Result.Winner; w != nil {
		winnerText = fmt.Sprintf("🏆 *%s* (%s) wins the Golden Ball with a score of %.2f", w.Name, w.Club, w.Score)
	} else {
		winnerText = "No Golden Ball winner this round."
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", winnerText, false, false), nil, nil))

	contextText := fmt.Sprintf("Run %s • %s", event.RunID, time.Unix(event.CalculatedAt, 0).UTC().Format("Jan 2, 2006 at 15:04 UTC"))
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", contextText, true, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard creates a Slack message to display the Golden Ball standings.
func (s *Notifier) formatLeaderboard(standings []awards.Standing) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Golden Ball Standings 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(standings) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No votes yet. Nobody is in the running!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	rows := make([]string, 0, leaderboardRowsPerSection)
	for i, st := range standings {
		if i == maxLeaderboardRows {
			more := fmt.Sprintf("…and %d more", len(standings)-maxLeaderboardRows)
			blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", more, true, false)))
			break
		}
		rows = append(rows, leaderboardRow(st))
		if len(rows) == leaderboardRowsPerSection || i == len(standings)-1 {
			blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", strings.Join(rows, "\n"), false, false), nil, nil))
			rows = rows[:0]
		}
	}

	return slack.NewBlockMessage(blocks...)
}

func leaderboardRow(st awards.Standing) string {
	var medal string
	switch st.Rank {
	case 1:
		medal = "🥇"
	case 2:
		medal = "🥈"
	case 3:
		medal = "🥉"
	}
	return fmt.Sprintf("%d. %s %s\n> *Club*: %s | *Score*: %.2f", st.Rank, medal, st.Name, st.Club, st.Score)
}

func (s *Notifier) formatBotReply(reply chatbot.Reply) slack.Message {
	blocks := make([]slack.Block, 0)

	if reply.Text != "" {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", truncate(reply.Text), false, false), nil, nil))
	}
	if reply.Document != nil {
		text := fmt.Sprintf("📎 %s is on its way to this channel.", reply.Document.Name)
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", text, true, false)))
	}
	if reply.Menu {
		var labels []string
		for _, row := range chatbot.MenuButtons {
			labels = append(labels, row...)
		}
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", "Menu: "+strings.Join(labels, " · "), true, false)))
	}

	msg := slack.NewBlockMessage(blocks...)
	msg.ResponseType = slack.ResponseTypeEphemeral
	return msg
}

func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxTextLength {
		return text
	}
	return string(runes[:maxTextLength-1]) + "…"
}

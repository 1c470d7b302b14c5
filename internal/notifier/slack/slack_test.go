package slack

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/mauv0809/golden-ball/internal/awards"
	"github.com/mauv0809/golden-ball/internal/chatbot"
	"github.com/mauv0809/golden-ball/internal/metrics"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc  func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
	uploadFileV2ContextFunc func(ctx context.Context, params slackapi.UploadFileV2Parameters) (*slackapi.FileSummary, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func (m *mockSlackAPI) UploadFileV2Context(ctx context.Context, params slackapi.UploadFileV2Parameters) (*slackapi.FileSummary, error) {
	if m.uploadFileV2ContextFunc != nil {
		return m.uploadFileV2ContextFunc(ctx, params)
	}
	return &slackapi.FileSummary{ID: "F123", Title: params.Title}, nil
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	_, _, err := notifier.sendMessage(slackapi.NewBlockMessage(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func TestSendAwardsAnnouncement_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}
	notifier := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	err := notifier.SendAwardsAnnouncement(awards.Event{RunID: "run-1"}, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called via SendAwardsAnnouncement")
}

func TestFormatAwardsAnnouncement(t *testing.T) {
	client := &Notifier{channelID: "C123"}

	t.Run("with winner", func(t *testing.T) {
		event := awards.Event{
			RunID:        "run-1",
			CalculatedAt: 1735689600,
			Result: awards.Result{
				TopScorer: "Erling Haaland",
				TopAssist: "Kevin De Bruyne",
				Winner:    &awards.Winner{Name: "Erling Haaland", Club: "Manchester City", Score: 82},
			},
		}
		msg := client.formatAwardsAnnouncement(event)
		require.Len(t, msg.Blocks.BlockSet, 4)

		header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
		require.True(t, ok)
		assert.Contains(t, header.Text.Text, "Golden Ball")

		fields, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
		require.True(t, ok)
		require.Len(t, fields.Fields, 2)
		assert.Equal(t, "*Top scorer*\nErling Haaland", fields.Fields[0].Text)
		assert.Equal(t, "*Top assist*\nKevin De Bruyne", fields.Fields[1].Text)

		winner, ok := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
		require.True(t, ok)
		assert.Equal(t, "🏆 *Erling Haaland* (Manchester City) wins the Golden Ball with a score of 82.00", winner.Text.Text)

		footer, ok := msg.Blocks.BlockSet[3].(*slackapi.ContextBlock)
		require.True(t, ok)
		text, ok := footer.ContextElements.Elements[0].(*slackapi.TextBlockObject)
		require.True(t, ok)
		assert.Equal(t, "Run run-1 • Jan 1, 2025 at 00:00 UTC", text.Text)
	})

	t.Run("without winner", func(t *testing.T) {
		event := awards.Event{Result: awards.Result{TopScorer: awards.Undetermined, TopAssist: awards.Undetermined}}
		msg := client.formatAwardsAnnouncement(event)
		winner, ok := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
		require.True(t, ok)
		assert.Equal(t, "No Golden Ball winner this round.", winner.Text.Text)
	})
}

func TestFormatLeaderboard(t *testing.T) {
	client := &Notifier{}

	empty := client.formatLeaderboard(nil)
	require.Len(t, empty.Blocks.BlockSet, 2)

	msg := client.formatLeaderboard([]awards.Standing{
		{Rank: 1, Name: "Erling Haaland", Club: "Manchester City", Score: 82},
		{Rank: 2, Name: "Lionel Messi", Club: "Inter Miami", Score: 60.5},
	})
	require.Len(t, msg.Blocks.BlockSet, 2)
	rows, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t,
		"1. 🥇 Erling Haaland\n> *Club*: Manchester City | *Score*: 82.00\n"+
			"2. 🥈 Lionel Messi\n> *Club*: Inter Miami | *Score*: 60.50",
		rows.Text.Text)
}

func TestFormatLeaderboard_StaysWithinBlockLimit(t *testing.T) {
	client := &Notifier{}

	standings := make([]awards.Standing, 0, 300)
	for i := range 300 {
		standings = append(standings, awards.Standing{Rank: i + 1, Name: fmt.Sprintf("Player %d", i+1), Club: "Club", Score: float64(300 - i)})
	}

	msg := client.formatLeaderboard(standings)

	assert.LessOrEqual(t, len(msg.Blocks.BlockSet), 50)
	last, ok := msg.Blocks.BlockSet[len(msg.Blocks.BlockSet)-1].(*slackapi.ContextBlock)
	require.True(t, ok)
	text, ok := last.ContextElements.Elements[0].(*slackapi.TextBlockObject)
	require.True(t, ok)
	assert.Equal(t, "…and 75 more", text.Text)

	for _, b := range msg.Blocks.BlockSet[1 : len(msg.Blocks.BlockSet)-1] {
		section, ok := b.(*slackapi.SectionBlock)
		require.True(t, ok)
		assert.LessOrEqual(t, len([]rune(section.Text.Text)), maxTextLength)
	}
}

func TestFormatBotReply(t *testing.T) {
	client := &Notifier{}

	msg := client.formatBotReply(chatbot.Reply{
		Text:     "Data saved.",
		Menu:     true,
		Document: &chatbot.Document{Name: "Football.txt"},
	})

	assert.Equal(t, slackapi.ResponseTypeEphemeral, msg.ResponseType)
	require.Len(t, msg.Blocks.BlockSet, 3)
	menu, ok := msg.Blocks.BlockSet[2].(*slackapi.ContextBlock)
	require.True(t, ok)
	text, ok := menu.ContextElements.Elements[0].(*slackapi.TextBlockObject)
	require.True(t, ok)
	assert.Contains(t, text.Text, chatbot.ButtonAddPlayer)
	assert.Contains(t, text.Text, chatbot.ButtonHelp)
}

func TestTruncate(t *testing.T) {
	long := make([]rune, maxTextLength+10)
	for i := range long {
		long[i] = 'ж'
	}
	got := []rune(truncate(string(long)))
	assert.Len(t, got, maxTextLength)
	assert.Equal(t, "short", truncate("short"))
}

func TestSendDocument(t *testing.T) {
	var got slackapi.UploadFileV2Parameters
	var content []byte
	api := &mockSlackAPI{
		uploadFileV2ContextFunc: func(ctx context.Context, params slackapi.UploadFileV2Parameters) (*slackapi.FileSummary, error) {
			got = params
			var err error
			content, err = io.ReadAll(params.Reader)
			require.NoError(t, err)
			return &slackapi.FileSummary{ID: "F1"}, nil
		},
	}
	m := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C-default", m)
	doc := &chatbot.Document{Name: "Football.txt", Caption: "Football data", Content: []byte("=== Players ===\n")}

	require.NoError(t, notifier.SendDocument("", doc, false))

	assert.Equal(t, "C-default", got.Channel)
	assert.Equal(t, "Football.txt", got.Filename)
	assert.Equal(t, len(doc.Content), got.FileSize)
	assert.Equal(t, doc.Content, content)
	assert.Equal(t, 1, m.SlackNotifSent())

	api.uploadFileV2ContextFunc = func(ctx context.Context, params slackapi.UploadFileV2Parameters) (*slackapi.FileSummary, error) {
		return nil, errors.New("not_in_channel")
	}
	err := notifier.SendDocument("C9", doc, false)
	assert.ErrorContains(t, err, "not_in_channel")
	assert.Equal(t, 1, m.SlackNotifFailed())

	require.NoError(t, NewNotifierWithAPI(nil, "C1", m).SendDocument("C9", doc, true))
}

func TestSendBotReply(t *testing.T) {
	var postedTo string
	uploaded := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postedTo = channelID
			return channelID, "ts1", nil
		},
		uploadFileV2ContextFunc: func(ctx context.Context, params slackapi.UploadFileV2Parameters) (*slackapi.FileSummary, error) {
			uploaded = true
			assert.Equal(t, "D42", params.Channel)
			return &slackapi.FileSummary{ID: "F1"}, nil
		},
	}
	notifier := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	require.NoError(t, notifier.SendBotReply("D42", chatbot.Reply{Text: "No players"}, false))
	assert.Equal(t, "D42", postedTo)
	assert.False(t, uploaded)

	reply := chatbot.Reply{Text: "Data saved.", Document: &chatbot.Document{Name: "Football.txt", Content: []byte("x")}}
	require.NoError(t, notifier.SendBotReply("D42", reply, false))
	assert.True(t, uploaded)
}

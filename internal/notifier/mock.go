package notifier

import (
	"sync"

	"github.com/mauv0809/golden-ball/internal/awards"
	"github.com/mauv0809/golden-ball/internal/chatbot"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendAwardsAnnouncementCalls []awards.Event
	SendLeaderboardCalls        [][]awards.Standing
	SendBotReplyCalls           []SendBotReplyCall
	SendDocumentCalls           []SendDocumentCall

	// Spies
	SendAwardsAnnouncementFunc    func(event awards.Event, dryRun bool) error
	SendBotReplyFunc              func(channelID string, reply chatbot.Reply, dryRun bool) error
	SendDocumentFunc              func(channelID string, doc *chatbot.Document, dryRun bool) error
	FormatLeaderboardResponseFunc func(standings []awards.Standing) (any, error)
	FormatBotReplyFunc            func(reply chatbot.Reply) (any, error)

	LastBotReply chatbot.Reply
}

// SendBotReplyCall holds the arguments for a call to SendBotReply.
type SendBotReplyCall struct {
	ChannelID string
	Reply     chatbot.Reply
}

// SendDocumentCall holds the arguments for a call to SendDocument.
type SendDocumentCall struct {
	ChannelID string
	Document  *chatbot.Document
	DryRun    bool
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendAwardsAnnouncementCalls = nil
	m.SendLeaderboardCalls = nil
	m.SendBotReplyCalls = nil
	m.SendDocumentCalls = nil
	m.LastBotReply = chatbot.Reply{}
}

func (m *Mock) SendAwardsAnnouncement(event awards.Event, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendAwardsAnnouncementCalls = append(m.SendAwardsAnnouncementCalls, event)
	if m.SendAwardsAnnouncementFunc != nil {
		return m.SendAwardsAnnouncementFunc(event, dryRun)
	}
	return nil
}

func (m *Mock) SendLeaderboard(standings []awards.Standing, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, standings)
	return nil
}

func (m *Mock) SendBotReply(channelID string, reply chatbot.Reply, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendBotReplyCalls = append(m.SendBotReplyCalls, SendBotReplyCall{ChannelID: channelID, Reply: reply})
	if m.SendBotReplyFunc != nil {
		return m.SendBotReplyFunc(channelID, reply, dryRun)
	}
	return nil
}

func (m *Mock) SendDocument(channelID string, doc *chatbot.Document, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendDocumentCalls = append(m.SendDocumentCalls, SendDocumentCall{ChannelID: channelID, Document: doc, DryRun: dryRun})
	if m.SendDocumentFunc != nil {
		return m.SendDocumentFunc(channelID, doc, dryRun)
	}
	return nil
}

func (m *Mock) FormatLeaderboardResponse(standings []awards.Standing) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatLeaderboardResponseFunc != nil {
		return m.FormatLeaderboardResponseFunc(standings)
	}
	return "formatted_leaderboard", nil
}

func (m *Mock) FormatBotReply(reply chatbot.Reply) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastBotReply = reply
	if m.FormatBotReplyFunc != nil {
		return m.FormatBotReplyFunc(reply)
	}
	return "formatted_bot_reply", nil
}

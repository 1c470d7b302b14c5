package chatbot

import (
	"database/sql"
	"sync"
	"time"

	"github.com/mauv0809/golden-ball/internal/metrics"
)

// Message is one incoming chat message.
type Message struct {
	UserID string
	Text   string
}

// Reply is what the bot answers with. Menu asks the transport to show the
// main menu buttons.
type Reply struct {
	Text     string
	Menu     bool
	Document *Document
}

// Document is a file attached to a reply.
type Document struct {
	Name    string
	Caption string
	Content []byte
}

// PlayerEntry is a player noted under a date label.
type PlayerEntry struct {
	Date        string
	Name        string
	Goals       int
	Assists     int
	CleanSheets int
}

// ClubEntry is a club noted under a date label.
type ClubEntry struct {
	Date             string
	Name             string
	SuperCups        int
	Cups             int
	Championships    int
	ChampionsLeagues int
}

// Bot answers chat messages. It keeps no state of its own between calls.
type Bot struct {
	store   Store
	metrics metrics.Metrics
	appURLs []string
	randN   func(n int) int
}

// Option customises a Bot.
type Option func(*Bot)

// store persists sessions and entries in SQLite.
type store struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

package football

import (
	"database/sql"
	"errors"
	"sync"
	"time"
)

var (
	// ErrRosterFull is returned when a player vote would exceed the roster cap.
	ErrRosterFull = errors.New("maximum number of footballers reached")
	// ErrRecordNotFound is returned when a record to delete does not exist.
	ErrRecordNotFound = errors.New("record not found")
	// ErrUnknownRecordKind is returned for record kinds outside the fixed set.
	ErrUnknownRecordKind = errors.New("unknown record kind")
)

// store handles football data in SQLite.
type store struct {
	db             *sql.DB
	mu             sync.RWMutex
	maxFootballers int
	now            func() time.Time
}

// PlayerVote is a submitted footballer with their season numbers.
type PlayerVote struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Club      string `json:"club"`

	Victories int `json:"wins"`
	Losses    int `json:"losses"`
	Draws     int `json:"draws"`

	Goals       int `json:"goals"`
	Assists     int `json:"assists"`
	CleanSheets int `json:"clean_sheets"`

	// Coefficient is optional; nil stores no coefficient row.
	Coefficient *float64 `json:"gentleman_coef,omitempty"`
}

// FullName returns "first last".
func (v PlayerVote) FullName() string {
	return v.FirstName + " " + v.LastName
}

// ClubVote adds trophies to a club, creating it if needed.
type ClubVote struct {
	ClubName             string `json:"club_name"`
	SuperCup             int    `json:"super_cup"`
	ChampionLeague       int    `json:"champion_league"`
	NationalChampionship int    `json:"national_championship"`
	Cup                  int    `json:"cup"`
}

// TrophyType is one of the four trophies a club can win.
type TrophyType string

const (
	TrophySuperCup             TrophyType = "super_cup"
	TrophyChampionLeague       TrophyType = "champion_league"
	TrophyNationalChampionship TrophyType = "national_championship"
	TrophyCup                  TrophyType = "cup"
)

// Footballer is a stored footballer row.
type Footballer struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Age       int       `json:"age"`
	Club      string    `json:"club"`
	CreatedAt time.Time `json:"created_at"`
}

// Club is a stored club row.
type Club struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"club_name"`
	ChampionLeague       int    `json:"champion_league"`
	NationalChampionship int    `json:"national_championship"`
	Cup                  int    `json:"cup"`
	SuperCup             int    `json:"super_cup"`
	Victories            int    `json:"victories"`
	Losses               int    `json:"losses"`
	Draws                int    `json:"draws"`
}

// AwardRecord is the stored result of the latest award calculation.
type AwardRecord struct {
	RunID        string            `json:"run_id"`
	TopScorer    string            `json:"top_scorer"`
	TopAssist    string            `json:"top_assist"`
	CalculatedAt time.Time         `json:"calculated_at"`
	GoldenBall   *GoldenBallRecord `json:"golden_ball,omitempty"`
}

// GoldenBallRecord is a stored Golden Ball holder.
type GoldenBallRecord struct {
	ID     int64   `json:"id"`
	RunID  string  `json:"run_id"`
	Holder string  `json:"holder"`
	Club   string  `json:"club"`
	Score  float64 `json:"score"`
}

// LogEntry is one audit log line.
type LogEntry struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary backs the admin overview.
type Summary struct {
	Footballers int        `json:"footballers"`
	Clubs       int        `json:"clubs"`
	Trophies    int        `json:"trophies"`
	RecentLogs  []LogEntry `json:"recent_logs"`
}

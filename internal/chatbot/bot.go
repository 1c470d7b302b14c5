package chatbot

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/golden-ball/internal/metrics"
)

// Menu button labels.
const (
	ButtonAddPlayer    = "⚽️ Add player"
	ButtonAddClub      = "🏟️ Add club"
	ButtonRandomPlayer = "👕 Random player"
	ButtonRandomClub   = "🥅 Random club"
	ButtonShowPlayers  = "🥇 Show players"
	ButtonShowClubs    = "🥇 Show clubs"
	ButtonSave         = "💾 Save"
	ButtonOpenApp      = "📱 Open app"
	ButtonHelp         = "🆘 Help"
)

// MenuButtons is the main menu, row by row.
var MenuButtons = [][]string{
	{ButtonAddPlayer, ButtonAddClub},
	{ButtonRandomPlayer, ButtonRandomClub},
	{ButtonShowPlayers, ButtonShowClubs},
	{ButtonSave, ButtonOpenApp},
	{ButtonHelp},
}

// buttonCommands maps a button press to the slash command it stands for.
var buttonCommands = map[string]string{
	ButtonAddPlayer:    "add_player_wizard",
	ButtonAddClub:      "add_club_wizard",
	ButtonRandomPlayer: "random_player",
	ButtonRandomClub:   "random_club",
	ButtonShowPlayers:  "print_player",
	ButtonShowClubs:    "print_club",
	ButtonSave:         "save",
	ButtonOpenApp:      "open_app",
	ButtonHelp:         "help",
}

// buttonsByLabel resolves a button typed or pasted without its emoji,
// in any case. Slack renders emoji in message text as ":shortcode:".
var buttonsByLabel = func() map[string]string {
	m := make(map[string]string, len(buttonCommands))
	for label, cmd := range buttonCommands {
		m[normalizeLabel(label)] = cmd
	}
	return m
}()

var shortcodeRe = regexp.MustCompile(`:[a-z0-9_+\-]+:`)

// normalizeLabel lower-cases text and keeps only its letters, digits and
// single spaces.
func normalizeLabel(text string) string {
	text = shortcodeRe.ReplaceAllString(strings.ToLower(text), " ")
	text = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)
	return strings.Join(strings.Fields(text), " ")
}

const unknownText = "Unknown command. Use the menu buttons."

type handlerFunc func(ctx context.Context, userID string, parts []string) (Reply, error)

// WithRand replaces the sample picker. randN must return a value in [0, n).
func WithRand(randN func(n int) int) Option {
	return func(b *Bot) {
		b.randN = randN
	}
}

// New creates a Bot. appURLs are the links /open_app answers with.
func New(store Store, metrics metrics.Metrics, appURLs []string, opts ...Option) *Bot {
	b := &Bot{
		store:   store,
		metrics: metrics,
		appURLs: appURLs,
		randN:   rand.IntN,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Bot) handlers() map[string]handlerFunc {
	return map[string]handlerFunc{
		"start":             b.handleHelp,
		"help":              b.handleHelp,
		"add_player":        b.handleAddPlayer,
		"add_club":          b.handleAddClub,
		"add_player_wizard": b.startWizard(FlowPlayer),
		"add_club_wizard":   b.startWizard(FlowClub),
		"random_player":     b.handleRandomPlayer,
		"random_club":       b.handleRandomClub,
		"print_player":      b.handlePrintPlayers,
		"print_club":        b.handlePrintClubs,
		"save":              b.handleSave,
		"open_app":          b.handleOpenApp,
	}
}

// Handle answers one message. Commands and menu buttons always take
// precedence and abandon any wizard in progress; other text feeds the
// wizard, if there is one.
func (b *Bot) Handle(ctx context.Context, msg Message) (Reply, error) {
	text := strings.TrimSpace(msg.Text)
	name, parts := parseCommand(text)

	if handler, ok := b.handlers()[name]; ok {
		b.metrics.IncBotMessages(name)
		if err := b.store.ClearSession(ctx, msg.UserID); err != nil {
			return Reply{}, fmt.Errorf("failed to clear session: %w", err)
		}
		return handler(ctx, msg.UserID, parts)
	}

	sess, err := b.store.LoadSession(ctx, msg.UserID)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to load session: %w", err)
	}
	if sess == nil || sess.State == StateIdle || sess.State == StateDone {
		b.metrics.IncBotMessages("unknown")
		return Reply{Text: unknownText, Menu: true}, nil
	}
	b.metrics.IncBotMessages("wizard")
	return b.continueWizard(ctx, msg.UserID, sess, text)
}

// parseCommand resolves text to a command name and its whitespace split
// parts. Menu buttons resolve with no parts. Slash commands may carry a
// "@botname" suffix.
func parseCommand(text string) (string, []string) {
	if cmd, ok := buttonCommands[text]; ok {
		return cmd, nil
	}
	if !strings.HasPrefix(text, "/") {
		if cmd, ok := buttonsByLabel[normalizeLabel(text)]; ok {
			return cmd, nil
		}
	}
	parts := strings.Fields(text)
	if len(parts) == 0 || !strings.HasPrefix(parts[0], "/") {
		return "", parts
	}
	name := strings.TrimPrefix(parts[0], "/")
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	if strings.HasSuffix(name, "_wizard") {
		return "", parts
	}
	return strings.ToLower(name), parts
}

func (b *Bot) handleHelp(ctx context.Context, userID string, parts []string) (Reply, error) {
	if len(parts) == 0 {
		return Reply{Text: helpText, Menu: true}, nil
	}
	return Reply{Text: welcomeText + "\n\n" + helpText, Menu: true}, nil
}

func (b *Bot) startWizard(flow Flow) handlerFunc {
	return func(ctx context.Context, userID string, parts []string) (Reply, error) {
		sess := NewSession(flow)
		if err := b.store.SaveSession(ctx, userID, sess); err != nil {
			return Reply{}, fmt.Errorf("failed to save session: %w", err)
		}
		return Reply{Text: sess.Prompt()}, nil
	}
}

func (b *Bot) continueWizard(ctx context.Context, userID string, sess *Session, text string) (Reply, error) {
	if err := sess.Advance(text); err != nil {
		var inputErr *InputError
		if errors.As(err, &inputErr) {
			return Reply{Text: inputErr.Prompt}, nil
		}
		log.Warn("Dropping broken bot session", "user", userID, "error", err)
		if err := b.store.ClearSession(ctx, userID); err != nil {
			return Reply{}, err
		}
		return Reply{Text: unknownText, Menu: true}, nil
	}

	if sess.State != StateDone {
		if err := b.store.SaveSession(ctx, userID, sess); err != nil {
			return Reply{}, fmt.Errorf("failed to save session: %w", err)
		}
		return Reply{Text: sess.Prompt()}, nil
	}

	if err := b.store.ClearSession(ctx, userID); err != nil {
		return Reply{}, fmt.Errorf("failed to clear session: %w", err)
	}
	switch sess.Flow {
	case FlowClub:
		return b.addClub(ctx, sess.ClubEntry())
	default:
		return b.addPlayer(ctx, sess.PlayerEntry())
	}
}

func (b *Bot) addPlayer(ctx context.Context, e PlayerEntry) (Reply, error) {
	if err := b.store.AddPlayer(ctx, e); err != nil {
		return Reply{}, err
	}
	log.Debug("Bot player added", "name", e.Name, "date", e.Date)
	return Reply{
		Text: fmt.Sprintf("Footballer %q added for %s (%d goals, %d assists, %d clean sheets)",
			e.Name, e.Date, e.Goals, e.Assists, e.CleanSheets),
		Menu: true,
	}, nil
}

func (b *Bot) addClub(ctx context.Context, e ClubEntry) (Reply, error) {
	if err := b.store.AddClub(ctx, e); err != nil {
		return Reply{}, err
	}
	log.Debug("Bot club added", "name", e.Name, "date", e.Date)
	return Reply{
		Text: fmt.Sprintf("Club %q added for %s (%d super cups, %d cups, %d championships, %d Champions League titles)",
			e.Name, e.Date, e.SuperCups, e.Cups, e.Championships, e.ChampionsLeagues),
		Menu: true,
	}, nil
}

func (b *Bot) handleAddPlayer(ctx context.Context, userID string, parts []string) (Reply, error) {
	if len(parts) == 1 {
		return b.startWizard(FlowPlayer)(ctx, userID, parts)
	}
	if len(parts) < 6 {
		return Reply{Text: "Wrong format. Use: /add_player <date> <player_name> <goals> <assists> <clean_sheets>"}, nil
	}
	name, values, ok := parseNameAndParams(parts, 3)
	if !ok {
		return Reply{Text: "Wrong format. Give a name, then three non-negative integers (goals, assists, clean_sheets)."}, nil
	}
	return b.addPlayer(ctx, PlayerEntry{
		Date: normalizeDate(parts[1]), Name: name,
		Goals: values[0], Assists: values[1], CleanSheets: values[2],
	})
}

func (b *Bot) handleAddClub(ctx context.Context, userID string, parts []string) (Reply, error) {
	if len(parts) == 1 {
		return b.startWizard(FlowClub)(ctx, userID, parts)
	}
	if len(parts) < 7 {
		return Reply{Text: "Wrong format. Use: /add_club <date> <club_name> <super_cups> <cups> <championships> <champions_leagues>"}, nil
	}
	name, values, ok := parseNameAndParams(parts, 4)
	if !ok {
		return Reply{Text: "Wrong format. Give a name, then four non-negative integers (super_cups, cups, championships, champions_leagues)."}, nil
	}
	return b.addClub(ctx, ClubEntry{
		Date: normalizeDate(parts[1]), Name: name,
		SuperCups: values[0], Cups: values[1], Championships: values[2], ChampionsLeagues: values[3],
	})
}

func (b *Bot) handleRandomPlayer(ctx context.Context, userID string, parts []string) (Reply, error) {
	e := SamplePlayers[b.randN(len(SamplePlayers))]
	e.Date = TodayLabel
	return b.addPlayer(ctx, e)
}

func (b *Bot) handleRandomClub(ctx context.Context, userID string, parts []string) (Reply, error) {
	e := SampleClubs[b.randN(len(SampleClubs))]
	e.Date = TodayLabel
	return b.addClub(ctx, e)
}

func (b *Bot) handlePrintPlayers(ctx context.Context, userID string, parts []string) (Reply, error) {
	date := dateArg(parts)
	players, err := b.store.Players(ctx, date)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to list players: %w", err)
	}
	if date == "" {
		return Reply{Text: formatAll("All players by date:", "No players", players), Menu: true}, nil
	}
	if len(players) == 0 {
		return Reply{Text: fmt.Sprintf("No players on %s", date), Menu: true}, nil
	}
	return Reply{Text: formatOnDate("Players", date, players), Menu: true}, nil
}

func (b *Bot) handlePrintClubs(ctx context.Context, userID string, parts []string) (Reply, error) {
	date := dateArg(parts)
	clubs, err := b.store.Clubs(ctx, date)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to list clubs: %w", err)
	}
	if date == "" {
		return Reply{Text: formatAll("All clubs by date:", "No clubs", clubs), Menu: true}, nil
	}
	if len(clubs) == 0 {
		return Reply{Text: fmt.Sprintf("No clubs on %s", date), Menu: true}, nil
	}
	return Reply{Text: formatOnDate("Clubs", date, clubs), Menu: true}, nil
}

// dateArg joins everything after the command into a date label, so
// "/print_player 1 may" asks for "1 may".
func dateArg(parts []string) string {
	if len(parts) < 2 {
		return ""
	}
	return normalizeDate(strings.Join(parts[1:], " "))
}

func (b *Bot) handleSave(ctx context.Context, userID string, parts []string) (Reply, error) {
	players, err := b.store.Players(ctx, "")
	if err != nil {
		return Reply{}, fmt.Errorf("failed to list players: %w", err)
	}
	clubs, err := b.store.Clubs(ctx, "")
	if err != nil {
		return Reply{}, fmt.Errorf("failed to list clubs: %w", err)
	}
	return Reply{
		Text: "Data saved.",
		Menu: true,
		Document: &Document{
			Name:    ExportFileName,
			Caption: "Football data",
			Content: Export(players, clubs),
		},
	}, nil
}

func (b *Bot) handleOpenApp(ctx context.Context, userID string, parts []string) (Reply, error) {
	if len(b.appURLs) == 0 {
		return Reply{Text: "No app link is configured.", Menu: true}, nil
	}
	return Reply{Text: "App links:\n🔗 " + strings.Join(b.appURLs, "\n🔗 "), Menu: true}, nil
}

package http

import (
	"net/http"

	"github.com/mauv0809/golden-ball/internal/chatbot"
	"github.com/mauv0809/golden-ball/internal/config"
	"github.com/mauv0809/golden-ball/internal/football"
	"github.com/mauv0809/golden-ball/internal/http/handlers"
	"github.com/mauv0809/golden-ball/internal/metrics"
	"github.com/mauv0809/golden-ball/internal/notifier"
	"github.com/mauv0809/golden-ball/internal/pubsub"
)

func NewServer(store football.FootballStore, awardsSvc handlers.AwardsService, bot *chatbot.Bot, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Awards:         awardsSvc,
		Bot:            bot,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	admin := adminMiddleware(s.Cfg.AdminToken)
	slackAuth := slackVerifierMiddleware(s.Cfg.Slack.SigningSecret)

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))

	s.Router.Handle("POST /votes/player", Chain(handlers.PlayerVoteHandler(s.Store, s.Metrics), paramsMiddleware))
	s.Router.Handle("POST /votes/club", Chain(handlers.ClubVoteHandler(s.Store, s.Metrics), paramsMiddleware))
	s.Router.Handle("GET /footballers", Chain(handlers.ListFootballersHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /clubs", Chain(handlers.ListClubsHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /awards", Chain(handlers.AwardsHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /leaderboard", Chain(handlers.LeaderboardHandler(s.Awards), paramsMiddleware))

	s.Router.Handle("GET /admin/summary", Chain(handlers.SummaryHandler(s.Store), paramsMiddleware, admin))
	s.Router.Handle("GET /admin/logs", Chain(handlers.RecentLogsHandler(s.Store), paramsMiddleware, admin))
	s.Router.Handle("POST /admin/awards", Chain(handlers.CalculateAwardsHandler(s.Awards), paramsMiddleware, admin))
	s.Router.Handle("GET /admin/golden-ball", Chain(handlers.GoldenBallHandler(s.Store), paramsMiddleware, admin))
	s.Router.Handle("DELETE /admin/records/{kind}/{id}", Chain(handlers.DeleteRecordHandler(s.Store), paramsMiddleware, admin))
	s.Router.Handle("POST /admin/leaderboard/announce", Chain(handlers.AnnounceLeaderboardHandler(s.Awards, s.Notifier), paramsMiddleware, admin))

	s.Router.Handle("POST /slack/command/football", Chain(handlers.FootballCommandHandler(s.Bot, s.Notifier), paramsMiddleware, slackAuth))
	s.Router.Handle("POST /slack/command/leaderboard", Chain(handlers.LeaderboardCommandHandler(s.Awards, s.Notifier), paramsMiddleware, slackAuth))
	s.Router.Handle("POST /slack/events", Chain(handlers.SlackEventsHandler(s.Bot, s.Notifier), paramsMiddleware, slackAuth))
	s.Router.Handle("POST /pubsub/awards-calculated", Chain(handlers.AwardsCalculatedHandler(s.Notifier, s.pubsub), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

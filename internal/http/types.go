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

type Server struct {
	Store          football.FootballStore
	Awards         handlers.AwardsService
	Bot            *chatbot.Bot
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}

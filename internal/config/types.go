package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName         string   `env:"DB_NAME" envDefault:"football.db"`
	Port           string   `env:"PORT" envDefault:"8080"`
	AdminToken     string   `env:"ADMIN_TOKEN,required,notEmpty"`
	AwardPolicy    string   `env:"AWARD_POLICY" envDefault:"weighted"`
	MaxFootballers int      `env:"MAX_FOOTBALLERS" envDefault:"30"`
	AppURLs        []string `env:"APP_URLS" envSeparator:","`
	ProjectID      string   `env:"GCP_PROJECT"`
	Slack          SlackConfig
	Turso          TursoConfig
	Snapshot       SnapshotConfig
}

type SlackConfig struct {
	Token         string `env:"SLACK_BOT_TOKEN"`
	ChannelID     string `env:"SLACK_CHANNEL_ID"`
	SigningSecret string `env:"SLACK_SIGNING_SECRET"`
}

type TursoConfig struct {
	PrimaryURL string `env:"TURSO_PRIMARY_URL"`
	AuthToken  string `env:"TURSO_AUTH_TOKEN"`
}

// SnapshotConfig bounds the retries around reading the award snapshot.
type SnapshotConfig struct {
	Attempts uint64        `env:"SNAPSHOT_ATTEMPTS" envDefault:"3"`
	Backoff  time.Duration `env:"SNAPSHOT_BACKOFF" envDefault:"200ms"`
}

package main

import (
	"context"
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/golden-ball/internal/chatbot"
	"github.com/mauv0809/golden-ball/internal/database"
	"github.com/mauv0809/golden-ball/internal/football"
)

// Simplified config loading for the script
type seederConfig struct {
	DBName     string `env:"DB_NAME" envDefault:"football.db"`
	PrimaryURL string `env:"TURSO_PRIMARY_URL"`
	AuthToken  string `env:"TURSO_AUTH_TOKEN"`
	BotDate    string `env:"SEED_BOT_DATE" envDefault:"seed"`
	MaxPlayers int    `env:"MAX_FOOTBALLERS" envDefault:"30"`
}

func loadConfig() seederConfig {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}
	var cfg seederConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Error: %s", err)
	}
	return cfg
}

var sampleFootballers = []football.PlayerVote{
	{FirstName: "Lionel", LastName: "Messi", Age: 37, Club: "Inter Miami", Victories: 20, Draws: 5, Losses: 3, Goals: 25, Assists: 18, CleanSheets: 0},
	{FirstName: "Cristiano", LastName: "Ronaldo", Age: 39, Club: "Al Nassr", Victories: 18, Draws: 6, Losses: 4, Goals: 30, Assists: 8, CleanSheets: 0},
	{FirstName: "Kylian", LastName: "Mbappe", Age: 25, Club: "Real Madrid", Victories: 22, Draws: 4, Losses: 2, Goals: 28, Assists: 10, CleanSheets: 0},
	{FirstName: "Erling", LastName: "Haaland", Age: 24, Club: "Manchester City", Victories: 21, Draws: 3, Losses: 4, Goals: 32, Assists: 6, CleanSheets: 0},
	{FirstName: "Kevin", LastName: "De Bruyne", Age: 33, Club: "Manchester City", Victories: 19, Draws: 4, Losses: 5, Goals: 8, Assists: 20, CleanSheets: 0},
	{FirstName: "Virgil", LastName: "van Dijk", Age: 33, Club: "Liverpool", Victories: 20, Draws: 6, Losses: 2, Goals: 4, Assists: 2, CleanSheets: 15},
	{FirstName: "Thibaut", LastName: "Courtois", Age: 32, Club: "Real Madrid", Victories: 23, Draws: 3, Losses: 2, Goals: 0, Assists: 0, CleanSheets: 18},
}

var sampleClubVotes = []football.ClubVote{
	{ClubName: "Real Madrid", ChampionLeague: 2, NationalChampionship: 2, Cup: 1, SuperCup: 2},
	{ClubName: "Manchester City", ChampionLeague: 1, NationalChampionship: 2, Cup: 2, SuperCup: 1},
	{ClubName: "Liverpool", ChampionLeague: 1, NationalChampionship: 1, Cup: 2},
	{ClubName: "Inter Miami", Cup: 1},
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg.DBName, cfg.PrimaryURL, cfg.AuthToken)
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer teardown()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	startTime := time.Now()

	store := football.New(db, cfg.MaxPlayers)
	for _, vote := range sampleFootballers {
		if _, err := store.AddFootballer(ctx, vote); err != nil {
			if errors.Is(err, football.ErrRosterFull) {
				log.Warn("Roster already full, skipping remaining footballers")
				break
			}
			log.Fatalf("Failed to insert footballer %s: %s", vote.FullName(), err)
		}
	}
	log.Info("Seeded footballers", "count", len(sampleFootballers))

	for _, vote := range sampleClubVotes {
		if err := store.VoteClub(ctx, vote); err != nil {
			log.Fatalf("Failed to vote for club %s: %s", vote.ClubName, err)
		}
	}
	log.Info("Seeded club trophies", "count", len(sampleClubVotes))

	botStore := chatbot.NewStore(db)
	for _, p := range chatbot.SamplePlayers {
		p.Date = cfg.BotDate
		if err := botStore.AddPlayer(ctx, p); err != nil {
			log.Fatalf("Failed to insert bot player %s: %s", p.Name, err)
		}
	}
	for _, c := range chatbot.SampleClubs {
		c.Date = cfg.BotDate
		if err := botStore.AddClub(ctx, c); err != nil {
			log.Fatalf("Failed to insert bot club %s: %s", c.Name, err)
		}
	}
	log.Info("Seeded chat bot ledger", "date", cfg.BotDate, "players", len(chatbot.SamplePlayers), "clubs", len(chatbot.SampleClubs))

	log.Info("Seeding finished", "duration", time.Since(startTime))
}

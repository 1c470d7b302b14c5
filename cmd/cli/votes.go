package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/mauv0809/golden-ball/internal/football"
	"github.com/spf13/cobra"
)

var (
	playerVote    football.PlayerVote
	gentlemanCoef float64
	clubVote      football.ClubVote
	recentLogs    int
)

func init() {
	rootCmd.AddCommand(votePlayerCmd)
	rootCmd.AddCommand(voteClubCmd)
	rootCmd.AddCommand(logsCmd)

	f := votePlayerCmd.Flags()
	f.StringVar(&playerVote.FirstName, "first-name", "", "Footballer first name")
	f.StringVar(&playerVote.LastName, "last-name", "", "Footballer last name")
	f.IntVar(&playerVote.Age, "age", 0, "Footballer age")
	f.StringVar(&playerVote.Club, "club", "", "Club the footballer plays for")
	f.IntVar(&playerVote.Victories, "wins", 0, "Club wins")
	f.IntVar(&playerVote.Draws, "draws", 0, "Club draws")
	f.IntVar(&playerVote.Losses, "losses", 0, "Club losses")
	f.IntVar(&playerVote.Goals, "goals", 0, "Goals scored")
	f.IntVar(&playerVote.Assists, "assists", 0, "Assists")
	f.IntVar(&playerVote.CleanSheets, "clean-sheets", 0, "Clean sheets")
	f.Float64Var(&gentlemanCoef, "gentleman-coef", 0, "Optional fair play coefficient")
	for _, name := range []string{"first-name", "last-name", "age", "club"} {
		votePlayerCmd.MarkFlagRequired(name)
	}

	f = voteClubCmd.Flags()
	f.StringVar(&clubVote.ClubName, "club-name", "", "Club name")
	f.IntVar(&clubVote.SuperCup, "super-cup", 0, "Super cups won")
	f.IntVar(&clubVote.ChampionLeague, "champion-league", 0, "Champions League titles won")
	f.IntVar(&clubVote.NationalChampionship, "national-championship", 0, "National championships won")
	f.IntVar(&clubVote.Cup, "cup", 0, "Cups won")
	voteClubCmd.MarkFlagRequired("club-name")

	logsCmd.Flags().IntVarP(&recentLogs, "number", "n", 20, "Number of audit lines to show")
}

var votePlayerCmd = &cobra.Command{
	Use:   "vote-player",
	Short: "Submit a footballer vote",
	RunE: func(cmd *cobra.Command, args []string) error {
		vote := playerVote
		if cmd.Flags().Changed("gentleman-coef") {
			coef := gentlemanCoef
			vote.Coefficient = &coef
		}
		return submitVote("/votes/player", &vote)
	},
}

var voteClubCmd = &cobra.Command{
	Use:   "vote-club",
	Short: "Submit a club trophy vote",
	RunE: func(cmd *cobra.Command, args []string) error {
		vote := clubVote
		return submitVote("/votes/club", &vote)
	},
}

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the newest audit log lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/admin/logs?n="+strconv.Itoa(recentLogs), true)
	},
}

type vote interface {
	Normalize()
	Validate() error
}

// submitVote checks the vote locally so obvious mistakes never reach the server.
func submitVote(endpoint string, v vote) error {
	v.Normalize()
	if err := v.Validate(); err != nil {
		return err
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode vote: %w", err)
	}
	return performRequestWithBody(http.MethodPost, endpoint, false, bytes.NewReader(payload))
}

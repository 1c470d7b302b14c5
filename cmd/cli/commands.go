package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mauv0809/golden-ball/internal/football"
	"github.com/spf13/cobra"
)

var summaryLogs int

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(footballersCmd)
	rootCmd.AddCommand(clubsCmd)
	rootCmd.AddCommand(awardsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(goldenBallCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(announceCmd)

	summaryCmd.Flags().IntVar(&summaryLogs, "logs", 20, "Number of recent log lines to show")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", false)
	},
}

var footballersCmd = &cobra.Command{
	Use:   "footballers",
	Short: "List the stored footballers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/footballers", false)
	},
}

var clubsCmd = &cobra.Command{
	Use:   "clubs",
	Short: "List the stored clubs with their trophies",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/clubs", false)
	},
}

var awardsCmd = &cobra.Command{
	Use:   "awards",
	Short: "Show the latest awards",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/awards", false)
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the current Golden Ball standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/leaderboard", false)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", false)
	},
}

var calculateCmd = &cobra.Command{
	Use:   "calculate-awards",
	Short: "Run an award calculation",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/admin/awards", true)
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show table counts and recent log lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/admin/summary?logs="+strconv.Itoa(summaryLogs), true)
	},
}

var goldenBallCmd = &cobra.Command{
	Use:   "golden-ball",
	Short: "Show the stored Golden Ball holders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/admin/golden-ball", true)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <kind> <id>",
	Short: "Delete one stored record",
	Long:  "Delete one stored record. <kind> is one of: " + kindList(),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := football.ParseRecordKind(args[0]); err != nil {
			return err
		}
		if _, err := strconv.ParseInt(args[1], 10, 64); err != nil {
			return fmt.Errorf("id must be a number: %w", err)
		}
		return performRequest(http.MethodDelete, "/admin/records/"+url.PathEscape(args[0])+"/"+args[1], true)
	},
}

var announceCmd = &cobra.Command{
	Use:   "announce",
	Short: "Post the current standings to Slack",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/admin/leaderboard/announce", true)
	},
}

func kindList() string {
	kinds := football.RecordKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func performRequest(method, endpoint string, admin bool) error {
	return performRequestWithBody(method, endpoint, admin, nil)
}

// performRequestWithBody sends body as JSON when it is not nil.
func performRequestWithBody(method, endpoint string, admin bool, body io.Reader) error {
	u, err := url.Parse(host + endpoint)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if dryRun {
		q := u.Query()
		q.Set("dry_run", "true")
		u.RawQuery = q.Encode()
	}
	fmt.Printf("Making %s request to %s\n", method, u)

	req, err := http.NewRequest(method, u.String(), body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		if adminToken == "" {
			return fmt.Errorf("this command needs --token or ADMIN_TOKEN")
		}
		req.Header.Set("Authorization", "Bearer "+adminToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	return nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/berfenger/homedash/internal/app"
	"github.com/berfenger/homedash/internal/config"

	"github.com/spf13/cobra"
)

type homeKey struct{}

// ANNOTATION_LIVE marks commands that read from the active data source.
const ANNOTATION_LIVE = "live"

var liveAnnotation = map[string]string{ANNOTATION_LIVE: "true"}

var rootCmd = &cobra.Command{
	Use:   "homedashctl",
	Short: "homedash - smart home sensor dashboard",
	Long: `homedash reads sensors and rooms from Home Assistant, or from built-in
fixtures when no live connection is configured.`,
	PersistentPreRunE: selectSource,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config errors", "error", err)
		os.Exit(1)
	}

	logger := app.NewLogger(*cfg)
	defer logger.Sync()

	home, err := app.NewHome(*cfg, logger)
	if err != nil {
		fmt.Printf("Failed to open data source: %v\n", err)
		os.Exit(1)
	}
	defer home.Close()

	ctx := context.WithValue(context.Background(), homeKey{}, home)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		home.Close()
		os.Exit(1)
	}
}

func homeFrom(cmd *cobra.Command) *app.Home {
	return cmd.Context().Value(homeKey{}).(*app.Home)
}

// selectSource lets stored credentials pick the live source before a command
// that reads sensors. A failed probe keeps the fixtures.
func selectSource(cmd *cobra.Command, args []string) error {
	if !readsLiveData(cmd) {
		return nil
	}
	if err := homeFrom(cmd).Reconnect(cmd.Context()); err != nil {
		slog.Debug("using mock data", "reason", err)
	}
	return nil
}

func readsLiveData(cmd *cobra.Command) bool {
	return cmd.Annotations[ANNOTATION_LIVE] == "true"
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/berfenger/homedash/internal/core/domain"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	haURL   string
	haToken string
)

var statusCmd = &cobra.Command{
	Annotations: liveAnnotation,
	Use:         "status",
	Short:       "Show the data source and connection state",
	RunE:        runStatus,
}

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Store Home Assistant credentials",
	Long: `Store the Home Assistant url and long-lived access token and switch to the
live data source when the connection succeeds. The token is prompted for when
not given as a flag.`,
	RunE: runConfigure,
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Forget the stored credentials and switch back to mock data",
	RunE:  runDisconnect,
}

func init() {
	configureCmd.Flags().StringVar(&haURL, "url", "", "Home Assistant base url, e.g. http://homeassistant.local:8123")
	configureCmd.Flags().StringVar(&haToken, "token", "", "long-lived access token")
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(disconnectCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	home := homeFrom(cmd)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Source:    %s\n", home.DataSource())
	if cfg := home.Store.Get(cmd.Context()); cfg.Complete() {
		fmt.Fprintf(out, "URL:       %s\n", cfg.URL)
		fmt.Fprintf(out, "Connected: %t\n", home.IsConnected(cmd.Context()))
	} else {
		fmt.Fprintln(out, "URL:       not configured")
	}
	fmt.Fprintf(out, "Store:     %s\n", home.Store.Path())
	return nil
}

func runConfigure(cmd *cobra.Command, args []string) error {
	url := strings.TrimSpace(haURL)
	if url == "" {
		fmt.Print("Home Assistant url: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read url: %w", err)
		}
		url = strings.TrimSpace(line)
	}
	if url == "" {
		return fmt.Errorf("url cannot be empty")
	}

	token := haToken
	if token == "" {
		fmt.Print("Access token: ")
		tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		fmt.Println()
		token = strings.TrimSpace(string(tokenBytes))
	}
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if err := homeFrom(cmd).Configure(cmd.Context(), url, token); err != nil {
		return fmt.Errorf("failed to configure: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Connected to %s, source is now %s\n", domain.NormalizeURL(url), domain.DATA_SOURCE_HOMEASSISTANT)
	return nil
}

func runDisconnect(cmd *cobra.Command, args []string) error {
	if err := homeFrom(cmd).Disconnect(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Disconnected, source is now %s\n", domain.DATA_SOURCE_MOCK)
	return nil
}

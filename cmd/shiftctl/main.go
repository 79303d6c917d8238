package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/winner-security/shift-scheduler/cmd/shiftctl/commands"
	"github.com/winner-security/shift-scheduler/internal/client"
	"github.com/winner-security/shift-scheduler/pkg/logger"
)

var (
	server          string
	credentialsPath string
	verbose         bool
	timeout         time.Duration
)

func main() {
	app := &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:           "shiftctl",
		Short:         "Shift scheduler client for workers and admins",
		Long:          `Request shifts, review approvals and track hours against a shift scheduler server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(cmd.Context(), app)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&server, "server", "s", "", "API server URL (overrides the credentials file)")
	rootCmd.PersistentFlags().StringVarP(&credentialsPath, "credentials", "c", commands.DefaultCredentialsPath(), "Credentials file")
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", 15*time.Second, "Per-request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log guard decisions and store errors")

	rootCmd.AddCommand(commands.RegisterCmd(app))
	rootCmd.AddCommand(commands.LoginCmd(app))
	rootCmd.AddCommand(commands.LogoutCmd(app))
	rootCmd.AddCommand(commands.WhoamiCmd(app))
	rootCmd.AddCommand(commands.HomeCmd(app))
	rootCmd.AddCommand(commands.ShiftsCmd(app))
	rootCmd.AddCommand(commands.RequestCmd(app))
	rootCmd.AddCommand(commands.AdminCmd(app))

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// initApp loads the credentials file and builds the client and resolver.
func initApp(ctx context.Context, app *commands.AppContext) error {
	level := "error"
	if verbose {
		level = "debug"
	}
	log := logger.New(logger.Options{Level: level, Pretty: true, Output: os.Stderr})

	creds, err := commands.LoadCredentials(credentialsPath)
	if err != nil {
		return err
	}
	if server != "" {
		creds.Server = server
	}
	log.Debug().Str("server", creds.Server).Str("credentials", credentialsPath).Msg("loaded credentials")

	app.Init(ctx, creds, credentialsPath, os.Stdout, log, client.WithHTTPClient(&http.Client{Timeout: timeout}))
	return nil
}

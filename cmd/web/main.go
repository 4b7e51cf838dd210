package main

import (
	"fmt"
	"net"
	"os"
	"os/user"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vdanniel/github-security-checker/pkg/server"
	"github.com/vdanniel/github-security-checker/pkg/services/config"
	"github.com/vdanniel/github-security-checker/pkg/services/fixer"
	"github.com/vdanniel/github-security-checker/pkg/services/github"
	"github.com/vdanniel/github-security-checker/pkg/services/scanner"
)

var (
	profilesPath string
	profileName  string
	settingsPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the security checker",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.ghsecrc", usr.HomeDir)

	rootCmd.Flags().StringVarP(&profilesPath, "profiles", "c", defaultPath,
		"Path to the profiles file (default is $HOME/.ghsecrc)")
	rootCmd.Flags().StringVar(&profileName, "profile", "default",
		"Profile to authenticate with")
	rootCmd.Flags().StringVar(&settingsPath, "settings", "",
		"Path to a scan settings file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := config.NewRegistry(profilesPath)
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	profile, err := registry.GetProfile(ctx, profileName)
	if err != nil {
		return err
	}

	client, err := github.NewClient(ctx, profile.Token, profile.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	opts, err := config.LoadSettings(settingsPath)
	if err != nil {
		return err
	}

	logger.Info().Msgf("Using profile `%s` from `%s`.", profile.Name, profilesPath)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Scanner:  scanner.New(client, opts),
			Fixer:    fixer.NewDispatcher(client),
			Resolver: client,
			Logger:   logger,
		},
	})

	return api.Start()
}

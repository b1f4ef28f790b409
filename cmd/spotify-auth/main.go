package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/go-spotify-auth/auth"
	"github.com/jrsteele09/go-spotify-auth/internal/config"
	interrors "github.com/jrsteele09/go-spotify-auth/internal/errors"
	"github.com/jrsteele09/go-spotify-auth/internal/utils"
	"github.com/jrsteele09/go-spotify-auth/spotify"
)

const envFile = ".env"

func main() {
	logger := newLogger()

	if err := run(logger, os.Args[1:]); err != nil {
		switch {
		case interrors.Is(err, interrors.ErrConfiguration):
			logger.Error().Err(err).Msg("configuration failed")
		case interrors.Is(err, interrors.ErrAuthentication):
			logger.Error().Err(err).Msg("authentication failed")
		default:
			logger.Error().Err(err).Msg("command failed")
		}
		os.Exit(1)
	}
}

func run(logger zerolog.Logger, args []string) error {
	if len(args) != 1 {
		usage()
		return fmt.Errorf("%w: expected exactly one command", interrors.ErrConfiguration)
	}

	switch args[0] {
	case "setup":
		return runSetup(logger)
	case "auth":
		return runAuth(logger)
	default:
		usage()
		return fmt.Errorf("%w: unknown command %q", interrors.ErrConfiguration, args[0])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: spotify-auth <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  setup   Create a .env configuration template if one does not exist")
	fmt.Fprintln(os.Stderr, "  auth    Run the interactive Spotify authentication flow")
}

func runSetup(logger zerolog.Logger) error {
	created, err := config.WriteEnvTemplate(envFile)
	if err != nil {
		return err
	}
	if !created {
		logger.Info().Str("file", envFile).Msg("configuration file already exists, leaving it untouched")
		return nil
	}
	logger.Info().Str("file", envFile).Msg("created configuration template")
	fmt.Println("Created a .env file template. Edit it with your Spotify credentials.")
	fmt.Println("You can get your credentials from: https://developer.spotify.com/dashboard")
	return nil
}

func runAuth(logger zerolog.Logger) error {
	displayAppname("Spotify Auth")

	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	logger.Info().
		Str("client_id", cfg.ClientID).
		Str("redirect_uri", cfg.RedirectURI).
		Str("scope", cfg.Scope).
		Msg("configuration loaded")

	exchanger := spotify.NewExchanger(cfg.ClientID, cfg.RedirectURI, cfg.Scope)
	handshake, err := auth.NewHandshake(exchanger, spotify.AuthorizeEndpoint, cfg.ClientID, cfg.RedirectURI, cfg.Scope)
	if err != nil {
		return err
	}
	manager, err := auth.NewManager(handshake, spotify.NewFactory())
	if err != nil {
		return err
	}

	authURL, err := manager.Start()
	if err != nil {
		return fmt.Errorf("%w: %w", interrors.ErrAuthentication, err)
	}

	fmt.Println("🔐 Starting Spotify authentication...")
	fmt.Printf("📋 Authorization URL: %s\n", authURL)
	fmt.Println()
	fmt.Println("Visit the above URL in your browser to authorize the application.")
	fmt.Println("After authorization you will be redirected; copy that URL and paste it below.")
	fmt.Println()
	fmt.Print("Enter the redirect URL: ")

	redirectURL, err := readLine(os.Stdin)
	if err != nil {
		return interrors.Wrapf(err, "reading redirect URL")
	}
	if redirectURL == "" {
		return fmt.Errorf("%w: no redirect URL provided", interrors.ErrAuthentication)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := manager.Complete(ctx, redirectURL)
	if err != nil {
		var authErr *auth.AuthorizationError
		if interrors.As(err, &authErr) {
			logger.Warn().Str("error_code", authErr.Code).Msg("authorization was denied by Spotify")
		}
		return fmt.Errorf("%w: %w", interrors.ErrAuthentication, err)
	}
	logger.Info().Bool("authenticated", manager.IsAuthenticated()).Msg("token exchange complete")

	profile, err := client.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", interrors.ErrAuthentication, err)
	}

	fmt.Println()
	fmt.Println("✅ Authentication successful!")
	fmt.Printf("   User:      %s (%s)\n", profile.DisplayName, profile.ID)
	if profile.Email != "" {
		fmt.Printf("   Email:     %s\n", profile.Email)
	}
	fmt.Printf("   Followers: %d\n", utils.Value(profile.Followers).Total)
	return nil
}

func readLine(r *os.File) (string, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", nil
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("run_id", uuid.New().String()).
		Logger()
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}

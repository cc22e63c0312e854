/* main.go
 * The "main" method for running the playoff bracket scorer. It scores every stored entry once and writes the HTML
 * report, or runs the Discord bot or the webhook server
 * Usage: go run main.go -mode="score|bot|web" -test="false"
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"playoff-bracket/api/api"
	"playoff-bracket/api/config"
	"playoff-bracket/api/logging"
	"playoff-bracket/api/metrics"
	"playoff-bracket/bot"
	"playoff-bracket/web"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	//Flags
	modePtr := flag.String("mode", "score", "What to run: score, bot or web")
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")
	reportPtr := flag.String("report", "", "Path of the HTML report written in score mode, overrides the config")
	flag.Parse()

	// A missing .env is fine, the values may already be in the environment
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if envErr != nil {
		logger.Debug().Err(envErr).Msg("no .env file loaded")
	}
	if *reportPtr != "" {
		cfg.ReportPath = *reportPtr
	}

	if err := run(*modePtr, *testPtr, cfg, logger); err != nil {
		logger.Fatal().Err(err).Str("mode", *modePtr).Msg("exiting")
	}
}

// run connects to the store and starts the requested mode
// Preconditions: Receives the mode and test flags, a valid config and a logger
// Postconditions: Returns nil once the mode has finished, or the error that stopped it
func run(mode, test string, cfg *config.Config, logger zerolog.Logger) error {
	useBeta, err := convertStrToBool(test)
	if err != nil {
		return fmt.Errorf("invalid \"test\" flag, should be true or false: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.NewManager(metrics.WithNamespace(cfg.MetricsNamespace))
	apiPtr, err := api.NewAPI(ctx, cfg, logger, m)
	if err != nil {
		return fmt.Errorf("failed to initialize API: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := apiPtr.Close(closeCtx); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from db")
		}
	}()

	switch mode {
	case "score":
		return writeReport(ctx, apiPtr, cfg.ReportPath, logger)

	case "bot":
		token := cfg.DiscordToken
		if useBeta {
			token = cfg.DiscordBetaToken
		}
		b, err := bot.NewBot(token, apiPtr, cfg, logger)
		if err != nil {
			return err
		}
		return b.Run()

	case "web":
		return web.Start(ctx, web.Config{
			Addr:          cfg.Addr,
			API:           apiPtr,
			Metrics:       m,
			Log:           logger,
			WebhookSecret: cfg.WebhookSecret,
		})

	default:
		return fmt.Errorf("invalid mode %q", mode)
	}
}

// writeReport scores every entry, stores the leaderboard and writes the HTML report to path
func writeReport(ctx context.Context, apiPtr *api.API, path string, logger zerolog.Logger) error {
	if _, err := apiPtr.ScoreContest(ctx); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := apiPtr.WriteReport(ctx, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info().Str("path", path).Msg("report written")
	return nil
}

// Command qwirkle runs the game server or a batch of AI-vs-AI simulations.
package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/todd-working/qwirkle/config"
	"github.com/todd-working/qwirkle/session"
	"github.com/todd-working/qwirkle/simulate"
)

func main() {
	setupLogger()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		runServer(os.Args[2:])
	case "simulate":
		runSimulate(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func setupLogger() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

func printUsage() {
	fmt.Println("qwirkle - game server and AI simulator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  qwirkle serve      start the HTTP game server")
	fmt.Println("  qwirkle simulate   run AI vs AI simulations")
	fmt.Println()
	fmt.Println("Run 'qwirkle <command> -h' for command-specific help.")
}

func runServer(args []string) {
	cfg := &config.ServeConfig{}
	if err := cfg.Load(args); err != nil {
		log.Fatal().Err(err).Msg("failed to parse serve flags")
	}

	srv := session.NewServer()
	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", srv.Router()))
	mux.Handle("/", http.FileServer(http.Dir("./static")))

	log.Info().Str("addr", cfg.Addr).Msg("starting qwirkle server")
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func runSimulate(args []string) {
	cfg := &config.SimulateConfig{}
	if err := cfg.Load(args); err != nil {
		log.Fatal().Err(err).Msg("failed to parse simulate flags")
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	out := os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Output).Msg("cannot create output file")
		}
		defer f.Close()
		out = f
	}

	runner := simulate.NewRunner(simulate.Config{
		NumGames: cfg.NumGames,
		Player1:  cfg.Player1,
		Player2:  cfg.Player2,
		Workers:  cfg.Workers,
		Seed:     cfg.Seed,
		Verbose:  cfg.Verbose,
	})

	log.Info().Int("games", cfg.NumGames).Str("p1", cfg.Player1).Str("p2", cfg.Player2).Msg("starting simulation batch")
	if err := runner.Run(out); err != nil {
		log.Fatal().Err(err).Msg("simulation error")
	}
}

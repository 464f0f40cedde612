// Package config parses the command-line knobs shared by qwirkle's serve
// and simulate subcommands. It uses namsral/flag rather than the standard
// flag package so every knob can also be set via an environment variable
// (QWIRKLE_ADDR instead of -addr, and so on) without any of them being
// mandatory.
package config

import "github.com/namsral/flag"

// ServeConfig holds the knobs for the HTTP server subcommand.
type ServeConfig struct {
	Addr string
}

// Load parses args into a ServeConfig, defaulting Addr to ":8080".
func (c *ServeConfig) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("serve", "QWIRKLE", flag.ContinueOnError)
	fs.StringVar(&c.Addr, "addr", ":8080", "address to listen on")
	return fs.Parse(args)
}

// SimulateConfig holds the knobs for the batch simulation subcommand.
type SimulateConfig struct {
	NumGames int
	Player1  string
	Player2  string
	Workers  int
	Seed     int64
	Output   string
	Verbose  bool
}

// Load parses args into a SimulateConfig. NumGames, Player1, and Player2
// default to 1000 greedy-vs-greedy games; Workers of 0 means "use every
// CPU"; Seed of 0 means "derive one from the current time".
func (c *SimulateConfig) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("simulate", "QWIRKLE", flag.ContinueOnError)
	fs.IntVar(&c.NumGames, "n", 1000, "number of games to simulate")
	fs.StringVar(&c.Player1, "p1", "greedy", "player 1 strategy: greedy, random, weighted")
	fs.StringVar(&c.Player2, "p2", "greedy", "player 2 strategy: greedy, random, weighted")
	fs.IntVar(&c.Workers, "workers", 0, "number of parallel workers (0 = num CPUs)")
	fs.Int64Var(&c.Seed, "seed", 0, "base random seed (0 = derived from current time)")
	fs.StringVar(&c.Output, "o", "", "output file (default: stdout)")
	fs.BoolVar(&c.Verbose, "verbose", false, "log each finished game's final board state at debug level")
	return fs.Parse(args)
}

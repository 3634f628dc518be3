package config

import (
	"errors"
	"fmt"
	"strings"

	"blokus/meta"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "BLOKUS"

type Config struct {
	Debug         bool
	Pretty        bool
	Addr          string
	Seed          uint64
	Games         int
	MaxCandidates int
	OutputDir     string
	ServerURL     string

	// Args holds what is left after flags, usually the subcommand.
	Args []string
}

// Load reads flags from args, BLOKUS_* environment variables and the YAML file
// named by --config. A flag set on the command line beats the environment,
// which beats the file.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("blokus", pflag.ContinueOnError)
	fs.Bool("debug", false, "log at debug level")
	fs.Bool("pretty", false, "human readable console logs")
	fs.String("addr", meta.DefaultAddr, "address the host listens on")
	fs.Uint64("seed", 0, "random seed for searches, 0 picks one per search")
	fs.Int("games", meta.DefaultGames, "number of self-play games")
	fs.Int("max-candidates", 0, "candidates examined per ply, 0 for all of them")
	fs.String("output-dir", "experiments/results", "directory for experiment records")
	fs.String("server-url", "", "host to seat as a remote player in self-play")
	configFile := fs.String("config", "", "optional YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	if *configFile != "" {
		v.SetConfigFile(*configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", *configFile, err)
		}
	}

	c.Debug = v.GetBool("debug")
	c.Pretty = v.GetBool("pretty")
	c.Addr = v.GetString("addr")
	c.Seed = v.GetUint64("seed")
	c.Games = v.GetInt("games")
	c.MaxCandidates = v.GetInt("max-candidates")
	c.OutputDir = v.GetString("output-dir")
	c.ServerURL = v.GetString("server-url")
	c.Args = fs.Args()
	return c.validate()
}

var (
	ErrNoGames        = errors.New("games must be positive")
	ErrNegativeCap    = errors.New("max-candidates must not be negative")
	ErrMissingAddress = errors.New("addr must not be empty")
)

func (c *Config) validate() error {
	switch {
	case c.Games <= 0:
		return ErrNoGames
	case c.MaxCandidates < 0:
		return ErrNegativeCap
	case c.Addr == "":
		return ErrMissingAddress
	}
	return nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blokus/communication/server"
	"blokus/config"
	"blokus/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const gracefulShutdownTimeout = 20 * time.Second

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	command := "serve"
	if len(cfg.Args) > 0 {
		command = cfg.Args[0]
	}
	switch command {
	case "serve":
		serve(cfg)
	case "selfplay":
		if _, err := experiments.RunMasterVsRandom(*cfg); err != nil {
			log.Fatal().Err(err).Msg("self-play failed")
		}
	default:
		log.Fatal().Str("command", command).Msg("unknown command, expected serve or selfplay")
	}
}

func serve(cfg *config.Config) {
	srv := server.NewServer(cfg.MaxCandidates, cfg.Seed)

	done := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("got quit signal...")
		ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()
		if err := srv.Close(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
		close(done)
	}()

	if err := srv.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
	<-done
	log.Info().Msg("server gracefully shut down")
}

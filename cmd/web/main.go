package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minaorangina/sweep/config"
	"github.com/minaorangina/sweep/internal/logging"
	"github.com/minaorangina/sweep/server"
	"github.com/minaorangina/sweep/store"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	log, err := logging.New(cfg.LogLevel, os.Stdout)
	if err != nil {
		logrus.Fatal(err)
	}

	presets, err := config.LoadPresets(cfg.PresetsFile)
	if err != nil {
		log.WithError(err).Fatal("could not load presets")
	}

	s, err := server.NewServer(store.NewInMemoryGameStore(), server.ServerOpts{
		Presets:        presets,
		DefaultPreset:  cfg.Preset,
		AllowedOrigins: cfg.AllowedOrigins,
		MaxCells:       cfg.MaxCells,
		Logger:         log,
	})
	if err != nil {
		log.WithError(err).Fatal("could not create server")
	}
	s.Addr = cfg.Addr

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			log.WithError(err).Error("shutdown")
		}
	}()

	log.WithField("addr", cfg.Addr).Info("listening")
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("server stopped")
	}
}

package main

import (
	"os"

	"github.com/minaorangina/sweep/config"
	"github.com/minaorangina/sweep/engine"
	"github.com/minaorangina/sweep/internal/logging"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	log, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		logrus.Fatal(err)
	}

	presets, err := config.LoadPresets(cfg.PresetsFile)
	if err != nil {
		log.WithError(err).Fatal("could not load presets")
	}

	player := engine.NewCLIPlayer(engine.NewID(), os.Stdin, os.Stdout)

	name, preset, err := player.ChoosePreset(presets, cfg.Preset)
	if err != nil {
		log.WithError(err).Fatal("could not choose a board size")
	}

	ge, err := engine.NewGameEngine(engine.GameEngineOpts{
		GameID:    name,
		CreatorID: player.ID(),
		Width:     preset.Width,
		Height:    preset.Height,
		Mines:     preset.Mines,
		Logger:    log,
	})
	if err != nil {
		log.WithError(err).Fatal("could not initialise a new game")
	}

	if err := player.Play(ge); err != nil {
		log.WithError(err).Fatal("game stopped")
	}
}

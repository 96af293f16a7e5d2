package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/raffle-wheel/internal/config"
	"github.com/iburimskiy/raffle-wheel/internal/game"
	"github.com/iburimskiy/raffle-wheel/internal/raffle"
)

func main() {
	csvPath := flag.String("csv", "", "participants CSV to load on startup (first,last,ticket)")
	target := flag.String("target", "", "fixed winning ticket; empty draws a random participant per spin")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	settings, err := config.Load()
	if err != nil {
		log.Error("bad configuration", "err", err)
		os.Exit(1)
	}

	var participants []raffle.Participant
	if *csvPath != "" {
		participants, err = game.LoadParticipantsCSV(*csvPath)
		if err != nil {
			log.Error("load participants", "path", *csvPath, "err", err)
			os.Exit(1)
		}
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Raffle Wheel - Space: spin, C: cancel, M: mute, Esc/Q: quit")

	g := game.New(log, settings, participants, *target)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game loop", "err", err)
		os.Exit(1)
	}
}

// cmd/game-term/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"go-car-shooter/internal/app"
	"go-car-shooter/internal/audio"
	"go-car-shooter/internal/config"
	"go-car-shooter/internal/event"
	"go-car-shooter/internal/input"
	"go-car-shooter/internal/logging"
	"go-car-shooter/internal/term"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// tcell владеет терминалом, поэтому лог пишем в файл
	logFile, err := os.OpenFile(settings.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log := logging.New(logFile, settings.Log.Level)

	if addr := settings.Debug.Pprof; addr != "" {
		go func() {
			log.Warn().Err(http.ListenAndServe(addr, nil)).Msg("pprof stopped")
		}()
	}

	if err := run(settings, log); err != nil {
		log.Error().Err(err).Msg("game exited with error")
		fmt.Fprintln(os.Stderr, err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(settings config.Settings, log zerolog.Logger) error {
	dispatcher := event.NewDispatcher()
	app.NewEventLogger(log).Attach(dispatcher)

	sound := audio.NewSoundManager(settings.Audio.Volume, log)
	if settings.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio disabled")
		}
	}
	defer sound.Cleanup()
	sound.Attach(dispatcher)

	game, err := app.NewGame(settings, nil, dispatcher, log)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	renderer := term.NewRenderer(screen, game.World.Field)
	tracker := input.NewHoldTracker(term.HoldTicks)
	sched := app.NewTickerScheduler(app.TickInterval)
	runner := app.NewRunner(game, sched, tracker, app.Sinks{Render: renderer, HUD: renderer, GameOver: renderer})

	keys := term.NewInput(screen, tracker, runner, renderer.Over, log)

	log.Info().Msg("terminal session started")
	runner.Start()
	keys.Run()
	runner.Stop()
	log.Info().Uint64("ticks", game.Tick()).Msg("shutting down")
	return nil
}

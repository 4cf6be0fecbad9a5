// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"go-car-shooter/internal/app"
	"go-car-shooter/internal/audio"
	"go-car-shooter/internal/config"
	"go-car-shooter/internal/event"
	"go-car-shooter/internal/logging"
	"go-car-shooter/internal/state"
	"go-car-shooter/internal/ui"
	"go-car-shooter/internal/utils"
	"go-car-shooter/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	scheduler      *app.FrameScheduler
	width, height  int
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.scheduler.Stopped() {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "", "path to config file")
	skipMenu := flag.Bool("play", false, "start without the title screen")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		bootLog := logging.New(os.Stderr, "info")
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}
	log := logging.New(os.Stderr, settings.Log.Level)

	if addr := settings.Debug.Pprof; addr != "" {
		go func() {
			log.Warn().Err(http.ListenAndServe(addr, nil)).Msg("pprof stopped")
		}()
	}

	if err := run(settings, *skipMenu, log); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game exited with error")
	}
}

func run(settings config.Settings, skipMenu bool, log zerolog.Logger) error {
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

	face, err := ui.LoadFace(config.HUDFontSize)
	if err != nil {
		return err
	}
	titleFace, err := ui.LoadFace(config.TitleFontSize)
	if err != nil {
		return err
	}

	width, height := int(settings.Field.Width), int(settings.Field.Height)
	sched := app.NewFrameScheduler()
	keyboard := state.NewKeyboardSource()
	// декоративные линии скорости не должны сдвигать игровой PRNG
	fieldRenderer := render.NewFieldRenderer(game.World.Field, game.World.Vehicle.Spec, render.DefaultColors(), utils.NewPRNGService(0))

	sm := state.NewStateMachine()
	play := state.NewPlayState(sm, state.PlayDeps{
		Scheduler: sched,
		Keyboard:  keyboard,
		Renderer:  fieldRenderer,
		HUD:       ui.NewHUD(face, settings.Vehicle.MaxHealth),
		Panel:     ui.NewGameOverPanel(face, titleFace, width, height),
		ShowTPS:   log.GetLevel() <= zerolog.DebugLevel,
		Logger:    log,
	})

	runner := app.NewRunner(game, sched, keyboard, app.Sinks{Render: play, HUD: play, GameOver: play})
	play.Bind(runner)
	runner.Start()

	if skipMenu {
		sm.SetState(play)
	} else {
		sm.SetState(state.NewMenuState(sm, play, titleFace))
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Car Shooter")
	ebiten.SetTPS(config.TicksPerSecond)

	err = ebiten.RunGame(&AppGame{
		stateMachine:   sm,
		scheduler:      sched,
		width:          width,
		height:         height,
		lastUpdateTime: time.Now(),
	})
	log.Info().Uint64("ticks", game.Tick()).Msg("shutting down")
	return err
}

// Package driver hosts the simulation in an Ebiten window: it polls input,
// steps the game once per tick, draws it and reloads config.yaml on change.
package driver

import (
	"time"

	"nextlevel/internal/config"
	"nextlevel/internal/driver/keytracker"
	"nextlevel/internal/game"
	"nextlevel/internal/graphics/sprites"
	"nextlevel/internal/logger"
	"nextlevel/internal/monitoring"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// Options configures a Driver.
type Options struct {
	// ConfigPath is watched for live reloads when non-empty.
	ConfigPath string
	// AssetDir holds <key>.png sprites.
	AssetDir string
}

// Driver implements ebiten.Game around a *game.Game.
type Driver struct {
	game    *game.Game
	cfg     *config.Config
	sprites *sprites.Manager
	watcher *config.Watcher
	log     *logrus.Entry

	configPath string
	debug      config.DebugConfig

	escTracker   keytracker.KeyStateTracker
	mouseTracker keytracker.MouseStateTracker

	lastAlert time.Time
	slowStep  bool
}

// alertInterval limits slow step warnings to one per interval.
const alertInterval = time.Second

// New wraps g. A watcher is started when opts.ConfigPath is set; failure to
// watch is logged and the driver runs without reloads.
func New(g *game.Game, opts Options) *Driver {
	cfg := g.Config()
	d := &Driver{
		game:       g,
		cfg:        cfg,
		sprites:    sprites.NewManager(opts.AssetDir, cfg.World.TileSize),
		log:        logger.WithComponent("driver"),
		configPath: opts.ConfigPath,
		debug:      cfg.Debug,
	}
	g.Monitor().EnableDetailedLogging(cfg.Debug.ShowStats)

	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath)
		if err != nil {
			d.log.WithError(err).Warn("config reload disabled")
		} else {
			d.watcher = w
		}
	}
	return d
}

// Close stops the config watcher.
func (d *Driver) Close() error {
	if d.watcher == nil {
		return nil
	}
	return d.watcher.Close()
}

// Update handles all game logic updates for one frame
func (d *Driver) Update() error {
	d.pollConfig()

	if d.game.QuitRequested() {
		return ebiten.Termination
	}

	if d.mouseTracker.IsButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		d.game.HandlePointerSelect(float64(x), float64(y))
	}
	if d.escTracker.IsKeyJustPressed(ebiten.KeyEscape) {
		d.game.HandleConfirmKey(game.KeyEscape)
	}

	d.game.SetInput(InputFromKeys(ebiten.IsKeyPressed))
	d.game.Step(1 / float64(ebiten.TPS()))

	d.playCues(d.game.Events())
	d.reportAlerts(d.game.Monitor().CheckPerformanceAlerts(), time.Now())
	return nil
}

// reportAlerts logs step budget overruns at most once per alertInterval and
// remembers whether the latest step was slow for the stats overlay.
func (d *Driver) reportAlerts(alerts []monitoring.PerformanceAlert, now time.Time) {
	d.slowStep = len(alerts) > 0
	if !d.slowStep || now.Sub(d.lastAlert) < alertInterval {
		return
	}
	d.lastAlert = now
	for _, a := range alerts {
		d.log.WithFields(logrus.Fields{
			"alert":        a.Type,
			"value_ms":     a.Value,
			"threshold_ms": a.Threshold,
		}).Warn(a.Message)
	}
}

// Layout returns the screen dimensions
func (d *Driver) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return d.cfg.GetScreenWidth(), d.cfg.GetScreenHeight()
}

// InputFromKeys maps WASD and Space to held-key input.
func InputFromKeys(pressed func(ebiten.Key) bool) game.Input {
	return game.Input{
		Left:   pressed(ebiten.KeyA),
		Right:  pressed(ebiten.KeyD),
		Up:     pressed(ebiten.KeyW),
		Down:   pressed(ebiten.KeyS),
		Attack: pressed(ebiten.KeySpace),
	}
}

// cueSounds names the sound asset played for an event.
var cueSounds = map[game.Event]string{
	game.EventAttack:     "hit",
	game.EventMusicStart: "background_music",
}

func (d *Driver) playCues(events []game.Event) {
	for _, e := range events {
		entry := d.log.WithField("event", e.String())
		if sound, ok := cueSounds[e]; ok {
			entry = entry.WithField("sound", sound)
		}
		entry.Debug("cue")

		if e == game.EventGameOver || e == game.EventVictory {
			d.log.WithFields(logrus.Fields(d.game.Monitor().GetDetailedStats())).
				WithField("result", e.String()).
				Info("run finished")
		}
	}
}

func (d *Driver) pollConfig() {
	if d.watcher == nil {
		return
	}
	select {
	case <-d.watcher.Events:
		d.reloadConfig()
	case err := <-d.watcher.Errors:
		d.log.WithError(err).Warn("config watcher error")
	default:
	}
}

func (d *Driver) reloadConfig() {
	cfg, err := config.LoadConfig(d.configPath)
	if err != nil {
		d.log.WithError(err).Warn("config reload failed, keeping current settings")
		return
	}
	d.applyConfig(cfg)
}

// applyConfig takes the live-reloadable parts of cfg: logging and debug
// overlays. Display and world sizes need a restart.
func (d *Driver) applyConfig(cfg *config.Config) {
	logger.Configure(logger.Log, cfg.Logging.Level, cfg.Logging.Format)
	d.debug = cfg.Debug
	d.game.Monitor().EnableDetailedLogging(cfg.Debug.ShowStats)

	if cfg.Display != d.cfg.Display || cfg.World != d.cfg.World {
		d.log.Info("display and world changes apply on restart")
	}
	d.log.WithFields(logrus.Fields{
		"log_level":     cfg.Logging.Level,
		"show_hitboxes": cfg.Debug.ShowHitboxes,
		"show_stats":    cfg.Debug.ShowStats,
	}).Info("config reloaded")
}

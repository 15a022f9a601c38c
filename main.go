package main

import (
	"errors"
	"flag"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"nextlevel/internal/config"
	"nextlevel/internal/driver"
	"nextlevel/internal/game"
	"nextlevel/internal/logger"
	"nextlevel/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config.yaml")
	seed := flag.Int64("seed", 0, "RNG seed (0 uses run.seed, then the clock)")
	assetDir := flag.String("assets", "assets/sprites", "sprite directory")
	mapPath := flag.String("map", "", "play a fixed map file instead of generated levels")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Log.WithError(err).Fatal("failed to load config")
		}
		cfg = config.Default()
		config.GlobalConfig = cfg
		*configPath = ""
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.WithComponent("main")

	runSeed := *seed
	if runSeed == 0 {
		runSeed = cfg.Run.Seed
	}
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}
	log.WithField("seed", runSeed).Info("starting")

	g := game.New(cfg, rand.New(rand.NewSource(runSeed)))

	if *mapPath != "" {
		grid, err := world.LoadGrid(*mapPath)
		if err != nil {
			log.WithError(err).Fatal("failed to load map")
		}
		g.SetLevelSource(func(int, int, *rand.Rand) *world.Grid { return grid })
		log.WithFields(logrus.Fields{"map": *mapPath, "width": grid.Width, "height": grid.Height}).Info("using fixed map")
	}

	d := driver.New(g, driver.Options{ConfigPath: *configPath, AssetDir: *assetDir})
	defer d.Close()

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(d); err != nil {
		log.WithError(err).Error("game exited with error")
		d.Close()
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"nextlevel/internal/config"
	"nextlevel/internal/graphics/sprites"
	"nextlevel/internal/logger"
	"nextlevel/internal/workers"
	"nextlevel/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	windowWidth  = 1200
	windowHeight = 800
	sidebarWidth = 300
)

// mapInfo is one viewable level: generated from a seed or loaded from disk.
type mapInfo struct {
	Key   string
	Seed  int64
	Grid  *world.Grid
	Rooms []world.Room
	Err   error
}

type viewer struct {
	cfg        *config.Config
	maps       []mapInfo
	mapIndex   int
	sidebarTab int
	nextSeed   int64
}

const (
	tabInfo = iota
	tabRooms
)

func main() {
	ensureRuntimeCWD()

	seed := flag.Int64("seed", 1, "first seed to generate")
	batch := flag.Int("batch", 8, "levels to generate up front")
	mapsDir := flag.String("maps", "assets/maps", "directory of .txt maps")
	flag.Parse()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		cfg = config.Default()
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.WithComponent("map_viewer")

	maps, err := loadMaps(*mapsDir)
	if err != nil {
		log.WithError(err).Warn("no map files loaded")
	}

	v := &viewer{
		cfg:      cfg,
		nextSeed: *seed,
	}
	v.maps = append(v.maps, v.generateBatch(*batch)...)
	v.maps = append(v.maps, maps...)
	if len(v.maps) == 0 {
		v.maps = append(v.maps, v.generate())
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("The Next Level Map Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		log.WithError(err).Fatal("viewer exited with error")
	}
}

// generate builds a level for the next seed.
func (v *viewer) generate() mapInfo {
	seed := v.nextSeed
	v.nextSeed++
	return generateSeed(v.cfg, seed)
}

// generateBatch builds n consecutive seeds in parallel. Each level owns its
// RNG, so the result matches generating them one by one.
func (v *viewer) generateBatch(n int) []mapInfo {
	if n <= 0 {
		return nil
	}
	first := v.nextSeed
	v.nextSeed += int64(n)

	pool := workers.NewPool(0)
	pool.Start()
	defer pool.Stop()

	out := make([]mapInfo, n)
	_ = pool.ParallelFor(context.Background(), 0, n, func(i int) {
		out[i] = generateSeed(v.cfg, first+int64(i))
	})
	return out
}

func generateSeed(cfg *config.Config, seed int64) mapInfo {
	gen := world.Generate(cfg.GetMapWidth(), cfg.GetMapHeight(), rand.New(rand.NewSource(seed)))
	return mapInfo{
		Key:   fmt.Sprintf("seed %d", seed),
		Seed:  seed,
		Grid:  gen.Grid,
		Rooms: gen.Rooms,
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if v.sidebarTab == tabInfo {
			v.sidebarTab = tabRooms
		} else {
			v.sidebarTab = tabInfo
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		v.maps = append(v.maps, v.generate())
		v.mapIndex = len(v.maps) - 1
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		v.mapIndex = (v.mapIndex + 1) % len(v.maps)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		v.mapIndex--
		if v.mapIndex < 0 {
			v.mapIndex = len(v.maps) - 1
		}
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})

	m := v.maps[v.mapIndex]
	if m.Err != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("map %s failed to load: %v", m.Key, m.Err), 16, 16)
		return
	}

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()

	padding := 16
	mapAreaW := screenW - sidebarWidth - padding*3
	mapAreaH := screenH - padding*2
	sidebarX := padding + mapAreaW + padding

	drawMapPanel(screen, m, padding, padding, mapAreaW, mapAreaH)
	drawSidebar(screen, m, sidebarX, padding, sidebarWidth, mapAreaH, v.sidebarTab)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

func drawMapPanel(screen *ebiten.Image, m mapInfo, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{20, 20, 35, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	grid := m.Grid
	tileSize := w / grid.Width
	if alt := h / grid.Height; alt < tileSize {
		tileSize = alt
	}
	if tileSize < 2 {
		tileSize = 2
	}

	originX := x + (w-grid.Width*tileSize)/2
	originY := y + (h-grid.Height*tileSize)/2

	// Build at 1px per cell just to reuse tile sprite keys for colors.
	for _, tile := range world.Build(grid, 1).Tiles() {
		drawX := originX + int(tile.X)*tileSize
		drawY := originY + int(tile.Y)*tileSize
		vector.DrawFilledRect(screen, float32(drawX), float32(drawY), float32(tileSize), float32(tileSize), sprites.PlaceholderColor(tile.Sprite()), false)
	}

	for i, room := range m.Rooms {
		rx := originX + room.X*tileSize
		ry := originY + room.Y*tileSize
		drawRectBorder(screen, rx, ry, room.W*tileSize, room.H*tileSize, 1, color.RGBA{50, 200, 255, 255})
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", i), rx+2, ry+1)
	}

	ebitenutil.DebugPrintAt(screen, m.Key, x+12, y+8)
	ebitenutil.DebugPrintAt(screen, "Left/Right (or A/D) switch, Space new seed, Tab sidebar, Esc quit", x+12, y+24)
}

func drawSidebar(screen *ebiten.Image, m mapInfo, x, y, w, h int, tab int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{18, 18, 26, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	row := y + 12
	var lines []string
	if tab == tabRooms {
		lines = append(lines, "Rooms (x, y, w x h):")
		for i, room := range m.Rooms {
			cx, cy := room.Center()
			lines = append(lines, fmt.Sprintf("%d: %d,%d %dx%d  center %d,%d", i, room.X, room.Y, room.W, room.H, cx, cy))
		}
		if len(m.Rooms) == 0 {
			lines = append(lines, "(loaded from file)")
		}
	} else {
		grid := m.Grid
		lines = append(lines,
			fmt.Sprintf("Cells: %dx%d", grid.Width, grid.Height),
			fmt.Sprintf("Floor: %d", grid.Count(world.CellFloor)),
			fmt.Sprintf("Wall: %d", grid.Count(world.CellWall)),
			fmt.Sprintf("Decor wall: %d", grid.Count(world.CellDecorWall)),
			fmt.Sprintf("Doors: %d", grid.Count(world.CellDoor)),
			fmt.Sprintf("Rooms: %d", len(m.Rooms)),
		)
	}

	for _, line := range lines {
		if row > y+h-16 {
			break
		}
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += 16
	}
}

func loadMaps(dir string) ([]mapInfo, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to list maps: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no maps in %s", dir)
	}
	sort.Strings(paths)

	maps := make([]mapInfo, 0, len(paths))
	for _, path := range paths {
		grid, err := world.LoadGrid(path)
		maps = append(maps, mapInfo{
			Key:  filepath.Base(path),
			Grid: grid,
			Err:  err,
		})
	}
	return maps, nil
}

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.Color) {
	t := float32(thickness)
	fx := float32(x)
	fy := float32(y)
	fw := float32(w)
	fh := float32(h)
	vector.DrawFilledRect(screen, fx, fy, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy+fh-t, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy, t, fh, clr, false)
	vector.DrawFilledRect(screen, fx+fw-t, fy, t, fh, clr, false)
}

func ensureRuntimeCWD() {
	if _, err := os.Stat("config.yaml"); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	_ = os.Chdir(filepath.Dir(exe))
}

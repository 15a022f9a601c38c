// Package sprites loads ebiten images for asset keys. It is used by the
// presentation layer only.
package sprites

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// Manager loads PNG sprites by asset key and falls back to a flat
// colored placeholder when a file is missing, so the game runs without art.
type Manager struct {
	dir     string
	size    int
	sprites map[string]*ebiten.Image
	missing map[string]bool
}

func NewManager(dir string, size int) *Manager {
	return &Manager{
		dir:     dir,
		size:    size,
		sprites: make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
	}
}

func (sm *Manager) GetSprite(name string) *ebiten.Image {
	if sprite, exists := sm.sprites[name]; exists {
		return sprite
	}

	if !sm.missing[name] {
		if img, err := sm.load(name); err == nil {
			sm.sprites[name] = img
			return img
		}
		sm.missing[name] = true
	}

	img := sm.createPlaceholder(name)
	sm.sprites[name] = img
	return img
}

func (sm *Manager) load(name string) (*ebiten.Image, error) {
	path := filepath.Join(sm.dir, name+".png")
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

func (sm *Manager) createPlaceholder(name string) *ebiten.Image {
	img := ebiten.NewImage(sm.size, sm.size)
	img.Fill(PlaceholderColor(name))
	return img
}

// PlaceholderColor maps an asset key to a flat color by its prefix.
func PlaceholderColor(name string) color.Color {
	switch {
	case strings.HasPrefix(name, "player"):
		return colornames.Deepskyblue
	case strings.HasPrefix(name, "ghost"):
		return colornames.Lavender
	case strings.HasPrefix(name, "cyclops"):
		return colornames.Darkorange
	case strings.HasPrefix(name, "enemy"):
		return colornames.Crimson
	case strings.HasPrefix(name, "red_potion"):
		return colornames.Red
	case name == "wall":
		return colornames.Dimgray
	case name == "wall_2":
		return colornames.Slategray
	case name == "floor":
		return colornames.Saddlebrown
	case name == "closed_door":
		return colornames.Sienna
	case name == "door":
		return colornames.Gold
	default:
		return colornames.Magenta
	}
}

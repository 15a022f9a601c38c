package driver

import (
	"fmt"
	"image/color"

	"nextlevel/internal/character"
	"nextlevel/internal/collision"
	"nextlevel/internal/game"
	"nextlevel/internal/monitoring"
	"nextlevel/internal/monster"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const lineHeight = 16

// Draw handles all rendering for one frame
func (d *Driver) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	switch d.game.State() {
	case game.StateMainMenu:
		d.drawMenu(screen)
	case game.StateStoryIntro:
		d.drawStory(screen)
	case game.StatePlaying:
		d.drawLevel(screen)
		d.drawHUD(screen)
	case game.StateGameOver:
		d.drawLevel(screen)
		d.drawBanner(screen, "Game Over")
	case game.StateVictory:
		d.drawLevel(screen)
		d.drawBanner(screen, "You Win!")
	}

	if d.debug.ShowStats {
		d.drawStats(screen)
	}
}

func (d *Driver) drawMenu(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	w := d.cfg.GetScreenWidth()
	title := d.cfg.Display.WindowTitle
	ebitenutil.DebugPrintAt(screen, title, centeredX(w, title), 100)

	for _, b := range d.game.Buttons() {
		minX, minY, _, _ := b.Box.GetBounds()
		fillBox(screen, b.Box, colornames.Darkslategray)
		strokeBox(screen, b.Box, colornames.Orange)
		ebitenutil.DebugPrintAt(screen, b.Sprite, int(minX)+6, int(minY)+6)
	}
}

func (d *Driver) drawStory(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	w := d.cfg.GetScreenWidth()
	y := 50
	for _, line := range d.game.StoryLines() {
		ebitenutil.DebugPrintAt(screen, line, centeredX(w, line), y)
		y += lineHeight + 4
	}
}

func (d *Driver) drawLevel(screen *ebiten.Image) {
	for _, t := range d.game.Tiles() {
		d.drawSprite(screen, t.Sprite(), t.X, t.Y)
	}
	if d.game.State() != game.StatePlaying {
		return
	}

	for _, p := range d.game.Potions() {
		d.drawCentered(screen, p.Sprite(), p.Box)
	}
	if p := d.game.Player(); p != nil && p.Visible() {
		d.drawCentered(screen, p.Sprite(), p.Box)
	}
	for _, e := range d.game.Enemies() {
		d.drawCentered(screen, e.Sprite(), e.Box)
	}

	if d.debug.ShowHitboxes {
		d.drawHitboxes(screen)
	}
}

func (d *Driver) drawHitboxes(screen *ebiten.Image) {
	if p := d.game.Player(); p != nil {
		strokeBox(screen, p.Box, colornames.Cyan)
	}
	for _, e := range d.game.Enemies() {
		clr := colornames.Yellow
		if e.State == monster.StateChasing {
			clr = colornames.Red
		}
		strokeBox(screen, e.Box, clr)
	}
	if p, hb := d.game.Player(), d.game.LastSwing(); p != nil && hb != nil && p.State == character.PlayerAttack {
		fillBox(screen, hb, color.RGBA{255, 255, 255, 96})
	}
}

func (d *Driver) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lives: %d", d.game.Lives()), 10, 10)
	level := fmt.Sprintf("Level: %d", d.game.Level())
	ebitenutil.DebugPrintAt(screen, level, d.cfg.GetScreenWidth()-10-textWidth(level), 10)
}

func (d *Driver) drawBanner(screen *ebiten.Image, msg string) {
	w, h := d.cfg.GetScreenWidth(), d.cfg.GetScreenHeight()
	hint := "Press ESC to return to the menu"
	ebitenutil.DebugPrintAt(screen, msg, centeredX(w, msg), h/2)
	ebitenutil.DebugPrintAt(screen, hint, centeredX(w, hint), h/2+50)
}

func (d *Driver) drawStats(screen *ebiten.Image) {
	m := d.game.Monitor().GetCurrentMetrics()
	lines := []string{
		fmt.Sprintf("TPS: %.1f  step: %v  peak: %v", ebiten.ActualTPS(), m.AvgStepTime, m.PeakStepTime),
		fmt.Sprintf("ai: %v  hits: %v  build: %v", m.EnemyUpdateTime, m.HitResolutionTime, m.LevelBuildTime),
		fmt.Sprintf("enemies: %d  potions: %d  killed: %d", m.EnemiesActive, m.PotionsActive, m.EnemiesKilled),
		fmt.Sprintf("mem: %d MB", m.MemoryUsageMB),
	}
	if d.slowStep {
		lines = append(lines, fmt.Sprintf("SLOW STEP (budget %v)", monitoring.StepBudget))
	}
	y := d.cfg.GetScreenHeight() - lineHeight*len(lines) - 4
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, y)
		y += lineHeight
	}
}

func (d *Driver) drawSprite(screen *ebiten.Image, key string, left, top float64) {
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(left, top)
	screen.DrawImage(d.sprites.GetSprite(key), opts)
}

func (d *Driver) drawCentered(screen *ebiten.Image, key string, box *collision.BoundingBox) {
	minX, minY, _, _ := box.GetBounds()
	d.drawSprite(screen, key, minX, minY)
}

func fillBox(screen *ebiten.Image, box *collision.BoundingBox, clr color.Color) {
	minX, minY, _, _ := box.GetBounds()
	vector.DrawFilledRect(screen, float32(minX), float32(minY), float32(box.Width), float32(box.Height), clr, false)
}

func strokeBox(screen *ebiten.Image, box *collision.BoundingBox, clr color.Color) {
	minX, minY, _, _ := box.GetBounds()
	vector.StrokeRect(screen, float32(minX), float32(minY), float32(box.Width), float32(box.Height), 1, clr, false)
}

// textWidth is the width of s in the debug font (6px per glyph).
func textWidth(s string) int {
	return len(s) * 6
}

func centeredX(screenWidth int, s string) int {
	return (screenWidth - textWidth(s)) / 2
}

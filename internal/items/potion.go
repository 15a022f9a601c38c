package items

import "nextlevel/internal/collision"

// PotionHeal is the number of lives a potion restores.
const PotionHeal = 1

// Potion is a one-shot pickup lying on a floor cell.
type Potion struct {
	Box      *collision.BoundingBox
	Heal     int
	Consumed bool
}

// NewPotion places a size x size potion centered on (x, y).
func NewPotion(x, y, size float64) *Potion {
	return &Potion{
		Box:  collision.NewBoundingBox(x, y, size, size),
		Heal: PotionHeal,
	}
}

func (p *Potion) X() float64 { return p.Box.X }
func (p *Potion) Y() float64 { return p.Box.Y }

func (p *Potion) Sprite() string { return "red_potion" }

// Collect consumes the potion and returns lives after healing, capped at
// maxLives. A potion is consumed even when it heals nothing.
func (p *Potion) Collect(lives, maxLives int) int {
	p.Consumed = true
	if lives < maxLives {
		lives += p.Heal
		if lives > maxLives {
			lives = maxLives
		}
	}
	return lives
}

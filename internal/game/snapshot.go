package game

import (
	"github.com/tomz197/neonroids/internal/config"
	"github.com/tomz197/neonroids/internal/object"
)

// Snapshot is a read-only copy of the world for renderers. It shares no
// memory with the World it was taken from.
type Snapshot struct {
	Mode   config.Mode `json:"mode"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`

	Ship      ShipState       `json:"ship"`
	Asteroids []AsteroidState `json:"asteroids"`
	Bullets   []BulletState   `json:"bullets"`
	Lasers    []LaserState    `json:"lasers"`
	Particles []ParticleState `json:"particles"`

	Score        int  `json:"score"`
	Money        int  `json:"money"`
	Lives        int  `json:"lives"`
	Level        int  `json:"level"`
	Destroyed    int  `json:"destroyed"`
	Threshold    int  `json:"threshold"`
	LevelingUp   bool `json:"levelingUp"`
	LevelUpTimer int  `json:"levelUpTimer"`
	Paused       bool `json:"paused"`
	Over         bool `json:"over"`

	Offers []Offer `json:"offers,omitempty"`
}

// ShipState is the renderable part of the ship.
type ShipState struct {
	X          float64       `json:"x"`
	Y          float64       `json:"y"`
	VX         float64       `json:"vx"`
	VY         float64       `json:"vy"`
	Angle      float64       `json:"angle"`
	Radius     float64       `json:"radius"`
	Weapon     object.Weapon `json:"weapon"`
	SpeedLevel int           `json:"speedLevel"`
	MaxLives   int           `json:"maxLives"`
	Thrusting  bool          `json:"thrusting"`
}

// AsteroidState describes one asteroid.
type AsteroidState struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	VX         float64 `json:"vx"`
	VY         float64 `json:"vy"`
	Radius     float64 `json:"radius"`
	Angle      float64 `json:"angle"`
	Vertices   int     `json:"vertices"`
	Jaggedness float64 `json:"jaggedness"`
}

// BulletState describes one bullet.
type BulletState struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	VX   float64 `json:"vx"`
	VY   float64 `json:"vy"`
	Life int     `json:"life"`
}

// LaserState describes one beam including its current tip.
type LaserState struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	EndX   float64 `json:"endX"`
	EndY   float64 `json:"endY"`
	Angle  float64 `json:"angle"`
	Length float64 `json:"length"`
	Life   int     `json:"life"`
}

// ParticleState describes one particle with its fade already applied.
type ParticleState struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
	Alpha float64 `json:"alpha"`
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Mode:   w.rules.Mode,
		Width:  w.screen.Width,
		Height: w.screen.Height,
		Ship: ShipState{
			X:          w.Ship.X,
			Y:          w.Ship.Y,
			VX:         w.Ship.VX,
			VY:         w.Ship.VY,
			Angle:      w.Ship.Angle,
			Radius:     w.Ship.Radius,
			Weapon:     w.Ship.Weapon,
			SpeedLevel: w.Ship.SpeedLevel,
			MaxLives:   w.Ship.MaxLives,
			Thrusting:  w.Ship.Thrusting,
		},
		Asteroids:    make([]AsteroidState, 0, len(w.Asteroids)),
		Bullets:      make([]BulletState, 0, len(w.Bullets)),
		Lasers:       make([]LaserState, 0, len(w.Lasers)),
		Particles:    make([]ParticleState, 0, len(w.Particles)),
		Score:        w.Score,
		Money:        w.Money,
		Lives:        w.Lives,
		Level:        w.Level,
		Destroyed:    w.Destroyed,
		Threshold:    w.Threshold,
		LevelingUp:   w.LevelingUp,
		LevelUpTimer: w.LevelUpTimer,
		Paused:       w.Paused,
		Over:         w.Over,
		Offers:       w.Offers(),
	}

	for _, a := range w.Asteroids {
		s.Asteroids = append(s.Asteroids, AsteroidState{
			X: a.X, Y: a.Y, VX: a.VX, VY: a.VY,
			Radius: a.Radius, Angle: a.Angle,
			Vertices: a.Vertices, Jaggedness: a.Jaggedness,
		})
	}
	for _, b := range w.Bullets {
		s.Bullets = append(s.Bullets, BulletState{X: b.X, Y: b.Y, VX: b.VX, VY: b.VY, Life: b.Life})
	}
	for _, l := range w.Lasers {
		ex, ey := l.End()
		s.Lasers = append(s.Lasers, LaserState{
			X: l.X, Y: l.Y, EndX: ex, EndY: ey,
			Angle: l.Angle, Length: l.Length, Life: l.Life,
		})
	}
	for _, p := range w.Particles {
		s.Particles = append(s.Particles, ParticleState{X: p.X, Y: p.Y, Color: p.Color, Alpha: p.Alpha()})
	}
	return s
}

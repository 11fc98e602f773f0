package object

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"pgregory.net/rapid"
)

var testScreen = Screen{Width: 800, Height: 600}

func TestWrapPosition(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside", 100, 200, 100, 200},
		{"left edge", -0.5, 10, 800, 10},
		{"right edge", 800.5, 10, 0, 10},
		{"top edge", 10, -3, 10, 600},
		{"bottom edge", 10, 601, 10, 0},
		{"far past right is not modulo", 2000, 10, 0, 10},
		{"boundary stays", 800, 600, 800, 600},
		{"corner", -1, -1, 800, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.x, tt.y
			testScreen.WrapPosition(&x, &y)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("WrapPosition(%v,%v) = (%v,%v), want (%v,%v)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestWrapKeepsPositionOnScreen(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := Screen{
			Width:  rapid.Float64Range(1, 2000).Draw(t, "w"),
			Height: rapid.Float64Range(1, 2000).Draw(t, "h"),
		}
		x := rapid.Float64Range(-5000, 5000).Draw(t, "x")
		y := rapid.Float64Range(-5000, 5000).Draw(t, "y")

		s.WrapPosition(&x, &y)
		if x < 0 || x > s.Width || y < 0 || y > s.Height {
			t.Fatalf("(%v,%v) outside %vx%v after wrap", x, y, s.Width, s.Height)
		}
	})
}

func TestShipFrictionNeverAccelerates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewShip(testScreen, 15, 250*time.Millisecond, 3)
		s.VX = rapid.Float64Range(-20, 20).Draw(t, "vx")
		s.VY = rapid.Float64Range(-20, 20).Draw(t, "vy")
		c := Controls{
			Left:  rapid.Bool().Draw(t, "left"),
			Right: rapid.Bool().Draw(t, "right"),
		}

		before := s.Speed()
		s.Update(c, 0.08, 0.15, 0.98, testScreen)
		if after := s.Speed(); after > before {
			t.Fatalf("speed grew from %v to %v without thrust", before, after)
		}
		if s.X < 0 || s.X > testScreen.Width || s.Y < 0 || s.Y > testScreen.Height {
			t.Fatalf("ship left the screen: (%v,%v)", s.X, s.Y)
		}
	})
}

func TestShipUpdate(t *testing.T) {
	s := NewShip(testScreen, 15, 250*time.Millisecond, 3)

	s.Update(Controls{Right: true}, 0.08, 0.15, 0.98, testScreen)
	if s.Angle != 0.08 {
		t.Errorf("angle after right = %v, want 0.08", s.Angle)
	}
	s.Update(Controls{Left: true}, 0.08, 0.15, 0.98, testScreen)
	if s.Angle != 0 {
		t.Errorf("angle after left = %v, want 0", s.Angle)
	}

	s.Update(Controls{Thrust: true}, 0.08, 0.15, 0.98, testScreen)
	if math.Abs(s.VY+0.15*0.98) > 1e-12 || math.Abs(s.VX) > 1e-12 {
		t.Errorf("velocity after thrust = (%v,%v)", s.VX, s.VY)
	}
	if !s.Thrusting {
		t.Error("thrusting flag not set")
	}
	if s.Y >= 300 {
		t.Errorf("ship should move up, y = %v", s.Y)
	}
}

func TestShipCanFire(t *testing.T) {
	s := NewShip(testScreen, 15, 250*time.Millisecond, 3)
	now := time.Unix(100, 0)
	if !s.CanFire(now) {
		t.Fatal("a ship that never fired must be able to fire")
	}
	s.LastFire = now
	if s.CanFire(now.Add(100 * time.Millisecond)) {
		t.Error("fired inside the delay")
	}
	if !s.CanFire(now.Add(250 * time.Millisecond)) {
		t.Error("refused after the delay")
	}
}

type recordingSpawner struct {
	asteroids []*Asteroid
	particles []*Particle
}

func (r *recordingSpawner) SpawnAsteroid(a *Asteroid) { r.asteroids = append(r.asteroids, a) }
func (r *recordingSpawner) SpawnParticle(p *Particle) { r.particles = append(r.particles, p) }

func TestSplitChildren(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		radius := rapid.Float64Range(0.5, 200).Draw(t, "radius")
		rng := rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed")))
		a := NewAsteroid(100, 100, radius, 1.5, rng)

		var sp recordingSpawner
		n := a.Split(15, 2.25, rng, &sp)

		if radius > 15 {
			if n != 2 || len(sp.asteroids) != 2 {
				t.Fatalf("radius %v split into %d, want 2", radius, len(sp.asteroids))
			}
			for _, c := range sp.asteroids {
				if c.Radius != radius/2 {
					t.Fatalf("child radius %v, want %v", c.Radius, radius/2)
				}
				if c.Vertices != a.Vertices || c.Jaggedness != a.Jaggedness {
					t.Fatal("child must inherit vertices and jaggedness")
				}
				if math.Abs(c.VX) > 2.25/2 || math.Abs(c.VY) > 2.25/2 {
					t.Fatalf("child velocity (%v,%v) out of range", c.VX, c.VY)
				}
				if math.Abs(c.RotationSpeed) > 0.04 {
					t.Fatalf("child rotation %v out of range", c.RotationSpeed)
				}
			}
		} else if n != 0 || len(sp.asteroids) != 0 {
			t.Fatalf("radius %v split into %d, want none", radius, len(sp.asteroids))
		}
	})
}

func TestNewAsteroidRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		a := NewAsteroid(0, 0, 40, 1.5, rng)
		if a.Vertices < 8 || a.Vertices > 11 {
			t.Fatalf("vertices = %d", a.Vertices)
		}
		if a.Jaggedness < 0.3 || a.Jaggedness >= 0.6 {
			t.Fatalf("jaggedness = %v", a.Jaggedness)
		}
		if math.Abs(a.VX) > 0.75 || math.Abs(a.VY) > 0.75 {
			t.Fatalf("velocity = (%v,%v)", a.VX, a.VY)
		}
		if math.Abs(a.RotationSpeed) > 0.025 {
			t.Fatalf("rotation = %v", a.RotationSpeed)
		}
	}
}

func TestSpawnBatchClearance(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	spawner := AsteroidSpawner{Radius: 40, Clearance: 150, Attempts: 1000}
	var sp recordingSpawner

	spawner.SpawnBatch(12, 1.5, testScreen, 400, 300, rng, &sp)

	if len(sp.asteroids) != 12 {
		t.Fatalf("spawned %d, want 12", len(sp.asteroids))
	}
	for _, a := range sp.asteroids {
		if d := math.Hypot(a.X-400, a.Y-300); d < 150 {
			t.Errorf("asteroid %v from the ship", d)
		}
		if a.Radius != 40 {
			t.Errorf("radius = %v", a.Radius)
		}
	}
}

func TestSpawnBatchTerminatesWithoutRoom(t *testing.T) {
	tiny := Screen{Width: 50, Height: 50}
	spawner := AsteroidSpawner{Radius: 40, Clearance: 150, Attempts: 10}
	var sp recordingSpawner

	spawner.SpawnBatch(3, 1.5, tiny, 25, 25, rand.New(rand.NewSource(1)), &sp)

	if len(sp.asteroids) != 3 {
		t.Fatalf("spawned %d, want 3 even without a valid position", len(sp.asteroids))
	}
}

func TestBulletUpdate(t *testing.T) {
	b := NewBullet(799, 300, 0, 5, 2)

	if b.Update(testScreen) {
		t.Fatal("bullet expired early")
	}
	if b.X != 0 {
		t.Errorf("bullet should wrap to x=0, got %v", b.X)
	}
	if !b.Update(testScreen) {
		t.Error("bullet should expire at life 0")
	}
}

func TestLaserGrowth(t *testing.T) {
	l := NewLaser(0, 0, 0, 40, 40, 100)
	for i := 0; i < 5; i++ {
		l.Update()
	}
	// 40, 80, 120 then capped growth stops
	if l.Length != 120 {
		t.Errorf("length = %v, want 120", l.Length)
	}
	if !l.Touches(110, 5, 10) {
		t.Error("circle near the tip should touch")
	}
	if l.Touches(140, 0, 10) {
		t.Error("circle past the tip should not touch")
	}
}

func TestSpawnExplosion(t *testing.T) {
	var sp recordingSpawner
	SpawnExplosion(10, 20, 15, ColorAsteroid, rand.New(rand.NewSource(5)), &sp)

	if len(sp.particles) != 15 {
		t.Fatalf("particles = %d, want 15", len(sp.particles))
	}
	for i, p := range sp.particles {
		if p.X != 10 || p.Y != 20 || p.Color != ColorAsteroid || p.MaxLife != 50 {
			t.Errorf("particle %d = %+v", i, *p)
		}
		if p.Life < 30 || p.Life >= 50 {
			t.Errorf("particle life %v out of range", p.Life)
		}
		speed := math.Hypot(p.VX, p.VY)
		if speed < 2*0.7 || speed > 4*1.42 {
			t.Errorf("particle speed %v out of range", speed)
		}
	}
	for _, p := range sp.particles {
		p.Release()
	}
}

func TestParticleUpdate(t *testing.T) {
	p := NewParticle(0, 0, 1, 2, 2, 50, ColorShip)
	defer p.Release()

	if p.Update() {
		t.Fatal("particle expired early")
	}
	if p.X != 1 || p.Y != 2 {
		t.Errorf("position = (%v,%v)", p.X, p.Y)
	}
	if !p.Update() {
		t.Error("particle should expire at life 0")
	}
	if p.Alpha() != 0 {
		t.Errorf("alpha = %v, want 0", p.Alpha())
	}
}

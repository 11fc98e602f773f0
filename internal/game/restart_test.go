package game

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/tomz197/neonroids/internal/config"
	"github.com/tomz197/neonroids/internal/object"
)

func TestRestartKeepsUpgrades(t *testing.T) {
	w, _ := newTestWorld(t, config.Default())
	w.Money = 300
	if _, err := w.Buy(UpgradeSpread); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Buy(UpgradeSpeed); err != nil {
		t.Fatal(err)
	}
	w.Score = 470
	w.Level = 4
	w.Threshold = 18
	w.Destroyed = 3
	w.LevelingUp = true
	w.LevelUpTimer = 50
	w.Over = true
	w.Lives = 0
	w.Ship.X, w.Ship.Y, w.Ship.VX = 10, 10, 3
	w.Bullets = append(w.Bullets, object.NewBullet(1, 1, 0, 5, 60))
	w.Lasers = append(w.Lasers, object.NewLaser(1, 1, 0, 30, 40, 1200))
	w.SpawnParticle(object.NewParticle(1, 1, 0, 0, 10, 50, object.ColorShip))

	events := w.Restart()

	if w.Score != 0 || w.Money != 0 || w.Level != 1 || w.Threshold != 10 || w.Destroyed != 0 {
		t.Errorf("scalars not reset: score %d money %d level %d threshold %d destroyed %d",
			w.Score, w.Money, w.Level, w.Threshold, w.Destroyed)
	}
	if w.LevelingUp || w.LevelUpTimer != 0 || w.Over || w.Paused {
		t.Error("flags not reset")
	}
	if w.Lives != 3 {
		t.Errorf("lives = %d, want max lives 3", w.Lives)
	}
	if len(w.Bullets) != 0 || len(w.Lasers) != 0 || len(w.Particles) != 0 {
		t.Error("entities not cleared")
	}
	if len(w.Asteroids) != 6 {
		t.Errorf("asteroids = %d, want a fresh wave of 6", len(w.Asteroids))
	}
	if w.Ship.X != 400 || w.Ship.Y != 300 || w.Ship.VX != 0 {
		t.Error("ship not recentered")
	}
	if w.Ship.Weapon != object.WeaponSpread || w.Ship.SpeedLevel != 2 || !w.Owned(UpgradeSpread) {
		t.Error("upgrades should survive a restart")
	}
	if countEvents[Restarted](events) != 1 {
		t.Error("expected a Restarted event")
	}
}

func TestClassicRules(t *testing.T) {
	w, _ := newTestWorld(t, config.Classic())
	w.Score = 250
	rock(w, 100, 100, 40)
	shot(w, 100, 100)
	w.Ship.SpeedLevel = 3 // ignored by classic thrust

	w.Tick(Intent{Thrust: true})

	if w.Money != 0 || w.Destroyed != 0 || w.Level != 1 {
		t.Errorf("classic awarded money %d destroyed %d level %d", w.Money, w.Destroyed, w.Level)
	}
	if w.Score != 260 {
		t.Errorf("score = %d, want 260", w.Score)
	}
	if want := -0.15 * 0.98; !almostEqual(w.Ship.VY, want) {
		t.Errorf("classic thrust VY = %v, want %v", w.Ship.VY, want)
	}

	w.Asteroids = nil
	w.Tick(Intent{})
	if len(w.Asteroids) != 7 {
		t.Errorf("classic wave = %d asteroids, want 5 + 260/100 = 7", len(w.Asteroids))
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	w, _ := newTestWorld(t, config.Default())
	rock(w, 100, 100, 40)
	shot(w, 300, 300)
	w.Lasers = append(w.Lasers, object.NewLaser(400, 300, 0, 30, 40, 1200))
	w.Lasers[0].Length = 100

	s := w.Snapshot()
	s.Asteroids[0].X = -1
	s.Bullets[0].X = -1
	if w.Asteroids[0].X != 100 || w.Bullets[0].X != 300 {
		t.Error("snapshot shares memory with the world")
	}
	if s.Lasers[0].EndX != 500 || s.Lasers[0].EndY != 300 {
		t.Errorf("laser end = (%v,%v), want (500,300)", s.Lasers[0].EndX, s.Lasers[0].EndY)
	}

	data, err := json.Marshal(w.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"ship", "asteroids", "bullets", "lasers", "particles", "score", "levelingUp", "offers"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("snapshot JSON missing %q", key)
		}
	}
	ship := decoded["ship"].(map[string]any)
	if ship["weapon"] != "normal" {
		t.Errorf("ship weapon = %v, want \"normal\"", ship["weapon"])
	}
}

// Score only ever grows, by exactly ScorePerHit per destroyed asteroid.
func TestScoreMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		clock := &fakeClock{now: time.Unix(0, 0)}
		rules := config.Default()
		if rapid.Bool().Draw(t, "classic") {
			rules = config.Classic()
		}
		w := NewWorld(rules, rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed"))), clock)
		w.Ship.Weapon = rapid.SampledFrom([]object.Weapon{
			object.WeaponNormal, object.WeaponSpread, object.WeaponLaser,
		}).Draw(t, "weapon")

		ticks := rapid.IntRange(1, 400).Draw(t, "ticks")
		for i := 0; i < ticks; i++ {
			in := Intent{
				Left:   rapid.Bool().Draw(t, "left"),
				Right:  rapid.Bool().Draw(t, "right"),
				Thrust: rapid.Bool().Draw(t, "thrust"),
				Fire:   rapid.Bool().Draw(t, "fire"),
			}
			clock.Advance(16 * time.Millisecond)

			before := w.Score
			events := w.Tick(in)
			kills := countEvents[AsteroidDestroyed](events)
			if w.Score < before {
				t.Fatalf("score decreased %d -> %d", before, w.Score)
			}
			if w.Score-before != kills*rules.Weapon.ScorePerHit {
				t.Fatalf("score grew by %d with %d kills", w.Score-before, kills)
			}
			for _, a := range w.Asteroids {
				if a.Radius <= 0 {
					t.Fatalf("asteroid with radius %v", a.Radius)
				}
			}
		}
	})
}

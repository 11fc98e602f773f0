package object

import (
	"math/rand"

	"github.com/tomz197/neonroids/internal/physics"
)

// AsteroidSpawner places fresh batches of asteroids away from the ship.
type AsteroidSpawner struct {
	Radius    float64 // Radius of every fresh asteroid
	Clearance float64 // Minimum distance from the ship
	Attempts  int     // Rejection-sampling cap per asteroid
}

// SpawnBatch creates count asteroids at random positions at least Clearance
// away from (shipX, shipY). Positions are resampled up to Attempts times;
// when the cap is hit the last sample is used so a field smaller than the
// clearance circle still terminates.
func (s AsteroidSpawner) SpawnBatch(count int, speed float64, screen Screen, shipX, shipY float64, rng *rand.Rand, spawner Spawner) {
	for i := 0; i < count; i++ {
		x, y := s.samplePosition(screen, shipX, shipY, rng)
		spawner.SpawnAsteroid(NewAsteroid(x, y, s.Radius, speed, rng))
	}
}

func (s AsteroidSpawner) samplePosition(screen Screen, shipX, shipY float64, rng *rand.Rand) (float64, float64) {
	var x, y float64
	for attempt := 0; attempt < max(s.Attempts, 1); attempt++ {
		x = rng.Float64() * screen.Width
		y = rng.Float64() * screen.Height
		if physics.Distance(x, y, shipX, shipY) >= s.Clearance {
			break
		}
	}
	return x, y
}

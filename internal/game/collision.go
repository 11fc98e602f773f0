package game

import (
	"github.com/tomz197/neonroids/internal/object"
	"github.com/tomz197/neonroids/internal/physics"
)

// shipHit reports whether the asteroid overlaps the ship.
func (w *World) shipHit(a *object.Asteroid) bool {
	return physics.CirclesOverlap(w.Ship.X, w.Ship.Y, w.Ship.Radius, a.X, a.Y, a.Radius)
}

// bulletHits reports whether the bullet lies strictly inside the asteroid.
func bulletHits(b *object.Bullet, a *object.Asteroid) bool {
	return physics.PointInCircle(b.X, b.Y, a.X, a.Y, a.Radius)
}

// moneyFor returns the reward for destroying an asteroid of the given radius.
func moneyFor(radius float64) int {
	switch {
	case radius >= 40:
		return 10
	case radius >= 20:
		return 5
	default:
		return 2
	}
}

// destroyAsteroid applies every consequence of a projectile kill: explosion,
// reward, level progress, splitting and score.
func (w *World) destroyAsteroid(a *object.Asteroid, color string) {
	object.SpawnExplosion(a.X, a.Y, HitParticles, color, w.rng, w)

	if w.rules.Upgraded() {
		w.addMoney(moneyFor(a.Radius))
		w.countDestroyed()
	}

	children := a.Split(w.rules.Asteroid.MinSplitRadius,
		w.asteroidSpeed()*w.rules.Asteroid.ChildSpeedScale, w.rng, w)
	a.MarkDestroyed()

	w.addScore(w.rules.Weapon.ScorePerHit)
	w.emit(AsteroidDestroyed{X: a.X, Y: a.Y, Radius: a.Radius, Children: children})
}

func (w *World) addScore(delta int) {
	w.Score += delta
	w.emit(ScoreChanged{Score: w.Score, Delta: delta})
}

func (w *World) addMoney(delta int) {
	w.Money += delta
	w.emit(MoneyChanged{Money: w.Money, Delta: delta})
}

// countDestroyed advances the level counter and levels up at the threshold.
func (w *World) countDestroyed() {
	w.Destroyed++
	if w.Destroyed >= w.Threshold {
		w.levelUp()
	}
}

func (w *World) levelUp() {
	lr := w.rules.Level

	w.Level++
	w.Destroyed = 0
	w.Threshold = lr.ThresholdBase + lr.ThresholdPerLevel*w.Level
	w.LevelingUp = true
	w.LevelUpTimer = lr.BannerTicks

	bonus := lr.BonusPerLevel * w.Level
	w.addMoney(bonus)
	w.emit(LevelUp{Level: w.Level, Bonus: bonus})

	cx, cy := w.screen.Center()
	object.SpawnExplosion(cx, cy, LevelUpParticles, object.ColorLevelUp, w.rng, w)
}

// loseLife handles a ship collision. The ship is recentered unless the game
// is over.
func (w *World) loseLife() {
	w.Lives--
	w.emit(LifeLost{Lives: w.Lives})
	object.SpawnExplosion(w.Ship.X, w.Ship.Y, LifeLostParticles, object.ColorShip, w.rng, w)

	if w.Lives <= 0 {
		w.gameOver()
		return
	}
	w.Ship.Recenter(w.screen)
}

func (w *World) gameOver() {
	w.Over = true
	w.Paused = false
	w.emit(GameOver{Score: w.Score, Money: w.Money, Level: w.Level})
}

package game

// Restart starts a new game. Entities and counters are reset; bought
// upgrades, the ship's weapon and speed level carry over.
func (w *World) Restart() []Event {
	w.beginEvents()
	w.reset()
	w.emit(Restarted{})
	return w.events
}

// reset clears the world and spawns the first wave.
func (w *World) reset() {
	for _, p := range w.Particles {
		p.Release()
	}
	clear(w.Particles)
	w.Particles = w.Particles[:0]
	clear(w.Asteroids)
	w.Asteroids = w.Asteroids[:0]
	clear(w.Bullets)
	w.Bullets = w.Bullets[:0]
	clear(w.Lasers)
	w.Lasers = w.Lasers[:0]

	w.Score = 0
	w.Money = 0
	w.Level = 1
	w.Destroyed = 0
	w.Threshold = w.rules.Level.FirstThreshold
	w.LevelingUp = false
	w.LevelUpTimer = 0
	w.Paused = false
	w.Over = false
	w.Lives = w.Ship.MaxLives

	w.Ship.Recenter(w.screen)
	w.spawnWave()
}

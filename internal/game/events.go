package game

// Event is a discrete notification produced by a world operation. The
// concrete types below are the only implementations.
type Event interface {
	event()
}

// AsteroidDestroyed reports a projectile kill. Children is 0 or 2.
type AsteroidDestroyed struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Radius   float64 `json:"radius"`
	Children int     `json:"children"`
}

// ScoreChanged carries the new score.
type ScoreChanged struct {
	Score int `json:"score"`
	Delta int `json:"delta"`
}

// MoneyChanged carries the new balance. Delta is negative for purchases.
type MoneyChanged struct {
	Money int `json:"money"`
	Delta int `json:"delta"`
}

// LifeLost is emitted when the ship hits an asteroid.
type LifeLost struct {
	Lives int `json:"lives"`
}

// LevelUp is emitted when the destroy counter reaches the threshold.
type LevelUp struct {
	Level int `json:"level"`
	Bonus int `json:"bonus"`
}

// GameOver carries the final results.
type GameOver struct {
	Score int `json:"score"`
	Money int `json:"money"`
	Level int `json:"level"`
}

// Restarted is emitted by Restart.
type Restarted struct{}

// UpgradePurchased is emitted by a successful Buy.
type UpgradePurchased struct {
	Upgrade Upgrade `json:"upgrade"`
	Cost    int     `json:"cost"`
}

// ShopToggled reports the new shop state.
type ShopToggled struct {
	Open bool `json:"open"`
}

func (AsteroidDestroyed) event() {}
func (ScoreChanged) event()      {}
func (MoneyChanged) event()      {}
func (LifeLost) event()          {}
func (LevelUp) event()           {}
func (GameOver) event()          {}
func (Restarted) event()         {}
func (UpgradePurchased) event()  {}
func (ShopToggled) event()       {}

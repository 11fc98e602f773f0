package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Mode selects which rule set the simulation plays by.
type Mode string

const (
	// ModeUpgraded enables money, levels, the upgrade shop and weapon variants.
	ModeUpgraded Mode = "upgraded"
	// ModeClassic is the base game: no money, no levels, one weapon.
	ModeClassic Mode = "classic"
)

// RulesEnvVar names the environment variable holding an optional TOML rules file.
const RulesEnvVar = "ASTEROIDS_RULES"

// ErrInvalidRules is wrapped by every validation failure.
var ErrInvalidRules = errors.New("invalid rules")

// Rules holds every tunable gameplay parameter. Distances are in world
// units, lifetimes and timers are in ticks.
type Rules struct {
	Mode Mode `toml:"mode"`

	WorldWidth  float64 `toml:"world_width"`
	WorldHeight float64 `toml:"world_height"`

	Ship     ShipRules     `toml:"ship"`
	Asteroid AsteroidRules `toml:"asteroid"`
	Weapon   WeaponRules   `toml:"weapon"`
	Level    LevelRules    `toml:"level"`
	Shop     ShopRules     `toml:"shop"`
}

// ShipRules configures the player ship.
type ShipRules struct {
	Radius       float64 `toml:"radius"`
	TurnSpeed    float64 `toml:"turn_speed"`
	Thrust       float64 `toml:"thrust"`
	Friction     float64 `toml:"friction"`
	InitialLives int     `toml:"initial_lives"`
}

// AsteroidRules configures spawning and splitting.
type AsteroidRules struct {
	Radius          float64 `toml:"radius"`
	MinSplitRadius  float64 `toml:"min_split_radius"`
	BaseSpeed       float64 `toml:"base_speed"`
	SpeedPerLevel   float64 `toml:"speed_per_level"`
	ChildSpeedScale float64 `toml:"child_speed_scale"`
	SpawnClearance  float64 `toml:"spawn_clearance"`
	MaxPerBatch     int     `toml:"max_per_batch"`
	BaseBatch       int     `toml:"base_batch"`
	// ScorePerExtra is the classic-mode score step that adds one asteroid
	// to each new batch.
	ScorePerExtra int `toml:"score_per_extra"`
	// SpawnAttempts caps rejection sampling for one asteroid position.
	SpawnAttempts int `toml:"spawn_attempts"`
}

// WeaponRules configures projectiles and fire delays.
type WeaponRules struct {
	BulletSpeed    float64       `toml:"bullet_speed"`
	BulletLifetime int           `toml:"bullet_lifetime"`
	SpreadAngle    float64       `toml:"spread_angle"`
	LaserLifetime  int           `toml:"laser_lifetime"`
	LaserGrowth    float64       `toml:"laser_growth"`
	LaserMaxLength float64       `toml:"laser_max_length"`
	FireDelay      time.Duration `toml:"fire_delay"`
	RapidFireDelay time.Duration `toml:"rapid_fire_delay"`
	ScorePerHit    int           `toml:"score_per_hit"`
}

// LevelRules configures level progression.
type LevelRules struct {
	FirstThreshold    int `toml:"first_threshold"`
	ThresholdBase     int `toml:"threshold_base"`
	ThresholdPerLevel int `toml:"threshold_per_level"`
	BonusPerLevel     int `toml:"bonus_per_level"`
	BannerTicks       int `toml:"banner_ticks"`
}

// ShopRules holds upgrade prices.
type ShopRules struct {
	SpreadCost      int     `toml:"spread_cost"`
	RapidCost       int     `toml:"rapid_cost"`
	LaserCost       int     `toml:"laser_cost"`
	SpeedCost       int     `toml:"speed_cost"`
	SpeedMaxLevel   int     `toml:"speed_max_level"`
	SpeedCostGrowth float64 `toml:"speed_cost_growth"`
	ExtraLifeCost   int     `toml:"extra_life_cost"`
}

// Default returns the rules of the upgraded arcade build.
func Default() Rules {
	return Rules{
		Mode:        ModeUpgraded,
		WorldWidth:  800,
		WorldHeight: 600,
		Ship: ShipRules{
			Radius:       15,
			TurnSpeed:    0.08,
			Thrust:       0.15,
			Friction:     0.98,
			InitialLives: 3,
		},
		Asteroid: AsteroidRules{
			Radius:          40,
			MinSplitRadius:  15,
			BaseSpeed:       1.5,
			SpeedPerLevel:   0.15,
			ChildSpeedScale: 1.5,
			SpawnClearance:  150,
			MaxPerBatch:     12,
			BaseBatch:       5,
			ScorePerExtra:   100,
			SpawnAttempts:   1000,
		},
		Weapon: WeaponRules{
			BulletSpeed:    5,
			BulletLifetime: 60,
			SpreadAngle:    0.2,
			LaserLifetime:  30,
			LaserGrowth:    40,
			LaserMaxLength: 1200,
			FireDelay:      250 * time.Millisecond,
			RapidFireDelay: 150 * time.Millisecond,
			ScorePerHit:    10,
		},
		Level: LevelRules{
			FirstThreshold:    10,
			ThresholdBase:     10,
			ThresholdPerLevel: 2,
			BonusPerLevel:     50,
			BannerTicks:       120,
		},
		Shop: ShopRules{
			SpreadCost:      100,
			RapidCost:       150,
			LaserCost:       200,
			SpeedCost:       80,
			SpeedMaxLevel:   3,
			SpeedCostGrowth: 1.5,
			ExtraLifeCost:   120,
		},
	}
}

// Classic returns the default rules switched to the base game.
func Classic() Rules {
	r := Default()
	r.Mode = ModeClassic
	return r
}

// Load decodes a TOML file on top of the default rules and validates the result.
func Load(path string) (Rules, error) {
	r := Default()
	if _, err := toml.DecodeFile(path, &r); err != nil {
		return Rules{}, fmt.Errorf("decode rules %s: %w", path, err)
	}
	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

// FromEnv loads rules from the file named by ASTEROIDS_RULES, or returns the
// defaults when the variable is unset.
func FromEnv() (Rules, error) {
	path := GetEnv(RulesEnvVar, "")
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Upgraded reports whether money, levels and the shop are enabled.
func (r Rules) Upgraded() bool {
	return r.Mode == ModeUpgraded
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	switch r.Mode {
	case ModeUpgraded, ModeClassic:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidRules, r.Mode)
	}

	checks := []struct {
		ok   bool
		what string
	}{
		{r.WorldWidth > 0 && r.WorldHeight > 0, "world size must be positive"},
		{r.Ship.Radius > 0, "ship radius must be positive"},
		{r.Ship.Friction > 0 && r.Ship.Friction <= 1, "ship friction must be in (0, 1]"},
		{r.Ship.InitialLives > 0, "initial lives must be positive"},
		{r.Ship.Thrust > 0 && r.Ship.TurnSpeed >= 0, "ship thrust must be positive and turn speed not negative"},
		{r.Asteroid.Radius > 0, "asteroid radius must be positive"},
		{r.Asteroid.MinSplitRadius > 0, "min split radius must be positive"},
		{r.Asteroid.BaseSpeed > 0 && r.Asteroid.SpeedPerLevel >= 0, "asteroid speed must be positive"},
		{r.Asteroid.ChildSpeedScale > 0, "child speed scale must be positive"},
		{r.Asteroid.SpawnClearance >= 0, "spawn clearance must not be negative"},
		{r.Asteroid.ScorePerExtra > 0, "score per extra asteroid must be positive"},
		{r.Asteroid.BaseBatch > 0, "asteroid batch must be positive"},
		{r.Asteroid.MaxPerBatch >= r.Asteroid.BaseBatch, "max per batch must be >= base batch"},
		{r.Asteroid.SpawnAttempts > 0, "spawn attempts must be positive"},
		{r.Weapon.BulletSpeed > 0, "bullet speed must be positive"},
		{r.Weapon.BulletLifetime > 0, "bullet lifetime must be positive"},
		{r.Weapon.SpreadAngle >= 0, "spread angle must not be negative"},
		{r.Weapon.LaserLifetime > 0, "laser lifetime must be positive"},
		{r.Weapon.LaserGrowth > 0 && r.Weapon.LaserMaxLength > 0, "laser growth and length must be positive"},
		{r.Weapon.ScorePerHit > 0, "score per hit must be positive"},
		{r.Weapon.FireDelay >= 0 && r.Weapon.RapidFireDelay >= 0, "fire delays must not be negative"},
		{r.Level.FirstThreshold > 0, "first level threshold must be positive"},
		// Thresholds grow with the level, so level 1 is the smallest.
		{r.Level.ThresholdPerLevel >= 0 && r.Level.ThresholdBase+r.Level.ThresholdPerLevel > 0, "level thresholds must be positive"},
		{r.Level.BonusPerLevel >= 0, "level bonus must not be negative"},
		{r.Level.BannerTicks >= 0, "banner ticks must not be negative"},
		{r.Shop.SpreadCost >= 0 && r.Shop.RapidCost >= 0 && r.Shop.LaserCost >= 0 &&
			r.Shop.SpeedCost >= 0 && r.Shop.ExtraLifeCost >= 0, "upgrade costs must not be negative"},
		{r.Shop.SpeedMaxLevel >= 1, "speed max level must be at least 1"},
		{r.Shop.SpeedCostGrowth >= 1, "speed cost growth must be at least 1"},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrInvalidRules, c.what)
		}
	}
	return nil
}

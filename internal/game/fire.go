package game

import (
	"math"

	"github.com/tomz197/neonroids/internal/object"
)

// Fire shoots the ship's current weapon. It returns false when the game is
// over or paused, or when the fire delay has not elapsed since the last shot.
func (w *World) Fire() bool {
	if w.Over || w.Paused {
		return false
	}
	now := w.clock.Now()
	if !w.Ship.CanFire(now) {
		return false
	}

	heading := w.Ship.Heading()
	switch w.Ship.Weapon {
	case object.WeaponSpread:
		spread := w.rules.Weapon.SpreadAngle
		w.shootBullet(heading - spread)
		w.shootBullet(heading)
		w.shootBullet(heading + spread)
	case object.WeaponLaser:
		wr := w.rules.Weapon
		w.Lasers = append(w.Lasers, object.NewLaser(w.Ship.X, w.Ship.Y, heading,
			wr.LaserLifetime, wr.LaserGrowth, wr.LaserMaxLength))
	default:
		// Normal and rapid fire the same single bullet.
		w.shootBullet(heading)
	}

	w.Ship.LastFire = now
	return true
}

// shootBullet spawns a bullet on the ship's edge along angle.
func (w *World) shootBullet(angle float64) {
	x := w.Ship.X + math.Cos(angle)*w.Ship.Radius
	y := w.Ship.Y + math.Sin(angle)*w.Ship.Radius
	w.Bullets = append(w.Bullets, object.NewBullet(x, y, angle,
		w.rules.Weapon.BulletSpeed, w.rules.Weapon.BulletLifetime))
}

package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomz197/neonroids/internal/config"
	"github.com/tomz197/neonroids/internal/object"
)

// Upgrade identifies an item in the shop.
type Upgrade int

const (
	UpgradeSpread Upgrade = iota + 1
	UpgradeRapid
	UpgradeLaser
	UpgradeSpeed
	UpgradeExtraLife
)

// Upgrades lists every shop item in display order. Item n is bought with
// the number key n.
var Upgrades = []Upgrade{UpgradeSpread, UpgradeRapid, UpgradeLaser, UpgradeSpeed, UpgradeExtraLife}

var upgradeNames = map[Upgrade]string{
	UpgradeSpread:    "spread",
	UpgradeRapid:     "rapid",
	UpgradeLaser:     "laser",
	UpgradeSpeed:     "speed",
	UpgradeExtraLife: "life",
}

var upgradeTitles = map[Upgrade]string{
	UpgradeSpread:    "SPREAD SHOT",
	UpgradeRapid:     "RAPID FIRE",
	UpgradeLaser:     "LASER BEAM",
	UpgradeSpeed:     "SPEED BOOST",
	UpgradeExtraLife: "EXTRA LIFE",
}

func (u Upgrade) String() string {
	if name, ok := upgradeNames[u]; ok {
		return name
	}
	return fmt.Sprintf("upgrade(%d)", int(u))
}

// Title returns the display name of the upgrade.
func (u Upgrade) Title() string {
	return upgradeTitles[u]
}

// MarshalText encodes the upgrade by name.
func (u Upgrade) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText decodes an upgrade name.
func (u *Upgrade) UnmarshalText(text []byte) error {
	parsed, err := ParseUpgrade(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseUpgrade maps a name such as "spread" to its Upgrade.
func ParseUpgrade(name string) (Upgrade, error) {
	for u, n := range upgradeNames {
		if n == name {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUpgrade, name)
}

// Shop errors returned by Buy.
var (
	ErrShopDisabled      = errors.New("shop disabled")
	ErrUnknownUpgrade    = errors.New("unknown upgrade")
	ErrAlreadyOwned      = errors.New("upgrade already owned")
	ErrMaxLevel          = errors.New("upgrade at max level")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Labels shown on offers that cannot be bought any more.
const (
	LabelOwned    = "OWNED"
	LabelMaxLevel = "MAX LEVEL"
)

// Offer is the shop's view of one upgrade for the current money and
// ownership.
type Offer struct {
	Upgrade  Upgrade `json:"upgrade"`
	Title    string  `json:"title"`
	Cost     int     `json:"cost"`
	Level    int     `json:"level,omitempty"`
	MaxLevel int     `json:"maxLevel,omitempty"`
	Enabled  bool    `json:"enabled"`
	Label    string  `json:"label,omitempty"`
}

// shopState tracks ownership and escalating prices. It survives Restart.
type shopState struct {
	prices    config.ShopRules
	owned     map[Upgrade]bool
	speedCost int
}

func newShopState(prices config.ShopRules) shopState {
	return shopState{
		prices:    prices,
		owned:     make(map[Upgrade]bool),
		speedCost: prices.SpeedCost,
	}
}

// cost returns the current price of u.
func (s *shopState) cost(u Upgrade) int {
	switch u {
	case UpgradeSpread:
		return s.prices.SpreadCost
	case UpgradeRapid:
		return s.prices.RapidCost
	case UpgradeLaser:
		return s.prices.LaserCost
	case UpgradeSpeed:
		return s.speedCost
	case UpgradeExtraLife:
		return s.prices.ExtraLifeCost
	}
	return 0
}

func oneShot(u Upgrade) bool {
	return u == UpgradeSpread || u == UpgradeRapid || u == UpgradeLaser
}

// Offers recomputes every upgrade's price and availability. Classic worlds
// have no shop and return nil.
func (w *World) Offers() []Offer {
	if !w.rules.Upgraded() {
		return nil
	}

	offers := make([]Offer, 0, len(Upgrades))
	for _, u := range Upgrades {
		o := Offer{Upgrade: u, Title: u.Title(), Cost: w.shop.cost(u)}
		switch {
		case oneShot(u) && w.shop.owned[u]:
			o.Label = LabelOwned
		case u == UpgradeSpeed && w.Ship.SpeedLevel >= w.rules.Shop.SpeedMaxLevel:
			o.Label = LabelMaxLevel
		default:
			o.Enabled = w.Money >= o.Cost
		}
		if u == UpgradeSpeed {
			o.Level = w.Ship.SpeedLevel
			o.MaxLevel = w.rules.Shop.SpeedMaxLevel
		}
		offers = append(offers, o)
	}
	return offers
}

// Buy purchases an upgrade and applies its effect. The returned events are
// valid until the next call on w.
func (w *World) Buy(u Upgrade) ([]Event, error) {
	w.beginEvents()
	if !w.rules.Upgraded() || w.Over {
		return nil, ErrShopDisabled
	}
	if _, ok := upgradeNames[u]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownUpgrade, int(u))
	}
	if oneShot(u) && w.shop.owned[u] {
		return nil, fmt.Errorf("%s: %w", u, ErrAlreadyOwned)
	}
	if u == UpgradeSpeed && w.Ship.SpeedLevel >= w.rules.Shop.SpeedMaxLevel {
		return nil, fmt.Errorf("%s: %w", u, ErrMaxLevel)
	}
	cost := w.shop.cost(u)
	if w.Money < cost {
		return nil, fmt.Errorf("%s costs %d, have %d: %w", u, cost, w.Money, ErrInsufficientFunds)
	}

	w.addMoney(-cost)
	switch u {
	case UpgradeSpread:
		w.shop.owned[u] = true
		w.Ship.Weapon = object.WeaponSpread
	case UpgradeRapid:
		w.shop.owned[u] = true
		w.Ship.Weapon = object.WeaponRapid
		w.Ship.FireDelay = w.rules.Weapon.RapidFireDelay
	case UpgradeLaser:
		w.shop.owned[u] = true
		w.Ship.Weapon = object.WeaponLaser
	case UpgradeSpeed:
		w.Ship.SpeedLevel++
		w.shop.speedCost = int(math.Floor(float64(w.shop.speedCost) * w.rules.Shop.SpeedCostGrowth))
	case UpgradeExtraLife:
		w.Ship.MaxLives++
		w.Lives++
	}
	w.emit(UpgradePurchased{Upgrade: u, Cost: cost})
	return w.events, nil
}

// Owned reports whether a one-shot upgrade has been bought.
func (w *World) Owned(u Upgrade) bool {
	return w.shop.owned[u]
}

// ToggleShop opens or closes the shop, pausing the simulation while it is
// open. It does nothing in classic mode or after game over.
func (w *World) ToggleShop() []Event {
	w.beginEvents()
	if !w.rules.Upgraded() || w.Over {
		return w.events
	}
	w.Paused = !w.Paused
	w.emit(ShopToggled{Open: w.Paused})
	return w.events
}

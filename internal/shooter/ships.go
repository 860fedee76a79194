package shooter

import (
	"errors"
	"fmt"
)

// Ship selection errors. A rejected selection changes nothing.
var (
	ErrShipOutOfRange = errors.New("ship index out of range")
	ErrShipLocked     = errors.New("ship is locked")
	ErrUnauthorized   = errors.New("ship requires authorization")
)

// AbilityKind is the effect a ship's ability key triggers.
type AbilityKind int

const (
	AbilityFreeze AbilityKind = iota
	AbilityShield
	AbilitySpeed
	AbilityTriple
	AbilityBeam
	AbilityTeleport
	AbilityAdmin
)

// String returns the ability name.
func (k AbilityKind) String() string {
	switch k {
	case AbilityFreeze:
		return "freeze"
	case AbilityShield:
		return "shield"
	case AbilitySpeed:
		return "speed"
	case AbilityTriple:
		return "triple"
	case AbilityBeam:
		return "beam"
	case AbilityTeleport:
		return "teleport"
	case AbilityAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Ship describes one selectable hull.
type Ship struct {
	Index   int
	Name    string
	Ability AbilityKind
}

// Admin reports whether the ship is password gated.
func (s Ship) Admin() bool {
	return s.Ability == AbilityAdmin
}

// Ships is the fixed hangar, indexed by slot.
var Ships = [...]Ship{
	{0, "Falcon", AbilityFreeze},
	{1, "Aegis", AbilityShield},
	{2, "Comet", AbilitySpeed},
	{3, "Trident", AbilityTriple},
	{4, "Lancer", AbilityBeam},
	{5, "Phantom", AbilityTeleport},
	{6, "Admin I", AbilityAdmin},
	{7, "Admin II", AbilityAdmin},
	{8, "Admin III", AbilityAdmin},
}

// ShipAt returns the ship in the given 0-based slot.
func ShipAt(index int) (Ship, error) {
	if index < 0 || index >= len(Ships) {
		return Ship{}, fmt.Errorf("%w: %d", ErrShipOutOfRange, index)
	}
	return Ships[index], nil
}

// Ship returns the active ship.
func (g *Game) Ship() Ship {
	return Ships[g.ship]
}

// shipMaxHealth is the health ceiling for a ship.
func (g *Game) shipMaxHealth(s Ship) int {
	if s.Admin() {
		return g.cfg.Player.AdminMaxHealth
	}
	return g.cfg.Player.MaxHealth
}

// SwitchShip makes the ship in the given 0-based slot active. Admin ships
// need authorized set; the caller verifies the password. A successful
// switch resets every ability, thaws every enemy and restores health to the
// ship's maximum.
func (g *Game) SwitchShip(index int, authorized bool) error {
	s, err := ShipAt(index)
	if err != nil {
		return err
	}
	if s.Admin() {
		if !authorized && !g.progress.Unlocked[index] {
			return fmt.Errorf("%w: %s", ErrUnauthorized, s.Name)
		}
		if !g.progress.Unlocked[index] {
			g.progress.Unlocked[index] = true
			g.saveRequested = true
			g.log.Info("admin ship unlocked", "ship", s.Name)
		}
	} else if !g.progress.Unlocked[index] {
		return fmt.Errorf("%w: %s", ErrShipLocked, s.Name)
	}

	g.ship = index
	g.resetAbilities()
	g.thawAll()
	g.maxHealth = g.shipMaxHealth(s)
	g.health = g.maxHealth
	g.log.Debug("ship selected", "ship", s.Name, "ability", s.Ability)
	return nil
}

// checkUnlocks unlocks every ship whose score threshold the best score has
// reached.
func (g *Game) checkUnlocks() {
	best := max(g.progress.BestScore, g.score)
	for i, need := range g.cfg.Ships.UnlockScores {
		if i >= len(Ships) || Ships[i].Admin() || need <= 0 || g.progress.Unlocked[i] {
			continue
		}
		if best >= need {
			g.progress.Unlocked[i] = true
			g.saveRequested = true
			g.notify(fmt.Sprintf("%s unlocked", Ships[i].Name))
			g.log.Info("ship unlocked", "ship", Ships[i].Name, "score", best)
		}
	}
}

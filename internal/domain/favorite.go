package domain

import (
	"errors"
	"fmt"
)

// TargetKind names what a favorite points at.
type TargetKind string

const (
	TargetPerson TargetKind = "people"
	TargetPlanet TargetKind = "planet"
)

var ErrInvalidTarget = errors.New("invalid favorite target")

// FavoriteTarget is the single thing a favorite links to: a person or a planet, never both.
type FavoriteTarget struct {
	Kind TargetKind
	ID   int64
}

func PersonTarget(id int64) FavoriteTarget {
	return FavoriteTarget{Kind: TargetPerson, ID: id}
}

func PlanetTarget(id int64) FavoriteTarget {
	return FavoriteTarget{Kind: TargetPlanet, ID: id}
}

func (t FavoriteTarget) Validate() error {
	if t.Kind != TargetPerson && t.Kind != TargetPlanet {
		return fmt.Errorf("%w: kind %q", ErrInvalidTarget, t.Kind)
	}
	if t.ID <= 0 {
		return fmt.Errorf("%w: id %d", ErrInvalidTarget, t.ID)
	}
	return nil
}

// PersonID returns the person id when the target is a person.
func (t FavoriteTarget) PersonID() (int64, bool) {
	return t.ID, t.Kind == TargetPerson
}

// PlanetID returns the planet id when the target is a planet.
func (t FavoriteTarget) PlanetID() (int64, bool) {
	return t.ID, t.Kind == TargetPlanet
}

func (t FavoriteTarget) String() string {
	return fmt.Sprintf("%s/%d", t.Kind, t.ID)
}

// Favorite links a user to exactly one person or planet.
type Favorite struct {
	ID     int64
	UserID int64
	Target FavoriteTarget
}

// Package store contains the Store aggregate: a pickup point for orders.
package store

import (
	"errors"

	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/pkg/errs"
	"zepta/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a store without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrStoreIsNotConstructed is returned when using an improperly initialized Store.
	ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")
)

// Store represents a grocery store that fulfills orders. The geographic
// coordinate is optional: stores without one still take orders, but their
// orders are assigned by workload ranking only.
type Store struct {
	id       kernel.UUID
	name     string
	location *kernel.GeoPoint
	guard    guard.ConstructorGuard
}

// NewStore creates a Store. The location may be nil for stores whose
// coordinates are not on file.
func NewStore(id kernel.UUID, name string, location *kernel.GeoPoint) (*Store, error) {
	s := &Store{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setLocation(location),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Store was created through NewStore.
func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

// IsEqual compares two stores by their unique identifiers.
func (s *Store) IsEqual(other *Store) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the store's unique identifier.
func (s *Store) ID() kernel.UUID {
	return s.id
}

// Name returns the store's display name.
func (s *Store) Name() string {
	return s.name
}

// HasLocation reports whether the store has a coordinate on file.
func (s *Store) HasLocation() bool {
	return s.location != nil
}

// Location returns the store's coordinate, or nil if none is on file.
func (s *Store) Location() *kernel.GeoPoint {
	return s.location
}

func (s *Store) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Store) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *Store) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	point := *location
	s.location = &point
	return nil
}

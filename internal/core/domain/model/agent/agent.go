package agent

import (
	"errors"

	"zepta/internal/core/domain/model/kernel"
	"zepta/internal/pkg/errs"
	"zepta/internal/pkg/guard"
)

// Domain errors for agent operations.
var (
	// ErrNameIsRequired is returned when attempting to create an agent without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAgentIsNotConstructed is returned when using an improperly initialized Agent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")
)

// Agent represents a delivery courier account eligible for order assignment.
// It is an aggregate root managing the agent's identity, availability, and
// last-reported location.
//
// Business rules:
//   - An agent must have a valid UUID and a non-empty name
//   - The active flag gates assignment eligibility; inactive agents are
//     never selected
//   - The live location is optional: agents that have not reported a
//     location yet (or whose device is offline) have none, and the selector
//     falls back to workload-only ranking for them
//
// Example usage:
//
//	a, err := agent.NewAgent(kernel.NewUUID(), "Ravi Kumar")
//	if err != nil {
//	    // Handle construction error
//	}
//	point, _ := kernel.NewGeoPoint(16.31, 80.44)
//	a.ReportLocation(point)
type Agent struct {
	// id uniquely identifies the agent
	id kernel.UUID
	// name is the display name shown on the dashboard
	name string
	// active gates assignment eligibility
	active bool
	// location is the last-reported live position (nil if never reported)
	location *kernel.GeoPoint
	// guard ensures the agent was properly constructed
	guard guard.ConstructorGuard
}

// NewAgent creates a new active Agent with no reported location.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: display name (must be non-empty)
//
// Returns a validation error if any parameter is invalid.
func NewAgent(id kernel.UUID, name string) (*Agent, error) {
	a := &Agent{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAgent reconstructs an Agent from persistence, including the active
// flag and optional last-known location.
func RestoreAgent(id kernel.UUID, name string, active bool, location *kernel.GeoPoint) (*Agent, error) {
	a := &Agent{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setLocation(location),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Agent was created through a factory function.
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// IsEqual compares two agents by their unique identifiers.
func (a *Agent) IsEqual(other *Agent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// Name returns the agent's display name.
func (a *Agent) Name() string {
	return a.name
}

// IsActive reports whether the agent is available for assignment.
func (a *Agent) IsActive() bool {
	return a.active
}

// SetActive toggles the agent's availability for assignment.
func (a *Agent) SetActive(active bool) {
	a.active = active
}

// HasLocation reports whether the agent has a known live location.
func (a *Agent) HasLocation() bool {
	return a.location != nil
}

// Location returns the last-reported location, or nil if the agent has
// never reported one.
func (a *Agent) Location() *kernel.GeoPoint {
	return a.location
}

// ReportLocation records a new live location for the agent.
// Returns an error if the point is not properly constructed.
func (a *Agent) ReportLocation(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	a.location = &point
	return nil
}

// setID validates and sets the agent's unique identifier.
func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

// setName validates and sets the display name.
func (a *Agent) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

// setLocation validates and sets the optional location.
func (a *Agent) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	point := *location
	a.location = &point
	return nil
}

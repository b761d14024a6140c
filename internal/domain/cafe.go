package domain

import "time"

// Cafe represents a gaming cafe with its configured physical capacities.
// Capacity is the fixed maximum of simultaneously occupied units per
// resource type; a missing entry means the cafe does not offer the type.
type Cafe struct {
	ID          int64
	Slug        string
	Name        string
	OwnerUserID int64
	Capacities  map[ResourceType]int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CapacityFor returns the configured capacity for the resource type (0 if not offered)
func (c *Cafe) CapacityFor(rt ResourceType) int {
	return c.Capacities[rt]
}

// Offers returns true if the cafe has at least one unit of the resource type
func (c *Cafe) Offers(rt ResourceType) bool {
	return c.Capacities[rt] > 0
}

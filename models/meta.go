package models

import "time"

// Meta holds the fields shared by every tracked entity: the identifier
// assigned by the server on creation and the two lifecycle timestamps.
//
// Meta is embedded into each entity type so its fields serialize at the
// top level of the entity's JSON document. The identifier is immutable
// after creation; UpdatedAt is re-stamped by the client on every
// successful mutation and is not trusted from caller input.
type Meta struct {
	// ID is the opaque unique identifier of the entity. Assigned by the
	// remote store on creation, never changed afterwards.
	ID string `json:"id"`

	// CreatedAt is set once when the entity is created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt advances on every successful mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// EntityID returns the entity identifier.
func (m Meta) EntityID() string { return m.ID }

// CreatedTime returns the creation timestamp.
func (m Meta) CreatedTime() time.Time { return m.CreatedAt }

// UpdatedTime returns the last-mutation timestamp.
func (m Meta) UpdatedTime() time.Time { return m.UpdatedAt }

// Patch is a partial entity update: field name to new value, merged
// into the stored document by the server. The synchronization layer
// injects the "updated_at" key before the patch is sent.
type Patch map[string]any

// Clone returns a shallow copy of the patch so the caller's map is
// never mutated by the synchronization layer.
func (p Patch) Clone() Patch {
	out := make(Patch, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	return out
}

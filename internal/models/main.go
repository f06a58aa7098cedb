// Package models defines the core data structures for models, their
// properties and the records generated from them.
package models

import "time"

// Model is a user-defined entity with a display name. Properties reference
// their model by ID.
type Model struct {
	// ID is the unique identifier for the model.
	ID string `json:"id"`
	// Name is the display name, also used as the filename of generated output.
	Name string `json:"name"`
	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
	// PropsCount is the number of properties attached to the model.
	PropsCount int `json:"propsCount"`
	// Deleted marks a soft-deleted model awaiting cleanup.
	Deleted bool `json:"-"`
}

// Property is a named field of a Model bound to a fake-value operation.
type Property struct {
	// ModelID references the owning model.
	ModelID string `json:"modelId" yaml:"-"`
	// PropName is the key used in generated records; unique within a model.
	PropName string `json:"propName" yaml:"propName"`
	// GroupName is the provider category, e.g. "name" or "address".
	GroupName string `json:"groupName" yaml:"groupName"`
	// Func is the operation name within GroupName. Empty means unconfigured.
	Func string `json:"func" yaml:"func"`
	// Position keeps insertion order.
	Position int `json:"position" yaml:"-"`
}

// Configured reports whether the property has a generator function.
func (p Property) Configured() bool {
	return p.Func != ""
}

// Record maps each property name to one generated value.
type Record map[string]any

// Package panel holds the interactive state of one model panel in the shell:
// which dialog is open and how many records to generate.
package panel

import (
	"errors"

	"github.com/atinyakov/fakeforge/internal/generator"
)

// Modal is the dialog currently shown for a panel. At most one is open.
type Modal int

const (
	ModalNone Modal = iota
	ModalConfirmingDelete
	ModalAddingProperty
)

func (m Modal) String() string {
	switch m {
	case ModalConfirmingDelete:
		return "confirming-delete"
	case ModalAddingProperty:
		return "adding-property"
	default:
		return "none"
	}
}

var (
	// ErrNoDialog is returned when a dialog action arrives with no matching dialog open.
	ErrNoDialog = errors.New("no matching dialog is open")
	// ErrEmptyPropName is returned when the add-property dialog is submitted blank.
	ErrEmptyPropName = errors.New("property name must not be empty")
)

// Panel is the UI state for one model.
type Panel struct {
	ModelID   string
	ModelName string

	modal  Modal
	amount int
}

// New returns a closed panel with the default amount.
func New(modelID, modelName string) *Panel {
	return &Panel{ModelID: modelID, ModelName: modelName, amount: generator.DefaultCount}
}

// Modal returns the open dialog.
func (p *Panel) Modal() Modal { return p.modal }

// Amount returns how many records the next generation will request.
func (p *Panel) Amount() int { return p.amount }

// SetAmount stores n clamped by generator.ClampCount and returns it.
func (p *Panel) SetAmount(n int) int {
	p.amount = generator.ClampCount(n)
	return p.amount
}

// OpenConfirmDelete shows the delete confirmation, replacing any open dialog.
func (p *Panel) OpenConfirmDelete() { p.modal = ModalConfirmingDelete }

// OpenAddProperty shows the add-property dialog, replacing any open dialog.
func (p *Panel) OpenAddProperty() { p.modal = ModalAddingProperty }

// Close dismisses whatever dialog is open.
func (p *Panel) Close() { p.modal = ModalNone }

// ConfirmDelete closes the confirmation and runs del with the model ID.
func (p *Panel) ConfirmDelete(del func(modelID string) error) error {
	if p.modal != ModalConfirmingDelete {
		return ErrNoDialog
	}
	p.Close()
	return del(p.ModelID)
}

// SubmitProperty closes the add-property dialog and runs add with the name.
// A blank name keeps the dialog open.
func (p *Panel) SubmitProperty(name string, add func(modelID, propName string) error) error {
	if p.modal != ModalAddingProperty {
		return ErrNoDialog
	}
	if name == "" {
		return ErrEmptyPropName
	}
	p.Close()
	return add(p.ModelID, name)
}

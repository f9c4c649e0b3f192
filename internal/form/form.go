// Package form captures the fields of a new item and turns them into a
// model.Item once they are valid.
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Makepad-fr/packlist/internal/model"
)

// DefaultMax is the largest quantity the form offers unless configured otherwise.
const DefaultMax = 20

var (
	ErrEmptyDescription = errors.New("please enter an item description")
	ErrQuantityRange    = errors.New("quantity out of range")
)

// Form holds the fields being typed for a new item.
type Form struct {
	Description string
	Quantity    int
	Packed      bool
	Max         int
}

// New returns a reset form offering quantities 1..max.
func New(max int) *Form {
	if max < 1 {
		max = DefaultMax
	}
	f := &Form{Max: max}
	f.Reset()
	return f
}

// Validate reports why the current fields cannot be submitted.
func (f *Form) Validate() error {
	if strings.TrimSpace(f.Description) == "" {
		return ErrEmptyDescription
	}
	if f.Quantity < 1 || f.Quantity > f.Max {
		return fmt.Errorf("%w: %d not in 1..%d", ErrQuantityRange, f.Quantity, f.Max)
	}
	return nil
}

// Submit builds an item from the fields and resets the form.
// Invalid fields are kept so the user can fix them.
func (f *Form) Submit() (model.Item, error) {
	if err := f.Validate(); err != nil {
		return model.Item{}, err
	}
	it := model.NewItem(f.Description, f.Quantity, f.Packed)
	f.Reset()
	return it, nil
}

// Reset restores the initial field values.
func (f *Form) Reset() {
	f.Description = ""
	f.Quantity = 1
	f.Packed = false
}

func (f *Form) Inc() {
	if f.Quantity < f.Max {
		f.Quantity++
	}
}

func (f *Form) Dec() {
	if f.Quantity > 1 {
		f.Quantity--
	}
}

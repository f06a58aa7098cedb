package generator

import (
	"fmt"
	"strings"
)

// NoPropertiesError is returned when a model has no properties to generate from.
type NoPropertiesError struct {
	Model string
}

func (e *NoPropertiesError) Error() string {
	return fmt.Sprintf("plz add some properties to this model (%s)", e.Model)
}

// UnconfiguredPropertiesError lists the properties that have no generator function.
type UnconfiguredPropertiesError struct {
	Names []string
}

func (e *UnconfiguredPropertiesError) Error() string {
	noun := "properties"
	if len(e.Names) == 1 {
		noun = "property"
	}
	return fmt.Sprintf("There is %d %s without function %s",
		len(e.Names), noun, strings.Join(e.Names, " || "))
}

// IsValidation reports whether err is one of the user-facing validation
// failures that should be shown as a warning.
func IsValidation(err error) bool {
	switch err.(type) {
	case *NoPropertiesError, *UnconfiguredPropertiesError:
		return true
	}
	return false
}

package domain

import (
	"fmt"
	"strings"
)

// InvalidInputError is returned before any computation when a parameter is
// out of its domain (non-positive price, zero paths, ...).
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type UnknownScenarioError struct {
	Name      string
	Available []string
}

func (e UnknownScenarioError) Error() string {
	return fmt.Sprintf("unknown scenario '%s'. available: [%s]", e.Name, strings.Join(e.Available, ", "))
}

// InsufficientDataError is raised by outer layers when a core computation
// came back absent and the caller needs a failure instead.
type InsufficientDataError struct {
	What string
}

func (e InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: %s", e.What)
}

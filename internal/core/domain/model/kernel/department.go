package kernel

import (
	"fmt"

	"shiplabel/internal/pkg/errs"
)

// ErrDepartmentIsNotConstructed indicates that a Department was not created
// through NewDepartment. Returned when validating a zero-value Department.
var ErrDepartmentIsNotConstructed = errs.NewValueIsRequiredError("Department must be created via NewDepartment")

const maxDepartmentDigits = 3

// Department is a value object identifying the department within an agency an
// expedition is billed to. The carrier default is department "0".
type Department struct {
	value string
}

// DefaultDepartment returns the carrier default department ("0").
func DefaultDepartment() Department {
	return Department{value: "0"}
}

// NewDepartment parses and validates a department identifier.
// The identifier must be 1 to 3 digits. An empty string yields the carrier
// default department.
func NewDepartment(s string) (Department, error) {
	if s == "" {
		return DefaultDepartment(), nil
	}
	if !isDigits(s) {
		return Department{}, errs.NewValueIsInvalidErrorWithCause(
			"department",
			fmt.Errorf("%q is not numeric", s),
		)
	}
	if len(s) > maxDepartmentDigits {
		return Department{}, errs.NewValueIsOutOfRangeError("department length", len(s), 1, maxDepartmentDigits)
	}

	return Department{value: s}, nil
}

// Validate ensures the Department was created via a constructor.
// Returns ErrDepartmentIsNotConstructed for zero values.
func (d Department) Validate() error {
	if d.value == "" {
		return ErrDepartmentIsNotConstructed
	}
	return nil
}

// String returns the department identifier.
// It implements the fmt.Stringer interface.
func (d Department) String() string {
	return d.value
}

// IsEqual compares two departments by value.
func (d Department) IsEqual(other Department) bool {
	return d.value == other.value
}

package kernel

import (
	"fmt"
	"strings"

	"shiplabel/internal/pkg/errs"
)

// ErrAgencyIsNotConstructed indicates that an Agency was not created through
// NewAgency. This error is returned when validating a zero-value Agency.
var ErrAgencyIsNotConstructed = errs.NewValueIsRequiredError("Agency must be created via NewAgency")

const agencyCodeDigits = 4

// Agency is a value object identifying the carrier client/agency issuing an
// expedition. The carrier accepts the identifier either as a bare agency code
// ("1", "0001") or in client form with a client suffix ("0001/001").
//
// The agency code part is normalized to exactly four digits; the optional
// suffix is kept as supplied. Agency is immutable and safe for concurrent use.
//
// Example usage:
//
//	agency, err := kernel.NewAgency("0001/001")
//	if err != nil {
//	    // handle error
//	}
//	agency.Code()   // "0001"
//	agency.String() // "0001/001"
type Agency struct {
	code   string
	suffix string
}

// NewAgency parses and validates an agency identifier.
// Accepted forms:
//   - "NNNN" — a 1 to 4 digit agency code, left-padded to four digits
//   - "NNNN/NNN" — agency code plus a numeric client suffix
//
// Returns an error if the code part is empty, not numeric, longer than four
// digits, or if a present suffix is not numeric.
func NewAgency(s string) (Agency, error) {
	codePart, suffix, hasSuffix := strings.Cut(strings.TrimSpace(s), "/")

	if codePart == "" {
		return Agency{}, errs.NewValueIsRequiredError("agency")
	}
	if !isDigits(codePart) {
		return Agency{}, errs.NewValueIsInvalidErrorWithCause(
			"agency",
			fmt.Errorf("%q is not numeric", codePart),
		)
	}
	if len(codePart) > agencyCodeDigits {
		return Agency{}, errs.NewValueIsOutOfRangeError("agency code length", len(codePart), 1, agencyCodeDigits)
	}
	if hasSuffix && !isDigits(suffix) {
		return Agency{}, errs.NewValueIsInvalidErrorWithCause(
			"agency suffix",
			fmt.Errorf("%q is not numeric", suffix),
		)
	}

	return Agency{
		code:   leftPad(codePart, agencyCodeDigits),
		suffix: suffix,
	}, nil
}

// Validate ensures the Agency was created via NewAgency.
// Returns ErrAgencyIsNotConstructed for zero values.
func (a Agency) Validate() error {
	if a.code == "" {
		return ErrAgencyIsNotConstructed
	}
	return nil
}

// Code returns the four-digit agency code used inside expedition codes.
func (a Agency) Code() string {
	return a.code
}

// String returns the full client form ("0001" or "0001/001").
// It implements the fmt.Stringer interface.
func (a Agency) String() string {
	if a.suffix == "" {
		return a.code
	}
	return a.code + "/" + a.suffix
}

// IsEqual compares two agencies by their normalized code and suffix.
func (a Agency) IsEqual(other Agency) bool {
	return a.code == other.code && a.suffix == other.suffix
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func leftPad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}

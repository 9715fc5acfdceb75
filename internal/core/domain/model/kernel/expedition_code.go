package kernel

import (
	"fmt"
	"strconv"

	"shiplabel/internal/pkg/errs"
)

// ErrExpeditionCodeIsNotConstructed indicates that an ExpeditionCode was not
// created through GenerateExpeditionCode or ExpeditionCodeFromString.
var ErrExpeditionCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"ExpeditionCode must be created via GenerateExpeditionCode or ExpeditionCodeFromString",
)

const (
	// CodePrefix is the fixed three-digit prefix of every primary expedition code.
	CodePrefix = "840"

	// SecondaryCodePrefix replaces CodePrefix in the companion code printed as
	// the code-128 band of the label.
	SecondaryCodePrefix = "841"

	sequenceDigits = 7
	maxSequence    = 9999999

	// CodeLength is the total length of an expedition code:
	// 3 prefix digits + 4 agency digits + 7 sequence digits + 1 check digit.
	CodeLength = 15
)

// ExpeditionCode is a value object for the carrier expedition code printed on
// every label. The code is always exactly 15 numeric characters:
//
//	840 AAAA SSSSSSS C
//
// where AAAA is the four-digit agency code, SSSSSSS the seven-digit sequence
// number, and C the modulo-10 check digit computed over the preceding 14
// digits with alternating weight 3.
//
// ExpeditionCode is immutable; equal inputs always produce equal codes.
//
// Example usage:
//
//	agency, _ := kernel.NewAgency("0001")
//	code, err := kernel.GenerateExpeditionCode(agency, 1)
//	if err != nil {
//	    // handle error
//	}
//	code.String() // "840000100000016"
type ExpeditionCode struct {
	value string
}

// CheckDigit computes the modulo-10 check digit for a string of digits.
// Iterating right to left, every digit at an odd position (1st, 3rd, ...,
// 1-indexed from the right) is multiplied by 3; all digits are summed and the
// check digit is (10 - (sum mod 10)) mod 10.
//
// Returns an error if the input is empty or contains non-digit characters.
func CheckDigit(digits string) (int, error) {
	if digits == "" {
		return 0, errs.NewValueIsRequiredError("digits")
	}

	sum := 0
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, errs.NewValueIsInvalidErrorWithCause(
				"digits",
				fmt.Errorf("%q contains a non-digit character", digits),
			)
		}

		d := int(c - '0')
		if (len(digits)-i)%2 == 1 {
			d *= 3
		}
		sum += d
	}

	return (10 - sum%10) % 10, nil
}

// GenerateExpeditionCode builds the expedition code for an agency and a
// sequence number. The sequence must be within [1, 9999999]; it is left-padded
// to seven digits. Pure function: the same inputs always produce the same code.
func GenerateExpeditionCode(agency Agency, sequence int) (ExpeditionCode, error) {
	if err := agency.Validate(); err != nil {
		return ExpeditionCode{}, err
	}
	if sequence < 1 || sequence > maxSequence {
		return ExpeditionCode{}, errs.NewValueIsOutOfRangeError("sequence", sequence, 1, maxSequence)
	}

	base := CodePrefix + agency.Code() + leftPad(strconv.Itoa(sequence), sequenceDigits)
	check, err := CheckDigit(base)
	if err != nil {
		return ExpeditionCode{}, err
	}

	return ExpeditionCode{value: base + strconv.Itoa(check)}, nil
}

// ExpeditionCodeFromString parses and re-validates an expedition code, for
// example when reconstructing an expedition from persistence. The code must be
// 15 numeric characters, start with the fixed carrier prefix, and carry a
// correct check digit.
func ExpeditionCodeFromString(s string) (ExpeditionCode, error) {
	if len(s) != CodeLength {
		return ExpeditionCode{}, errs.NewValueIsOutOfRangeError("expedition code length", len(s), CodeLength, CodeLength)
	}
	if !isDigits(s) {
		return ExpeditionCode{}, errs.NewValueIsInvalidErrorWithCause(
			"expedition code",
			fmt.Errorf("%q contains a non-digit character", s),
		)
	}
	if s[:len(CodePrefix)] != CodePrefix {
		return ExpeditionCode{}, errs.NewValueIsInvalidErrorWithCause(
			"expedition code",
			fmt.Errorf("%q does not start with prefix %s", s, CodePrefix),
		)
	}

	check, err := CheckDigit(s[:CodeLength-1])
	if err != nil {
		return ExpeditionCode{}, err
	}
	if byte('0'+check) != s[CodeLength-1] {
		return ExpeditionCode{}, errs.NewValueIsInvalidErrorWithCause(
			"expedition code",
			fmt.Errorf("check digit mismatch: expected %d", check),
		)
	}

	return ExpeditionCode{value: s}, nil
}

// Validate ensures the ExpeditionCode was created via a constructor.
// Returns ErrExpeditionCodeIsNotConstructed for zero values.
func (c ExpeditionCode) Validate() error {
	if c.value == "" {
		return ErrExpeditionCodeIsNotConstructed
	}
	return nil
}

// String returns the full 15-digit code.
// It implements the fmt.Stringer interface.
func (c ExpeditionCode) String() string {
	return c.value
}

// AgencyPart returns the four agency digits embedded in the code.
func (c ExpeditionCode) AgencyPart() string {
	return c.value[len(CodePrefix) : len(CodePrefix)+agencyCodeDigits]
}

// SequencePart returns the seven sequence digits embedded in the code.
func (c ExpeditionCode) SequencePart() string {
	return c.value[len(CodePrefix)+agencyCodeDigits : CodeLength-1]
}

// Secondary returns the companion code used for the code-128 band: the primary
// code with the prefix swapped for the secondary prefix. The original check
// digit is kept, so the result is a display code, not a valid primary code.
func (c ExpeditionCode) Secondary() string {
	return SecondaryCodePrefix + c.value[len(SecondaryCodePrefix):]
}

// IsEqual compares two expedition codes by value.
func (c ExpeditionCode) IsEqual(other ExpeditionCode) bool {
	return c.value == other.value
}

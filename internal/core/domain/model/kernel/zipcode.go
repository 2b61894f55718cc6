package kernel

import (
	"fmt"

	"shiptrack/internal/pkg/errs"
)

const (
	// ZipCodeMin is the smallest zip code accepted by the system.
	ZipCodeMin = 10000
	// ZipCodeMax is the largest zip code accepted by the system.
	ZipCodeMax = 99999
)

// ZipCode is a value object representing a five-digit postal code.
// It anchors shipment destinations, partner serviceable areas, and
// event locations. The zero value is invalid; use NewZipCode.
//
// Example:
//
//	zip, err := kernel.NewZipCode(10001)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(zip) // Output: 10001
type ZipCode int32

// NewZipCode creates a ZipCode from an integer value.
// Returns an error when the value lies outside [ZipCodeMin..ZipCodeMax].
func NewZipCode(value int) (ZipCode, error) {
	zip := ZipCode(value)
	if err := zip.Validate(); err != nil {
		return 0, err
	}
	return zip, nil
}

// Validate checks that the zip code lies within the accepted range.
func (z ZipCode) Validate() error {
	if z < ZipCodeMin || z > ZipCodeMax {
		return errs.NewValueIsOutOfRangeError("zip code", int(z), ZipCodeMin, ZipCodeMax)
	}
	return nil
}

// String returns the five-digit representation of the zip code.
// This method implements the fmt.Stringer interface.
func (z ZipCode) String() string {
	return fmt.Sprintf("%05d", int(z))
}

// IsEqual compares two zip codes for equality.
func (z ZipCode) IsEqual(other ZipCode) bool {
	return z == other
}

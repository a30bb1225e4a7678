package validation

import (
	"fmt"

	dErrors "walletgate/pkg/domain-errors"
)

// HTTP body limits
const (
	// MaxBodySize is the maximum allowed request body size (256 KB).
	// Terms for large contracts carry every shared URI.
	MaxBodySize = 256 * 1024
)

// Slice element count limits
const (
	// MaxCategories is the maximum number of credential categories in a terms document.
	MaxCategories = 100

	// MaxSharedURIs is the maximum number of shared URIs per category.
	MaxSharedURIs = 1000

	// MaxPersonalFields is the maximum number of personal fields per direction.
	MaxPersonalFields = 50
)

// String element length limits
const (
	// MaxURILength is the maximum length of a contract, terms, or credential URI.
	MaxURILength = 2048

	// MaxDIDLength is the maximum length of a DID.
	MaxDIDLength = 512

	// MaxPINLength is the maximum length of a guardian PIN.
	MaxPINLength = 64
)

// CheckSliceCount validates that a slice does not exceed the maximum count.
func CheckSliceCount(fieldName string, count, max int) error {
	if count > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("too many %s: max %d allowed", fieldName, max))
	}
	return nil
}

// CheckStringLength validates that a string does not exceed the maximum length.
func CheckStringLength(fieldName, value string, max int) error {
	if len(value) > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s exceeds max length of %d", fieldName, max))
	}
	return nil
}

// CheckEachStringLength validates that each string in a slice does not exceed the maximum length.
func CheckEachStringLength(fieldName string, values []string, max int) error {
	for _, v := range values {
		if len(v) > max {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s exceeds max length of %d", fieldName, max))
		}
	}
	return nil
}

package validation

import (
	"fmt"
	"strings"
)

// ValidTimeframe is the supported research timeframe vocabulary.
var ValidTimeframe = map[string]bool{
	"1y": true, "3y": true, "5y": true,
}

// ValidateTimeframe checks an optional timeframe query parameter.
// An empty value is allowed; the service substitutes the default.
func ValidateTimeframe(timeframe string) error {
	if timeframe == "" {
		return nil
	}
	if !ValidTimeframe[timeframe] {
		return &Error{Fields: map[string]string{
			"timeframe": fmt.Sprintf("invalid timeframe: %s (expected 1y, 3y or 5y)", timeframe),
		}}
	}
	return nil
}

// ValidateFundIDs checks the comma-separated fund id list of a
// comparison request.
func ValidateFundIDs(ids []string) error {
	errors := make(map[string]string)

	if len(ids) == 0 {
		errors["ids"] = "at least one fund id is required"
	}
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			errors["ids"] = "fund ids cannot be empty"
			break
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

package validation

import "strings"

// ValidateDatasetUpload checks an incoming dataset upload before parsing.
func ValidateDatasetUpload(name, csvText string) error {
	errors := make(map[string]string)

	// Required field
	if strings.TrimSpace(name) == "" {
		errors["name"] = "name is required"
	} else if len(name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if strings.TrimSpace(csvText) == "" {
		errors["csv"] = "CSV content is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

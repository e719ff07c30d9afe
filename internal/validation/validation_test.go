package validation_test

import (
	"strings"
	"testing"

	"github.com/fundsight/Fund-Analytics-Backend/internal/testutil"
	"github.com/fundsight/Fund-Analytics-Backend/internal/validation"
)

func TestValidateUUID(t *testing.T) {
	t.Run("accepts valid UUIDs", func(t *testing.T) {
		if err := validation.ValidateUUID(testutil.MakeID()); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects malformed UUIDs", func(t *testing.T) {
		for _, id := range []string{"", "not-a-uuid", "12345"} {
			if err := validation.ValidateUUID(id); err == nil {
				t.Errorf("Expected error for '%s'", id)
			}
		}
	})
}

func TestValidateTimeframe(t *testing.T) {
	t.Run("accepts the supported vocabulary", func(t *testing.T) {
		for _, tf := range []string{"1y", "3y", "5y"} {
			if err := validation.ValidateTimeframe(tf); err != nil {
				t.Errorf("Expected '%s' to validate, got %v", tf, err)
			}
		}
	})

	t.Run("allows an empty timeframe", func(t *testing.T) {
		if err := validation.ValidateTimeframe(""); err != nil {
			t.Errorf("Expected no error for empty timeframe, got %v", err)
		}
	})

	t.Run("rejects unknown timeframes", func(t *testing.T) {
		err := validation.ValidateTimeframe("10y")
		if err == nil {
			t.Fatal("Expected error for '10y'")
		}
		if !strings.Contains(err.Error(), "timeframe") {
			t.Errorf("Expected the field name in the error, got %v", err)
		}
	})
}

func TestValidateFundIDs(t *testing.T) {
	t.Run("accepts a non-empty id list", func(t *testing.T) {
		if err := validation.ValidateFundIDs([]string{"0_Alpha", "1_Beta"}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects an empty list", func(t *testing.T) {
		if err := validation.ValidateFundIDs(nil); err == nil {
			t.Error("Expected error for an empty list")
		}
	})

	t.Run("rejects blank ids", func(t *testing.T) {
		if err := validation.ValidateFundIDs([]string{"0_Alpha", "  "}); err == nil {
			t.Error("Expected error for a blank id")
		}
	})
}

func TestValidateDatasetUpload(t *testing.T) {
	t.Run("accepts a named upload with content", func(t *testing.T) {
		if err := validation.ValidateDatasetUpload("My Funds", "name,nav\nA,1\n"); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		err := validation.ValidateDatasetUpload("  ", "name,nav\nA,1\n")
		if err == nil {
			t.Fatal("Expected error for a missing name")
		}
		if !strings.Contains(err.Error(), "name") {
			t.Errorf("Expected the field name in the error, got %v", err)
		}
	})

	t.Run("rejects an overlong name", func(t *testing.T) {
		if err := validation.ValidateDatasetUpload(strings.Repeat("x", 101), "csv"); err == nil {
			t.Error("Expected error for a 101-character name")
		}
	})

	t.Run("rejects empty CSV content", func(t *testing.T) {
		if err := validation.ValidateDatasetUpload("My Funds", "  "); err == nil {
			t.Error("Expected error for empty CSV content")
		}
	})
}

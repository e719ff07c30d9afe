package apperrors

import "errors"

// Ingestion errors represent failures while fetching or parsing the fund
// CSV feed. The provider recovers from these locally by serving an empty
// collection; they surface to users only as an empty state, never as a
// hard failure.
var (
	// ErrIngestion indicates the feed CSV was unreachable or unparseable
	// at the top level.
	ErrIngestion = errors.New("fund feed ingestion failed")

	// ErrFeedUnavailable indicates the CSV resource could not be fetched
	// (network error or non-success status).
	ErrFeedUnavailable = errors.New("fund feed unavailable")

	// ErrInvalidCSVHeaders indicates an uploaded CSV is missing its header
	// row or has no parsable columns.
	ErrInvalidCSVHeaders = errors.New("invalid CSV headers")

	// ErrEmptyCSV indicates an uploaded CSV contains no data rows.
	ErrEmptyCSV = errors.New("CSV contains no data rows")
)

// Upstream errors represent a missing or failing research backend. The
// research service recovers by returning a placeholder message; these
// never propagate to the request pipeline.
var (
	// ErrUpstreamUnavailable indicates the research backend errored or
	// could not be reached.
	ErrUpstreamUnavailable = errors.New("research backend unavailable")

	// ErrResearchDisabled indicates no LLM API key is configured, so the
	// research feature is in its visible disabled state.
	ErrResearchDisabled = errors.New("research is disabled: no API key configured")
)

// Dispatch errors distinguish missing backend wiring from legitimate
// empty results.
var (
	// ErrEndpointNotImplemented indicates the dispatcher has no handler
	// for the requested endpoint. Callers receive an empty payload, but
	// the tagged outcome lets them tell this apart from real data.
	ErrEndpointNotImplemented = errors.New("endpoint not implemented")
)

// Domain entity errors represent missing entities.
var (
	// ErrDatasetNotFound indicates that a dataset with the given ID does not exist.
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrFundNotFound indicates that a fund with the given ID does not exist.
	ErrFundNotFound = errors.New("fund not found")
)

// Business logic errors represent validation failures or constraint
// violations.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidTimeframe indicates a timeframe outside the supported
	// 1y/3y/5y vocabulary.
	ErrInvalidTimeframe = errors.New("invalid timeframe")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidEncryptionKey indicates the configured fernet key could
	// not be decoded.
	ErrInvalidEncryptionKey = errors.New("invalid encryption key")
)

// Operation failure errors represent system-level failures when
// retrieving or processing data.
var (
	ErrFailedToRetrieveFunds    = errors.New("failed to retrieve funds")
	ErrFailedToRetrieveDatasets = errors.New("failed to retrieve datasets")
	ErrFailedToRetrieveDataset  = errors.New("failed to retrieve dataset")
	ErrFailedToStoreDataset     = errors.New("failed to store dataset")
	ErrFailedToGetVersionInfo   = errors.New("failed to get version information")
)

// Package request defines the JSON request bodies accepted by the API.
package request

// CreateDatasetRequest is the body of POST /api/dataset: a named CSV
// upload in the upload schema.
type CreateDatasetRequest struct {
	Name string `json:"name"`
	CSV  string `json:"csv"`
}

package model

import "time"

// Dataset is a user-uploaded fund collection. Uploads live alongside the
// shared feed cache but never replace it: a dataset is a caller-local
// working copy persisted for later retrieval.
type Dataset struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	RecordCount int          `json:"recordCount"`
	CreatedAt   time.Time    `json:"createdAt"`
	Records     []FundRecord `json:"records,omitempty"`
}

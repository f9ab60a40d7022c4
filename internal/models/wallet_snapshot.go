package models

import "github.com/google/uuid"

// Pagination coordinator states
const (
	PaginationIdle         = "idle"
	PaginationFetchingMore = "fetching_more"
	PaginationEndReached   = "end_reached"
)

// WalletSnapshot is a read-only view of a wallet session
type WalletSnapshot struct {
	SessionID      uuid.UUID        `json:"session_id"`
	Filters        FilterState      `json:"filters"`
	Defaults       FilterDefaults   `json:"defaults"`
	Query          TransactionQuery `json:"query"`
	Data           []Transaction    `json:"data"`
	Loading        bool             `json:"loading"`
	EndReached     bool             `json:"end_reached"`
	State          string           `json:"state"`
	FetchAll       bool             `json:"fetch_all"`
	RefetchPending bool             `json:"refetch_pending"`
	FetchFailed    bool             `json:"fetch_failed"`
}

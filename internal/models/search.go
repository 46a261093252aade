package models

import "time"

// SearchCriteria is a saved hotel search, stored under an opaque key so a
// client can restore its last search without keeping ambient session state.
type SearchCriteria struct {
	Key         string    `json:"key,omitempty"`
	Destination string    `json:"destination"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	AdultCount  int       `json:"adult_count"`
	ChildCount  int       `json:"child_count"`
}

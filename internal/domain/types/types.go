// Package types contains common types used across the application
package types

// Entry represents a standings row
type Entry struct {
	Rank   int     `json:"rank"`
	Team   string  `json:"team"`
	Rating float64 `json:"rating"`
	Streak int     `json:"streak"`
	Games  int     `json:"games"`
}

// History is one team's full rating timeline, seed first.
type History struct {
	Team    string    `json:"team"`
	Aliases []string  `json:"aliases,omitempty"`
	Ratings []float64 `json:"ratings"`
}

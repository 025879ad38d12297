// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Outcome values for Match.Win.
const (
	HomeWin    = 0
	VisitorWin = 1
)

// PlayoffNote marks a game played inside the playoff window.
const PlayoffNote = "Playoffs"

// Match is one scheduled game as exported by the schedule scraper.
// Only Visitor, Home and Win drive ratings; the rest rides along.
type Match struct {
	Date          time.Time
	StartTime     string
	Visitor       string
	VisitorPoints int
	Home          string
	HomePoints    int
	BoxScore      string
	Overtime      string
	Attendance    string
	Arena         string
	Notes         string
	Win           int // 1 when the visitor won, 0 when the home side won
}

// Validate rejects records the rating engine cannot process.
func (m Match) Validate() error {
	if strings.TrimSpace(m.Visitor) == "" || strings.TrimSpace(m.Home) == "" {
		return ErrMissingTeam
	}
	if m.Win != HomeWin && m.Win != VisitorWin {
		return fmt.Errorf("win=%d: %w", m.Win, ErrInvalidOutcome)
	}
	return nil
}

// Winner returns the raw winner and loser names.
func (m Match) Winner() (winner, loser string) {
	if m.Win == VisitorWin {
		return m.Visitor, m.Home
	}
	return m.Home, m.Visitor
}

// IsPlayoff reports whether the game was tagged as a playoff game.
func (m Match) IsPlayoff() bool {
	return m.Notes == PlayoffNote
}

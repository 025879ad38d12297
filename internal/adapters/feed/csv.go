// Package feed reads the ordered match feed exported by the schedule scraper.
package feed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/okian/hoopelo/internal/domain/dedupe"
	"github.com/okian/hoopelo/internal/domain/model"
)

// Column headers written by the scraper export.
const (
	colDate          = "Date"
	colStartTime     = "Start Time (ET)"
	colVisitor       = "Visitor"
	colVisitorPoints = "Visitor Points"
	colHome          = "Home"
	colHomePoints    = "Home Points"
	colBoxScore      = "Box Score"
	colOvertime      = "Overtime"
	colAttendance    = "Attendance"
	colArena         = "Arena"
	colNotes         = "Notes"
	colWin           = "Win"
)

var defaultDateLayouts = []string{ //nolint:gochecknoglobals // read-only defaults
	"2006-01-02",
	"2006-01-02 15:04:05",
	"Mon, Jan 2, 2006",
	time.RFC3339,
}

// Reader decodes CSV match feeds into model.Match records in file order.
type Reader struct {
	dropUnplayed bool
	dedupe       bool
	dateLayouts  []string
}

// NewReader creates a Reader. Unplayed games are dropped by default.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		dropUnplayed: true,
		dateLayouts:  defaultDateLayouts,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadFile opens path and decodes it.
func (r *Reader) ReadFile(path string) ([]model.Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feed: %w", err)
	}
	defer func() { _ = f.Close() }()
	return r.Read(f)
}

// Read decodes a CSV stream with a header row. Visitor and Home are
// required; the outcome comes from Win when present, otherwise from the
// two points columns.
func (r *Reader) Read(in io.Reader) ([]model.Match, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := indexHeader(header)
	if err := checkColumns(idx); err != nil {
		return nil, err
	}

	var seen dedupe.Deduper
	if r.dedupe {
		seen = dedupe.NewInMemoryDeduper()
	}

	var out []model.Match
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", line, ErrMalformedRow, err)
		}
		m, played, err := r.decode(idx, rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if !played {
			continue
		}
		if seen != nil {
			if key, ok := dedupe.Key(m); ok && seen.SeenAndRecord(context.Background(), key) {
				continue
			}
		}
		out = append(out, m)
	}
	return out, nil
}

func indexHeader(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	return idx
}

func checkColumns(idx map[string]int) error {
	for _, col := range []string{colVisitor, colHome} {
		if _, ok := idx[col]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	if _, ok := idx[colWin]; ok {
		return nil
	}
	for _, col := range []string{colVisitorPoints, colHomePoints} {
		if _, ok := idx[col]; !ok {
			return fmt.Errorf("%w: %s (needed without %s)", ErrMissingColumn, col, colWin)
		}
	}
	return nil
}

// decode maps one row. played is false for a scheduled game without a result.
func (r *Reader) decode(idx map[string]int, rec []string) (model.Match, bool, error) {
	get := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	m := model.Match{
		StartTime:  get(colStartTime),
		Visitor:    get(colVisitor),
		Home:       get(colHome),
		BoxScore:   get(colBoxScore),
		Overtime:   get(colOvertime),
		Attendance: get(colAttendance),
		Arena:      get(colArena),
		Notes:      get(colNotes),
	}
	if m.Visitor == "" || m.Home == "" {
		return model.Match{}, false, model.ErrMissingTeam
	}

	if raw := get(colDate); raw != "" {
		d, err := r.parseDate(raw)
		if err != nil {
			return model.Match{}, false, err
		}
		m.Date = d
	}

	vp, vok, err := parsePoints(get(colVisitorPoints))
	if err != nil {
		return model.Match{}, false, err
	}
	hp, hok, err := parsePoints(get(colHomePoints))
	if err != nil {
		return model.Match{}, false, err
	}
	m.VisitorPoints, m.HomePoints = vp, hp

	if raw := get(colWin); raw != "" {
		win, err := parseWin(raw)
		if err != nil {
			return model.Match{}, false, err
		}
		m.Win = win
		return m, true, nil
	}

	if !vok || !hok {
		if r.dropUnplayed && !vok && !hok {
			return model.Match{}, false, nil
		}
		return model.Match{}, false, fmt.Errorf("no result for %s at %s: %w", m.Visitor, m.Home, model.ErrInvalidOutcome)
	}
	switch {
	case vp > hp:
		m.Win = model.VisitorWin
	case hp > vp:
		m.Win = model.HomeWin
	default:
		return model.Match{}, false, fmt.Errorf("tied score %d-%d: %w", vp, hp, model.ErrInvalidOutcome)
	}
	return m, true, nil
}

func (r *Reader) parseDate(raw string) (time.Time, error) {
	for _, layout := range r.dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %q", ErrMalformedRow, raw)
}

// parsePoints returns ok=false for an empty cell.
func parsePoints(raw string) (int, bool, error) {
	if raw == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 || f != float64(int(f)) {
		return 0, false, fmt.Errorf("%w: points %q", ErrMalformedRow, raw)
	}
	return int(f), true, nil
}

func parseWin(raw string) (int, error) {
	switch strings.ToLower(raw) {
	case "1", "1.0", "true":
		return model.VisitorWin, nil
	case "0", "0.0", "false":
		return model.HomeWin, nil
	}
	return 0, fmt.Errorf("win %q: %w", raw, model.ErrInvalidOutcome)
}

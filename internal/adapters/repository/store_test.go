package repository

import (
	"context"
	"errors"
	"testing"
)

var testTeams = []string{"Boston Celtics", "Miami Heat", "Utah Jazz"}

func TestRatingStore_Seeding(t *testing.T) {
	ctx := context.Background()
	store := NewRatingStore(testTeams)

	if count := store.Count(ctx); count != len(testTeams) {
		t.Fatalf("expected count %d, got %d", len(testTeams), count)
	}
	for _, team := range testTeams {
		tl, err := store.Timeline(team)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tl) != 1 || tl[0] != 1200 {
			t.Errorf("%s: expected seeded timeline [1200], got %v", team, tl)
		}
		streak, err := store.Streak(team)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if streak != 0 {
			t.Errorf("%s: expected zero streak, got %d", team, streak)
		}
	}
}

func TestRatingStore_Options(t *testing.T) {
	store := NewRatingStore(testTeams, WithSeed(1500), WithCapacity(82))

	if store.Seed() != 1500 {
		t.Errorf("expected seed 1500, got %f", store.Seed())
	}
	latest, err := store.Latest("Utah Jazz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest != 1500 {
		t.Errorf("expected latest 1500, got %f", latest)
	}
	if c := cap(store.timelines["Utah Jazz"]); c != 83 {
		t.Errorf("expected capacity 83, got %d", c)
	}

	// negative seeds are ignored
	store = NewRatingStore(testTeams, WithSeed(-1))
	if store.Seed() != 1200 {
		t.Errorf("expected default seed, got %f", store.Seed())
	}
}

func TestRatingStore_AppendAndLatest(t *testing.T) {
	store := NewRatingStore(testTeams)

	if err := store.Append("Miami Heat", 1210); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Append("Miami Heat", 1201.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	latest, err := store.Latest("Miami Heat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest != 1201.5 {
		t.Errorf("expected 1201.5, got %f", latest)
	}

	tl, _ := store.Timeline("Miami Heat")
	if len(tl) != 3 {
		t.Errorf("expected timeline length 3, got %d", len(tl))
	}
}

func TestRatingStore_Streaks(t *testing.T) {
	store := NewRatingStore(testTeams)

	for i := 1; i <= 3; i++ {
		n, err := store.RecordWin("Boston Celtics")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != i {
			t.Errorf("expected streak %d, got %d", i, n)
		}
	}

	if err := store.RecordLoss("Boston Celtics"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, _ := store.Streak("Boston Celtics"); n != 0 {
		t.Errorf("expected streak reset to 0, got %d", n)
	}

	// a loss on a zero streak stays at zero
	if err := store.RecordLoss("Utah Jazz"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, _ := store.Streak("Utah Jazz"); n != 0 {
		t.Errorf("expected streak 0, got %d", n)
	}
}

func TestRatingStore_UnknownTeam(t *testing.T) {
	store := NewRatingStore(testTeams)
	const ghost = "Charlotte Bobcats"

	if store.Has(ghost) {
		t.Fatal("unexpected team present")
	}
	if _, err := store.Latest(ghost); !errors.Is(err, ErrNotFound) {
		t.Errorf("Latest: expected ErrNotFound, got %v", err)
	}
	if err := store.Append(ghost, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Append: expected ErrNotFound, got %v", err)
	}
	if _, err := store.RecordWin(ghost); !errors.Is(err, ErrNotFound) {
		t.Errorf("RecordWin: expected ErrNotFound, got %v", err)
	}
	if err := store.RecordLoss(ghost); !errors.Is(err, ErrNotFound) {
		t.Errorf("RecordLoss: expected ErrNotFound, got %v", err)
	}
	if _, err := store.Streak(ghost); !errors.Is(err, ErrNotFound) {
		t.Errorf("Streak: expected ErrNotFound, got %v", err)
	}
	if _, err := store.Timeline(ghost); !errors.Is(err, ErrNotFound) {
		t.Errorf("Timeline: expected ErrNotFound, got %v", err)
	}
	if _, err := store.Rank(context.Background(), ghost); !errors.Is(err, ErrNotFound) {
		t.Errorf("Rank: expected ErrNotFound, got %v", err)
	}
	if store.Count(context.Background()) != len(testTeams) {
		t.Error("unknown team lookups must not create entries")
	}
}

func TestRatingStore_CopiesAreIsolated(t *testing.T) {
	store := NewRatingStore(testTeams)

	tl, _ := store.Timeline("Utah Jazz")
	tl[0] = -1
	all := store.Timelines()
	all["Utah Jazz"][0] = -1
	all["Utah Jazz"] = append(all["Utah Jazz"], 5)

	latest, _ := store.Latest("Utah Jazz")
	if latest != 1200 {
		t.Errorf("store mutated through a copy: %f", latest)
	}
	if got, _ := store.Timeline("Utah Jazz"); len(got) != 1 {
		t.Errorf("store timeline grew through a copy: %v", got)
	}
}

func TestRatingStore_Standings(t *testing.T) {
	ctx := context.Background()
	store := NewRatingStore(testTeams)

	_ = store.Append("Utah Jazz", 1250)
	_, _ = store.RecordWin("Utah Jazz")
	_ = store.Append("Boston Celtics", 1150)

	top, err := store.TopN(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(top))
	}
	want := []string{"Utah Jazz", "Miami Heat", "Boston Celtics"}
	for i, e := range top {
		if e.Team != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], e.Team)
		}
		if e.Rank != i+1 {
			t.Errorf("position %d: expected rank %d, got %d", i, i+1, e.Rank)
		}
	}
	if top[0].Streak != 1 || top[0].Games != 1 {
		t.Errorf("unexpected leader row: %+v", top[0])
	}

	entry, err := store.Rank(ctx, "Boston Celtics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Rank != 3 || entry.Rating != 1150 {
		t.Errorf("unexpected rank row: %+v", entry)
	}

	if _, err := store.TopN(ctx, 0); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("expected ErrInvalidLimit, got %v", err)
	}
}

func TestRatingStore_TieBreakByName(t *testing.T) {
	store := NewRatingStore([]string{"Phoenix Suns", "Atlanta Hawks", "Miami Heat"})

	top, err := store.TopN(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Atlanta Hawks", "Miami Heat", "Phoenix Suns"}
	for i, e := range top {
		if e.Team != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], e.Team)
		}
	}
}

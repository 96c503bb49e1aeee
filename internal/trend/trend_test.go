package trend

import (
	"testing"
	"time"

	"github.com/mantra-ai/mindscore/internal/types"
)

func checkinAt(score float64, when time.Time) types.CheckIn {
	return types.CheckIn{MindScore: score, CreatedAt: when}
}

func TestAverageMindScoreWindowed(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	checkins := []types.CheckIn{
		checkinAt(40, now.AddDate(0, 0, -10)), // outside the window
		checkinAt(60, now.AddDate(0, 0, -3)),
		checkinAt(70, now.AddDate(0, 0, -1)),
	}

	avg, ok := AverageMindScore(checkins, 7*24*time.Hour, now)
	if !ok {
		t.Fatalf("expected an average")
	}
	if avg != 65 {
		t.Fatalf("expected average 65, got %v", avg)
	}
}

func TestAverageMindScoreEmptyWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	checkins := []types.CheckIn{checkinAt(40, now.AddDate(0, 0, -30))}

	if _, ok := AverageMindScore(checkins, 7*24*time.Hour, now); ok {
		t.Fatalf("expected no average when nothing falls in the window")
	}
}

func TestDailyStreakCountsConsecutiveDays(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	checkins := []types.CheckIn{
		checkinAt(50, now),
		checkinAt(55, now.AddDate(0, 0, -1)),
		checkinAt(52, now.AddDate(0, 0, -2)),
		// gap on day -3
		checkinAt(48, now.AddDate(0, 0, -4)),
	}

	if got := DailyStreak(checkins, now); got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}
}

func TestDailyStreakZeroWithoutTodayCheckIn(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	checkins := []types.CheckIn{checkinAt(50, now.AddDate(0, 0, -1))}

	if got := DailyStreak(checkins, now); got != 0 {
		t.Fatalf("expected streak 0, got %d", got)
	}
}

func TestDailyStreakNormalizesLocations(t *testing.T) {
	// DB rows in UTC, now in a UTC+10 location early in the local morning.
	// 2026-08-30 08:00 +10 is still 2026-08-29 22:00 UTC, so the UTC rows
	// from the 29th and 28th form a streak of 2.
	loc := time.FixedZone("UTC+10", 10*60*60)
	now := time.Date(2026, 8, 30, 8, 0, 0, 0, loc)
	checkins := []types.CheckIn{
		checkinAt(50, time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)),
		checkinAt(55, time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)),
	}

	if got := DailyStreak(checkins, now); got != 2 {
		t.Fatalf("expected streak 2 across locations, got %d", got)
	}
}

func TestImprovement(t *testing.T) {
	checkins := []types.CheckIn{
		checkinAt(50, time.Time{}),
		checkinAt(55, time.Time{}),
		checkinAt(60, time.Time{}),
	}

	pct, ok := Improvement(checkins)
	if !ok {
		t.Fatalf("expected improvement value")
	}
	if pct != 20 {
		t.Fatalf("expected 20 percent, got %v", pct)
	}
}

func TestImprovementNeedsTwoEntries(t *testing.T) {
	if _, ok := Improvement([]types.CheckIn{checkinAt(50, time.Time{})}); ok {
		t.Fatalf("expected no improvement for single entry")
	}
	if _, ok := Improvement([]types.CheckIn{checkinAt(0, time.Time{}), checkinAt(50, time.Time{})}); ok {
		t.Fatalf("expected no improvement when first score is zero")
	}
}

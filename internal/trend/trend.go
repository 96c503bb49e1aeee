// Package trend computes analytics over a user's check-in history.
package trend

import (
	"math"
	"time"

	"github.com/mantra-ai/mindscore/internal/types"
)

// AverageMindScore returns the mean MindScore of check-ins within the past
// window, and false when none fall inside it.
func AverageMindScore(checkins []types.CheckIn, window time.Duration, now time.Time) (float64, bool) {
	cutoff := now.Add(-window)
	sum := 0.0
	count := 0
	for _, c := range checkins {
		if c.CreatedAt.Before(cutoff) {
			continue
		}
		sum += c.MindScore
		count++
	}
	if count == 0 {
		return 0, false
	}
	return round2(sum / float64(count)), true
}

// DailyStreak counts consecutive days with at least one check-in, ending
// today. Day boundaries are taken in UTC so stored timestamps and now agree
// regardless of their locations.
func DailyStreak(checkins []types.CheckIn, now time.Time) int {
	days := make(map[string]bool, len(checkins))
	for _, c := range checkins {
		days[c.CreatedAt.UTC().Format("2006-01-02")] = true
	}

	streak := 0
	day := now.UTC()
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// Improvement estimates the percentage change between the first and last
// MindScore in the series. False when fewer than two check-ins exist or
// the first score is zero.
func Improvement(checkins []types.CheckIn) (float64, bool) {
	if len(checkins) < 2 {
		return 0, false
	}
	first := checkins[0].MindScore
	last := checkins[len(checkins)-1].MindScore
	if first == 0 {
		return 0, false
	}
	return round2((last - first) / first * 100), true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

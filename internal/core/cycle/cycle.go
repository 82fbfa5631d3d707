// Package cycle implements the pure date arithmetic behind fertility
// predictions: ovulation timing, the fertile window, cycle regularity, and the
// per-day conception likelihood table. Everything here is deterministic over
// calendar dates and integers; parsing and formatting live at the boundary
package cycle

import (
	"math"
	"time"
)

const (
	// lutealPhaseDays is the assumed gap between ovulation and the next period
	lutealPhaseDays = 14

	// pcosOvulationFactor places ovulation at floor(cycleLength*0.6) days,
	// modelling the later and more variable ovulation typical of PCOS
	pcosOvulationFactor = 0.6

	// fertile window spans sperm viability before ovulation plus one day of
	// egg viability after
	windowDaysBefore = 5
	windowDaysAfter  = 1

	// WindowDays is the inclusive length of every fertile window
	WindowDays = windowDaysBefore + windowDaysAfter + 1

	// irregularSpread is the strict threshold on max-min cycle length;
	// a spread of exactly 8 still counts as regular
	irregularSpread = 8
)

// Regularity classification strings
const (
	RegularityRegular       = "Regular"
	RegularityIrregular     = "Irregular"
	RegularityIrregularPCOS = "Irregular (condition-flagged)"
)

// Window is the fertile interval around ovulation, inclusive on both ends
type Window struct {
	Start time.Time
	End   time.Time
}

// ProbabilityEntry pairs one fertile-window day with its likelihood label
type ProbabilityEntry struct {
	Date  time.Time
	Label string
}

// probabilityLabels maps day offsets from the window start (ovulation-relative
// offsets -5..+1) to likelihood labels. The values are fixed and illustrative,
// never derived from input
var probabilityLabels = [WindowDays]string{
	"Low (~4%)",
	"Low (~10%)",
	"Medium (~15%)",
	"High (~27%)",
	"High (~30%)",
	"Peak (~33%)",
	"Very Low",
}

// OvulationDay predicts the ovulation date for the cycle starting at lmp.
// Without PCOS ovulation falls cycleLength-14 days in. No bounds are applied:
// a cycle shorter than 14 days yields a date before lmp, returned as computed
func OvulationDay(lmp time.Time, cycleLength int, hasPCOS bool) time.Time {
	days := cycleLength - lutealPhaseDays
	if hasPCOS {
		days = int(math.Floor(float64(cycleLength) * pcosOvulationFactor))
	}
	return lmp.AddDate(0, 0, days)
}

// FertileWindow returns the 7-day inclusive window around an ovulation day
func FertileWindow(ovulation time.Time) Window {
	return Window{
		Start: ovulation.AddDate(0, 0, -windowDaysBefore),
		End:   ovulation.AddDate(0, 0, windowDaysAfter),
	}
}

// Regularity classifies recorded cycle lengths. A flagged condition always
// reads as irregular regardless of the actual spread
func Regularity(cycleLengths []int, hasPCOS bool) string {
	if hasPCOS {
		return RegularityIrregularPCOS
	}
	mn, mx := minMax(cycleLengths)
	if mx-mn > irregularSpread {
		return RegularityIrregular
	}
	return RegularityRegular
}

// ConceptionProbability expands a fertile window into its 7 dated likelihood
// entries in chronological order
func ConceptionProbability(w Window) []ProbabilityEntry {
	out := make([]ProbabilityEntry, 0, WindowDays)
	for i := 0; i < WindowDays; i++ {
		out = append(out, ProbabilityEntry{
			Date:  w.Start.AddDate(0, 0, i),
			Label: probabilityLabels[i],
		})
	}
	return out
}

// RoundedMean returns the arithmetic mean rounded to the nearest integer
func RoundedMean(xs []int) int {
	if len(xs) == 0 {
		return 0
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return int(math.Round(float64(sum) / float64(len(xs))))
}

// NextCycleStart projects the upcoming cycle's start from the most recent
// period date and the average cycle length
func NextCycleStart(lmp time.Time, avgCycleLength int) time.Time {
	return lmp.AddDate(0, 0, avgCycleLength)
}

func minMax(xs []int) (mn, mx int) {
	if len(xs) == 0 {
		return 0, 0
	}
	mn, mx = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < mn {
			mn = x
		}
		if x > mx {
			mx = x
		}
	}
	return mn, mx
}

// Package timing contains tools for calculating stats on quiz answer times.
package timing

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type (
	CalcMsg struct {
		Count int
		Avg   time.Duration
		Min   time.Duration
		Max   time.Duration
	}
)

// CalcStats reports the answer time stats for a finished game. The average is
// rounded to the nearest millisecond.
func CalcStats(times []time.Duration) tea.Cmd {
	roundedAvg := math.Round(float64(Avg(times)/time.Microsecond)/1000) * float64(time.Millisecond)
	return func() tea.Msg {
		if len(times) == 0 {
			return CalcMsg{}
		}
		return CalcMsg{
			Count: len(times),
			Avg:   time.Duration(roundedAvg),
			Max:   Max(times),
			Min:   Min(times),
		}
	}
}

func Min(times []time.Duration) time.Duration {
	min := math.Inf(1)
	for _, t := range times {
		min = math.Min(min, float64(t))
	}
	return time.Duration(min)
}

func Max(times []time.Duration) time.Duration {
	max := math.Inf(-1)
	for _, t := range times {
		max = math.Max(max, float64(t))
	}
	return time.Duration(max)
}

func Avg(times []time.Duration) time.Duration {
	if len(times) == 0 {
		return 0
	}
	sum := time.Duration(0)
	for _, t := range times {
		sum = sum + t
	}
	return sum / time.Duration(len(times))
}

// Seconds formats a duration the way the results screen shows it, ex: "1.25s".
func Seconds(d time.Duration) string {
	return time.Duration(math.Round(float64(d)/float64(10*time.Millisecond)) * float64(10*time.Millisecond)).String()
}

package timing_test

import (
	"testing"
	"time"

	"github.com/rapidmidiex/fretui/timing"
	"github.com/stretchr/testify/require"
)

func TestCalc(t *testing.T) {
	answerTimes := []time.Duration{
		time.Millisecond * 1900,
		time.Millisecond * 4000,
		time.Millisecond * 1290,
		time.Millisecond * 3400,
		time.Millisecond * 3600,
		time.Millisecond * 4900,
		time.Millisecond * 2341,
	}

	gotCmd := timing.CalcStats(answerTimes)
	want := timing.CalcMsg{
		Count: 7,
		Min:   time.Millisecond * 1290,
		Max:   time.Millisecond * 4900,
		Avg:   time.Millisecond * 3062, // 3061.571428 rounded to nearest ms
	}
	require.Equal(t, want, gotCmd())
}

func TestCalcEmpty(t *testing.T) {
	require.Equal(t, timing.CalcMsg{}, timing.CalcStats(nil)())
	require.Equal(t, time.Duration(0), timing.Avg(nil))
}

func TestSeconds(t *testing.T) {
	require.Equal(t, "1.25s", timing.Seconds(1248*time.Millisecond))
	require.Equal(t, "800ms", timing.Seconds(803*time.Millisecond))
}

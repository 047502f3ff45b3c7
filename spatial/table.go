package spatial

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spatial/angle"
)

const (
	defaultTableResolution = 1024

	minTableResolution = 16
	maxTableResolution = 1 << 20
)

// Table is a precomputed constant-power pan lookup table.
//
// The sqrt gain pair is sampled over pan position [0, 1] at construction;
// Lookup then folds the angle, interpolates linearly between grid points,
// and assigns channel sides. Lookups are allocation-free and run in
// constant time, which suits real-time audio callbacks where the exact
// transcendental path of Pan may be too costly per voice.
type Table struct {
	toward            []float64
	away              []float64
	behindAttenuation float64
}

// NewTable creates a pan lookup table with the given grid resolution.
// Resolution must be in [16, 1048576]. At the default resolution lookups
// stay within 1e-4 of Pan except within half a degree of hard left/right,
// where the infinite slope of the sqrt law limits linear interpolation to
// roughly 5e-3; hard pan itself lands on a grid point and is exact.
// Options are shared with NewPanner.
func NewTable(resolution int, opts ...PannerOption) (*Table, error) {
	if resolution < minTableResolution || resolution > maxTableResolution {
		return nil, fmt.Errorf("pan table resolution must be in [%d, %d]: %d",
			minTableResolution, maxTableResolution, resolution)
	}

	cfg := defaultPannerConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	t := &Table{
		toward:            make([]float64, resolution),
		away:              make([]float64, resolution),
		behindAttenuation: cfg.behindAttenuation,
	}

	for i := range t.toward {
		position := float64(i) / float64(resolution-1)
		t.toward[i] = math.Sqrt((position + 1) / 2)
		t.away[i] = math.Sqrt((1 - position) / 2)
	}

	return t, nil
}

// Resolution returns the number of grid points over pan position [0, 1].
func (t *Table) Resolution() int { return len(t.toward) }

// BehindAttenuation returns the rear-hemisphere gain multiplier.
func (t *Table) BehindAttenuation() float64 { return t.behindAttenuation }

// Lookup returns interpolated stereo gains for a source at the given
// relative angle in degrees. It accepts the same unbounded angle domain
// as Pan; non-finite angles propagate NaN.
func (t *Table) Lookup(relativeAngle float64) StereoGain {
	folded := angle.FoldLateral(relativeAngle)
	position := math.Abs(folded) / 90

	toward, away := t.interpolate(position)

	gain := StereoGain{Left: away, Right: toward}
	if folded < 0 {
		gain.Left, gain.Right = toward, away
	}

	if angle.Behind(relativeAngle) {
		gain = gain.Scale(t.behindAttenuation)
	}

	return gain
}

func (t *Table) interpolate(position float64) (toward, away float64) {
	if math.IsNaN(position) {
		return position, position
	}

	last := len(t.toward) - 1

	scaled := position * float64(last)
	if scaled <= 0 {
		return t.toward[0], t.away[0]
	}

	if scaled >= float64(last) {
		return t.toward[last], t.away[last]
	}

	idx := int(scaled)
	frac := scaled - float64(idx)

	toward = t.toward[idx] + (t.toward[idx+1]-t.toward[idx])*frac
	away = t.away[idx] + (t.away[idx+1]-t.away[idx])*frac

	return toward, away
}

package spatial

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spatial/angle"
)

const defaultBehindAttenuation = 1.0

// StereoGain holds amplitude multipliers for the left and right channels.
// With attenuation 1 both components lie in [0, 1] and satisfy the
// constant-power law Left² + Right² = 1.
type StereoGain struct {
	Left  float64
	Right float64
}

// Power returns the power sum Left² + Right².
func (g StereoGain) Power() float64 {
	return g.Left*g.Left + g.Right*g.Right
}

// Scale returns the gain pair with both components multiplied by factor.
func (g StereoGain) Scale(factor float64) StereoGain {
	return StereoGain{Left: g.Left * factor, Right: g.Right * factor}
}

// Pan computes constant-power stereo gains for a source at the given
// relative angle in degrees (0 = ahead, +90 = right, -90 = left,
// ±180 = behind). The angle need not be pre-normalized; values of any
// magnitude fold to the same lateral position, so Pan(d) == Pan(d+360k).
//
// behindAttenuation multiplies both channels when the normalized angle
// places the source in the rear hemisphere (|angle| > 90); front and
// lateral sources are unaffected. It is a plain multiplier, typically in
// [0, 1], and is not validated here.
//
// The square-root law keeps Left² + Right² = 1 for any angle before
// attenuation. Non-finite angles propagate NaN through both components.
func Pan(relativeAngle, behindAttenuation float64) StereoGain {
	folded := angle.FoldLateral(relativeAngle)
	position := math.Abs(folded) / 90

	toward := math.Sqrt((position + 1) / 2)
	away := math.Sqrt((1 - position) / 2)

	gain := StereoGain{Left: away, Right: toward}
	if folded < 0 {
		gain.Left, gain.Right = toward, away
	}

	if angle.Behind(relativeAngle) {
		gain = gain.Scale(behindAttenuation)
	}

	return gain
}

// PannerOption mutates panner construction parameters.
type PannerOption func(*pannerConfig) error

type pannerConfig struct {
	behindAttenuation float64
}

func defaultPannerConfig() pannerConfig {
	return pannerConfig{
		behindAttenuation: defaultBehindAttenuation,
	}
}

// WithBehindAttenuation sets the gain multiplier applied to rear-hemisphere
// sources. 1 leaves rear sources at full level, 0 mutes them. Values
// outside [0, 1] are allowed but must be finite.
func WithBehindAttenuation(attenuation float64) PannerOption {
	return func(cfg *pannerConfig) error {
		if math.IsNaN(attenuation) || math.IsInf(attenuation, 0) {
			return fmt.Errorf("panner behind attenuation must be finite: %f", attenuation)
		}

		cfg.behindAttenuation = attenuation

		return nil
	}
}

// Panner computes constant-power stereo gains with a fixed rear
// attenuation policy.
//
// The panner is stateless apart from its configuration: every call
// computes a fresh gain pair, allocates nothing, and completes in
// constant time, so a single panner is safe for concurrent use as long
// as the attenuation is not changed while in use.
type Panner struct {
	behindAttenuation float64
}

// NewPanner creates a panner with practical defaults and optional overrides.
func NewPanner(opts ...PannerOption) (*Panner, error) {
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

	return &Panner{
		behindAttenuation: cfg.behindAttenuation,
	}, nil
}

// Gain returns the stereo gains for a source at the given relative angle
// in degrees.
func (p *Panner) Gain(relativeAngle float64) StereoGain {
	return Pan(relativeAngle, p.behindAttenuation)
}

// GainBetween resolves the relative angle between a listener bearing and
// a source bearing and returns the stereo gains for it. Both bearings
// must share a reference frame; see angle.Resolve.
func (p *Panner) GainBetween(listenerBearing, sourceBearing float64) StereoGain {
	return Pan(angle.Resolve(listenerBearing, sourceBearing), p.behindAttenuation)
}

// BehindAttenuation returns the configured rear-hemisphere gain multiplier.
func (p *Panner) BehindAttenuation() float64 { return p.behindAttenuation }

// SetBehindAttenuation updates the rear-hemisphere gain multiplier.
func (p *Panner) SetBehindAttenuation(attenuation float64) error {
	if math.IsNaN(attenuation) || math.IsInf(attenuation, 0) {
		return fmt.Errorf("panner behind attenuation must be finite: %f", attenuation)
	}

	p.behindAttenuation = attenuation

	return nil
}

// Command paninfo prints constant-power pan gain tables.
//
// Usage:
//
//	paninfo [flags]
//
// Without flags it prints gains for a full-circle sweep in 15° steps.
//
// Examples:
//
//	paninfo
//	paninfo -from -90 -to 90 -step 15
//	paninfo -attenuation 0.5
//	paninfo -listener 350 -source 10
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-spatial/angle"
	"github.com/cwbudde/algo-spatial/spatial"
)

func main() {
	from := flag.Float64("from", -180, "sweep start angle in degrees")
	to := flag.Float64("to", 180, "sweep end angle in degrees")
	step := flag.Float64("step", 15, "sweep step in degrees")
	attenuation := flag.Float64("attenuation", 1, "gain multiplier for rear-hemisphere sources")
	listener := flag.Float64("listener", math.NaN(), "listener bearing in degrees (requires -source)")
	source := flag.Float64("source", math.NaN(), "source bearing in degrees (requires -listener)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: paninfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints constant-power stereo pan gains over an angle sweep.\n")
		fmt.Fprintf(os.Stderr, "With -listener and -source, prints gains for that bearing pair instead.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  paninfo\n")
		fmt.Fprintf(os.Stderr, "  paninfo -from -90 -to 90 -step 15\n")
		fmt.Fprintf(os.Stderr, "  paninfo -attenuation 0.5\n")
		fmt.Fprintf(os.Stderr, "  paninfo -listener 350 -source 10\n")
	}
	flag.Parse()

	if math.IsNaN(*attenuation) || math.IsInf(*attenuation, 0) {
		fmt.Fprintf(os.Stderr, "error: attenuation must be finite\n")
		os.Exit(1)
	}

	if !math.IsNaN(*listener) || !math.IsNaN(*source) {
		if math.IsNaN(*listener) || math.IsNaN(*source) {
			fmt.Fprintf(os.Stderr, "error: -listener and -source must be given together\n")
			os.Exit(1)
		}

		printBearingPair(*listener, *source, *attenuation)

		return
	}

	angles := sweep(*from, *to, *step)
	if len(angles) == 0 {
		fmt.Fprintf(os.Stderr, "error: empty sweep (check -from/-to/-step)\n")
		os.Exit(1)
	}

	printTable(angles, *attenuation)
}

func sweep(from, to, step float64) []float64 {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) ||
		math.IsNaN(from) || math.IsNaN(to) || to < from {
		return nil
	}

	var angles []float64
	for a := from; a <= to+1e-9; a += step {
		angles = append(angles, a)
	}

	return angles
}

func printBearingPair(listener, source, attenuation float64) {
	rel := angle.Resolve(listener, source)
	gain := spatial.Pan(rel, attenuation)

	fmt.Printf("listener=%.1f° source=%.1f° relative=%.1f°\n", listener, source, rel)
	fmt.Printf("L=%.4f R=%.4f power=%.4f\n", gain.Left, gain.Right, gain.Power())
}

func printTable(angles []float64, attenuation float64) {
	left, right := spatial.Curve(angles, attenuation)

	power := make([]float64, len(angles))
	if err := spatial.PowerCurve(power, left, right); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "Angle\tFolded\tPan\tLeft\tRight\tL²+R²\tNotes\t\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for i, a := range angles {
		folded := angle.FoldLateral(a)

		if _, err := fmt.Fprintf(tw, "%.1f\t%.1f\t%.2f\t%.4f\t%.4f\t%.4f\t%s\t\n",
			a,
			folded,
			math.Abs(folded)/90,
			left[i],
			right[i],
			power[i],
			notes(a),
		); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func notes(deg float64) string {
	norm := angle.Normalize(deg)

	switch {
	case norm == 0:
		return "center"
	case norm == 90:
		return "hard right"
	case norm == -90:
		return "hard left"
	case math.Abs(norm) == 180:
		return "behind"
	case angle.Behind(deg):
		return "back"
	default:
		return ""
	}
}

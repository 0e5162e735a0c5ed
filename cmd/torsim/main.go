package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/torsim/internal/config"
	"github.com/san-kum/torsim/internal/flight"
	"github.com/san-kum/torsim/internal/launcher"
	"github.com/san-kum/torsim/internal/scenario"
	"github.com/san-kum/torsim/internal/solver"
	"github.com/san-kum/torsim/internal/tui"
)

var (
	configFile string
	preset     string
	stiffness  float64
	armLength  float64
	armMass    float64
	projMass   float64
	angle      float64
	target     float64
	wind       float64
	drag       float64
	seed       int64
	showPath   bool
	csvPath    string
	count      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "torsim",
		Short: "torsion launcher ballistic solver",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := resolveSpec(cmd)
			if err != nil {
				return err
			}
			return tui.Run(spec, seed)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "launcher preset (field, siege, scorpion)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	fireCmd := &cobra.Command{
		Use:   "fire",
		Short: "fire once and report the impact",
		RunE:  runFire,
	}
	fireCmd.Flags().BoolVar(&showPath, "path", false, "plot the trajectory")
	fireCmd.Flags().StringVar(&csvPath, "csv", "", "write trajectory samples to a csv file")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "search for settings that hit the target range",
		RunE:  runSolve,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario",
		Short: "solve randomized engagements",
		RunE:  runScenario,
	}
	scenarioCmd.Flags().IntVar(&count, "count", 5, "number of engagements")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "table of range versus launch angle",
		RunE:  runSweep,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list launcher presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	for _, c := range []*cobra.Command{fireCmd, solveCmd, scenarioCmd, sweepCmd} {
		registerSpecFlags(c)
	}
	rootCmd.AddCommand(fireCmd, solveCmd, scenarioCmd, sweepCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func registerSpecFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&stiffness, "stiffness", 4000, "torsion spring constant")
	cmd.Flags().Float64Var(&armLength, "arm-length", 6, "arm length (m)")
	cmd.Flags().Float64Var(&armMass, "arm-mass", 25, "arm mass (kg)")
	cmd.Flags().Float64Var(&projMass, "proj-mass", 10, "projectile mass (kg)")
	cmd.Flags().Float64Var(&angle, "angle", 45, "launch angle (degrees)")
	cmd.Flags().Float64Var(&target, "target", 150, "target range (m)")
	cmd.Flags().Float64Var(&wind, "wind", 0, "wind speed (m/s, signed)")
	cmd.Flags().Float64Var(&drag, "drag", 0.05, "drag coefficient")
}

// resolveSpec layers flag overrides on top of the config file or
// preset, falling back to defaults.
func resolveSpec(cmd *cobra.Command) (launcher.Spec, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return launcher.Spec{}, fmt.Errorf("unknown preset %q", preset)
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return launcher.Spec{}, err
		}
		cfg = loaded
	}
	spec := cfg.ToSpec()

	overrides := map[string]func(){
		"stiffness":  func() { spec.Stiffness = stiffness },
		"arm-length": func() { spec.ArmLength = armLength },
		"arm-mass":   func() { spec.ArmMass = armMass },
		"proj-mass":  func() { spec.ProjectileMass = projMass },
		"angle":      func() { spec.LaunchAngle = angle },
		"target":     func() { spec.TargetRange = target },
		"wind":       func() { spec.WindSpeed = wind },
		"drag":       func() { spec.DragCoeff = drag },
	}
	for name, apply := range overrides {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			apply()
		}
	}
	return spec, spec.Validate()
}

func runFire(cmd *cobra.Command, args []string) error {
	spec, err := resolveSpec(cmd)
	if err != nil {
		return err
	}

	path := flight.Path(launcher.DeriveRelease(spec), spec)
	tel := flight.Summarize(path)

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "range\t%.2f m\n", tel.Range)
	fmt.Fprintf(w, "miss\t%+.2f m\n", tel.Range-spec.TargetRange)
	fmt.Fprintf(w, "apex\t%.2f m\n", tel.Apex)
	fmt.Fprintf(w, "flight time\t%.2f s\n", tel.FlightTime)
	fmt.Fprintf(w, "impact speed\t%.2f m/s\n", tel.ImpactSpeed)
	w.Flush()

	if showPath {
		heights := make([]float64, len(path))
		for i, s := range path {
			heights[i] = s.Y
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(heights, asciigraph.Height(12), asciigraph.Caption("height vs step")))
	}
	if csvPath != "" {
		if err := writeTrajectoryCSV(csvPath, path); err != nil {
			return err
		}
		fmt.Printf("trajectory written to %s\n", csvPath)
	}
	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	spec, err := resolveSpec(cmd)
	if err != nil {
		return err
	}

	res := solver.Solve(spec)

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "target\t%.1f m\n", spec.TargetRange)
	fmt.Fprintf(w, "stiffness\t%.0f\n", res.Stiffness)
	fmt.Fprintf(w, "angle\t%.0f°\n", res.Angle)
	fmt.Fprintf(w, "range\t%.2f m\n", res.Range)
	fmt.Fprintf(w, "error\t%.2f m\n", res.Err)
	fmt.Fprintf(w, "auto-corrected\t%v\n", res.AutoCorrected)
	w.Flush()
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	base, err := resolveSpec(cmd)
	if err != nil {
		return err
	}

	gen := scenario.NewGenerator(seed)
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "target\twind\tstiffness\tangle\terror\tcorrected")
	for i := 0; i < count; i++ {
		spec := gen.Next(base)
		res := solver.Solve(spec)
		fmt.Fprintf(w, "%.1f\t%+.1f\t%.0f\t%.0f\t%.2f\t%v\n",
			spec.TargetRange, spec.WindSpeed, res.Stiffness, res.Angle, res.Err, res.AutoCorrected)
	}
	w.Flush()
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	spec, err := resolveSpec(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "angle\trange\tmiss")
	for a := 15.0; a <= 75.0; a += 5.0 {
		spec.LaunchAngle = a
		rng := flight.Range(launcher.DeriveRelease(spec), spec)
		fmt.Fprintf(w, "%.0f°\t%.1f\t%+.1f\n", a, rng, rng-spec.TargetRange)
	}
	w.Flush()
	return nil
}

func writeTrajectoryCSV(path string, samples []flight.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"time", "x", "y", "vx", "vy"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.T, 'f', 6, 64),
			strconv.FormatFloat(s.X, 'f', 6, 64),
			strconv.FormatFloat(s.Y, 'f', 6, 64),
			strconv.FormatFloat(s.VX, 'f', 6, 64),
			strconv.FormatFloat(s.VY, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

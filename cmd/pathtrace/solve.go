package main

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Micah-Ribbens/Game-Qu/calc"
	"github.com/Micah-Ribbens/Game-Qu/config"
)

// builtins are the functions that calc commands accept by name. They are
// evaluated numerically.
var builtins = map[string]calc.Function{
	"sin":  calc.FuncOf(math.Sin, calc.All()),
	"cos":  calc.FuncOf(math.Cos, calc.All()),
	"exp":  calc.FuncOf(math.Exp, calc.All()),
	"sqrt": calc.FuncOf(math.Sqrt, calc.Closed(0, math.Inf(1))),
}

// function returns the named builtin, or the polynomial with coefficients
// args if name is empty.
func function(name string, args []string) (calc.Function, error) {
	if name == "" {
		if len(args) == 0 {
			return nil, fmt.Errorf("either coefficients or --func are required")
		}
		c, err := parseFloats(args)
		if err != nil {
			return nil, err
		}
		return calc.NewPolynomial(c...), nil
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("--func %s does not take coefficients", name)
	}
	f, ok := builtins[name]
	if !ok {
		names := make([]string, 0, len(builtins))
		for n := range builtins {
			names = append(names, n)
		}
		slices.Sort(names)
		return nil, fmt.Errorf("unknown function %q, must be one of %s", name, strings.Join(names, ", "))
	}
	return f, nil
}

// numeric returns the numeric calculus options of the configuration file at
// path, or the defaults if path is empty.
func numeric(path string) (calc.NumericOptions, error) {
	if path == "" {
		return calc.DefaultNumeric, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return calc.NumericOptions{}, err
	}
	return cfg.Numeric(), nil
}

func formatFloats(fs []float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <a> <b> <c>",
		Short: "Print the real roots of a·x² + b·x + c",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseFloats(args)
			if err != nil {
				return err
			}
			roots, n := calc.SolveQuadratic(c[0], c[1], c[2])
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no real roots")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatFloats(roots[:n]))
			return nil
		},
	}
}

func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Differentiate, integrate and evaluate polynomials",
		Long: `The calc commands take polynomial coefficients by ascending power, so
"1 2 3" is 3x^2 + 2x + 1.`,
	}

	deriv := &cobra.Command{
		Use:   "deriv <coeffs>...",
		Short: "Print the derivative of a polynomial",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseFloats(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), calc.Derivative(calc.NewPolynomial(c...)))
			return nil
		},
	}

	var constant float64
	integ := &cobra.Command{
		Use:   "integ <coeffs>...",
		Short: "Print the antiderivative of a polynomial",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseFloats(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), calc.Integral(calc.NewPolynomial(c...), constant))
			return nil
		},
	}
	integ.Flags().Float64VarP(&constant, "constant", "c", 0, "constant of integration")

	var (
		from, to    float64
		fn, cfgPath string
	)
	area := &cobra.Command{
		Use:   "area [<coeffs>...]",
		Short: "Print the definite integral of a function between --from and --to",
		Long: `Polynomials are integrated exactly. Functions named with --func are
integrated with the trapezoidal rule, using as many subdivisions as the
configuration file given with --config asks for.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := function(fn, args)
			if err != nil {
				return err
			}
			opts, err := numeric(cfgPath)
			if err != nil {
				return err
			}
			a, err := calc.IntegrateOpt(f, from, to, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(a, 'g', -1, 64))
			return nil
		},
	}
	area.Flags().Float64Var(&from, "from", 0, "lower bound")
	area.Flags().Float64Var(&to, "to", 1, "upper bound")
	area.Flags().StringVarP(&fn, "func", "f", "", "integrate a builtin function (sin, cos, exp, sqrt) instead of a polynomial")
	area.Flags().StringVar(&cfgPath, "config", "", "YAML or TOML file with numeric calculus settings")

	cmd.AddCommand(deriv, integ, area)
	return cmd
}

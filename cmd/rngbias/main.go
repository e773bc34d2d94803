package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"rngbias/app"
	"rngbias/domain/bias"
	"rngbias/domain/core"
	"rngbias/internal"
	"rngbias/internal/api"
	"rngbias/internal/config"
)

const version = "1.0.0"

// options collects flag state shared by the subcommands.
type options struct {
	configPath string
	quiet      int
	verbose    int

	file   string
	pretty bool
	addr   string

	variables   int
	objectives  string
	constraints string
	lowerBounds string
	upperBounds string
	alpha       string
	beta        string
	gamma       string
}

func main() {
	// A missing .env is fine; environment overrides stay optional.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		printResult(app.ErrorResult(err), false)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "rngbias",
		Short:         "Compute cognitive and statistical bias of a given sequence",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "config.yml", "Configuration file")
	pf.CountVarP(&opts.quiet, "quiet", "q", "Be quieter")
	pf.CountVarP(&opts.verbose, "verbose", "v", "Be more verbose")

	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "-", "Input file")
	f.BoolVarP(&opts.pretty, "pretty", "p", false, "Prettify output")
	addConfigFlags(f, opts)

	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "Print raw feature values and symbol-count diagnostics for a sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, opts)
		},
	}
	describeCmd.Flags().StringVarP(&opts.file, "file", "f", "-", "Input file")
	describeCmd.Flags().IntVarP(&opts.variables, "variables", "x", 0, "Sequence length")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the evaluation API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	serveCmd.Flags().StringVar(&opts.addr, "addr", ":8080", "Listen address")
	addConfigFlags(serveCmd.Flags(), opts)

	cmd.AddCommand(describeCmd, serveCmd)
	return cmd
}

// addConfigFlags registers the evaluation option flags. List-valued options
// take JSON-encoded values, matching the RNGBIAS_* environment variables.
func addConfigFlags(f *pflag.FlagSet, opts *options) {
	f.IntVarP(&opts.variables, "variables", "x", 0, "Sequence length")
	f.StringVarP(&opts.objectives, "objectives", "o", "", "Objective index sets (JSON)")
	f.StringVarP(&opts.constraints, "constraints", "s", "", "Constraint dimensions (JSON)")
	f.StringVarP(&opts.lowerBounds, "lower-bounds", "l", "", "Percent points for lower bounds (JSON)")
	f.StringVarP(&opts.upperBounds, "upper-bounds", "u", "", "Percent points for upper bounds (JSON)")
	f.StringVarP(&opts.alpha, "bias-alpha", "a", "", "Alpha for cognitive bias (JSON)")
	f.StringVarP(&opts.beta, "bias-beta", "b", "", "Beta for cognitive bias (JSON)")
	f.StringVarP(&opts.gamma, "bias-gamma", "g", "", "Gamma for cognitive bias (JSON)")
}

// loadConfig resolves the configuration: defaults, config file, environment,
// then any flags changed on this invocation.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("variables") {
		cfg.Variables = opts.variables
	}
	if err := overrideJSON(flags.Changed("objectives"), opts.objectives, "objectives", &cfg.Objectives); err != nil {
		return config.Config{}, err
	}
	if err := overrideJSON(flags.Changed("constraints"), opts.constraints, "constraints", &cfg.Constraints); err != nil {
		return config.Config{}, err
	}
	if err := overrideJSON(flags.Changed("lower-bounds"), opts.lowerBounds, "lower-bounds", &cfg.LowerBounds); err != nil {
		return config.Config{}, err
	}
	if err := overrideJSON(flags.Changed("upper-bounds"), opts.upperBounds, "upper-bounds", &cfg.UpperBounds); err != nil {
		return config.Config{}, err
	}
	if err := overrideJSON(flags.Changed("bias-alpha"), opts.alpha, "bias-alpha", &cfg.Alpha); err != nil {
		return config.Config{}, err
	}
	if err := overrideJSON(flags.Changed("bias-beta"), opts.beta, "bias-beta", &cfg.Beta); err != nil {
		return config.Config{}, err
	}
	if err := overrideJSON(flags.Changed("bias-gamma"), opts.gamma, "bias-gamma", &cfg.Gamma); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func overrideJSON(changed bool, value, name string, dst interface{}) error {
	if !changed {
		return nil
	}
	if err := json.Unmarshal([]byte(value), dst); err != nil {
		return fmt.Errorf("invalid option %s=%s, which must be a JSON list: %w", name, value, err)
	}
	return nil
}

func evalConfig(cfg config.Config) app.EvalConfig {
	return app.EvalConfig{
		Objectives:  cfg.Objectives,
		Constraints: cfg.Constraints,
		LowerBounds: cfg.LowerBounds,
		UpperBounds: cfg.UpperBounds,
		Alpha:       cfg.Alpha,
		Beta:        cfg.Beta,
		Gamma:       cfg.Gamma,
	}
}

func runEvaluate(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger := internal.FromVerbosity(opts.quiet, opts.verbose)

	svc, err := app.NewService(evalConfig(cfg), logger)
	if err != nil {
		return err
	}

	seq, err := readSequence(opts.file, cfg.Variables)
	if err != nil {
		return err
	}

	objectives, constraints, err := svc.Evaluate(cmd.Context(), seq)
	if err != nil {
		return err
	}

	printResult(app.NewResult(objectives, constraints), opts.pretty)
	return nil
}

func runDescribe(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	seq, err := readSequence(opts.file, cfg.Variables)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(bias.Describe(seq), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runServe(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger := internal.FromVerbosity(opts.quiet, opts.verbose)

	svc, err := app.NewService(evalConfig(cfg), logger)
	if err != nil {
		return err
	}

	return api.NewServer(svc, cfg.Variables, logger).ListenAndServe(opts.addr)
}

// readSequence reads and validates the first line of the input.
func readSequence(file string, wantLen int) (core.Sequence, error) {
	var r io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	var line string
	if scanner.Scan() {
		line = strings.TrimRight(scanner.Text(), "\r\n")
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return core.ParseSequence(line, wantLen)
}

func printResult(res app.Result, pretty bool) {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	// Encoding a plain struct of scalars cannot fail.
	_ = enc.Encode(res)
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/alexshd/checkbench"
	"github.com/alexshd/checkbench/dataset"
)

var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
}

// runOptions is everything run and fork need, after defaults, the config file
// and flags have been merged.
type runOptions struct {
	bench   checkbench.Config
	filter  checkbench.Filter
	format  string
	verbose bool
	seed    int64
	size    int
}

func defaultRunOptions() runOptions {
	return runOptions{
		bench:  checkbench.DefaultConfig(),
		format: "console",
		seed:   dataset.Seed,
		size:   dataset.Size,
	}
}

// fileConfig is the YAML form of runOptions. Absent keys keep the value
// beneath them.
type fileConfig struct {
	Suites           []string       `yaml:"suites" validate:"dive,oneof=integer palindrome"`
	Variants         []string       `yaml:"variants" validate:"dive,required"`
	Categories       []string       `yaml:"categories" validate:"dive,required"`
	Forks            *int           `yaml:"forks" validate:"omitnil,min=0,max=100"`
	WarmupForks      *int           `yaml:"warmup_forks" validate:"omitnil,min=0,max=100"`
	WarmupIterations *int           `yaml:"warmup_iterations" validate:"omitnil,min=0"`
	Iterations       *int           `yaml:"iterations" validate:"omitnil,min=1"`
	IterationTime    *time.Duration `yaml:"iteration_time" validate:"omitnil,min=1ms"`
	Batch            *int           `yaml:"batch" validate:"omitnil,min=1"`
	ConfidenceLevel  *float64       `yaml:"confidence_level" validate:"omitnil,gt=0,lt=1"`
	Format           *string        `yaml:"format" validate:"omitnil,oneof=console json prometheus"`
	Seed             *int64         `yaml:"seed"`
	Size             *int           `yaml:"size" validate:"omitnil,min=1"`
	Verbose          *bool          `yaml:"verbose"`
}

// loadConfig reads and validates a YAML config. Unknown keys are rejected.
func loadConfig(path string) (fileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fileConfig{}, fmt.Errorf("%w: parse %s: %v", checkbench.ErrInvalidConfig, path, err)
	}

	if err := configValidate.Struct(fc); err != nil {
		return fileConfig{}, fmt.Errorf("%w: %s: %v", checkbench.ErrInvalidConfig, path, err)
	}
	return fc, nil
}

func (fc fileConfig) apply(o *runOptions) {
	if fc.Suites != nil {
		o.filter.Suites = fc.Suites
	}
	if fc.Variants != nil {
		o.filter.Variants = fc.Variants
	}
	if fc.Categories != nil {
		o.filter.Categories = fc.Categories
	}
	setIf(&o.bench.Forks, fc.Forks)
	setIf(&o.bench.WarmupForks, fc.WarmupForks)
	setIf(&o.bench.WarmupIterations, fc.WarmupIterations)
	setIf(&o.bench.Iterations, fc.Iterations)
	setIf(&o.bench.IterationTime, fc.IterationTime)
	setIf(&o.bench.Batch, fc.Batch)
	setIf(&o.bench.ConfidenceLevel, fc.ConfidenceLevel)
	setIf(&o.format, fc.Format)
	setIf(&o.seed, fc.Seed)
	setIf(&o.size, fc.Size)
	setIf(&o.verbose, fc.Verbose)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// bindMeasureFlags registers the flags that shape a single measurement. run
// and fork both take them so run can pass them through to its children.
func bindMeasureFlags(fs *pflag.FlagSet, o *runOptions) {
	fs.IntVar(&o.bench.WarmupIterations, "warmup-iterations", o.bench.WarmupIterations, "warm-up iterations per fork")
	fs.IntVar(&o.bench.Iterations, "iterations", o.bench.Iterations, "measured iterations per fork")
	fs.DurationVar(&o.bench.IterationTime, "iteration-time", o.bench.IterationTime, "wall time of one iteration")
	fs.IntVar(&o.bench.Batch, "batch", o.bench.Batch, "invocations between clock reads")
	fs.Float64Var(&o.bench.ConfidenceLevel, "confidence", o.bench.ConfidenceLevel, "confidence level: 0.90, 0.95 or 0.99")
	fs.Int64Var(&o.seed, "seed", o.seed, "corpus generator seed")
	fs.IntVar(&o.size, "size", o.size, "items per corpus category")
}

func bindRunFlags(fs *pflag.FlagSet, o *runOptions) {
	bindMeasureFlags(fs, o)
	fs.StringSliceVar(&o.filter.Suites, "suite", nil, "suites to run (default all)")
	fs.StringSliceVar(&o.filter.Variants, "variant", nil, "variants to run (default all)")
	fs.StringSliceVar(&o.filter.Categories, "category", nil, "categories to run (default all)")
	fs.IntVar(&o.bench.Forks, "forks", o.bench.Forks, "measured child processes per case, 0 runs in-process")
	fs.IntVar(&o.bench.WarmupForks, "warmup-forks", o.bench.WarmupForks, "discarded child processes per case")
	fs.StringVar(&o.format, "format", o.format, "report format: console, json or prometheus")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "add min, max and tail columns to the console report")
}

// resolveRunOptions merges defaults, then the config file, then every flag the
// user set explicitly.
func resolveRunOptions(fs *pflag.FlagSet, flags runOptions, configPath string) (runOptions, error) {
	o := defaultRunOptions()
	if configPath != "" {
		fc, err := loadConfig(configPath)
		if err != nil {
			return runOptions{}, err
		}
		fc.apply(&o)
	}

	overrides := map[string]func(){
		"suite":             func() { o.filter.Suites = flags.filter.Suites },
		"variant":           func() { o.filter.Variants = flags.filter.Variants },
		"category":          func() { o.filter.Categories = flags.filter.Categories },
		"forks":             func() { o.bench.Forks = flags.bench.Forks },
		"warmup-forks":      func() { o.bench.WarmupForks = flags.bench.WarmupForks },
		"warmup-iterations": func() { o.bench.WarmupIterations = flags.bench.WarmupIterations },
		"iterations":        func() { o.bench.Iterations = flags.bench.Iterations },
		"iteration-time":    func() { o.bench.IterationTime = flags.bench.IterationTime },
		"batch":             func() { o.bench.Batch = flags.bench.Batch },
		"confidence":        func() { o.bench.ConfidenceLevel = flags.bench.ConfidenceLevel },
		"format":            func() { o.format = flags.format },
		"verbose":           func() { o.verbose = flags.verbose },
		"seed":              func() { o.seed = flags.seed },
		"size":              func() { o.size = flags.size },
	}
	for name, apply := range overrides {
		if f := fs.Lookup(name); f != nil && f.Changed {
			apply()
		}
	}

	if o.size <= 0 {
		return runOptions{}, fmt.Errorf("%w: size must be positive, got %d", checkbench.ErrInvalidConfig, o.size)
	}
	if err := o.bench.Validate(); err != nil {
		return runOptions{}, err
	}
	return o, nil
}

// Package checkbench measures interchangeable strategies for cheap string
// predicates.
//
// # Overview
//
// A predicate is a pure func(string) bool. A Variant is one named strategy
// for it, and a Suite pairs a fixed table of variants with the categories of
// a seeded corpus they are measured on. Every (suite, variant, category)
// triple is a Case.
//
// The packages:
//
//   - integer/    - ten strategies for "is this a signed 32-bit decimal literal"
//   - palindrome/ - six byte-wise strategies plus one normalizing variant
//   - dataset/    - seeded corpora, identical to the ones java.util.Random builds
//   - cmd/checkbench - run, verify, list and dataset commands
//
// # Quick Start
//
// Measure every integer variant in-process:
//
//	reg := checkbench.NewRegistry()
//	_ = reg.Register(checkbench.NewSuite(dataset.Integers(dataset.Seed, dataset.Size), integer.Variants()))
//
//	cfg := checkbench.DefaultConfig()
//	cfg.Forks = 0
//
//	results, err := checkbench.Run(ctx, reg.Cases(checkbench.Filter{}), cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summaries, err := checkbench.Summarize(results, cfg.ConfidenceLevel)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = checkbench.NewConsoleReporter(os.Stdout, false).Report(
//	    checkbench.NewReport(time.Now(), cfg, nil, summaries))
//
// # Measurement
//
// Each case runs WarmupIterations warm-up iterations and Iterations measured
// ones. An iteration invokes the predicate on the next input chosen by the
// run's Cursor until IterationTime has passed, reading the clock once every
// Batch invocations. Results go into a Blackhole so no call can be
// optimized away.
//
// With Forks > 0 each case runs in WarmupForks + Forks child processes built
// by a CommandFunc. Warm-up forks are discarded and the measured iterations
// of the rest are merged.
//
// # Statistics
//
// Summarize reports mean, standard deviation, extremes and a Student t
// confidence interval of the per-iteration cost. A case whose P99/P50 ratio
// exceeds NoiseThreshold is flagged noisy. Rank orders variants per category
// and marks those whose interval overlaps the winner's as tied.
//
// # Testing Variants
//
// AssertContract checks a variant table against an oracle. AssertEquivalent
// and AssertIdempotent check that variants agree with each other and with
// themselves on repeated calls.
package checkbench

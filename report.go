package checkbench

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/samber/lo"
)

// Report is everything a finished run has to say.
type Report struct {
	ID        string            `json:"id"`
	StartedAt time.Time         `json:"started_at"`
	Config    Config            `json:"config"`
	Corpora   map[string]string `json:"corpora"` // corpus name -> digest
	Summaries []Summary         `json:"summaries"`
	Rankings  []Ranking         `json:"rankings"`
}

// NewReport assembles a report with a fresh run id and the rankings of
// summaries.
func NewReport(started time.Time, cfg Config, corpora map[string]string, summaries []Summary) *Report {
	return &Report{
		ID:        uuid.NewString(),
		StartedAt: started.UTC(),
		Config:    cfg,
		Corpora:   corpora,
		Summaries: summaries,
		Rankings:  Rank(summaries),
	}
}

// Reporter writes a Report in one format.
type Reporter interface {
	Report(r *Report) error
}

// NewReporter returns the reporter for format: "console", "json" or
// "prometheus".
func NewReporter(format string, w io.Writer, verbose bool) (Reporter, error) {
	switch format {
	case "console":
		return NewConsoleReporter(w, verbose), nil
	case "json":
		return NewJSONReporter(w, verbose), nil
	case "prometheus":
		return NewPrometheusReporter(w), nil
	default:
		return nil, fmt.Errorf("%w: unknown report format %q", ErrInvalidConfig, format)
	}
}

// ConsoleReporter renders tables for a terminal.
type ConsoleReporter struct {
	w       io.Writer
	verbose bool
}

// NewConsoleReporter creates a console reporter. Verbose adds min, max and
// tail columns.
func NewConsoleReporter(w io.Writer, verbose bool) *ConsoleReporter {
	return &ConsoleReporter{w: w, verbose: verbose}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	winnerStyle = cellStyle.Foreground(lipgloss.Color("42"))
	noisyStyle  = cellStyle.Foreground(lipgloss.Color("214"))
)

func (c *ConsoleReporter) Report(r *Report) error {
	fmt.Fprintf(c.w, "run %s  started %s\n", r.ID, r.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(c.w, "forks %d (+%d warm-up)  iterations %d (+%d warm-up) x %v  confidence %.0f%%\n",
		r.Config.Forks, r.Config.WarmupForks,
		r.Config.Iterations, r.Config.WarmupIterations, r.Config.IterationTime,
		r.Config.ConfidenceLevel*100)
	names := lo.Keys(r.Corpora)
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(c.w, "corpus %s  digest %s\n", name, r.Corpora[name])
	}

	headers := []string{"case", "ns/op", "± error", "invocations", "hits"}
	if c.verbose {
		headers = append(headers, "min", "max", "p99/p50")
	}

	noisy := make(map[int]bool)
	rows := make([][]string, 0, len(r.Summaries))
	for i, s := range r.Summaries {
		row := []string{
			s.Case.String(),
			formatNs(s.Mean),
			formatNs(s.Margin()),
			humanize.Comma(s.Invocations),
			humanize.Comma(s.Hits),
		}
		if c.verbose {
			row = append(row, formatNs(s.Min), formatNs(s.Max), fixed(s.Tail.Ratio, 3))
		}
		noisy[i] = s.Tail.Noisy
		rows = append(rows, row)
	}

	results := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case noisy[row]:
				return noisyStyle
			default:
				return cellStyle
			}
		})
	fmt.Fprintln(c.w, results.Render())

	for _, rk := range r.Rankings {
		fmt.Fprintln(c.w, c.ranking(rk))
	}

	if ids := Noisy(r.Summaries); len(ids) > 0 {
		flagged := lo.Map(ids, func(id CaseID, _ int) string { return id.String() })
		fmt.Fprintf(c.w, "noisy (p99/p50 > %.2f): %s\n", NoiseThreshold, strings.Join(flagged, ", "))
	}
	return nil
}

func (c *ConsoleReporter) ranking(rk Ranking) string {
	rows := make([][]string, 0, len(rk.Entries))
	for i, e := range rk.Entries {
		rel := "fastest"
		if i > 0 {
			rel = fixed(e.Relative, 2) + "x"
			if e.Tied {
				rel += " (tied)"
			}
		}
		rows = append(rows, []string{humanize.Ordinal(i + 1), e.Variant, formatNs(e.Mean), rel})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("#", rk.Suite+" / "+rk.Category, "ns/op", "relative").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == 0:
				return winnerStyle
			default:
				return cellStyle
			}
		}).
		Render()
}

func formatNs(ns float64) string {
	return fixed(ns, 4)
}

// fixed rounds v to at most digits decimals and drops trailing zeros.
// FtoaWithDigits alone truncates.
func fixed(v float64, digits int) string {
	p := math.Pow10(digits)
	return humanize.FtoaWithDigits(math.Round(v*p)/p, digits)
}

// JSONReporter writes the report as one JSON document.
type JSONReporter struct {
	w      io.Writer
	pretty bool
}

// NewJSONReporter creates a JSON reporter; pretty indents the output.
func NewJSONReporter(w io.Writer, pretty bool) *JSONReporter {
	return &JSONReporter{w: w, pretty: pretty}
}

func (j *JSONReporter) Report(r *Report) error {
	enc := json.NewEncoder(j.w)
	if j.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// PrometheusReporter writes the summaries in the Prometheus text exposition
// format, ready for a node_exporter textfile collector.
type PrometheusReporter struct {
	w io.Writer
}

// NewPrometheusReporter creates a Prometheus reporter.
func NewPrometheusReporter(w io.Writer) *PrometheusReporter {
	return &PrometheusReporter{w: w}
}

func (p *PrometheusReporter) Report(r *Report) error {
	labels := []string{"suite", "variant", "category"}
	nsPerOp := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "checkbench",
		Name:      "ns_per_op",
		Help:      "Nanoseconds per predicate invocation.",
	}, append(labels, "stat"))
	invocations := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "checkbench",
		Name:      "invocations",
		Help:      "Measured predicate invocations.",
	}, labels)
	hitRatio := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "checkbench",
		Name:      "hit_ratio",
		Help:      "Fraction of invocations that returned true.",
	}, labels)
	relative := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "checkbench",
		Name:      "relative_to_fastest",
		Help:      "Mean cost divided by the fastest variant's mean on the same category.",
	}, labels)

	reg := prometheus.NewRegistry()
	reg.MustRegister(nsPerOp, invocations, hitRatio, relative)

	for _, s := range r.Summaries {
		id := []string{s.Case.Suite, s.Case.Variant, s.Case.Category}
		for stat, v := range map[string]float64{
			"mean":     s.Mean,
			"stddev":   s.StdDev,
			"min":      s.Min,
			"max":      s.Max,
			"ci_lower": s.CILower,
			"ci_upper": s.CIUpper,
		} {
			nsPerOp.WithLabelValues(append(id, stat)...).Set(v)
		}
		invocations.WithLabelValues(id...).Set(float64(s.Invocations))
		if s.Invocations > 0 {
			hitRatio.WithLabelValues(id...).Set(float64(s.Hits) / float64(s.Invocations))
		}
	}
	for _, rk := range r.Rankings {
		for _, e := range rk.Entries {
			relative.WithLabelValues(rk.Suite, e.Variant, rk.Category).Set(e.Relative)
		}
	}

	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(p.w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

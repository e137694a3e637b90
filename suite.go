package checkbench

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

var (
	// ErrUnknownCase is returned when a case id names a suite, variant or
	// category that is not registered.
	ErrUnknownCase = errors.New("unknown case")

	// ErrDuplicateSuite is returned when two suites share a name.
	ErrDuplicateSuite = errors.New("duplicate suite")
)

// Predicate classifies one input text. Predicates must be pure and must not
// panic for any input.
type Predicate func(text string) bool

// Variant is one named strategy implementing a predicate.
type Variant struct {
	Name      string    // Short identifier used in case ids ("parse", "two-pointer")
	Technique string    // One-line description shown by list
	Check     Predicate // The strategy itself

	// Categories restricts the variant to the named dataset categories.
	// Nil means every category of the suite.
	Categories []string
}

// Test applies the variant to possibly absent text. Absent text is never a
// match and never reaches the predicate.
func (v Variant) Test(text *string) bool {
	if text == nil {
		return false
	}
	return v.Check(*text)
}

// Supports reports whether the variant is benchmarked on category.
func (v Variant) Supports(category string) bool {
	return v.Categories == nil || lo.Contains(v.Categories, category)
}

// Corpus is the read-only view of a generated dataset a suite measures against.
type Corpus interface {
	Name() string
	Categories() []string
	Items(category string) []string
}

// Category is one named, fixed list of inputs.
type Category struct {
	Name  string
	Items []string
}

// Suite pairs an ordered table of variants with the categories they run on.
type Suite struct {
	Name       string
	Variants   []Variant
	Categories []Category
}

// NewSuite builds a suite named after corpus, snapshotting its categories.
func NewSuite(corpus Corpus, variants []Variant) *Suite {
	s := &Suite{
		Name:     corpus.Name(),
		Variants: variants,
	}
	for _, name := range corpus.Categories() {
		s.Categories = append(s.Categories, Category{Name: name, Items: corpus.Items(name)})
	}
	return s
}

// Variant returns the variant with the given name.
func (s *Suite) Variant(name string) (Variant, bool) {
	return lo.Find(s.Variants, func(v Variant) bool { return v.Name == name })
}

// Category returns the category with the given name.
func (s *Suite) Category(name string) (Category, bool) {
	return lo.Find(s.Categories, func(c Category) bool { return c.Name == name })
}

// CaseID identifies one (suite, variant, category) measurement.
type CaseID struct {
	Suite    string `json:"suite"`
	Variant  string `json:"variant"`
	Category string `json:"category"`
}

func (id CaseID) String() string {
	return id.Suite + "/" + id.Variant + "/" + id.Category
}

// ParseCaseID parses the suite/variant/category form produced by String.
func ParseCaseID(s string) (CaseID, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 || lo.Contains(parts, "") {
		return CaseID{}, fmt.Errorf("%w: malformed id %q", ErrUnknownCase, s)
	}
	return CaseID{Suite: parts[0], Variant: parts[1], Category: parts[2]}, nil
}

// Case is a resolved CaseID: the predicate and the inputs it cycles through.
type Case struct {
	ID    CaseID
	Check Predicate
	Items []string
}

// Filter selects cases. Empty fields match everything.
type Filter struct {
	Suites     []string
	Variants   []string
	Categories []string
}

func (f Filter) match(id CaseID) bool {
	return matchAny(f.Suites, id.Suite) &&
		matchAny(f.Variants, id.Variant) &&
		matchAny(f.Categories, id.Category)
}

func matchAny(allowed []string, name string) bool {
	return len(allowed) == 0 || lo.Contains(allowed, name)
}

// Registry holds the suites known to a process.
type Registry struct {
	suites map[string]*Suite
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{suites: make(map[string]*Suite)}
}

// Register adds a suite. Suite names must be unique.
func (r *Registry) Register(s *Suite) error {
	if _, ok := r.suites[s.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSuite, s.Name)
	}
	r.suites[s.Name] = s
	return nil
}

// Suite returns the suite with the given name.
func (r *Registry) Suite(name string) (*Suite, bool) {
	s, ok := r.suites[name]
	return s, ok
}

// Suites returns every registered suite sorted by name.
func (r *Registry) Suites() []*Suite {
	out := lo.Values(r.suites)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Cases expands the registry into cases, in suite name, variant table and
// category order. Variants skip categories they do not support.
func (r *Registry) Cases(f Filter) []Case {
	var cases []Case
	for _, s := range r.Suites() {
		for _, v := range s.Variants {
			for _, c := range s.Categories {
				id := CaseID{Suite: s.Name, Variant: v.Name, Category: c.Name}
				if !v.Supports(c.Name) || !f.match(id) {
					continue
				}
				cases = append(cases, Case{ID: id, Check: v.Check, Items: c.Items})
			}
		}
	}
	return cases
}

// Case resolves a single id.
func (r *Registry) Case(id CaseID) (Case, error) {
	s, ok := r.suites[id.Suite]
	if !ok {
		return Case{}, fmt.Errorf("%w: suite %q", ErrUnknownCase, id.Suite)
	}
	v, ok := s.Variant(id.Variant)
	if !ok {
		return Case{}, fmt.Errorf("%w: variant %q in suite %s", ErrUnknownCase, id.Variant, s.Name)
	}
	c, ok := s.Category(id.Category)
	if !ok || !v.Supports(c.Name) {
		return Case{}, fmt.Errorf("%w: category %q for %s/%s", ErrUnknownCase, id.Category, s.Name, v.Name)
	}
	return Case{ID: id, Check: v.Check, Items: c.Items}, nil
}

package schedule

import "fmt"

// Severity classifies a Finding.
type Severity int

const (
	// SeverityWarning findings are reported but do not block resolution.
	SeverityWarning Severity = iota
	// SeverityError findings make the config unusable under the strict
	// single-group-per-date policy.
	SeverityError
)

// Finding is one validation observation: two windows that intersect.
type Finding struct {
	Severity Severity
	GroupA   string
	WindowA  Window
	GroupB   string
	WindowB  Window
	Err      error
}

func (f Finding) String() string {
	kind := "intra-group overlap"
	if f.Severity == SeverityError {
		kind = "cross-group overlap"
	}
	return fmt.Sprintf("%s: %s %s..%s intersects %s %s..%s",
		kind, f.GroupA, f.WindowA.From, f.WindowA.To, f.GroupB, f.WindowB.From, f.WindowB.To)
}

// Validate reports every pair of intersecting windows. A pair spanning two
// different groups is an error: the schedule is meant to name a single
// on-duty group per date. A pair inside one group is redundant but harmless
// and reported as a warning. Coverage gaps are not findings; a date with no
// group on duty is a valid state.
//
// Findings follow the declared schedule order, then window declaration
// order, so output is deterministic for a given file.
func Validate(cfg *Config) []Finding {
	var findings []Finding
	names := cfg.GroupNames()
	for i, a := range names {
		aws := cfg.Windows(a)
		// intra-group pairs
		for x := 0; x < len(aws); x++ {
			for y := x + 1; y < len(aws); y++ {
				if aws[x].Overlaps(aws[y]) {
					findings = append(findings, Finding{
						Severity: SeverityWarning,
						GroupA:   a, WindowA: aws[x],
						GroupB: a, WindowB: aws[y],
					})
				}
			}
		}
		// cross-group pairs
		for _, b := range names[i+1:] {
			for _, wa := range aws {
				for _, wb := range cfg.Windows(b) {
					if wa.Overlaps(wb) {
						findings = append(findings, Finding{
							Severity: SeverityError,
							GroupA:   a, WindowA: wa,
							GroupB: b, WindowB: wb,
							Err: fmt.Errorf("%w: %s and %s", ErrOverlap, a, b),
						})
					}
				}
			}
		}
	}
	return findings
}

// Blocking reports whether any finding is an error.
func Blocking(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

package schedule

// OutcomeKind classifies a resolution.
type OutcomeKind int

const (
	// NoActiveGroup means no window of any group covers the reference date.
	NoActiveGroup OutcomeKind = iota
	// ActiveGroup means exactly one group covers the reference date.
	ActiveGroup
	// Conflict means more than one group covers the reference date.
	Conflict
)

// Outcome is the result of resolving a reference date against a Config.
// Groups holds the covering group names in declared schedule order: empty
// for NoActiveGroup, one name for ActiveGroup, all covering names for
// Conflict.
type Outcome struct {
	Kind   OutcomeKind
	Groups []string
}

// Resolve maps a reference date to the groups whose windows cover it.
// The reference date is an explicit input; Resolve never reads a clock,
// so the same (config, date) pair always yields the same Outcome.
func Resolve(cfg *Config, at Date) Outcome {
	var covering []string
	for _, name := range cfg.GroupNames() {
		for _, w := range cfg.Windows(name) {
			if w.Contains(at) {
				covering = append(covering, name)
				break
			}
		}
	}
	switch len(covering) {
	case 0:
		return Outcome{Kind: NoActiveGroup}
	case 1:
		return Outcome{Kind: ActiveGroup, Groups: covering}
	default:
		return Outcome{Kind: Conflict, Groups: covering}
	}
}

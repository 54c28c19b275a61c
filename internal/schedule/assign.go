package schedule

import (
	"fmt"
	"strings"
)

// Assignment is the routing payload derived from an Outcome. A day with
// nobody on duty is a valid state: Active is false and Group/Members are
// empty. Conflicts lists rival covering groups when the caller opted into
// first-match fallback; the caller is expected to log them.
type Assignment struct {
	Group     string   `json:"group,omitempty"`
	Members   []string `json:"members"`
	Active    bool     `json:"active"`
	Conflicts []string `json:"conflicts,omitempty"`
}

// Assign converts an Outcome into the payload handed to the routing layer.
// A Conflict outcome fails with ErrAmbiguousAssignment unless firstMatchWins
// is set, in which case the first-declared covering group is chosen and the
// remaining covering groups are surfaced in Conflicts.
func Assign(cfg *Config, out Outcome, firstMatchWins bool) (Assignment, error) {
	switch out.Kind {
	case NoActiveGroup:
		return Assignment{Members: []string{}}, nil
	case ActiveGroup:
		name := out.Groups[0]
		return Assignment{Group: name, Members: cfg.Members(name), Active: true}, nil
	case Conflict:
		if !firstMatchWins {
			return Assignment{}, fmt.Errorf("%w: %s", ErrAmbiguousAssignment, strings.Join(out.Groups, ", "))
		}
		name := out.Groups[0]
		return Assignment{
			Group:     name,
			Members:   cfg.Members(name),
			Active:    true,
			Conflicts: append([]string(nil), out.Groups[1:]...),
		}, nil
	default:
		return Assignment{}, fmt.Errorf("unexpected outcome kind %d", out.Kind)
	}
}

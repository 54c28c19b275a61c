package schedule

import (
	"fmt"
	"strings"
)

// Window is an inclusive calendar-date range during which a group is on duty.
type Window struct {
	From Date
	To   Date
}

// Contains reports whether d falls inside the window, boundaries included.
func (w Window) Contains(d Date) bool {
	return !d.Before(w.From) && !d.After(w.To)
}

// Overlaps reports whether two windows share at least one date.
func (w Window) Overlaps(o Window) bool {
	return !w.From.After(o.To) && !o.From.After(w.To)
}

// RawGroup is one entry of the [groups] table, in declaration order.
type RawGroup struct {
	Name    string
	Members []string
}

// RawWindow is one {from, to} pair as read from the schedule file.
type RawWindow struct {
	From string
	To   string
}

// RawSchedule is one entry of the [schedule] table, in declaration order.
type RawSchedule struct {
	Name    string
	Windows []RawWindow
}

// Config is the validated, immutable schedule model. Build is the only
// constructor; nothing mutates a Config afterwards.
type Config struct {
	members map[string][]string
	windows map[string][]Window
	// group names in [schedule] declaration order, for deterministic
	// findings and conflict reporting
	order []string
	// group names in [groups] declaration order; a group may be declared
	// without any schedule entry
	declared []string
}

// Build constructs a Config from raw loader output. It fails on the first
// schedule entry naming an undeclared group, member that is not an email
// address, unparseable date, or window with from after to.
func Build(groups []RawGroup, schedules []RawSchedule) (*Config, error) {
	cfg := &Config{
		members: make(map[string][]string, len(groups)),
		windows: make(map[string][]Window, len(schedules)),
	}

	for _, g := range groups {
		for _, m := range g.Members {
			if !validEmail(m) {
				return nil, fmt.Errorf("%w: group %q member %q", ErrInvalidEmail, g.Name, m)
			}
		}
		cfg.members[g.Name] = append([]string(nil), g.Members...)
		cfg.declared = append(cfg.declared, g.Name)
	}

	for _, s := range schedules {
		if _, ok := cfg.members[s.Name]; !ok {
			return nil, fmt.Errorf("%w: schedule references %q", ErrUnknownGroup, s.Name)
		}
		ws := make([]Window, 0, len(s.Windows))
		for _, rw := range s.Windows {
			from, err := ParseDate(rw.From)
			if err != nil {
				return nil, fmt.Errorf("group %q: from: %w", s.Name, err)
			}
			to, err := ParseDate(rw.To)
			if err != nil {
				return nil, fmt.Errorf("group %q: to: %w", s.Name, err)
			}
			if from.After(to) {
				return nil, fmt.Errorf("%w: group %q window %s..%s", ErrInvalidWindow, s.Name, from, to)
			}
			ws = append(ws, Window{From: from, To: to})
		}
		cfg.windows[s.Name] = ws
		cfg.order = append(cfg.order, s.Name)
	}

	return cfg, nil
}

// GroupNames returns the scheduled group names in declaration order.
func (c *Config) GroupNames() []string {
	return append([]string(nil), c.order...)
}

// AllGroupNames returns every declared group name in [groups] declaration
// order, including groups with no schedule entry.
func (c *Config) AllGroupNames() []string {
	return append([]string(nil), c.declared...)
}

// Members returns the ordered member list of a group, or nil if the group
// is not declared.
func (c *Config) Members(group string) []string {
	return append([]string(nil), c.members[group]...)
}

// Windows returns the declared windows of a group in declaration order.
func (c *Config) Windows(group string) []Window {
	return append([]Window(nil), c.windows[group]...)
}

func validEmail(s string) bool {
	local, domain, ok := strings.Cut(s, "@")
	return ok && local != "" && domain != "" && !strings.Contains(domain, "@")
}

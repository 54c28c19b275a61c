package schedule

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// document mirrors the schedule file:
//
//	[groups]
//	team_a = ["alice@example.com", "bob@example.com"]
//
//	[schedule]
//	team_a = [
//	    { from = "2023-01-01", to = "2023-06-30" },
//	]
type document struct {
	Groups   map[string][]string  `toml:"groups"`
	Schedule map[string][]rawItem `toml:"schedule"`
}

type rawItem struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Load reads a schedule file and builds the Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule file: %w", err)
	}
	return Parse(data)
}

// Parse decodes the TOML document and builds the Config. Declaration order
// of the [groups] and [schedule] entries is preserved so construction and
// validation report problems deterministically.
func Parse(data []byte) (*Config, error) {
	var doc document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("decode schedule file: %w", err)
	}
	if doc.Groups == nil {
		return nil, errors.New("decode schedule file: missing [groups] table")
	}
	if doc.Schedule == nil {
		return nil, errors.New("decode schedule file: missing [schedule] table")
	}

	var groups []RawGroup
	var schedules []RawSchedule
	// md.Keys yields keys in order of appearance in the document.
	for _, key := range md.Keys() {
		if len(key) != 2 {
			continue
		}
		switch key[0] {
		case "groups":
			groups = append(groups, RawGroup{Name: key[1], Members: doc.Groups[key[1]]})
		case "schedule":
			items := doc.Schedule[key[1]]
			ws := make([]RawWindow, 0, len(items))
			for _, it := range items {
				ws = append(ws, RawWindow{From: it.From, To: it.To})
			}
			schedules = append(schedules, RawSchedule{Name: key[1], Windows: ws})
		}
	}

	return Build(groups, schedules)
}

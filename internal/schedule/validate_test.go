package schedule

import (
	"errors"
	"testing"
)

func TestValidate_CrossGroupOverlap(t *testing.T) {
	// team_b's year-long window intersects both of team_a's half-year
	// windows, so every date of 2023 is double-covered.
	cfg := buildConfig(t, true)
	findings := Validate(cfg)
	if len(findings) != 2 {
		t.Fatalf("want 2 findings, got %d: %v", len(findings), findings)
	}
	for _, f := range findings {
		if f.Severity != SeverityError {
			t.Fatalf("cross-group overlap must be an error: %v", f)
		}
		if !errors.Is(f.Err, ErrOverlap) {
			t.Fatalf("finding must wrap ErrOverlap, got %v", f.Err)
		}
		if f.GroupA != "team_a" || f.GroupB != "team_b" {
			t.Fatalf("unexpected finding pair: %v", f)
		}
	}
	if !Blocking(findings) {
		t.Fatalf("error findings must block")
	}
}

func TestValidate_AdjacentWindowsDoNotOverlap(t *testing.T) {
	// team_a's windows touch at 2023-06-30/2023-07-01 but share no date.
	cfg := buildConfig(t, false)
	if findings := Validate(cfg); len(findings) != 0 {
		t.Fatalf("want no findings, got %v", findings)
	}
}

func TestValidate_IntraGroupOverlapIsWarning(t *testing.T) {
	cfg, err := Build(
		[]RawGroup{{Name: "team_a", Members: []string{"alice@example.com"}}},
		[]RawSchedule{{Name: "team_a", Windows: []RawWindow{
			{From: "2023-01-01", To: "2023-06-30"},
			{From: "2023-06-01", To: "2023-12-31"},
		}}},
	)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	findings := Validate(cfg)
	if len(findings) != 1 {
		t.Fatalf("want 1 finding, got %v", findings)
	}
	if findings[0].Severity != SeverityWarning {
		t.Fatalf("intra-group overlap must be a warning: %v", findings[0])
	}
	if Blocking(findings) {
		t.Fatalf("warnings must not block")
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	cfg := buildConfig(t, true)
	before := cfg.GroupNames()
	_ = Validate(cfg)
	after := cfg.GroupNames()
	if len(before) != len(after) || before[0] != after[0] || before[1] != after[1] {
		t.Fatalf("Validate mutated config order: %v -> %v", before, after)
	}
}

package backup

import (
	"path/filepath"
	"testing"
)

func TestParseBackupNumber(t *testing.T) {
	tests := []struct {
		name     string
		baseName string
		wantN    int
		wantOK   bool
	}{
		{"todo.json.1", "todo.json", 1, true},
		{"todo.json.12", "todo.json", 12, true},
		{"todo.json.0", "todo.json", 0, false},
		{"todo.json", "todo.json", 0, false},
		{"todo.json.", "todo.json", 0, false},
		{"todo.json.abc", "todo.json", 0, false},
		{"todo.json.1a", "todo.json", 0, false},
		{"todo.json.-1", "todo.json", 0, false},
		{"other.json.1", "todo.json", 0, false},
		{"todo.json.bak", "todo.json", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := parseBackupNumber(tt.name, tt.baseName)
			if ok != tt.wantOK || n != tt.wantN {
				t.Errorf("parseBackupNumber(%q, %q) = (%d, %v), want (%d, %v)",
					tt.name, tt.baseName, n, ok, tt.wantN, tt.wantOK)
			}
		})
	}
}

func TestRotationPlan_ShiftsHighestFirst(t *testing.T) {
	dir := "backups"
	steps := rotationPlan(dir, "todo.json", []int{1, 3, 2}, 0)

	if len(steps) != 3 {
		t.Fatalf("len(steps) = %d, want 3", len(steps))
	}

	// Highest N must move first so .2 never lands on an unmoved .3.
	wantFrom := []string{
		filepath.Join(dir, "todo.json.3"),
		filepath.Join(dir, "todo.json.2"),
		filepath.Join(dir, "todo.json.1"),
	}
	wantTo := []string{
		filepath.Join(dir, "todo.json.4"),
		filepath.Join(dir, "todo.json.3"),
		filepath.Join(dir, "todo.json.2"),
	}

	for i, step := range steps {
		if step.From != wantFrom[i] || step.To != wantTo[i] {
			t.Errorf("step[%d] = %s -> %s, want %s -> %s",
				i, step.From, step.To, wantFrom[i], wantTo[i])
		}
		if step.discard() {
			t.Errorf("step[%d] should not be a discard", i)
		}
	}
}

func TestRotationPlan_DiscardsBeyondLimit(t *testing.T) {
	dir := "backups"
	steps := rotationPlan(dir, "todo.json", []int{1, 2, 3}, 3)

	if len(steps) != 3 {
		t.Fatalf("len(steps) = %d, want 3", len(steps))
	}

	// .3 would become .4 which exceeds the limit: discard it.
	if !steps[0].discard() {
		t.Errorf("step[0] should discard %s", steps[0].From)
	}
	if steps[0].From != filepath.Join(dir, "todo.json.3") {
		t.Errorf("step[0].From = %s, want todo.json.3", steps[0].From)
	}

	// .2 and .1 still shift.
	if steps[1].discard() || steps[2].discard() {
		t.Error("steps within the limit should shift, not discard")
	}
}

func TestRotationPlan_Empty(t *testing.T) {
	if steps := rotationPlan("backups", "todo.json", nil, 5); len(steps) != 0 {
		t.Errorf("len(steps) = %d, want 0 for no existing backups", len(steps))
	}
}

func TestRotationPlan_UnlimitedKeepsAll(t *testing.T) {
	steps := rotationPlan("backups", "todo.json", []int{1, 2, 3, 4, 5}, 0)
	for _, step := range steps {
		if step.discard() {
			t.Errorf("unlimited retention should never discard, got discard of %s", step.From)
		}
	}
}

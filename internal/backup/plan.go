package backup

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// planStep is a single action in a rotation plan. A step either renames
// From to To, or discards From entirely when To is empty.
type planStep struct {
	From string
	To   string
}

// discard reports whether the step removes the file instead of renaming it.
func (s planStep) discard() bool {
	return s.To == ""
}

// backupName returns the numbered file name for a backup copy.
func backupName(baseName string, n int) string {
	return fmt.Sprintf("%s.%d", baseName, n)
}

// parseBackupNumber extracts N from a file name of the form <baseName>.<N>.
// Returns 0 and false for names that do not match the pattern.
func parseBackupNumber(name, baseName string) (int, bool) {
	suffix, ok := strings.CutPrefix(name, baseName+".")
	if !ok || suffix == "" {
		return 0, false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// rotationPlan computes the rename/discard steps that shift every existing
// numbered backup up by one, making room for a new <baseName>.1.
//
// The returned steps must be applied in order: shifting proceeds from the
// highest N downward so a lower-numbered file is never renamed onto one that
// has not moved yet. Any copy whose new number would exceed maxBackups
// (when maxBackups > 0) is discarded instead of shifted.
func rotationPlan(dir, baseName string, existing []int, maxBackups int) []planStep {
	sorted := slices.Clone(existing)
	slices.SortFunc(sorted, func(a, b int) int { return b - a })

	steps := make([]planStep, 0, len(sorted))
	for _, n := range sorted {
		from := filepath.Join(dir, backupName(baseName, n))
		if maxBackups > 0 && n+1 > maxBackups {
			steps = append(steps, planStep{From: from})
			continue
		}
		steps = append(steps, planStep{
			From: from,
			To:   filepath.Join(dir, backupName(baseName, n+1)),
		})
	}
	return steps
}

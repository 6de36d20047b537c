package planner

import "github.com/danieljhkim/repogen/internal/library"

// Plan describes the directories and files an apply would produce, plus the
// conflicts found at plan time. The exported fields form the externally
// reported plan; the write targets carrying absolute paths are retained
// privately for the applier.
type Plan struct {
	// Mkdir is the deduplicated, sorted set of directories (relative to the
	// output root) that must exist
	Mkdir []string `json:"mkdir"`

	// Writes is the ordered list of file writes the apply would perform
	Writes []WriteOp `json:"writeFile"`

	// Conflicts lists relative paths whose destination already exists as a
	// file at plan time
	Conflicts []string `json:"conflicts"`

	// Summary carries the counts of the above
	Summary Summary `json:"summary"`

	targets []WriteTarget
}

// WriteOp describes one planned file write in the reported plan.
type WriteOp struct {
	// Path is the destination path relative to the output root
	Path string `json:"path"`

	// Template is the template identity the content originates from
	Template string `json:"template"`
}

// Summary carries the plan's operation counts.
type Summary struct {
	Mkdir     int `json:"mkdir"`
	WriteFile int `json:"writeFile"`
	Conflicts int `json:"conflicts"`
}

// WriteTarget is the applier-facing view of a planned write: the relative
// destination, its resolved absolute path, and the template entry to re-read
// at apply time.
type WriteTarget struct {
	RelPath string
	AbsPath string
	Entry   library.Entry
}

// HasConflicts returns true if the plan detected any conflicts.
func (p *Plan) HasConflicts() bool {
	return len(p.Conflicts) > 0
}

// Targets returns the applier-facing write targets in plan order.
func (p *Plan) Targets() []WriteTarget {
	return p.targets
}

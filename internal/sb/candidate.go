package sb

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const backupExt = ".bak"

// Candidate is a backup file eligible for restore.
type Candidate struct {
	Name      string // file name within the working directory
	Timestamp int64  // unix seconds; zero for the fallback form
	Fallback  bool   // true for the fixed "<stem>.bak" form
}

// TimestampedName builds the timestamped backup name for base at ts:
// "test.txt" at 100 becomes "test.txt.100.bak".
func TimestampedName(base ValidatedName, ts int64) string {
	return fmt.Sprintf("%s.%d%s", base, ts, backupExt)
}

// FallbackName builds the fixed fallback backup name for base: the base
// minus its final extension, plus ".bak" ("test.txt" becomes "test.bak").
func FallbackName(base ValidatedName) string {
	name := base.String()
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		stem = name
	}
	return stem + backupExt
}

// parseCandidate reports whether name is a backup candidate for base.
// Timestamped names with an unparsable timestamp segment are not
// candidates; they are skipped rather than treated as errors.
func parseCandidate(base ValidatedName, name string) (Candidate, bool) {
	if name == FallbackName(base) {
		return Candidate{Name: name, Fallback: true}, true
	}

	prefix := base.String() + "."
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, backupExt) {
		return Candidate{}, false
	}
	segment := strings.TrimSuffix(strings.TrimPrefix(name, prefix), backupExt)
	ts, err := strconv.ParseInt(segment, 10, 64)
	if err != nil || ts < 0 {
		return Candidate{}, false
	}
	return Candidate{Name: name, Timestamp: ts}, true
}

// SelectLatest picks the most recent backup candidate for base from a
// directory listing. Timestamped candidates are preferred by timestamp
// descending; the fallback "<stem>.bak" is chosen only when no
// timestamped candidate exists. Returns nil when nothing matches.
func SelectLatest(base ValidatedName, listing []string) *Candidate {
	var best *Candidate
	for _, name := range listing {
		c, ok := parseCandidate(base, name)
		if !ok {
			continue
		}
		if best == nil || newer(c, *best) {
			picked := c
			best = &picked
		}
	}
	return best
}

// newer reports whether a should be preferred over b. Equal timestamps
// fall back to lexical name order so selection is deterministic.
func newer(a, b Candidate) bool {
	if a.Fallback != b.Fallback {
		return b.Fallback
	}
	if a.Timestamp != b.Timestamp {
		return a.Timestamp > b.Timestamp
	}
	return a.Name < b.Name
}

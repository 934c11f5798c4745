package btree

import "github.com/pkg/errors"

// Sentinel errors for the dictionary-operation error taxonomy. Callers distinguish kinds with
// errors.Is; call sites that wrap these with context use errors.Cause to recover the sentinel.
var (
	// ErrDuplicateKey is returned by Insert when the id already exists in the tree.
	ErrDuplicateKey = errors.New("btree: duplicate key")

	// ErrNotFound is returned by Update when the id does not exist in the tree. Remove reports an
	// absent id through its boolean result instead.
	ErrNotFound = errors.New("btree: record not found")

	// ErrInvalidDegree is returned by New when t < 2.
	ErrInvalidDegree = errors.New("btree: minimum degree must be >= 2")

	// ErrSnapshotCorrupt is never returned directly by Load — a corrupt snapshot is nonfatal and
	// the tree falls back to empty — but is wrapped into Tree.LastSnapshotError's result whenever
	// a snapshot fails its checksum, fails to parse, or fails its structural invariant check, so
	// errors.Is(tree.LastSnapshotError(), ErrSnapshotCorrupt) can tell corruption apart from a
	// clean empty snapshot.
	ErrSnapshotCorrupt = errors.New("btree: snapshot is corrupt")
)

// Package btree implements an in-memory B-tree index over fixed-schema Records, with durable
// JSON snapshotting so the index survives between process runs. This file implements the public
// dictionary operations on top of node's recursive insert/delete kernel.
package btree

import (
	"log"
	"sync"

	"btreeindex/internal/btreelog"
)

// Tree is the root handle of a B-tree index. The zero value is not usable; construct one with
// New. A Tree is safe for concurrent use by multiple goroutines — a single mutex serializes every
// operation — but the dictionary contract itself is single-writer: concurrent mutation from
// independent driver processes is undefined regardless of this in-process lock.
type Tree struct {
	degree int
	root   *node

	mu  sync.Mutex
	log *log.Logger

	snapshotPath    string
	snapshotOnWrite bool

	lastSnapshotErr error
}

// Option configures a Tree at construction time, in the functional-options shape the wider
// example pack uses for tree-shaped data structures.
type Option func(*Tree)

// WithLogger overrides the logger used for nonfatal reports (a rejected, corrupt snapshot on
// Load). Snapshot write failures are returned to the caller, not logged.
func WithLogger(l *log.Logger) Option {
	return func(t *Tree) { t.log = l }
}

// WithSnapshot binds a snapshot path to the tree and enables writing it after every mutating
// operation. Without this option the tree never touches disk on its own; callers can still drive
// Load/Save explicitly.
func WithSnapshot(path string) Option {
	return func(t *Tree) {
		t.snapshotPath = path
		t.snapshotOnWrite = true
	}
}

// New constructs an empty Tree with minimum degree t. t < 2 is rejected with ErrInvalidDegree,
// the one fatal construction-time error in the taxonomy.
func New(t int, opts ...Option) (*Tree, error) {
	if t < 2 {
		return nil, ErrInvalidDegree
	}
	tree := &Tree{degree: t, log: btreelog.Default}
	for _, opt := range opts {
		opt(tree)
	}
	return tree, nil
}

func (t *Tree) logger() *log.Logger {
	if t.log != nil {
		return t.log
	}
	return btreelog.Default
}

// checkInvariants validates t.root as a whole against the structural invariants every node must
// hold, the entry point Load uses to reject a snapshot that parses as valid JSON but was never
// produced by Insert/Remove (hand-edited, bit-rotted without a checksum sidecar, or built by a
// buggy writer).
func (t *Tree) checkInvariants() error {
	if t.root == nil {
		return nil
	}
	leafDepth := -1
	return t.root.checkInvariants(t.degree, true, map[int]bool{}, nil, nil, 0, &leafDepth)
}

// LastSnapshotError returns the reason the most recent Load fell back to an empty tree instead of
// trusting the snapshot on disk, or nil if the last Load trusted it (or none has run yet). Wraps
// ErrSnapshotCorrupt, so callers that need to distinguish corruption from a clean empty snapshot
// can use errors.Is.
func (t *Tree) LastSnapshotError() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastSnapshotErr
}

// Degree returns the tree's minimum degree t.
func (t *Tree) Degree() int {
	return t.degree
}

// Search returns the record stored under id, if any.
func (t *Tree) Search(id int) (Record, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.searchLocked(id)
}

func (t *Tree) searchLocked(id int) (Record, bool) {
	if t.root == nil {
		return Record{}, false
	}
	return t.root.find(id)
}

// Insert adds rec to the tree. If rec.ID already exists, Insert refuses the write and returns
// ErrDuplicateKey; the tree is left unchanged. On success, and if a snapshot path is bound
// (WithSnapshot), the tree is immediately persisted.
func (t *Tree) Insert(id int, name string, age int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, found := t.searchLocked(id); found {
		return ErrDuplicateKey
	}

	rec := Record{ID: id, Name: name, Age: age}

	if t.root == nil {
		t.root = newNode(t.degree, true)
	}

	if t.root.full() {
		s := newNode(t.degree, false)
		s.children = append(s.children, t.root)
		s.splitChild(0)
		t.root = s
	}
	t.root.insertNonFull(rec)
	return t.persistLocked()
}

// Update replaces the payload (name, age) of the record stored under id. The record's position
// in the tree, and the tree's shape, are left exactly as they were. Returns ErrNotFound if id
// does not exist; the tree is left unchanged.
func (t *Tree) Update(id int, name string, age int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.root == nil || !t.root.update(id, name, age) {
		return ErrNotFound
	}
	return t.persistLocked()
}

// Remove deletes the record stored under id, rebalancing the tree as needed. It returns (true,
// nil) if a record was removed, (false, nil) if id was absent — absence is reported, not an
// error, matching the taxonomy's "not-found" treatment on Remove's boolean-result path. A
// snapshot is written only when a record was actually removed.
func (t *Tree) Remove(id int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.root == nil {
		return false, nil
	}

	removed := t.root.remove(id)
	if !removed {
		return false, nil
	}

	if len(t.root.slots) == 0 {
		if t.root.leaf {
			t.root = nil
		} else {
			t.root = t.root.children[0]
		}
	}

	if err := t.persistLocked(); err != nil {
		return true, err
	}
	return true, nil
}

// persistLocked writes the bound snapshot, if any, after a mutation. Callers hold t.mu.
func (t *Tree) persistLocked() error {
	if !t.snapshotOnWrite {
		return nil
	}
	if err := t.saveLocked(t.snapshotPath); err != nil {
		return err
	}
	return nil
}

// Dump returns every record in the tree in strictly increasing ID order. Use DumpPrintOrder for
// the node-visit order below instead.
func (t *Tree) Dump() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []Record
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		for i, rec := range n.slots {
			if !n.leaf {
				walk(n.children[i])
			}
			out = append(out, rec)
		}
		if !n.leaf {
			walk(n.children[len(n.children)-1])
		}
	}
	walk(t.root)
	return out
}

// DumpPrintOrder returns every record in node-visit order: each node's slots, then a recursive
// visit of its children, in that order — which is not a sorted in-order traversal. Kept for
// driver compatibility with the original console layout; prefer Dump for sorted output.
func (t *Tree) DumpPrintOrder() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []Record
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		out = append(out, n.slots...)
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t.root)
	return out
}

// Len returns the number of records currently held by the tree.
func (t *Tree) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	count := 0
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		count += len(n.slots)
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t.root)
	return count
}

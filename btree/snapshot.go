package btree

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"btreeindex/internal/crc"
)

// crcPath returns the sidecar file Save writes the snapshot's checksum to, alongside path.
func crcPath(path string) string {
	return path + ".crc32"
}

// wireNode is the JSON-document shape of a node. An empty tree serializes as a bare JSON null,
// which Load treats the same as "file absent": a fresh tree.
type wireNode struct {
	Leaf     bool       `json:"leaf"`
	Slots    []Record   `json:"slots"`
	Children []wireNode `json:"children"`
}

// encodeWire converts the in-memory subtree rooted at n into its wire representation. A nil n
// (empty tree) is represented by the caller as a JSON null, not by this function.
func encodeWire(n *node) wireNode {
	w := wireNode{Leaf: n.leaf, Slots: lo.Map(n.slots, func(r Record, _ int) Record { return r })}
	if !n.leaf {
		w.Children = lo.Map(n.children, func(c *node, _ int) wireNode { return encodeWire(c) })
	}
	return w
}

// decodeWire reconstructs an in-memory subtree from its wire representation. t is supplied
// externally since the wire format carries no degree (a snapshot is always loaded back into a
// tree whose degree was fixed at construction).
func decodeWire(w wireNode, t int) *node {
	n := newNode(t, w.Leaf)
	n.slots = append(n.slots, w.Slots...)
	if !w.Leaf {
		n.children = lo.Map(w.Children, func(c wireNode, _ int) *node { return decodeWire(c, t) })
	}
	return n
}

// Save writes the tree's current contents to path as a single JSON document. The write goes to a
// sibling temporary file named with a random uuid and is then renamed over path, which is atomic
// on POSIX filesystems, so a crash mid-write never leaves a half-written snapshot in place.
func (t *Tree) Save(path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.saveLocked(path)
}

func (t *Tree) saveLocked(path string) error {
	var data []byte
	var err error
	if t.root == nil {
		data = []byte("null")
	} else {
		data, err = json.MarshalIndent(encodeWire(t.root), "", "  ")
		if err != nil {
			return errors.Wrap(err, "btree: marshal snapshot")
		}
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "btree: create snapshot directory")
		}
	}

	tmpPath := filepath.Join(dir, filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return errors.Wrap(err, "btree: write snapshot temp file")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "btree: rename snapshot into place")
	}

	sum := crc.Checksum(data)
	if err := os.WriteFile(crcPath(path), []byte(strconv.FormatUint(uint64(sum), 16)), 0o644); err != nil {
		return errors.Wrap(err, "btree: write snapshot checksum")
	}
	return nil
}

// readChecksum reads the sidecar checksum written by a prior Save, if any. Its absence (snapshot
// from before checksumming existed, or plain file dropped in by hand) is not an error: ok is false
// and Load falls back to JSON validity and the structural invariant check as its integrity checks.
func readChecksum(path string) (sum uint32, ok bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(data)), 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// Load replaces the tree's contents with the snapshot at path. A missing file leaves the tree
// empty and returns nil: snapshot-missing is not an error. A file that fails its checksum, fails
// to parse as JSON, or parses but violates the tree's structural invariants (checkInvariants) also
// leaves the tree empty, logs a nonfatal warning, and returns nil from Load itself — but the
// reason is recorded and retrievable via LastSnapshotError, which wraps ErrSnapshotCorrupt for
// errors.Is callers that need to distinguish it from a merely-empty snapshot.
func (t *Tree) Load(path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.root = nil
			t.lastSnapshotErr = nil
			return nil
		}
		return errors.Wrap(err, "btree: read snapshot")
	}

	if want, ok := readChecksum(crcPath(path)); ok && !crc.Verify(data, want) {
		t.rejectSnapshot(path, errors.Wrap(ErrSnapshotCorrupt, "checksum mismatch"))
		return nil
	}

	var w *wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		t.rejectSnapshot(path, errors.Wrap(ErrSnapshotCorrupt, err.Error()))
		return nil
	}

	if w == nil {
		t.root = nil
		t.lastSnapshotErr = nil
		return nil
	}

	t.root = decodeWire(*w, t.degree)
	if err := t.checkInvariants(); err != nil {
		t.rejectSnapshot(path, errors.Wrap(ErrSnapshotCorrupt, err.Error()))
		return nil
	}

	t.lastSnapshotErr = nil
	return nil
}

// rejectSnapshot discards whatever was decoded, resets to an empty tree, logs a nonfatal warning,
// and records reason (wrapping ErrSnapshotCorrupt) for LastSnapshotError. Callers hold t.mu.
func (t *Tree) rejectSnapshot(path string, reason error) {
	t.logger().Printf("snapshot at %s is corrupt, starting fresh: %v", path, reason)
	t.root = nil
	t.lastSnapshotErr = reason
}

// Package red implements a lazily materialized, parent-linked "red" tree
// overlay: it wraps an immutable green.Node tree and computes absolute
// source offsets on demand, caching each child the first time it is
// visited.
package red

import (
	"sync/atomic"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/pgnsyntax/green"
)

// Node is one red-tree node: a green node, its absolute start offset, and
// a non-owning back-reference to its parent. The root is the sole owner of
// every red.Node reachable from it; dropping the root frees the whole
// overlay.
type Node struct {
	g       green.Node
	parent  *Node
	start   int
	indexIn int // this node's index within parent's children, -1 at the root
	children []atomic.Pointer[Node]
}

// New builds the root red node over a green tree. The root's absolute
// start is always 0.
func New(g green.Node) *Node {
	return &Node{
		g:        g,
		parent:   nil,
		start:    0,
		indexIn:  -1,
		children: make([]atomic.Pointer[Node], g.ChildCount()),
	}
}

// Green returns the underlying green node. Callers type-assert this to the
// concrete green type (*green.GameList, *green.Game, ...) to read
// kind-specific payload.
func (n *Node) Green() green.Node { return n.g }

// AbsoluteStart is this node's offset from the start of the source.
func (n *Node) AbsoluteStart() int { return n.start }

// Length is the node's span in source code units.
func (n *Node) Length() int { return n.g.Length() }

// End is AbsoluteStart()+Length(), one past this node's last code unit.
func (n *Node) End() int { return n.start + n.g.Length() }

// Parent returns the owning red node, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// IsTerminal reports whether this node wraps a green.Terminal.
func (n *Node) IsTerminal() bool { return n.g.IsTerminal() }

// ChildCount is the number of children (0 for terminals).
func (n *Node) ChildCount() int { return len(n.children) }

// ChildStartPosition returns the absolute start of the i'th child without
// forcing that child to be materialized.
func (n *Node) ChildStartPosition(i int) int {
	off := n.start
	for j := 0; j < i; j++ {
		off += n.g.Child(j).Length()
	}
	return off
}

// childStarts computes every child's absolute start, for the binary search
// FindChildAt needs. It does not materialize any red child node.
func (n *Node) childStarts() []int {
	starts := make([]int, len(n.children))
	off := n.start
	for i := range starts {
		starts[i] = off
		off += n.g.Child(i).Length()
	}
	return starts
}

// Child returns the i'th red child, building and caching it on first
// access. Concurrent callers racing to build the same slot are safe: the
// first successful CompareAndSwap publishes the child, and every other
// racing caller observes and returns that same instance instead of its
// own. Green nodes are immutable and red nodes are write-once, so no
// additional locking is needed beyond this per-slot CAS.
func (n *Node) Child(i int) *Node {
	if existing := n.children[i].Load(); existing != nil {
		return existing
	}
	childGreen := n.g.Child(i)
	candidate := &Node{
		g:        childGreen,
		parent:   n,
		start:    n.ChildStartPosition(i),
		indexIn:  i,
		children: make([]atomic.Pointer[Node], childGreen.ChildCount()),
	}
	if n.children[i].CompareAndSwap(nil, candidate) {
		return candidate
	}
	return n.children[i].Load()
}

// IndexInParent is this node's child index within its parent, or -1 at the
// root.
func (n *Node) IndexInParent() int { return n.indexIn }

// FindChildAt returns the index of the child whose span contains offset
// (start <= offset < start+length), or -1 if offset falls in the node's
// own gap before its first child or past its last child's end. Uses a
// binary search over child start positions (golang.org/x/exp/slices).
func (n *Node) FindChildAt(offset int) int {
	count := n.ChildCount()
	if count == 0 {
		return -1
	}
	starts := n.childStarts()
	idx, found := slices.BinarySearchFunc(starts, offset, func(s, target int) int { return s - target })
	if found {
		// Zero-length children share their start with the next child; the
		// one whose span holds offset is the last of that run.
		for idx+1 < count && starts[idx+1] == offset {
			idx++
		}
		if n.g.Child(idx).Length() == 0 {
			return -1
		}
		return idx
	}
	if idx == 0 {
		return -1
	}
	idx--
	if offset >= starts[idx]+n.g.Child(idx).Length() {
		return -1
	}
	return idx
}

// TerminalsInRange lazily visits every terminal red node overlapping
// [start, start+length), in tree order, calling yield for each. It stops
// descending into (and never materializes) any subtree with no overlap,
// and stops entirely as soon as yield returns false — a finite,
// non-restartable traversal that never allocates the full subtree it
// walks.
func (n *Node) TerminalsInRange(start, length int, yield func(*Node) bool) {
	n.terminalsInRange(start, start+length, yield)
}

// terminalsInRange returns false to signal "stop", true to keep going.
func (n *Node) terminalsInRange(lo, hi int, yield func(*Node) bool) bool {
	nStart, nEnd := n.start, n.End()
	if nEnd <= lo || nStart >= hi {
		return true
	}
	if n.IsTerminal() {
		return yield(n)
	}
	off := n.start
	for i := 0; i < n.ChildCount(); i++ {
		cStart := off
		off += n.g.Child(i).Length()
		if off <= lo || cStart >= hi {
			continue
		}
		if !n.Child(i).terminalsInRange(lo, hi, yield) {
			return false
		}
	}
	return true
}

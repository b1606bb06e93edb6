package planner

import (
	"math"

	"github.com/samber/lo"
)

// noNode marks an absent arena link.
const noNode = -1

// treeNode is one accepted sample. Structural children (left, right)
// and the planning parent are indexes into the tree's arena. The
// planning parent is the nearest neighbor at the time the node was
// inserted; it defines the path back to the start and is unrelated to
// the node's position in the binary partition.
type treeNode struct {
	position   Point
	depth      int
	axis       int // depth mod 2: 0 splits on x, 1 on y
	left       int
	right      int
	parent     int
	index      int
	onGoalPath bool
}

// KDTree is a binary space-partitioning tree over 2-D points. All
// nodes live in a single append-only arena in insertion order, so a
// node's arena index is a stable handle. The tree is never
// rebalanced; adversarial insertion order degrades nearest-neighbor
// queries toward linear time, which is acceptable at this scale.
type KDTree struct {
	nodes []treeNode
}

// NewKDTree creates a tree rooted at the given point. The root has
// depth 0 and no planning parent, so the tree is never empty.
func NewKDTree(root Point) *KDTree {
	return &KDTree{nodes: []treeNode{{
		position: root,
		left:     noNode,
		right:    noNode,
		parent:   noNode,
	}}}
}

// Len returns the number of nodes in the tree.
func (t *KDTree) Len() int {
	return len(t.nodes)
}

// Position returns the position of the node at index i.
func (t *KDTree) Position(i int) Point {
	return t.nodes[i].position
}

// Parent returns the planning-parent index of the node at index i,
// or -1 for the root.
func (t *KDTree) Parent(i int) int {
	return t.nodes[i].parent
}

// Depth returns the structural depth of the node at index i.
func (t *KDTree) Depth(i int) int {
	return t.nodes[i].depth
}

// Axis returns the splitting axis of the node at index i.
func (t *KDTree) Axis(i int) int {
	return t.nodes[i].axis
}

// OnGoalPath reports whether the node at index i was marked as part
// of the extracted goal path.
func (t *KDTree) OnGoalPath(i int) bool {
	return t.nodes[i].onGoalPath
}

// Insert adds a point to the tree and returns its arena index. The
// new node's planning parent is the nearest neighbor queried before
// the structural insertion. Descent is iterative: a coordinate
// strictly greater than the visited node's on its splitting axis goes
// right, otherwise left.
func (t *KDTree) Insert(p Point) int {
	parent := t.NearestNeighbor(p)
	idx := len(t.nodes)

	cur := 0
	depth := 0
	for {
		node := &t.nodes[cur]
		if p.coord(node.axis) > node.position.coord(node.axis) {
			if node.right == noNode {
				node.right = idx
				break
			}
			cur = node.right
		} else {
			if node.left == noNode {
				node.left = idx
				break
			}
			cur = node.left
		}
		depth++
	}
	depth++ // the new node hangs one level below the attach point

	t.nodes = append(t.nodes, treeNode{
		position: p,
		depth:    depth,
		axis:     depth % 2,
		left:     noNode,
		right:    noNode,
		parent:   parent,
		index:    idx,
	})
	return idx
}

// NearestNeighbor returns the index of the node closest to p in
// Euclidean distance. Equally close candidates resolve toward the
// node found along the primary (same-side) branch.
func (t *KDTree) NearestNeighbor(p Point) int {
	return t.nearest(0, p)
}

func (t *KDTree) nearest(cur int, p Point) int {
	if cur == noNode {
		return noNode
	}
	node := &t.nodes[cur]

	next, opposite := node.left, node.right
	if p.coord(node.axis) > node.position.coord(node.axis) {
		next, opposite = node.right, node.left
	}

	best := t.closer(p, t.nearest(next, p), cur)

	// Only cross the splitting plane if a closer node could be on the
	// other side of it.
	planeDist := math.Abs(p.coord(node.axis) - node.position.coord(node.axis))
	if t.nodes[best].position.Distance(p) > planeDist {
		best = t.closer(p, best, t.nearest(opposite, p))
	}
	return best
}

// closer returns whichever of a, b is nearer to p; a wins ties.
func (t *KDTree) closer(p Point, a, b int) int {
	if a == noNode {
		return b
	}
	if b == noNode {
		return a
	}
	if t.nodes[a].position.Distance(p) <= t.nodes[b].position.Distance(p) {
		return a
	}
	return b
}

// GetAllNodesOrdered returns the arena indexes of every node via
// in-order traversal of the structural tree. This is auxiliary
// inspection, not planning-order output.
func (t *KDTree) GetAllNodesOrdered() []int {
	out := make([]int, 0, len(t.nodes))
	t.inOrder(0, &out)
	return out
}

func (t *KDTree) inOrder(cur int, out *[]int) {
	if cur == noNode {
		return
	}
	t.inOrder(t.nodes[cur].left, out)
	*out = append(*out, t.nodes[cur].index)
	t.inOrder(t.nodes[cur].right, out)
}

// ExportSequence returns the append-only insertion-order sequence of
// (x, y, parentIndex) entries. ParentIndex is -1 for the root and
// always references a strictly smaller index otherwise.
func (t *KDTree) ExportSequence() []PointEntry {
	return lo.Map(t.nodes, func(n treeNode, _ int) PointEntry {
		return PointEntry{X: n.position.X, Y: n.position.Y, ParentIndex: n.parent}
	})
}

// MarkGoalPath flags every node from target back to the root along
// planning-parent links.
func (t *KDTree) MarkGoalPath(target int) {
	for cur := target; cur != noNode; cur = t.nodes[cur].parent {
		t.nodes[cur].onGoalPath = true
	}
}

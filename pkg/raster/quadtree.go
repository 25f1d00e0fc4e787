package raster

const (
	quadNodeCapacity = 8
	quadTreeMaxDepth = 8
)

// QuadTree spatially indexes raster triangles by their screen-space
// bounding boxes so per-pixel queries only test triangles whose bounds
// cover the pixel's region.
type QuadTree struct {
	root  *quadNode
	count int
}

type quadNode struct {
	bounds    Rect
	depth     int
	triangles []*RasterTriangle
	children  *[4]quadNode // nil while the node is a leaf
}

// NewQuadTree creates an empty tree covering the given screen region.
func NewQuadTree(bounds Rect) *QuadTree {
	return &QuadTree{
		root: &quadNode{bounds: bounds},
	}
}

// Count returns the number of triangles inserted.
func (q *QuadTree) Count() int {
	return q.count
}

// Insert adds a triangle to every leaf its bounding box overlaps.
// Returns false when the triangle lies entirely outside the tree bounds.
func (q *QuadTree) Insert(t *RasterTriangle) bool {
	if !t.Overlaps(q.root.bounds) {
		return false
	}
	q.root.insert(t)
	q.count++
	return true
}

// QueryPoint returns the triangles whose bounding boxes may cover (x, y).
// Callers still run the barycentric test on each candidate.
func (q *QuadTree) QueryPoint(x, y float32) []*RasterTriangle {
	n := q.root
	if !n.bounds.ContainsPoint(x, y) {
		return nil
	}
	for n.children != nil {
		next := n
		for i := range n.children {
			if n.children[i].bounds.ContainsPoint(x, y) {
				next = &n.children[i]
				break
			}
		}
		if next == n {
			break
		}
		n = next
	}
	return n.triangles
}

func (n *quadNode) insert(t *RasterTriangle) {
	if n.children != nil {
		for i := range n.children {
			if t.Overlaps(n.children[i].bounds) {
				n.children[i].insert(t)
			}
		}
		return
	}

	n.triangles = append(n.triangles, t)
	if len(n.triangles) > quadNodeCapacity && n.depth < quadTreeMaxDepth {
		n.split()
	}
}

func (n *quadNode) split() {
	n.children = &[4]quadNode{}
	for i := range n.children {
		n.children[i] = quadNode{
			bounds: n.bounds.Quadrant(i),
			depth:  n.depth + 1,
		}
	}

	for _, t := range n.triangles {
		for i := range n.children {
			if t.Overlaps(n.children[i].bounds) {
				n.children[i].insert(t)
			}
		}
	}
	n.triangles = nil
}

package spatial

import "sort"

// Point is one indexed vessel position.
type Point struct {
	MMSI uint32
	Lat  float64
	Lng  float64
}

// Box is a closed axis-aligned bounding box with SwLat <= NeLat and
// SwLng <= NeLng.
type Box struct {
	SwLat float64
	SwLng float64
	NeLat float64
	NeLng float64
}

// Valid reports whether the corners are ordered.
func (b Box) Valid() bool {
	return b.SwLat <= b.NeLat && b.SwLng <= b.NeLng
}

// Contains reports closed-interval membership of a coordinate pair.
func (b Box) Contains(lat, lng float64) bool {
	return lat >= b.SwLat && lat <= b.NeLat && lng >= b.SwLng && lng <= b.NeLng
}

const none = -1

// Nodes live in a flat backing slice and reference their children by
// slice index, so a rebuild is a plain reallocation with no recursive
// teardown.
type node struct {
	pt    Point
	left  int
	right int
}

// Index is an immutable KD-style tree over vessel positions. The split
// dimension alternates by depth: latitude at even depths, longitude at
// odd ones.
type Index struct {
	nodes []node
	root  int
}

// Build constructs a balanced index from points. The ids must be unique;
// duplicate coordinates are legal and only affect balance. The input
// slice is not modified.
func Build(points []Point) *Index {
	idx := &Index{nodes: make([]node, 0, len(points)), root: none}
	pts := make([]Point, len(points))
	copy(pts, points)
	idx.root = idx.insert(pts, 0)
	return idx
}

func (idx *Index) insert(pts []Point, depth int) int {
	if len(pts) == 0 {
		return none
	}
	// Stable sort so equal split coordinates keep arrival order.
	if depth%2 == 0 {
		sort.SliceStable(pts, func(i, j int) bool { return pts[i].Lat < pts[j].Lat })
	} else {
		sort.SliceStable(pts, func(i, j int) bool { return pts[i].Lng < pts[j].Lng })
	}
	mid := len(pts) / 2
	n := len(idx.nodes)
	idx.nodes = append(idx.nodes, node{pt: pts[mid], left: none, right: none})
	left := idx.insert(pts[:mid], depth+1)
	right := idx.insert(pts[mid+1:], depth+1)
	idx.nodes[n].left = left
	idx.nodes[n].right = right
	return n
}

// Len returns the number of indexed points.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.nodes)
}

// RangeQuery returns the ids of every indexed point inside box. A subtree
// is descended whenever the box reaches the node's split value on that
// side; when the box straddles the split plane both subtrees are visited,
// which is what keeps the query exact.
func (idx *Index) RangeQuery(box Box) []uint32 {
	if idx == nil || idx.root == none {
		return nil
	}
	type frame struct {
		n     int
		depth int
	}
	var out []uint32
	stack := []frame{{idx.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &idx.nodes[f.n]
		if box.Contains(nd.pt.Lat, nd.pt.Lng) {
			out = append(out, nd.pt.MMSI)
		}
		var split, lo, hi float64
		if f.depth%2 == 0 {
			split, lo, hi = nd.pt.Lat, box.SwLat, box.NeLat
		} else {
			split, lo, hi = nd.pt.Lng, box.SwLng, box.NeLng
		}
		if nd.left != none && lo <= split {
			stack = append(stack, frame{nd.left, f.depth + 1})
		}
		if nd.right != none && hi >= split {
			stack = append(stack, frame{nd.right, f.depth + 1})
		}
	}
	return out
}

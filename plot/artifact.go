// Package plot models the renderable artifacts of a plotting surface:
// bar groups, point clouds and polylines. Artifacts hold bulk geometry
// and style state and expose get/set accessors over it; they do no
// drawing themselves.
package plot

// Kind discriminates the closed set of artifact types.
type Kind int

const (
	KindBarGroup Kind = iota
	KindPointCloud
	KindPolyline
)

func (k Kind) String() string {
	switch k {
	case KindBarGroup:
		return "bar group"
	case KindPointCloud:
		return "point cloud"
	case KindPolyline:
		return "polyline"
	default:
		return "unknown"
	}
}

// An Artifact is one renderable object with a stable element count.
type Artifact interface {
	Kind() Kind
	Len() int
}

// Point is a single x/y coordinate pair.
type Point struct {
	X float64
	Y float64
}

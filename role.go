package bez

import "strings"

// Role describes the part a point plays in a [Path].
//
// Roles are bit flags. A vertex may additionally be a corner (its handles have
// zero length, so the path is not smooth there) and the final vertex of a
// closed path carries RoleClosed.
type Role uint8

const (
	RoleVertex Role = 1 << iota
	RoleControl
	RoleCorner
	RoleClosed
)

// Has reports whether r has all the bits of o set.
func (r Role) Has(o Role) bool {
	return r&o == o
}

func (r Role) String() string {
	if r == 0 {
		return "none"
	}
	var parts []string
	for _, f := range [...]struct {
		bit  Role
		name string
	}{
		{RoleVertex, "vertex"},
		{RoleControl, "control"},
		{RoleCorner, "corner"},
		{RoleClosed, "closed"},
	} {
		if r&f.bit != 0 {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// Direction tells which side of a curve an extremum lies on, in a y-down
// coordinate system. Join code uses it to tell the outside of a curve from the
// inside.
type Direction uint8

const (
	DirNone Direction = iota
	// The extremum is a local minimum in x.
	DirLeft
	// The extremum is a local maximum in x.
	DirRight
	// The extremum is a local minimum in y.
	DirTop
	// The extremum is a local maximum in y.
	DirBottom
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirTop:
		return "top"
	case DirBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Axis names the coordinate whose equation produced a result.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// PathPoint is a point of a [Path] together with its role.
type PathPoint struct {
	Point
	Role Role
}

// Vertex returns a path point with the vertex role.
func Vertex(pt Point) PathPoint {
	return PathPoint{pt, RoleVertex}
}

// Control returns a path point with the control role.
func Control(pt Point) PathPoint {
	return PathPoint{pt, RoleControl}
}

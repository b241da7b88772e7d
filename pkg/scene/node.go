package scene

// NodeKind enumerates the types of nodes in the scene graph.
type NodeKind int

const (
	NodeCurve     NodeKind = iota // Bézier or Chaikin B-spline curve
	NodeSurface                   // tensor-product B-spline surface
	NodeRevolve                   // surface of revolution
	NodeFractal                   // recursive fractal
	NodePoints                    // point cloud (control points)
	NodeTransform                 // placement of a child (place)
	NodeGroup                     // logical grouping, registered as a root
)

func (k NodeKind) String() string {
	switch k {
	case NodeCurve:
		return "curve"
	case NodeSurface:
		return "surface"
	case NodeRevolve:
		return "revolve"
	case NodeFractal:
		return "fractal"
	case NodePoints:
		return "points"
	case NodeTransform:
		return "transform"
	case NodeGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Node is the fundamental element of the scene graph.
type Node struct {
	ID       NodeID   `json:"id"`
	Kind     NodeKind `json:"kind"`
	Name     string   `json:"name,omitempty"`
	Children []NodeID `json:"children,omitempty"`
	Data     NodeData `json:"data"`
}

// Label returns the node name, or its short ID when unnamed.
func (n *Node) Label() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID.Short()
}

// NodeData is the interface for kind-specific node payloads.
type NodeData interface {
	nodeData() // marker method restricting implementations to this package
}

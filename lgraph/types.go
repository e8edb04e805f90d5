// File: types.go
// Role: L-node, L-port, L-edge, Layer and LGraph types, their handle
// aliases, and sentinel errors — the spec §3 data model.
package lgraph

import (
	"errors"
	"math/rand"

	"github.com/ortholayer/layered/graph"
)

// Sentinel errors for L-graph construction and lookup.
var (
	// ErrNilOriginalNode names a nil original node; no function in this
	// package currently returns it.
	ErrNilOriginalNode = errors.New("lgraph: original node is nil")

	// ErrNodeHandleOOB indicates a NodeHandle outside the arena's bounds.
	ErrNodeHandleOOB = errors.New("lgraph: node handle out of bounds")

	// ErrPortHandleOOB indicates a PortHandle outside the arena's bounds.
	ErrPortHandleOOB = errors.New("lgraph: port handle out of bounds")

	// ErrForeignPort indicates a port handle does not belong to the node it
	// was used with.
	ErrForeignPort = errors.New("lgraph: port does not belong to node")
)

// NodeHandle, PortHandle and EdgeHandle are compact integer references into
// an LGraph's arenas. The zero value is never a valid handle; arenas are
// 1-indexed so a zero handle reliably means "absent" (e.g. LPort.Node for a
// not-yet-assigned port).
type (
	NodeHandle int
	PortHandle int
	EdgeHandle int
)

// NodeKind tags what an LNode represents, replacing the original's
// heterogeneous type-tagged entity with a single sum type plus kind-specific
// fields left zero when unused (spec §9's "type-tagged graph entities"
// redesign note).
type NodeKind int

const (
	// NodeNormal wraps a real graph.Node.
	NodeNormal NodeKind = iota
	// NodeLongEdgeDummy is inserted by layering (P3) on edges spanning more
	// than one layer.
	NodeLongEdgeDummy
	// NodeExternalPort represents a port of the layout root itself, exposed
	// as a pseudo-node at the graph's boundary. Reserved for nested/
	// hierarchical layouts; this engine's P1 importer never creates one
	// since it imports only the root's immediate children (spec §4.1), but
	// downstream phases must not assume NodeNormal and NodeLongEdgeDummy are
	// the only kinds that will ever appear in a Layer.
	NodeExternalPort
)

// LPort is a connection point on an LNode.
type LPort struct {
	Original *graph.Port // nil for dummy ports
	Node     NodeHandle
	Side     graph.Side
	Type     graph.PortType
	Position graph.Point // relative to owning node
	Anchor   graph.Point // relative to Position

	Incoming []EdgeHandle
	Outgoing []EdgeHandle
}

// AbsoluteAnchor returns the port's anchor in graph coordinates, given the
// owning node's position.
func (p *LPort) AbsoluteAnchor(nodePos graph.Point) graph.Point {
	return graph.Point{
		X: nodePos.X + p.Position.X + p.Anchor.X,
		Y: nodePos.Y + p.Position.Y + p.Anchor.Y,
	}
}

// PortConstraint tags how free placement (P5) is to move a node's ports,
// sourced from the "portConstraints" property (spec §6).
type PortConstraint int

const (
	// PortConstraintFree lets placement redistribute every port on a side
	// however it likes. The default for a node with no property set.
	PortConstraintFree PortConstraint = iota
	// PortConstraintFixedOrder lets placement reposition ports along their
	// side but must preserve their existing relative order.
	PortConstraintFixedOrder
	// PortConstraintFixedPos forbids placement from touching Position at
	// all: the caller's port coordinates are authoritative.
	PortConstraintFixedPos
)

// LNode is one node of the L-graph.
type LNode struct {
	Original *graph.Node // nil for dummies
	Kind     NodeKind
	Size     graph.Size
	Position graph.Point

	LayerIndex   int
	OrderInLayer int

	Ports          []PortHandle
	PortConstraint PortConstraint
}

// LEdge is a directed connection between two L-ports.
type LEdge struct {
	Original *graph.Edge // nil for intermediate long-edge segments
	Source   PortHandle
	Target   PortHandle
	Reversed bool

	BendPoints     []graph.Point
	JunctionPoints []graph.Point

	// Priority is a per-edge weight. Nothing in the pipeline sets or reads
	// it: import leaves it zero and cycle breaking does not weigh edges.
	Priority int

	// Group names the family of segments a long edge was split into by
	// layering's dummy-chain insertion: every segment of the same original
	// user edge shares the Group of the first segment ever created for it,
	// so routing and export can walk Group members layer-by-layer and
	// splice their BendPoints into one graph.Edge (spec §4.3, §4.7).
	// AddEdge initializes an edge's own handle as its Group, i.e. every
	// edge starts out as the sole member of its own family.
	Group EdgeHandle
}

// Layer is an ordered sequence of LNode handles assigned the same
// LayerIndex, plus the port-extent maxima placement (P5) computes.
type Layer struct {
	Nodes []NodeHandle

	// MaxPortExtentAbove/Below are the largest amount by which any port on
	// this layer protrudes beyond its node's bounding box, on the
	// cross-axis side nearer to/further from the layer origin
	// respectively (spec §4.5).
	MaxPortExtentAbove float64
	MaxPortExtentBelow float64
}

// Spacing bundles the four spacing knobs an LGraph carries (spec §3, §6).
type Spacing struct {
	NodeNode  float64
	EdgeEdge  float64
	EdgeNode  float64
	LayerMin  float64 // fallback minimum band width (layer_spacing option)
}

// LGraph is the mutable intermediate graph the pipeline phases operate on.
// All cross-references (LPort.Node, LEdge.Source/Target, Layer.Nodes) are
// handles into the arenas below, never pointers.
type LGraph struct {
	nodes []LNode
	ports []LPort
	edges []LEdge

	Layers []Layer

	Spacing Spacing
	Size    graph.Size

	// RNG is the single source of randomness for the whole pipeline (spec
	// §5): routing's hyperedge cycle detector draws from it rather than
	// constructing its own source; cycle breaking uses no randomness.
	RNG *rand.Rand
}

// New returns an empty LGraph seeded deterministically. seed==0 is treated
// as "use the default seed" (1), matching the teacher's
// tsp.rngFromSeed policy.
func New(spacing Spacing, seed int64) *LGraph {
	if seed == 0 {
		seed = 1
	}
	return &LGraph{
		Spacing: spacing,
		RNG:     rand.New(rand.NewSource(seed)),
	}
}

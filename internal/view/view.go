// SPDX-License-Identifier: MIT

// Package view converts core and algorithm results into plain, JSON-safe
// structures shared by the console renderer and the HTTP API.
//
// Unreachable distances never appear as +Inf: routes carry Found=false and
// matrix cells hold 0 for "no road".
package view

import (
	"errors"

	"github.com/katalvlaran/roadnet/articulation"
	"github.com/katalvlaran/roadnet/bfs"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dfs"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/flow"
	"github.com/katalvlaran/roadnet/matrix"
	"github.com/katalvlaran/roadnet/prim_kruskal"
)

// ErrGraphNil is returned by builders that need a graph.
var ErrGraphNil = errors.New("view: graph is nil")

// Named is a node id with its display name.
type Named struct {
	ID   core.NodeID `json:"id"`
	Name string      `json:"name"`
}

// NameOf resolves id against g.
func NameOf(g *core.Graph, id core.NodeID) Named {
	return Named{ID: id, Name: g.Name(id)}
}

func namedList(g *core.Graph, ids []core.NodeID) []Named {
	out := make([]Named, len(ids))
	for i, id := range ids {
		out[i] = NameOf(g, id)
	}

	return out
}

// Node is one row of the node listing.
type Node struct {
	Named
	Degree int `json:"degree"`
}

// Nodes lists every node of g by ascending id.
func Nodes(g *core.Graph) []Node {
	nodes := g.Nodes()
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = Node{Named: Named{ID: n.ID, Name: n.Name}, Degree: g.Degree(n.ID)}
	}

	return out
}

// Neighbor is one adjacency record.
type Neighbor struct {
	To          Named          `json:"to"`
	KM          float64        `json:"km"`
	Condition   core.Condition `json:"condition"`
	PenalizedKM float64        `json:"penalized_km"`
}

// Adjacency is the neighbor list of one node, in insertion order.
type Adjacency struct {
	Node      Named      `json:"node"`
	Neighbors []Neighbor `json:"neighbors"`
}

// Neighbors builds the adjacency of id.
func Neighbors(g *core.Graph, id core.NodeID) (Adjacency, error) {
	vias, err := g.Neighbors(id)
	if err != nil {
		return Adjacency{}, err
	}
	adj := Adjacency{Node: NameOf(g, id), Neighbors: make([]Neighbor, len(vias))}
	for i, v := range vias {
		adj.Neighbors[i] = Neighbor{
			To:          NameOf(g, v.To),
			KM:          v.Distance,
			Condition:   v.Condition,
			PenalizedKM: v.Penalized(),
		}
	}

	return adj, nil
}

// AdjacencyList builds the adjacency of every node by ascending id.
func AdjacencyList(g *core.Graph) []Adjacency {
	ids := g.NodeIDs()
	out := make([]Adjacency, 0, len(ids))
	for _, id := range ids {
		adj, err := Neighbors(g, id)
		if err != nil {
			continue
		}
		out = append(out, adj)
	}

	return out
}

// Matrix is the adjacency matrix with per-row degrees.
type Matrix struct {
	Nodes   []Named     `json:"nodes"`
	Rows    [][]float64 `json:"rows"`
	Degrees []int       `json:"degrees"`
}

// MatrixOf snapshots g through matrix.AdjacencyMatrix.
func MatrixOf(g *core.Graph) (Matrix, error) {
	am, err := matrix.NewAdjacencyMatrix(g)
	if err != nil {
		return Matrix{}, err
	}
	m := Matrix{Nodes: namedList(g, am.IDs), Rows: am.Data, Degrees: make([]int, am.Size())}
	for i, id := range am.IDs {
		m.Degrees[i] = am.Degree(id)
	}

	return m, nil
}

// Visit is one node of a traversal in visit order.
type Visit struct {
	Named
	Level  int          `json:"level"`
	Parent *core.NodeID `json:"parent,omitempty"`
	Path   []string     `json:"path,omitempty"`
}

// Traversal is a BFS or DFS outcome.
type Traversal struct {
	Algorithm string  `json:"algorithm"`
	Origin    Named   `json:"origin"`
	Visits    []Visit `json:"visits"`
	Unreached []Named `json:"unreached"`
}

func parentOf(parents map[core.NodeID]core.NodeID, id core.NodeID) *core.NodeID {
	p, ok := parents[id]
	if !ok {
		return nil
	}

	return &p
}

// BFS converts a breadth-first result. Level is the hop count.
func BFS(g *core.Graph, res *bfs.Result) Traversal {
	t := Traversal{
		Algorithm: "bfs",
		Origin:    NameOf(g, res.Origin),
		Visits:    make([]Visit, len(res.Order)),
		Unreached: namedList(g, res.Unreached),
	}
	for i, id := range res.Order {
		t.Visits[i] = Visit{Named: NameOf(g, id), Level: res.Level[id], Parent: parentOf(res.Parent, id)}
	}

	return t
}

// DFS converts a depth-first result. Level is the tree depth and Path the
// names from the origin when the run kept a trace.
func DFS(g *core.Graph, res *dfs.Result) Traversal {
	t := Traversal{
		Algorithm: "dfs",
		Origin:    NameOf(g, res.Origin),
		Visits:    make([]Visit, len(res.Order)),
		Unreached: namedList(g, res.Unreached),
	}
	for i, id := range res.Order {
		v := Visit{Named: NameOf(g, id), Level: res.Depth[id], Parent: parentOf(res.Parent, id)}
		if i < len(res.Trace) {
			v.Path = res.Trace[i].Path
		}
		t.Visits[i] = v
	}

	return t
}

// Leg is one hop of a route.
type Leg struct {
	From      Named          `json:"from"`
	To        Named          `json:"to"`
	KM        float64        `json:"km"`
	Condition core.Condition `json:"condition"`
	Cost      float64        `json:"cost"`
}

// Route is a shortest route; when Found is false the other fields are empty.
type Route struct {
	Found bool    `json:"found"`
	Path  []Named `json:"path,omitempty"`
	Legs  []Leg   `json:"legs,omitempty"`
	Cost  float64 `json:"cost"`
	KM    float64 `json:"km"`
}

// RouteOf converts a dijkstra.Route.
func RouteOf(g *core.Graph, rt dijkstra.Route) Route {
	if !rt.Found {
		return Route{}
	}
	out := Route{Found: true, Path: namedList(g, rt.Path), Cost: rt.Cost, KM: rt.RawKM}
	for _, l := range rt.Legs {
		out.Legs = append(out.Legs, Leg{
			From:      NameOf(g, l.From),
			To:        NameOf(g, l.Via.To),
			KM:        l.Via.Distance,
			Condition: l.Via.Condition,
			Cost:      l.Cost,
		})
	}

	return out
}

// RouteRow is one destination of a routes table.
type RouteRow struct {
	Dest  Named `json:"dest"`
	Route Route `json:"route"`
}

// Routes is every route leaving one origin.
type Routes struct {
	Origin    Named      `json:"origin"`
	Penalized bool       `json:"penalized"`
	Rows      []RouteRow `json:"rows"`
}

// RoutesOf converts a dijkstra.Table result.
func RoutesOf(g *core.Graph, origin core.NodeID, penalized bool, entries []dijkstra.Entry) Routes {
	r := Routes{Origin: NameOf(g, origin), Penalized: penalized, Rows: make([]RouteRow, len(entries))}
	for i, e := range entries {
		r.Rows[i] = RouteRow{Dest: NameOf(g, e.Dest), Route: RouteOf(g, e.Route)}
	}

	return r
}

// Comparison is the raw versus penalized report for one pair.
type Comparison struct {
	From      Named   `json:"from"`
	To        Named   `json:"to"`
	Raw       Route   `json:"raw"`
	Penalized Route   `json:"penalized"`
	SamePath  bool    `json:"same_path"`
	DetourKM  float64 `json:"detour_km"`
}

// ComparisonOf converts a dijkstra.Comparison.
func ComparisonOf(g *core.Graph, c *dijkstra.Comparison) Comparison {
	return Comparison{
		From:      NameOf(g, c.From),
		To:        NameOf(g, c.To),
		Raw:       RouteOf(g, c.Raw),
		Penalized: RouteOf(g, c.Penalized),
		SamePath:  c.SamePath(),
		DetourKM:  c.Detour(),
	}
}

// Connectivity summarizes whether every node can reach every other.
type Connectivity struct {
	Connected  bool `json:"connected"`
	Nodes      int  `json:"nodes"`
	Roads      int  `json:"roads"`
	Isolated   int  `json:"isolated"`
	Components int  `json:"components"`
}

// Bridge is a critical road.
type Bridge struct {
	From Named `json:"from"`
	To   Named `json:"to"`
}

// Critical lists the articulation points and bridges of the network.
type Critical struct {
	Points     []Named  `json:"points"`
	Bridges    []Bridge `json:"bridges"`
	Components int      `json:"components"`
}

// CriticalOf converts an articulation result.
func CriticalOf(g *core.Graph, res *articulation.Result) Critical {
	c := Critical{
		Points:     namedList(g, res.Points),
		Bridges:    make([]Bridge, len(res.Bridges)),
		Components: res.Components,
	}
	for i, b := range res.Bridges {
		c.Bridges[i] = Bridge{From: NameOf(g, b.From), To: NameOf(g, b.To)}
	}

	return c
}

// ConnectivityOf reports connectivity, counts and the component number.
func ConnectivityOf(g *core.Graph) (Connectivity, error) {
	if g == nil {
		return Connectivity{}, ErrGraphNil
	}
	res, err := articulation.Find(g)
	if err != nil {
		return Connectivity{}, err
	}
	st := g.Stats()

	return Connectivity{
		Connected:  g.IsConnected(),
		Nodes:      st.NodeCount,
		Roads:      st.EdgeCount,
		Isolated:   st.IsolatedCount,
		Components: res.Components,
	}, nil
}

// Eccentricity is a node's worst-case cost to any node it can reach.
type Eccentricity struct {
	Named
	Cost float64 `json:"cost"`
}

// Hub is the all-pairs summary: the network center and every eccentricity.
type Hub struct {
	Penalized      bool           `json:"penalized"`
	Center         Named          `json:"center"`
	Eccentricity   []Eccentricity `json:"eccentricity"`
	UnreachedPairs int            `json:"unreached_pairs"`
}

// HubOf runs Floyd–Warshall over g with weight and summarizes it.
func HubOf(g *core.Graph, weight core.WeightFunc, penalized bool) (Hub, error) {
	dm, err := matrix.AllPairs(g, weight)
	if err != nil {
		return Hub{}, err
	}
	h := Hub{Penalized: penalized, Eccentricity: make([]Eccentricity, 0, len(dm.IDs))}
	if c := dm.Center(); c != core.NoNode {
		h.Center = NameOf(g, c)
	}
	for _, a := range dm.IDs {
		ecc, _ := dm.Eccentricity(a)
		h.Eccentricity = append(h.Eccentricity, Eccentricity{Named: NameOf(g, a), Cost: ecc})
		for _, b := range dm.IDs {
			if _, ok := dm.Distance(a, b); !ok {
				h.UnreachedPairs++
			}
		}
	}

	return h, nil
}

// Backbone is the minimum spanning tree of the network.
type Backbone struct {
	Method    string  `json:"method"`
	Penalized bool    `json:"penalized"`
	Roads     []Leg   `json:"roads"`
	Cost      float64 `json:"cost"`
	KM        float64 `json:"km"`
}

// BackboneOf converts a spanning-tree result.
func BackboneOf(g *core.Graph, method string, penalized bool, res *prim_kruskal.Result) Backbone {
	b := Backbone{
		Method:    method,
		Penalized: penalized,
		Roads:     make([]Leg, len(res.Roads)),
		Cost:      res.Cost,
		KM:        res.RawKM,
	}
	for i, r := range res.Roads {
		b.Roads[i] = Leg{
			From:      NameOf(g, r.From),
			To:        NameOf(g, r.Via.To),
			KM:        r.Via.Distance,
			Condition: r.Via.Condition,
			Cost:      r.Cost,
		}
	}

	return b
}

// Redundancy reports how many road-disjoint routes join two nodes and which
// roads form the narrowest cut between them.
type Redundancy struct {
	Method string    `json:"method"`
	From   Named     `json:"from"`
	To     Named     `json:"to"`
	Routes int       `json:"routes"`
	Paths  [][]Named `json:"paths"`
	Cut    []Leg     `json:"cut"` // Cost holds the road capacity
}

// RedundancyOf converts a unit-capacity max-flow result.
func RedundancyOf(g *core.Graph, res *flow.Result) Redundancy {
	r := Redundancy{
		Method: res.Method,
		From:   NameOf(g, res.Source),
		To:     NameOf(g, res.Sink),
		Routes: int(res.Value),
		Paths:  make([][]Named, len(res.Routes)),
		Cut:    make([]Leg, len(res.Cut)),
	}
	for i, rt := range res.Routes {
		r.Paths[i] = namedList(g, rt.Nodes)
	}
	for i, c := range res.Cut {
		r.Cut[i] = Leg{
			From:      NameOf(g, c.From),
			To:        NameOf(g, c.Via.To),
			KM:        c.Via.Distance,
			Condition: c.Via.Condition,
			Cost:      c.Capacity,
		}
	}

	return r
}

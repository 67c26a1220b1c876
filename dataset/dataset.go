// SPDX-License-Identifier: MIT

// Package dataset loads road networks into a core.Graph.
//
// Casanare returns the built-in sample of ten municipalities and thirteen
// roads of the Casanare department. Load and LoadFile read YAML documents of
// the form
//
//	nodes:
//	  - {id: 0, name: Yopal}
//	roads:
//	  - {from: 0, to: 1, km: 28, condition: Good}
//
// Condition tags are validated here with core.ParseCondition; the graph
// itself accepts whatever it is given.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadnet/core"
)

// ErrInvalidDataset wraps every validation failure of a Spec.
var ErrInvalidDataset = errors.New("dataset: invalid dataset")

// Spec is the serializable form of a road network.
type Spec struct {
	Nodes []NodeSpec `yaml:"nodes"`
	Roads []RoadSpec `yaml:"roads"`
}

// NodeSpec describes one municipality.
type NodeSpec struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// RoadSpec describes one undirected road.
type RoadSpec struct {
	From      int     `yaml:"from"`
	To        int     `yaml:"to"`
	KM        float64 `yaml:"km"`
	Condition string  `yaml:"condition"`
}

// Validate reports every problem in s at once.
// Checks: non-negative unique node ids, known road endpoints, non-negative
// distances and recognized condition tags.
func (s Spec) Validate() error {
	var errs []error
	seen := make(map[int]bool, len(s.Nodes))
	for i, n := range s.Nodes {
		switch {
		case n.ID < 0:
			errs = append(errs, fmt.Errorf("node[%d]: negative id %d", i, n.ID))
		case seen[n.ID]:
			errs = append(errs, fmt.Errorf("node[%d]: duplicate id %d", i, n.ID))
		}
		seen[n.ID] = true
	}
	for i, r := range s.Roads {
		if !seen[r.From] {
			errs = append(errs, fmt.Errorf("road[%d]: unknown node %d", i, r.From))
		}
		if !seen[r.To] {
			errs = append(errs, fmt.Errorf("road[%d]: unknown node %d", i, r.To))
		}
		if r.KM < 0 || math.IsNaN(r.KM) || math.IsInf(r.KM, 0) {
			errs = append(errs, fmt.Errorf("road[%d]: distance %g is not a finite non-negative number", i, r.KM))
		}
		if _, err := core.ParseCondition(r.Condition); err != nil {
			errs = append(errs, fmt.Errorf("road[%d]: %w", i, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidDataset, errors.Join(errs...))
}

// Build validates s and materializes it as a graph.
func Build(s Spec, opts ...core.GraphOption) (*core.Graph, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	g := core.NewGraph(opts...)
	for _, n := range s.Nodes {
		if err := g.AddNode(core.NodeID(n.ID), n.Name); err != nil {
			return nil, fmt.Errorf("dataset: node %d: %w", n.ID, err)
		}
	}
	for i, r := range s.Roads {
		cond, _ := core.ParseCondition(r.Condition)
		if err := g.AddEdge(core.NodeID(r.From), core.NodeID(r.To), r.KM, cond); err != nil {
			return nil, fmt.Errorf("dataset: road[%d]: %w", i, err)
		}
	}

	return g, nil
}

// Load decodes a YAML Spec from r and builds it.
func Load(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	var s Spec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	return Build(s, opts...)
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// FromGraph captures g as a Spec. Each road appears once, listed under its
// smaller endpoint in that endpoint's insertion order.
func FromGraph(g *core.Graph) Spec {
	var s Spec
	for _, n := range g.Nodes() {
		s.Nodes = append(s.Nodes, NodeSpec{ID: int(n.ID), Name: n.Name})
	}
	for _, id := range g.NodeIDs() {
		vias, _ := g.Neighbors(id)
		loops := 0
		for _, v := range vias {
			switch {
			case v.To > id:
			case v.To == id:
				// a self-loop is stored as two records on the same node
				loops++
				if loops%2 == 0 {
					continue
				}
			default:
				continue
			}
			s.Roads = append(s.Roads, RoadSpec{
				From: int(id), To: int(v.To), KM: v.Distance, Condition: string(v.Condition),
			})
		}
	}

	return s
}

// Write encodes g as a YAML dataset document to w, in the format Load reads.
func Write(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}

	return enc.Close()
}

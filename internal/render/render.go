// SPDX-License-Identifier: MIT

// Package render writes roadnet reports to a terminal as lipgloss tables, or
// as indented JSON when the caller asks for machine-readable output.
//
// Every method takes an internal/view value, so the console and the HTTP API
// describe the same data the same way.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/internal/view"
)

// Renderer writes reports to one writer.
type Renderer struct {
	w      io.Writer
	json   bool
	styles Styles
}

// New returns a Renderer writing to w; asJSON switches every report to JSON.
func New(w io.Writer, asJSON bool) *Renderer {
	return &Renderer{w: w, json: asJSON, styles: DefaultStyles}
}

// JSON reports whether the renderer emits JSON.
func (r *Renderer) JSON() bool { return r.json }

func (r *Renderer) emit(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("render: encode json: %w", err)
	}

	return nil
}

func (r *Renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

func (r *Renderer) title(s string) {
	r.printf("%s\n", r.styles.Title.Render(s))
}

// Section prints a banner separating the parts of a multi-report run.
// It prints nothing in JSON mode.
func (r *Renderer) Section(s string) {
	if r.json {
		return
	}
	r.printf("\n%s\n", r.styles.Section.Render(s))
}

func km(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func pathString(p []view.Named) string {
	names := make([]string, len(p))
	for i, n := range p {
		names[i] = n.Name
	}

	return strings.Join(names, " -> ")
}

func (r *Renderer) condition(c core.Condition) string {
	switch c {
	case core.Good:
		return r.styles.Good.Render(string(c))
	case core.Fair:
		return r.styles.Warn.Render(string(c))
	case core.Poor:
		return r.styles.Bad.Render(string(c))
	}

	return string(c)
}

// Nodes prints the municipality catalog.
func (r *Renderer) Nodes(nodes []view.Node) error {
	if r.json {
		return r.emit(nodes)
	}
	r.title(fmt.Sprintf("Municipalities (%d)", len(nodes)))
	t := r.styles.newTable("ID", "Name", "Roads")
	for _, n := range nodes {
		t.Row(strconv.Itoa(int(n.ID)), n.Name, strconv.Itoa(n.Degree))
	}
	r.printf("%s\n", t.Render())

	return nil
}

// Adjacency prints every node's neighbor list.
func (r *Renderer) Adjacency(list []view.Adjacency) error {
	if r.json {
		return r.emit(list)
	}
	r.title("Adjacency list")
	t := r.styles.newTable("From", "To", "km", "Condition", "Penalized km")
	for _, a := range list {
		if len(a.Neighbors) == 0 {
			t.Row(a.Node.Name, r.styles.Muted.Render("(no roads)"), "", "", "")
			continue
		}
		for i, nb := range a.Neighbors {
			from := ""
			if i == 0 {
				from = a.Node.Name
			}
			t.Row(from, nb.To.Name, km(nb.KM), r.condition(nb.Condition), km(nb.PenalizedKM))
		}
	}
	r.printf("%s\n", t.Render())

	return nil
}

// Matrix prints the adjacency matrix followed by each node's degree.
func (r *Renderer) Matrix(m view.Matrix) error {
	if r.json {
		return r.emit(m)
	}
	r.title("Adjacency matrix (km, 0 = no road)")
	headers := make([]string, 0, len(m.Nodes)+1)
	headers = append(headers, "")
	for _, n := range m.Nodes {
		headers = append(headers, strconv.Itoa(int(n.ID)))
	}
	t := r.styles.newTable(headers...)
	for i, row := range m.Rows {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, fmt.Sprintf("%d %s", m.Nodes[i].ID, m.Nodes[i].Name))
		for _, d := range row {
			if d == 0 {
				cells = append(cells, r.styles.Muted.Render("0"))
				continue
			}
			cells = append(cells, strconv.FormatFloat(d, 'f', -1, 64))
		}
		t.Row(cells...)
	}
	r.printf("%s\n", t.Render())

	r.title("Degrees")
	dt := r.styles.newTable("Municipality", "Degree")
	for i, n := range m.Nodes {
		dt.Row(n.Name, strconv.Itoa(m.Degrees[i]))
	}
	r.printf("%s\n", dt.Render())

	return nil
}

// Traversal prints a BFS or DFS visit table and the unreached nodes.
func (r *Renderer) Traversal(tv view.Traversal) error {
	if r.json {
		return r.emit(tv)
	}
	alg := strings.ToUpper(tv.Algorithm)
	r.title(fmt.Sprintf("%s from %s", alg, tv.Origin.Name))

	var t = r.styles.newTable("Step", "Municipality", "Level")
	if tv.Algorithm == "dfs" {
		t = r.styles.newTable("Step", "Municipality", "Depth", "Path")
	}
	order := make([]string, len(tv.Visits))
	for i, v := range tv.Visits {
		order[i] = v.Name
		cells := []string{strconv.Itoa(i + 1), v.Name, strconv.Itoa(v.Level)}
		if tv.Algorithm == "dfs" {
			cells = append(cells, strings.Join(v.Path, " -> "))
		}
		t.Row(cells...)
	}
	r.printf("%s\n", t.Render())
	r.printf("Visited %d of %d: %s\n", len(tv.Visits), len(tv.Visits)+len(tv.Unreached), strings.Join(order, ", "))
	for _, u := range tv.Unreached {
		r.printf("  %s %s (%d)\n", r.styles.Bad.Render("UNREACHED"), u.Name, u.ID)
	}

	return nil
}

// Route prints one route under title.
func (r *Renderer) Route(title string, rt view.Route) error {
	if r.json {
		return r.emit(rt)
	}
	r.title(title)
	if !rt.Found {
		r.printf("  %s\n", r.styles.Muted.Render("no route between these municipalities"))
		return nil
	}
	r.printf("  Path: %s\n", pathString(rt.Path))
	t := r.styles.newTable("From", "To", "km", "Condition", "Cost")
	for _, l := range rt.Legs {
		t.Row(l.From.Name, l.To.Name, km(l.KM), r.condition(l.Condition), km(l.Cost))
	}
	r.printf("%s\n", t.Render())
	r.printf("  Cost: %s   Distance: %s km\n", km(rt.Cost), km(rt.KM))

	return nil
}

// Routes prints the shortest route to every destination from one origin.
func (r *Renderer) Routes(rs view.Routes) error {
	if r.json {
		return r.emit(rs)
	}
	mode := "raw km"
	if rs.Penalized {
		mode = "penalized"
	}
	r.title(fmt.Sprintf("Shortest routes from %s (%s)", rs.Origin.Name, mode))
	t := r.styles.newTable("Destination", "Cost", "km", "Route")
	for _, row := range rs.Rows {
		if !row.Route.Found {
			t.Row(row.Dest.Name, "∞", "", r.styles.Muted.Render("unreachable"))
			continue
		}
		t.Row(row.Dest.Name, km(row.Route.Cost), km(row.Route.KM), pathString(row.Route.Path))
	}
	r.printf("%s\n", t.Render())

	return nil
}

// Comparison prints the raw and penalized routes side by side.
func (r *Renderer) Comparison(c view.Comparison) error {
	if r.json {
		return r.emit(c)
	}
	r.title(fmt.Sprintf("Comparison: %s -> %s", c.From.Name, c.To.Name))
	t := r.styles.newTable("Weighting", "Path", "Cost", "km")
	for _, x := range []struct {
		name string
		rt   view.Route
	}{{"raw", c.Raw}, {"penalized", c.Penalized}} {
		if !x.rt.Found {
			t.Row(x.name, r.styles.Muted.Render("no route"), "", "")
			continue
		}
		t.Row(x.name, pathString(x.rt.Path), km(x.rt.Cost), km(x.rt.KM))
	}
	r.printf("%s\n", t.Render())
	switch {
	case !c.Raw.Found:
	case c.SamePath:
		r.printf("  Same route under both weightings.\n")
	default:
		r.printf("  Road conditions change the route: %s km detour.\n", km(c.DetourKM))
	}

	return nil
}

// Connectivity prints the connectivity summary.
func (r *Renderer) Connectivity(c view.Connectivity) error {
	if r.json {
		return r.emit(c)
	}
	r.title("Connectivity")
	answer := r.styles.Good.Render("yes")
	if !c.Connected {
		answer = r.styles.Bad.Render("no")
	}
	r.printf("  Connected: %s\n", answer)
	r.printf("  Nodes: %d  Roads: %d  Isolated: %d  Components: %d\n", c.Nodes, c.Roads, c.Isolated, c.Components)

	return nil
}

// Critical prints articulation points and bridges.
func (r *Renderer) Critical(c view.Critical) error {
	if r.json {
		return r.emit(c)
	}
	r.title("Critical municipalities (articulation points)")
	if len(c.Points) == 0 {
		r.printf("  none: removing any single municipality keeps the network connected\n")
	}
	for _, p := range c.Points {
		r.printf("  %s %s (%d)\n", r.styles.Warn.Render("*"), p.Name, p.ID)
	}
	r.title("Critical roads (bridges)")
	if len(c.Bridges) == 0 {
		r.printf("  none\n")
	}
	for _, b := range c.Bridges {
		r.printf("  %s -- %s\n", b.From.Name, b.To.Name)
	}

	return nil
}

// Hub prints eccentricities and the network center.
func (r *Renderer) Hub(h view.Hub) error {
	if r.json {
		return r.emit(h)
	}
	mode := "raw km"
	if h.Penalized {
		mode = "penalized"
	}
	r.title(fmt.Sprintf("Eccentricity (%s)", mode))
	t := r.styles.newTable("Municipality", "Worst-case cost")
	for _, e := range h.Eccentricity {
		t.Row(e.Name, km(e.Cost))
	}
	r.printf("%s\n", t.Render())
	r.printf("  Center: %s\n", h.Center.Name)
	if h.UnreachedPairs > 0 {
		r.printf("  %s %d ordered pairs have no route\n", r.styles.Warn.Render("!"), h.UnreachedPairs)
	}

	return nil
}

// Backbone prints the minimum spanning tree.
func (r *Renderer) Backbone(b view.Backbone) error {
	if r.json {
		return r.emit(b)
	}
	mode := "raw km"
	if b.Penalized {
		mode = "penalized"
	}
	r.title(fmt.Sprintf("Maintenance backbone (%s, %s)", b.Method, mode))
	t := r.styles.newTable("From", "To", "km", "Condition", "Cost")
	for _, l := range b.Roads {
		t.Row(l.From.Name, l.To.Name, km(l.KM), r.condition(l.Condition), km(l.Cost))
	}
	r.printf("%s\n", t.Render())
	r.printf("  %d roads  Cost: %s  Distance: %s km\n", len(b.Roads), km(b.Cost), km(b.KM))

	return nil
}

// Redundancy prints the road-disjoint routes between two nodes and the cut
// that would separate them.
func (r *Renderer) Redundancy(red view.Redundancy) error {
	if r.json {
		return r.emit(red)
	}
	r.title(fmt.Sprintf("Redundancy: %s -> %s (%s)", red.From.Name, red.To.Name, red.Method))
	if red.Routes == 0 {
		r.printf("no route between these municipalities\n")

		return nil
	}
	r.printf("Independent routes: %d\n", red.Routes)
	for i, p := range red.Paths {
		names := make([]string, len(p))
		for j, n := range p {
			names[j] = n.Name
		}
		r.printf("  %d. %s\n", i+1, strings.Join(names, " -> "))
	}
	t := r.styles.newTable("From", "To", "km", "Condition")
	for _, l := range red.Cut {
		t.Row(l.From.Name, l.To.Name, km(l.KM), r.condition(l.Condition))
	}
	r.printf("Closing these %d roads cuts the link:\n%s\n", len(red.Cut), t.Render())

	return nil
}

// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/roadnet/articulation"
	"github.com/katalvlaran/roadnet/bfs"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dfs"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/flow"
	"github.com/katalvlaran/roadnet/internal/view"
	"github.com/katalvlaran/roadnet/prim_kruskal"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Nodes  int    `json:"nodes"`
	Roads  int    `json:"roads"`
}

// AddNodeRequest is the body of POST /nodes.
type AddNodeRequest struct {
	ID   *int   `json:"id" binding:"required,gte=0"`
	Name string `json:"name" binding:"required"`
}

// AddRoadRequest is the body of POST /roads.
type AddRoadRequest struct {
	From      *int    `json:"from" binding:"required"`
	To        *int    `json:"to" binding:"required"`
	KM        float64 `json:"km" binding:"gte=0"`
	Condition string  `json:"condition" binding:"required"`
}

var errBadRequest = errors.New("server: bad request")

// statusFor maps algorithm and graph errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, core.ErrUnknownCondition),
		errors.Is(err, core.ErrBadDistance),
		errors.Is(err, core.ErrInvalidNodeID),
		errors.Is(err, prim_kruskal.ErrUnknownMethod),
		errors.Is(err, flow.ErrUnknownMethod),
		errors.Is(err, flow.ErrSameEndpoints):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrNodeNotFound),
		errors.Is(err, bfs.ErrOriginNotFound),
		errors.Is(err, dfs.ErrOriginNotFound),
		errors.Is(err, dijkstra.ErrVertexNotFound),
		errors.Is(err, prim_kruskal.ErrRootNotFound),
		errors.Is(err, flow.ErrSourceNotFound),
		errors.Is(err, flow.ErrSinkNotFound):
		return http.StatusNotFound
	case errors.Is(err, prim_kruskal.ErrDisconnected):
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}

func (s *Server) fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
}

func nodeID(raw, what string) (core.NodeID, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return core.NoNode, fmt.Errorf("%w: %s %q is not an integer", errBadRequest, what, raw)
	}

	return core.NodeID(id), nil
}

func penalizedFlag(c *gin.Context) (bool, error) {
	raw := c.Query("penalized")
	if raw == "" {
		return false, nil
	}
	on, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: penalized %q is not a boolean", errBadRequest, raw)
	}

	return on, nil
}

// pair reads the from/to query parameters.
func pair(c *gin.Context) (core.NodeID, core.NodeID, error) {
	from, err := nodeID(c.Query("from"), "from")
	if err != nil {
		return 0, 0, err
	}
	to, err := nodeID(c.Query("to"), "to")
	if err != nil {
		return 0, 0, err
	}

	return from, to, nil
}

func (s *Server) weightOpts(penalized bool) []dijkstra.Option {
	if !penalized {
		return nil
	}

	return []dijkstra.Option{dijkstra.WithPenalties(s.penalties)}
}

func (s *Server) handleHealth(c *gin.Context) {
	st := s.graph.Stats()
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Nodes: st.NodeCount, Roads: st.EdgeCount})
}

func (s *Server) handleNodes(c *gin.Context) {
	c.JSON(http.StatusOK, view.Nodes(s.graph))
}

func (s *Server) handleAddNode(c *gin.Context) {
	var req AddNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	id := core.NodeID(*req.ID)
	existed := s.graph.HasNode(id)
	if err := s.graph.AddNode(id, req.Name); err != nil {
		s.fail(c, err)
		return
	}
	status := http.StatusCreated
	if existed {
		status = http.StatusOK
	}
	c.JSON(status, view.NameOf(s.graph, id))
}

func (s *Server) handleNeighbors(c *gin.Context) {
	id, err := nodeID(c.Param("id"), "id")
	if err != nil {
		s.fail(c, err)
		return
	}
	adj, err := view.Neighbors(s.graph, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, adj)
}

func (s *Server) handleAddRoad(c *gin.Context) {
	var req AddRoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	cond, err := core.ParseCondition(req.Condition)
	if err != nil {
		s.fail(c, err)
		return
	}
	from, to := core.NodeID(*req.From), core.NodeID(*req.To)
	if err = s.graph.AddEdge(from, to, req.KM, cond); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, view.Neighbor{
		To:          view.NameOf(s.graph, to),
		KM:          req.KM,
		Condition:   cond,
		PenalizedKM: s.penalties.Weight(core.Via{To: to, Distance: req.KM, Condition: cond}),
	})
}

func (s *Server) handleMatrix(c *gin.Context) {
	m, err := view.MatrixOf(s.graph)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (s *Server) handleBFS(c *gin.Context) {
	origin, err := nodeID(c.Param("origin"), "origin")
	if err != nil {
		s.fail(c, err)
		return
	}
	res, err := bfs.BFS(s.graph, origin)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view.BFS(s.graph, res))
}

func (s *Server) handleDFS(c *gin.Context) {
	origin, err := nodeID(c.Param("origin"), "origin")
	if err != nil {
		s.fail(c, err)
		return
	}
	res, err := dfs.DFS(s.graph, origin)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view.DFS(s.graph, res))
}

func (s *Server) handleRoutes(c *gin.Context) {
	origin, err := nodeID(c.Param("origin"), "origin")
	if err != nil {
		s.fail(c, err)
		return
	}
	penalized, err := penalizedFlag(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	entries, err := dijkstra.Table(s.graph, origin, s.weightOpts(penalized)...)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view.RoutesOf(s.graph, origin, penalized, entries))
}

func (s *Server) handleRoute(c *gin.Context) {
	from, to, err := pair(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	penalized, err := penalizedFlag(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	rt, err := dijkstra.RouteBetween(s.graph, from, to, s.weightOpts(penalized)...)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view.RouteOf(s.graph, rt))
}

func (s *Server) handleCompare(c *gin.Context) {
	from, to, err := pair(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	cmp, err := dijkstra.Compare(s.graph, from, to, dijkstra.WithPenalties(s.penalties))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view.ComparisonOf(s.graph, cmp))
}

func (s *Server) handleConnected(c *gin.Context) {
	conn, err := view.ConnectivityOf(s.graph)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, conn)
}

func (s *Server) handleCritical(c *gin.Context) {
	res, err := articulation.Find(s.graph, articulation.WithLogger(s.logger))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view.CriticalOf(s.graph, res))
}

func (s *Server) weight(penalized bool) core.WeightFunc {
	if penalized {
		return s.penalties.Weight
	}

	return core.RawWeight
}

func (s *Server) handleBackbone(c *gin.Context) {
	penalized, err := penalizedFlag(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	method := c.DefaultQuery("method", prim_kruskal.MethodKruskal)
	res, err := prim_kruskal.Compute(s.graph,
		prim_kruskal.WithMethod(method),
		prim_kruskal.WithWeightFunc(s.weight(penalized)))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view.BackboneOf(s.graph, method, penalized, res))
}

func (s *Server) handleHub(c *gin.Context) {
	penalized, err := penalizedFlag(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	h, err := view.HubOf(s.graph, s.weight(penalized), penalized)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h)
}

func (s *Server) handleRedundancy(c *gin.Context) {
	from, to, err := pair(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	res, err := flow.Compute(c.Request.Context(), s.graph, from, to,
		flow.WithMethod(c.DefaultQuery("method", flow.MethodEdmondsKarp)),
		flow.WithLogger(s.logger))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view.RedundancyOf(s.graph, res))
}

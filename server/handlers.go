package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Neha3-ai/final-ip-project/core"
	"github.com/Neha3-ai/final-ip-project/planner"
)

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleRegions handles GET /v1/regions.
func (s *Server) handleRegions(c *gin.Context) {
	g := s.planner.Graph()
	resp := CatalogResponse{Regions: []RegionView{}, Links: []LinkView{}}

	for _, r := range g.Regions() {
		view := RegionView{
			Name:            r.Name,
			Hub:             r.Hub,
			CongestionRange: [2]int{r.MinRate, r.MaxRate},
			HeavyTraffic:    r.Heavy,
			Nodes:           make([]NodeView, 0, len(r.Nodes)),
		}
		for _, id := range r.Nodes {
			n, err := g.Node(id)
			if err != nil {
				continue
			}
			view.Nodes = append(view.Nodes, NodeView{ID: n.ID, Label: n.Label, X: n.X, Y: n.Y})
		}
		resp.Regions = append(resp.Regions, view)
	}
	for _, e := range g.Edges() {
		if e.Kind == core.KindInterRegion {
			resp.Links = append(resp.Links, LinkView{FromHub: e.From, ToHub: e.To, DistanceKm: e.DistanceKm})
		}
	}

	c.JSON(http.StatusOK, resp)
}

// handleRoute handles POST /v1/routes.
//
// Response:
//
//	200 OK: planner.Outcome
//	400 Bad Request: invalid_request, unknown_node
//	404 Not Found: no_route
//	500 Internal Server Error: internal
func (s *Server) handleRoute(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Warn("invalid route request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	out, err := s.planner.Route(c.Request.Context(), planner.Query{Source: req.Source, Destination: req.Destination})
	if err != nil {
		status, body := classify(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, out)
}

// handleBatch handles POST /v1/routes/batch. Per-query failures are
// reported inline; the reply is 200 unless the request itself is bad.
func (s *Server) handleBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"})
		return
	}

	qs := make([]planner.Query, len(req.Queries))
	for i, q := range req.Queries {
		qs[i] = planner.Query{Source: q.Source, Destination: q.Destination}
	}
	results, err := s.planner.RouteBatch(c.Request.Context(), qs)
	if err != nil {
		status, body := classify(err)
		c.JSON(status, body)
		return
	}

	resp := BatchResponse{Results: make([]BatchItem, len(results))}
	for i, r := range results {
		if r.Err != nil {
			_, body := classify(r.Err)
			resp.Results[i] = BatchItem{Error: &body}
			continue
		}
		out := r.Outcome
		resp.Results[i] = BatchItem{Route: &out}
	}

	c.JSON(http.StatusOK, resp)
}

// classify maps planner errors to an HTTP status and error body.
func classify(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, planner.ErrUnknownNode):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "unknown_node"}
	case errors.Is(err, planner.ErrNoRoute):
		return http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "no_route"}
	case errors.Is(err, planner.ErrEmptyBatch), errors.Is(err, planner.ErrBatchTooLarge):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_request"}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "internal"}
	}
}

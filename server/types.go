package server

import "github.com/Neha3-ai/final-ip-project/planner"

// RouteRequest is the body of POST /v1/routes.
type RouteRequest struct {
	Source      string `json:"source" binding:"required"`
	Destination string `json:"destination" binding:"required"`
}

// BatchRequest is the body of POST /v1/routes/batch.
type BatchRequest struct {
	Queries []RouteRequest `json:"queries" binding:"required,min=1,max=64,dive"`
}

// BatchItem holds either a route or an error for one batch query.
type BatchItem struct {
	Route *planner.Outcome `json:"route,omitempty"`
	Error *ErrorResponse   `json:"error,omitempty"`
}

// BatchResponse keeps the order of BatchRequest.Queries.
type BatchResponse struct {
	Results []BatchItem `json:"results"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// NodeView is a node as listed by GET /v1/regions.
type NodeView struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// RegionView is a region as listed by GET /v1/regions.
type RegionView struct {
	Name            string     `json:"name"`
	Hub             string     `json:"hub"`
	CongestionRange [2]int     `json:"congestion_range"`
	HeavyTraffic    bool       `json:"heavy_traffic"`
	Nodes           []NodeView `json:"nodes"`
}

// LinkView is an inter-region highway.
type LinkView struct {
	FromHub    string  `json:"from_hub"`
	ToHub      string  `json:"to_hub"`
	DistanceKm float64 `json:"distance_km"`
}

// CatalogResponse is the body of GET /v1/regions.
type CatalogResponse struct {
	Regions []RegionView `json:"regions"`
	Links   []LinkView   `json:"links"`
}

package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/osuushi/polygeom/geom"
	"github.com/pkg/errors"
)

type curveRequest struct {
	Points   []geom.Point `json:"points"`
	Tension  *float64     `json:"tension"`
	Closed   bool         `json:"closed"`
	Segments *int         `json:"segments"`
}

type pointsResponse struct {
	Points []geom.Point `json:"points"`
}

type containsRequest struct {
	Polygon         []geom.Point  `json:"polygon"`
	Points          []geom.Point  `json:"points"`
	LineType        geom.LineType `json:"line_type"`
	LegacyEarlyExit *bool         `json:"legacy_early_exit"`
}

type containsResponse struct {
	Inside []bool `json:"inside"`
}

type scaleRequest struct {
	Points []geom.Point `json:"points"`
	Factor float64      `json:"factor"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCurve(w http.ResponseWriter, r *http.Request) {
	var req curveRequest
	if !s.decode(w, r, s.curve, &req) {
		return
	}
	tension := s.cfg.Curve.Tension
	if req.Tension != nil {
		tension = *req.Tension
	}
	segments := s.cfg.Curve.Segments
	if req.Segments != nil {
		segments = *req.Segments
	}

	samples := geom.GenerateSmoothCurve(geom.Flatten(req.Points), tension, req.Closed, segments)
	s.writeJSON(w, r, http.StatusOK, pointsResponse{Points: geom.Unflatten(samples)})
}

func (s *Server) handleContains(w http.ResponseWriter, r *http.Request) {
	var req containsRequest
	if !s.decode(w, r, s.contains, &req) {
		return
	}
	opts := s.cfg.ContainsOptions(req.LineType)
	if req.LegacyEarlyExit != nil {
		opts.LegacyEarlyExit = *req.LegacyEarlyExit
	}

	poly := geom.Polygon{Points: req.Polygon}
	inside := make([]bool, len(req.Points))
	for i, q := range req.Points {
		inside[i] = opts.PointInPolygon(q, poly)
	}
	s.writeJSON(w, r, http.StatusOK, containsResponse{Inside: inside})
}

func (s *Server) handleScale(w http.ResponseWriter, r *http.Request) {
	var req scaleRequest
	if !s.decode(w, r, s.scale, &req) {
		return
	}
	s.writeJSON(w, r, http.StatusOK, pointsResponse{Points: geom.ScalePoints(req.Points, req.Factor)})
}

// decode reads the body, validates it and unmarshals it into dst. On failure
// it writes the error response and returns false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v *Validator, dst interface{}) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes))
	if err != nil {
		s.writeError(w, r, http.StatusRequestEntityTooLarge, errors.Wrap(err, "reading body"))
		return false
	}
	if err := v.Validate(body); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		s.writeError(w, r, http.StatusBadRequest, errors.Wrap(err, "decoding body"))
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger.Warn("request failed", "id", RequestID(r.Context()), "status", status, "err", err)
	s.writeJSON(w, r, status, errorResponse{Error: err.Error(), RequestID: RequestID(r.Context())})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("writing response", "id", RequestID(r.Context()), "err", err)
	}
}

// Package httpsync exposes a replica over HTTP and keeps replicas converged
// by periodically pulling full snapshots from peers and merging them.
package httpsync

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lwwgraph/core"
	"github.com/katalvlaran/lwwgraph/logging"
	"github.com/katalvlaran/lwwgraph/replica"
	"github.com/katalvlaran/lwwgraph/snapshot"
)

// maxStateBytes bounds the body accepted by POST /merge.
const maxStateBytes = 64 << 20

// Server holds the HTTP handlers of one replica.
type Server struct {
	replica *replica.Replica
	log     *slog.Logger
}

// NewServer creates a Server for r. A nil logger discards.
func NewServer(r *replica.Replica, log *slog.Logger) *Server {
	if log == nil {
		log = logging.Discard()
	}

	return &Server{replica: r, log: log}
}

// Handler returns the routed handler with the standard middleware stack.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/health", s.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/snapshot", s.GetSnapshot)
	r.Post("/merge", s.Merge)
	r.Get("/dump", s.Dump)
	r.Get("/stats", s.Stats)
	r.Get("/path", s.Path)

	r.Route("/vertices", func(r chi.Router) {
		r.Get("/", s.ListVertices)
		r.Get("/{label}", s.GetVertex)
		r.Put("/{label}", s.AddVertex)
		r.Delete("/{label}", s.RemoveVertex)
		r.Get("/{label}/adjacent", s.Adjacent)
		r.Get("/{label}/reachable", s.Reachable)
	})
	r.Route("/edges/{from}/{to}", func(r chi.Router) {
		r.Get("/", s.GetEdge)
		r.Put("/", s.AddEdge)
		r.Delete("/", s.RemoveEdge)
	})

	return r
}

// requestLogger logs one record per request through log.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Replica  string `json:"replica"`
	Directed bool   `json:"directed"`
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Replica: s.replica.ID(), Directed: s.replica.Directed()})
}

// GetSnapshot handles GET /snapshot. ?format=yaml switches the encoding.
func (s *Server) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	format := snapshot.FormatJSON
	if f := r.URL.Query().Get("format"); f != "" {
		format = snapshot.Format(f)
	}
	st := s.replica.Snapshot()

	switch format {
	case snapshot.FormatJSON:
		w.Header().Set("Content-Type", "application/json")
	case snapshot.FormatYAML:
		w.Header().Set("Content-Type", "application/yaml")
	default:
		writeError(w, http.StatusBadRequest, "unknown format "+strconv.Quote(string(format)))
		return
	}
	if err := snapshot.Encode(w, st, format); err != nil {
		s.log.Error("encode snapshot", "error", err)
	}
}

// Merge handles POST /merge with a JSON or YAML snapshot.State body.
func (s *Server) Merge(w http.ResponseWriter, r *http.Request) {
	format := snapshot.FormatJSON
	if ct := r.Header.Get("Content-Type"); ct == "application/yaml" || ct == "application/x-yaml" {
		format = snapshot.FormatYAML
	}
	st, err := snapshot.Decode(http.MaxBytesReader(w, r.Body, maxStateBytes), format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err = s.replica.MergeState(st); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, newStatsResponse(s.replica.ID(), s.replica.Stats()))
}

// Dump handles GET /dump.
func (s *Server) Dump(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := s.replica.Dump(w); err != nil {
		s.log.Error("dump", "error", err)
	}
}

// StatsResponse is the body of GET /stats and POST /merge.
type StatsResponse struct {
	Replica        string `json:"replica"`
	Directed       bool   `json:"directed"`
	VertexRecords  int    `json:"vertex_records"`
	ActiveVertices int    `json:"active_vertices"`
	EdgeRecords    int    `json:"edge_records"`
	ActiveEdges    int    `json:"active_edges"`
	ValidEdges     int    `json:"valid_edges"`
}

func newStatsResponse(id string, st core.GraphStats) StatsResponse {
	return StatsResponse{
		Replica:        id,
		Directed:       st.Directed,
		VertexRecords:  st.VertexRecords,
		ActiveVertices: st.ActiveVertices,
		EdgeRecords:    st.EdgeRecords,
		ActiveEdges:    st.ActiveEdges,
		ValidEdges:     st.ValidEdges,
	}
}

// Stats handles GET /stats.
func (s *Server) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newStatsResponse(s.replica.ID(), s.replica.Stats()))
}

// VertexResponse describes a vertex record.
type VertexResponse struct {
	Label   string `json:"label"`
	Created int64  `json:"created"`
	Removed int64  `json:"removed"`
	Active  bool   `json:"active"`
}

// EdgeResponse describes an edge record.
type EdgeResponse struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Created int64  `json:"created"`
	Removed int64  `json:"removed"`
	Active  bool   `json:"active"`
}

// LabelsResponse is a list of vertex labels (vertices, adjacency, paths).
type LabelsResponse struct {
	Labels []string `json:"labels"`
}

// PathResponse is the body of GET /path. Path is null when no path exists.
type PathResponse struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Found bool     `json:"found"`
	Path  []string `json:"path"`
}

// ListVertices handles GET /vertices.
func (s *Server) ListVertices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LabelsResponse{Labels: nonNil(s.replica.Vertices())})
}

// GetVertex handles GET /vertices/{label}. Tombstones are returned too.
func (s *Server) GetVertex(w http.ResponseWriter, r *http.Request) {
	label := chi.URLParam(r, "label")
	v, ok := s.replica.Vertex(label)
	if !ok {
		writeError(w, http.StatusNotFound, "vertex "+strconv.Quote(label)+" not found")
		return
	}
	writeJSON(w, http.StatusOK, vertexResponse(v))
}

// AddVertex handles PUT /vertices/{label}[?ts=N].
func (s *Server) AddVertex(w http.ResponseWriter, r *http.Request) {
	s.mutateVertex(w, r, s.replica.AddVertex, s.replica.AddVertexNow)
}

// RemoveVertex handles DELETE /vertices/{label}[?ts=N].
func (s *Server) RemoveVertex(w http.ResponseWriter, r *http.Request) {
	s.mutateVertex(w, r, s.replica.RemoveVertex, s.replica.RemoveVertexNow)
}

func (s *Server) mutateVertex(w http.ResponseWriter, r *http.Request,
	at func(string, int64) error, now func(string) error) {
	label := chi.URLParam(r, "label")
	ts, explicit, err := timestamp(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if explicit {
		err = at(label, ts)
	} else {
		err = now(label)
	}
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	v, _ := s.replica.Vertex(label)
	writeJSON(w, http.StatusOK, vertexResponse(v))
}

// Adjacent handles GET /vertices/{label}/adjacent.
func (s *Server) Adjacent(w http.ResponseWriter, r *http.Request) {
	adj, err := s.replica.AdjacentVertices(chi.URLParam(r, "label"))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, LabelsResponse{Labels: nonNil(adj)})
}

// Reachable handles GET /vertices/{label}/reachable.
func (s *Server) Reachable(w http.ResponseWriter, r *http.Request) {
	out, err := s.replica.Reachable(r.Context(), chi.URLParam(r, "label"))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, LabelsResponse{Labels: nonNil(out)})
}

// GetEdge handles GET /edges/{from}/{to}.
func (s *Server) GetEdge(w http.ResponseWriter, r *http.Request) {
	from, to := chi.URLParam(r, "from"), chi.URLParam(r, "to")
	e, ok := s.replica.Edge(from, to)
	if !ok {
		writeError(w, http.StatusNotFound, "edge "+strconv.Quote(from)+"-"+strconv.Quote(to)+" not found")
		return
	}
	writeJSON(w, http.StatusOK, edgeResponse(e))
}

// AddEdge handles PUT /edges/{from}/{to}[?ts=N].
func (s *Server) AddEdge(w http.ResponseWriter, r *http.Request) {
	s.mutateEdge(w, r, s.replica.AddEdge, s.replica.AddEdgeNow)
}

// RemoveEdge handles DELETE /edges/{from}/{to}[?ts=N].
func (s *Server) RemoveEdge(w http.ResponseWriter, r *http.Request) {
	s.mutateEdge(w, r, s.replica.RemoveEdge, s.replica.RemoveEdgeNow)
}

func (s *Server) mutateEdge(w http.ResponseWriter, r *http.Request,
	at func(string, string, int64) error, now func(string, string) error) {
	from, to := chi.URLParam(r, "from"), chi.URLParam(r, "to")
	ts, explicit, err := timestamp(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if explicit {
		err = at(from, to, ts)
	} else {
		err = now(from, to)
	}
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	e, _ := s.replica.Edge(from, to)
	writeJSON(w, http.StatusOK, edgeResponse(e))
}

// Path handles GET /path?from=A&to=B[&algo=dfs|bfs]. The default dfs returns
// the first path found; bfs returns a shortest one.
func (s *Server) Path(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")

	var (
		path []string
		err  error
	)
	switch algo := q.Get("algo"); algo {
	case "", "dfs":
		path, err = s.replica.FindPath(from, to)
	case "bfs":
		path, err = s.replica.ShortestPath(r.Context(), from, to)
	default:
		writeError(w, http.StatusBadRequest, "unknown algo "+strconv.Quote(algo))
		return
	}
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, PathResponse{From: from, To: to, Found: path != nil, Path: path})
}

// timestamp reads the optional ?ts= parameter.
func timestamp(r *http.Request) (ts int64, explicit bool, err error) {
	raw := r.URL.Query().Get("ts")
	if raw == "" {
		return 0, false, nil
	}
	ts, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, errors.New("ts: " + err.Error())
	}

	return ts, true, nil
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidArgument), errors.Is(err, snapshot.ErrMalformed):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrIncompatibleGraphs):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func vertexResponse(v core.Vertex) VertexResponse {
	return VertexResponse{Label: v.Label, Created: v.Created, Removed: v.Removed, Active: v.IsActive()}
}

func edgeResponse(e core.Edge) EdgeResponse {
	return EdgeResponse{From: e.From, To: e.To, Created: e.Created, Removed: e.Removed, Active: e.IsActive()}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

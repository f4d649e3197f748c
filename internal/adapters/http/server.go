// Package http exposes the transpiler as a small JSON/XML conversion
// service, for editor integrations and batch tooling that should not shell
// out per file.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/odxtools/attrex/internal/adapters/xmlfile"
	"github.com/odxtools/attrex/internal/compiler"
	"github.com/odxtools/attrex/internal/metrics"
	"github.com/odxtools/attrex/pkg/domain"
	"github.com/odxtools/attrex/pkg/pyliteral"
)

// Server handles conversion requests.
type Server struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	rewriter *xmlfile.Rewriter
}

// NewHandler builds the HTTP handler for the conversion service.
func NewHandler(attrsAttr string, logger *slog.Logger, m *metrics.Metrics) http.Handler {
	s := &Server{
		logger:   logger,
		metrics:  m,
		rewriter: xmlfile.New(attrsAttr, logger),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	r.Post("/v1/expression", s.convertExpression)
	r.Post("/v1/attrs", s.convertAttrs)
	r.Post("/v1/document", s.convertDocument)
	return r
}

type expressionRequest struct {
	Domain string `json:"domain"`
}

type expressionResponse struct {
	Expression string `json:"expression"`
}

type attrsRequest struct {
	Attrs string `json:"attrs"`
}

type attrsResponse struct {
	Attributes map[string]string `json:"attributes"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// convertExpression handles POST /v1/expression: one raw domain list in,
// one boolean expression out.
func (s *Server) convertExpression(w http.ResponseWriter, r *http.Request) {
	defer s.observe("expression", time.Now())

	var req expressionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, "expression", http.StatusBadRequest, err)
		return
	}
	raw, err := pyliteral.Parse(req.Domain)
	if err != nil {
		s.fail(w, "expression", http.StatusBadRequest, err)
		return
	}
	expr, err := compiler.ConvertDomain(raw)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrEmptyDomain) {
			status = http.StatusUnprocessableEntity
		}
		s.fail(w, "expression", status, err)
		return
	}

	s.metrics.ConversionsTotal.WithLabelValues("expression").Inc()
	s.respond(w, expressionResponse{Expression: expr})
}

// convertAttrs handles POST /v1/attrs: a whole attrs dict in, the rendered
// attribute mapping out. Keys with empty domains are omitted.
func (s *Server) convertAttrs(w http.ResponseWriter, r *http.Request) {
	defer s.observe("attrs", time.Now())

	var req attrsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, "attrs", http.StatusBadRequest, err)
		return
	}
	dict, err := pyliteral.ParseDict(req.Attrs)
	if err != nil {
		s.fail(w, "attrs", http.StatusBadRequest, err)
		return
	}
	attrs, errs := compiler.ConvertAttrs(dict)
	if len(errs) > 0 {
		s.fail(w, "attrs", http.StatusBadRequest, errors.Join(errs...))
		return
	}

	s.metrics.ConversionsTotal.WithLabelValues("attrs").Inc()
	s.respond(w, attrsResponse{Attributes: attrs.Values})
}

// convertDocument handles POST /v1/document: an XML view document in, the
// rewritten document out.
func (s *Server) convertDocument(w http.ResponseWriter, r *http.Request) {
	defer s.observe("document", time.Now())

	src, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 16<<20))
	if err != nil {
		s.fail(w, "document", http.StatusBadRequest, err)
		return
	}
	res, err := s.rewriter.Rewrite(src)
	if err != nil {
		s.fail(w, "document", http.StatusBadRequest, err)
		return
	}
	if len(res.Issues) > 0 {
		errs := make([]error, len(res.Issues))
		for i, issue := range res.Issues {
			errs[i] = issue.Err
		}
		s.fail(w, "document", http.StatusUnprocessableEntity, errors.Join(errs...))
		return
	}

	s.metrics.ConversionsTotal.WithLabelValues("document").Inc()
	w.Header().Set("Content-Type", "application/xml")
	w.Write(res.Output)
}

func (s *Server) respond(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, endpoint string, status int, err error) {
	kind := errorKind(err)
	s.metrics.ConversionErrors.WithLabelValues(endpoint, kind).Inc()
	s.logger.Warn("conversion rejected", "endpoint", endpoint, "kind", kind, "err", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: err.Error(), Kind: kind})
}

func errorKind(err error) string {
	var structural *domain.StructuralError
	var value *domain.ValueError
	var syntax *pyliteral.SyntaxError
	switch {
	case errors.As(err, &structural):
		return "structural"
	case errors.As(err, &value):
		return "value"
	case errors.As(err, &syntax):
		return "syntax"
	case errors.Is(err, domain.ErrEmptyDomain):
		return "empty"
	default:
		return "request"
	}
}

func (s *Server) observe(endpoint string, start time.Time) {
	s.metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

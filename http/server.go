package http

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/govlens"
	"github.com/google/uuid"
)

//go:embed assets/*.html
var assets embed.FS

// DefaultProposalURL pre-fills the URL input on the landing page.
const DefaultProposalURL = "https://gov.near.org/t/rejected-proposal-for-near-maps-nft-onboarding-campaign/37599"

// ShutdownTimeout bounds how long Close waits for in-flight requests.
const ShutdownTimeout = 10 * time.Second

// Server serves the review web UI. It renders the URL form, runs the
// review pipeline on submission, and streams report downloads. Nothing
// is stored server-side; download requests echo back content carried in
// the submitted form.
type Server struct {
	ln      net.Listener
	server  *http.Server
	mux     *http.ServeMux
	tmpl    *template.Template
	Addr    string
	Reviews govlens.ReviewService
	Logger  *slog.Logger
	Now     func() time.Time
}

// NewServer creates a new Server. Routes are registered immediately so
// the handler can be exercised without opening a listener.
func NewServer() *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		Logger: slog.Default(),
		Now:    time.Now,
	}

	s.tmpl = template.Must(template.New("").Funcs(template.FuncMap{
		"score":    govlens.FormatScore,
		"weighted": govlens.FormatWeightedScore,
	}).ParseFS(assets, "assets/*.html"))

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /analyze", s.handleAnalyze)
	s.mux.HandleFunc("POST /download", s.handleDownload)

	s.server = &http.Server{Handler: s.logRequests(s.mux)}

	return s
}

// Open begins listening on s.Addr. It does not block; use Serve to run
// the accept loop.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return govlens.Errorf(govlens.EINTERNAL, "listening on %s: %v", s.Addr, err)
	}
	return nil
}

// Serve runs the accept loop until Close is called. Must be preceded by
// a successful Open.
func (s *Server) Serve() error {
	if err := s.server.Serve(s.ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close gracefully shuts the server down, waiting up to ShutdownTimeout
// for in-flight requests.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the listening server, for tests.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Handler returns the root handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// logRequests assigns each request an ID and logs method, path, status
// and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)
		s.Logger.Info("http request",
			"id", uuid.New().String(),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration", time.Since(begin),
		)
	})
}

// statusWriter records the status code written to the response.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// indexData feeds the landing page template.
type indexData struct {
	URL   string
	Error string
}

// resultData feeds the result page template.
type resultData struct {
	Review       *govlens.Review
	Title        string
	Outline      []govlens.OutlineEntry
	ReportText   string
	AnalysisJSON string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index.html", indexData{URL: DefaultProposalURL})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderError(w, govlens.Errorf(govlens.EINVALID, "parsing form: %v", err), "")
		return
	}

	url := strings.TrimSpace(r.PostFormValue("url"))
	if url == "" {
		s.renderError(w, govlens.Errorf(govlens.EINVALID, "proposal URL required"), url)
		return
	}

	review, err := s.Reviews.Review(r.Context(), url)
	if err != nil {
		s.renderError(w, err, url)
		return
	}

	analysisJSON, err := govlens.AnalysisJSON(review.Analysis)
	if err != nil {
		s.renderError(w, err, url)
		return
	}

	title := review.Proposal.Title
	if title == "" {
		title = govlens.DefaultTitle
	}

	s.render(w, "result.html", resultData{
		Review:       review,
		Title:        title,
		Outline:      govlens.Outline(review.Proposal.Body),
		ReportText:   govlens.FormatReport(review),
		AnalysisJSON: analysisJSON,
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "parsing form: "+err.Error(), http.StatusBadRequest)
		return
	}

	content := r.PostFormValue("content")
	if content == "" {
		http.Error(w, "nothing to download", http.StatusBadRequest)
		return
	}

	format := govlens.ReportMarkdown
	contentType := "text/markdown; charset=utf-8"
	if r.PostFormValue("format") == string(govlens.ReportJSON) {
		format = govlens.ReportJSON
		contentType = "application/json; charset=utf-8"
	}

	filename := govlens.ReportFilename(s.Now(), format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write([]byte(content))
}

// renderError re-renders the landing page with the error message, so
// the UI stays ready for the next submission.
func (s *Server) renderError(w http.ResponseWriter, err error, url string) {
	if url == "" {
		url = DefaultProposalURL
	}
	s.Logger.Error("review failed", "code", govlens.ErrorCode(err), "message", govlens.ErrorMessage(err))
	s.renderStatus(w, statusFromError(err), "index.html", indexData{URL: url, Error: govlens.ErrorMessage(err)})
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	s.renderStatus(w, http.StatusOK, name, data)
}

// renderStatus writes all headers before the body; nothing may touch
// the header map after this point.
func (s *Server) renderStatus(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.Logger.Error("rendering template", "template", name, "err", err)
	}
}

// statusFromError maps application error codes to HTTP status codes.
func statusFromError(err error) int {
	switch govlens.ErrorCode(err) {
	case govlens.EINVALID:
		return http.StatusUnprocessableEntity
	case govlens.ENOTFOUND:
		return http.StatusNotFound
	case govlens.EFETCH, govlens.EEXTRACT, govlens.EPROVIDER:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

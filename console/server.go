package console

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"vedic-admin/api"
	"vedic-admin/audit"
	"vedic-admin/logger"
	"vedic-admin/template"
)

// Server renders the admin console and forwards edits to the content API.
type Server struct {
	api     *api.Client
	audit   *audit.Store
	flashes *sessions.CookieStore
	now     func() time.Time
	loc     *time.Location
}

// New builds the console. flashKey signs the flash cookie.
func New(client *api.Client, store *audit.Store, flashKey []byte) *Server {
	return &Server{
		api:     client,
		audit:   store,
		flashes: newFlashStore(flashKey),
		now:     time.Now,
		loc:     time.Local,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

type requestIDKey struct{}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /static/admin.css", s.handleCSS)
	mux.HandleFunc("GET /{$}", s.handleDashboard)

	s.bookRoutes(mux)
	s.chapterRoutes(mux)
	s.textbookRoutes(mux)
	s.paperRoutes(mux)
	s.thesisRoutes(mux)
	s.contactRoutes(mux)
	s.newsletterRoutes(mux)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		mux.ServeHTTP(rec, r)
		logger.Logger.Printf("http %s %s -> %d in %s id=%s", r.Method, r.URL.RequestURI(), rec.status, time.Since(start).Round(time.Millisecond), id)
	})
}

// ListenAndServe serves the console on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Logger.Printf("Console listening on http://%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve console: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down console: %w", err)
		}
		logger.Logger.Println("Console stopped")
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleCSS(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(template.AdminCSS))
}

// page builds the shell for the current request, consuming any pending
// flash message.
func (s *Server) page(w http.ResponseWriter, r *http.Request, title, subtitle, active string) template.Page {
	return template.Page{
		Title:     title,
		Subtitle:  subtitle,
		Active:    active,
		Flash:     s.popFlash(w, r),
		RequestID: requestID(r.Context()),
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		logger.Logger.Printf("failed to render %s: %v", r.URL.Path, err)
	}
}

// renderError shows err in place of the page. API errors keep their
// message; status is 502 unless the backend reported a missing record.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, p template.Page, err error, fallback, back string) {
	status := http.StatusBadGateway
	if api.IsNotFound(err) {
		status = http.StatusNotFound
	}
	logger.Logger.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	s.render(w, r, status, template.ErrorView(template.ErrorPage{
		Page:    p,
		Message: api.Message(err, fallback),
		Back:    back,
	}))
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request, p template.Page, message, back string) {
	s.render(w, r, http.StatusNotFound, template.ErrorView(template.ErrorPage{
		Page:    p,
		Message: message,
		Back:    back,
	}))
}

// redirect finishes a POST: the flash is shown on the next page.
func (s *Server) redirect(w http.ResponseWriter, r *http.Request, to string, f *template.Flash) {
	if f != nil {
		s.setFlash(w, r, f)
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

func success(format string, args ...any) *template.Flash {
	return &template.Flash{Kind: "success", Message: fmt.Sprintf(format, args...)}
}

func failure(err error, fallback string) *template.Flash {
	return &template.Flash{Kind: "error", Message: api.Message(err, fallback)}
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (s *Server) record(r *http.Request, action, kind string, id int64, title, detail string) {
	err := s.audit.Record(r.Context(), audit.Entry{
		At:        s.now(),
		Action:    action,
		Kind:      kind,
		TargetId:  id,
		Title:     title,
		Detail:    detail,
		RequestId: requestID(r.Context()),
	})
	if err != nil {
		logger.Logger.Printf("failed to record %s %s %d: %v", action, kind, id, err)
	}
}

// attachment marks the response as a download named name.
func attachment(w http.ResponseWriter, contentType, name string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
}

// postedTitle is the record title carried by a confirmation form.
func postedTitle(r *http.Request, id int64) string {
	if title := strings.TrimSpace(r.PostFormValue("title")); title != "" {
		return title
	}
	return "#" + strconv.FormatInt(id, 10)
}

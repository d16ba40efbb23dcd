package devserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/spycats/internal/logging"
)

type Options struct {
	// Store defaults to a new empty store.
	Store *Store
	// Breeds, when non-empty, restricts accepted breeds (case-insensitive).
	Breeds []string
	Logger logging.Logger
}

// NewRouter returns the HTTP handler of the development backend.
func NewRouter(opts Options) http.Handler {
	if opts.Store == nil {
		opts.Store = NewStore()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	h := &handler{store: opts.Store, logger: opts.Logger}
	if len(opts.Breeds) > 0 {
		h.breeds = make(map[string]string, len(opts.Breeds))
		for _, b := range opts.Breeds {
			h.breeds[strings.ToLower(b)] = b
		}
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(opts.Logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1/cats", func(cr chi.Router) {
		cr.Get("/", h.list)
		cr.Post("/", h.create)
		cr.Get("/{catID}", h.get)
		cr.Patch("/{catID}", h.update)
		cr.Delete("/{catID}", h.delete)
	})

	return r
}

// requestLogger logs one line per request and echoes the request id back.
func requestLogger(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimw.GetReqID(r.Context())
			if reqID != "" {
				w.Header().Set(chimw.RequestIDHeader, reqID)
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			logger.Info(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", reqID,
			)
		})
	}
}

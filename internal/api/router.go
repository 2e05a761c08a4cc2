// Package api assembles the HTTP surface: JSON API under /api, stored media
// under /media, Prometheus metrics, and the embedded frontend as the
// fallback for everything else.
package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/howdythrift/server/internal/api/handlers"
	"github.com/howdythrift/server/internal/api/middleware"
	"github.com/howdythrift/server/internal/auth"
	"github.com/howdythrift/server/internal/config"
	"github.com/howdythrift/server/internal/domain/content"
	"github.com/howdythrift/server/internal/domain/featured"
	"github.com/howdythrift/server/internal/domain/media"
	"github.com/howdythrift/server/internal/domain/posts"
	"github.com/howdythrift/server/internal/metrics"
	"github.com/howdythrift/server/internal/storage"
	"github.com/howdythrift/server/web"
)

// NewRouter wires every route against the given stores. Callers own the
// stores' lifecycles; tests pass in-memory fakes.
func NewRouter(cfg config.Config, logger zerolog.Logger, repo storage.Repository, mediaStore media.Store) http.Handler {
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry, "howdythrift")

	postsService := posts.NewService(repo.Posts())
	contentService := content.NewService(repo.ContentBlocks())
	featuredService := featured.NewService(repo.Featured())
	mediaService := media.NewService(mediaStore, cfg.Server.PublicBaseURL)

	authHandler := handlers.NewAuthHandler(cfg.Auth.AdminPasswordHash, jwtManager)
	postsHandler := handlers.NewPostsHandler(postsService)
	contentHandler := handlers.NewContentHandler(contentService, cfg.Server.PublicBaseURL)
	featuredHandler := handlers.NewFeaturedHandler(featuredService)
	mediaHandler := handlers.NewMediaHandler(mediaService)

	admin := middleware.AdminAuth(jwtManager)

	mux := http.NewServeMux()
	mux.Handle("/api/health", methodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(handlers.Health),
	}))
	mux.Handle("/metrics", methodMux(map[string]http.Handler{
		http.MethodGet: metrics.Handler(),
	}))

	mux.Handle("/api/auth/login", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(authHandler.Login),
	}))
	mux.Handle("/api/auth/logout", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(authHandler.Logout),
	}))

	mux.Handle("/api/posts", methodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(postsHandler.List),
		http.MethodPost: admin(http.HandlerFunc(postsHandler.Create)),
	}))
	mux.Handle("/api/posts/{id}", methodMux(map[string]http.Handler{
		http.MethodGet:    http.HandlerFunc(postsHandler.Get),
		http.MethodPut:    admin(http.HandlerFunc(postsHandler.Update)),
		http.MethodDelete: admin(http.HandlerFunc(postsHandler.Delete)),
	}))

	mux.Handle("/api/content/{type}", methodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(contentHandler.Get),
		http.MethodPut: admin(http.HandlerFunc(contentHandler.Upsert)),
	}))

	mux.Handle("/api/featured", methodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(featuredHandler.List),
		http.MethodPost: admin(http.HandlerFunc(featuredHandler.Create)),
	}))
	mux.Handle("/api/featured/{id}", methodMux(map[string]http.Handler{
		http.MethodPut:    admin(http.HandlerFunc(featuredHandler.Update)),
		http.MethodDelete: admin(http.HandlerFunc(featuredHandler.Delete)),
	}))

	mux.Handle("/api/media/upload", methodMux(map[string]http.Handler{
		http.MethodPost: admin(http.HandlerFunc(mediaHandler.Upload)),
	}))
	mux.Handle("/media/{key...}", methodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(mediaHandler.Serve),
	}))

	// Unknown /api paths are a JSON 404, not the SPA shell.
	mux.Handle("/api/", http.HandlerFunc(apiNotFound))
	mux.Handle("/", web.SPAHandler())

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.CORS, logger)(handler)
	handler = metrics.HTTPMiddleware(handler)
	handler = middleware.RequestLogging(logger)(handler)
	return handler
}

func apiNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"error":"Not found"}`))
}

func methodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(handlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(handlers map[string]http.Handler) string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}

// Package web embeds the built single-page app and serves it with SPA
// fallback routing: any path without a file extension gets index.html so
// client-side routes survive a full page load.
package web

import (
	"embed"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

//go:embed all:dist
var distFS embed.FS

// SPAHandler serves the embedded frontend build. Asset requests (paths with
// an extension) are served directly and 404 when missing; everything else
// falls back to index.html.
func SPAHandler() http.Handler {
	dist, err := fs.Sub(distFS, "dist")
	if err != nil {
		panic("frontend build not embedded: " + err.Error())
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		if name == "" {
			name = "index.html"
		}

		if path.Ext(name) == "" {
			serveFile(w, r, dist, "index.html")
			return
		}

		if _, err := fs.Stat(dist, name); err != nil {
			http.NotFound(w, r)
			return
		}
		serveFile(w, r, dist, name)
	})
}

func serveFile(w http.ResponseWriter, r *http.Request, dist fs.FS, name string) {
	file, err := dist.Open(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Hashed assets can be cached hard; index.html must revalidate so a new
	// deploy takes effect.
	if strings.HasPrefix(name, "assets/") {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	} else {
		w.Header().Set("Cache-Control", "no-cache, must-revalidate")
	}

	http.ServeContent(w, r, name, stat.ModTime(), file.(io.ReadSeeker))
}

package handlers

import (
	"html/template"
	"log"
	"net/http"
	"path/filepath"
)

// StatusHandler serves the static TV interface, the server status page, and
// the favicon.
type StatusHandler struct {
	staticDir string
}

// NewStatusHandler creates a handler serving UI assets from staticDir.
func NewStatusHandler(staticDir string) *StatusHandler {
	return &StatusHandler{staticDir: staticDir}
}

// Index serves the main TV interface.
// GET /
func (h *StatusHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "smart_tv.html"))
}

var statusTemplate = template.Must(template.New("status").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Lismore Smart TV Server</title>
	<style>
		body { font-family: sans-serif; background: #111; color: #eee; text-align: center; padding: 4rem 2rem; }
		h1 { color: #00d9ff; }
		code { background: #222; padding: 0.2rem 0.4rem; border-radius: 4px; }
		ul { list-style: none; padding: 0; line-height: 2; }
	</style>
</head>
<body>
	<h1>&#128250; Lismore Smart TV</h1>
	<p>Server running on <strong>{{.Host}}</strong></p>
	<ul>
		<li><code>/api/tv-guide</code> &mdash; TV program guide data</li>
		<li><code>/api/channels</code> &mdash; complete channel list</li>
		<li><code>/api/stream-proxy/&lt;lcn&gt;</code> &mdash; audio stream proxy</li>
		<li><code>/api/health</code> &mdash; server health status</li>
	</ul>
</body>
</html>
`))

// StatusPage serves a small human-readable status page.
// GET /status
func (h *StatusHandler) StatusPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := statusTemplate.Execute(w, struct{ Host string }{Host: r.Host}); err != nil {
		log.Printf("[status] template error: %v", err)
	}
}

const faviconSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
    <rect width="100" height="100" fill="#000"/>
    <text x="50" y="70" font-size="60" text-anchor="middle" fill="#0070f3">&#128250;</text>
</svg>`

// Favicon serves an inline SVG icon with a one-day cache.
// GET /favicon.ico
func (h *StatusHandler) Favicon(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte(faviconSVG))
}

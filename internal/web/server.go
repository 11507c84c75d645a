package web

import (
	_ "embed"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

//go:embed web/index.html
var htmlIndex []byte

//go:embed web/client.js
var jsClient []byte

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler returns the HTTP handler serving the embedded browser client and
// the /ws game endpoint.
func Handler(logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(htmlIndex)
	})
	mux.HandleFunc("/client.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		_, _ = w.Write(jsClient)
	})
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("websocket upgrade failed", "err", err)
			return
		}
		logger.Info("player connected", "remote", r.RemoteAddr)
		serveSession(conn, logger)
		logger.Info("player disconnected", "remote", r.RemoteAddr)
	})

	return mux
}

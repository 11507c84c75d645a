package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Hect0r3rd/waterdrop/internal/config"
	"github.com/Hect0r3rd/waterdrop/internal/web"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

func main() {
	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "web"})

	addr := fmt.Sprintf("%s:%s", host, port)
	logger.Info("starting web server", "addr", addr)
	if err := http.ListenAndServe(addr, web.Handler(logger)); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

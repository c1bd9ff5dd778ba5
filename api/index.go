package handler

import (
	"net/http"
	"sync"

	"tripbook/config"
	"tripbook/di"
	"tripbook/shared/logger"
)

var (
	once    sync.Once
	handler http.Handler
)

// Handler is the serverless entrypoint. The service graph is built on the first request
// and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg.Server.LogLevel)

		handler = di.InitializeService().Handler()
	})

	handler.ServeHTTP(w, r)
}

package handler

import (
	"agenda/config"
	"agenda/di"
	"agenda/shared/logger"
	"net/http"
	"sync"

	agendaHTTP "agenda/transport/http"
)

var (
	once    sync.Once
	service *agendaHTTP.HTTP
)

// Handler is the serverless entrypoint. The dependency graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		service = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	service.ServeHTTP(w, r)
}

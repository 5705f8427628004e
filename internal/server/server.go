package server

import (
	"net/http"
	"time"

	"github.com/Tomlord1122/todo-api/internal/service"
)

// HealthChecker reports the state of the persistence handle.
type HealthChecker interface {
	Health() map[string]string
}

type Server struct {
	todoService service.TodoService
	db          HealthChecker
}

// NewServer builds the http.Server for addr. An addr of ":port" binds all
// interfaces.
func NewServer(addr string, todoService service.TodoService, db HealthChecker) *http.Server {
	appServer := &Server{
		todoService: todoService,
		db:          db,
	}

	return &http.Server{
		Addr:              addr,
		Handler:           appServer.RegisterRoutes(),
		IdleTimeout:       time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

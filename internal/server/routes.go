package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/Tomlord1122/todo-api/internal/domain"
	"github.com/Tomlord1122/todo-api/internal/service"
)

const (
	msgCreateFailed = "Unable to create todo"
	msgUpdateFailed = "Unable to update todo status"
	msgFetchFailed  = "Unable to fetch todos"

	maxBodyBytes = 1 << 20
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", s.healthHandler)

	r.Route("/api/todos", func(r chi.Router) {
		r.Post("/", s.createTodoHandler)
		r.Get("/", s.fetchTodosHandler)
		r.Patch("/{todo_id}", s.updateTodoStatusHandler)
	})

	return r
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	healthStats := s.db.Health()
	if status, ok := healthStats["status"]; ok && status == "down" {
		respondWithJSON(w, http.StatusServiceUnavailable, healthStats)
		return
	}
	respondWithJSON(w, http.StatusOK, healthStats)
}

func (s *Server) createTodoHandler(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTodoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logFailure(r, "create todo", err)
		respondWithError(w, http.StatusBadRequest, msgCreateFailed)
		return
	}

	if _, err := s.todoService.CreateTodo(r.Context(), req); err != nil {
		logFailure(r, "create todo", err)
		respondWithError(w, http.StatusBadRequest, msgCreateFailed)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]bool{"ok": true})
}

func (s *Server) fetchTodosHandler(w http.ResponseWriter, r *http.Request) {
	todos, err := s.todoService.GetAllTodos(r.Context())
	if err != nil {
		logFailure(r, "fetch todos", err)
		respondWithError(w, http.StatusBadRequest, msgFetchFailed)
		return
	}

	respondWithJSON(w, http.StatusOK, todos)
}

func (s *Server) updateTodoStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "todo_id"))
	if err != nil {
		logFailure(r, "update todo status", fmt.Errorf("%w: %v", domain.ErrInvalidID, err))
		respondWithError(w, http.StatusBadRequest, msgUpdateFailed)
		return
	}

	var req service.UpdateTodoStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logFailure(r, "update todo status", err)
		respondWithError(w, http.StatusBadRequest, msgUpdateFailed)
		return
	}

	if err := s.todoService.UpdateTodoStatus(r.Context(), id, req); err != nil {
		logFailure(r, "update todo status", err)
		respondWithError(w, http.StatusBadRequest, msgUpdateFailed)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// decodeJSON reads a single JSON object from the request body. Unknown
// fields are ignored.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode body: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func logFailure(r *http.Request, op string, err error) {
	log.Printf("[%s] %s failed: %v", middleware.GetReqID(r.Context()), op, err)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"message": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshaling JSON response: %v", err)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Internal server error preparing response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

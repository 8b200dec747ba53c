package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/personnel-roster/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	rosterHandler *RosterHandler
}

// NewRouter создаёт новый роутер
func NewRouter(rosterHandler *RosterHandler, logger *slog.Logger) *Router {
	return &Router{
		mux:           http.NewServeMux(),
		logger:        logger,
		rosterHandler: rosterHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.mux.HandleFunc("/employees", r.employeesRouter)
	r.mux.HandleFunc("/employees/", r.employeesRouter)
	r.mux.HandleFunc("/hierarchy/", r.hierarchyRouter)
	r.mux.HandleFunc("/summary", r.onlyGet(r.rosterHandler.Summary))

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware, Recoverer - внешний слой
	return middleware.Chain(r.mux,
		middleware.Recoverer(r.logger),
		middleware.Logger(r.logger),
		middleware.JSON,
	)
}

func (r *Router) onlyGet(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
			return
		}
		next(w, req)
	}
}

// employeesRouter обрабатывает все запросы к /employees/
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/employees")
	path = strings.Trim(path, "/")

	// GET /employees - весь список
	if path == "" {
		r.onlyGet(r.rosterHandler.List)(w, req)
		return
	}

	// GET /employees/search?field=&operator=&value=
	if path == "search" {
		r.onlyGet(r.rosterHandler.Search)(w, req)
		return
	}

	parts := strings.Split(path, "/")

	// GET /employees/by-name/{name}
	if len(parts) == 2 && parts[0] == "by-name" {
		r.onlyGet(func(w http.ResponseWriter, req *http.Request) {
			r.rosterHandler.GetByName(w, req, parts[1])
		})(w, req)
		return
	}

	if len(parts) == 1 {
		// /employees/{id}
		switch req.Method {
		case http.MethodGet:
			r.rosterHandler.GetByID(w, req, parts[0])
		case http.MethodDelete:
			r.rosterHandler.Remove(w, req, parts[0])
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

// hierarchyRouter обрабатывает запросы к /hierarchy/
func (r *Router) hierarchyRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/hierarchy")
	path = strings.Trim(path, "/")
	parts := strings.Split(path, "/")

	switch {
	case len(parts) == 1 && parts[0] == "reports":
		r.onlyGet(r.rosterHandler.DirectReports)(w, req)
	case len(parts) == 2 && parts[0] == "chain":
		r.onlyGet(func(w http.ResponseWriter, req *http.Request) {
			r.rosterHandler.ChainToRoot(w, req, parts[1])
		})(w, req)
	default:
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}
}

package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/floos/floos/internal/httpserver/deps"
	"github.com/floos/floos/internal/httpserver/handlers"
)

func init() { Register(registerTasks) }

func registerTasks(r chi.Router, d deps.Deps) {
	r.Get("/tasks", handlers.ListTasks(d))
	r.Post("/tasks", handlers.AddTask(d))
}

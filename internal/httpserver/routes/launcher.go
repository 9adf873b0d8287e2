package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/floos/floos/internal/httpserver/deps"
	"github.com/floos/floos/internal/httpserver/handlers"
)

func init() { Register(registerLauncher) }

func registerLauncher(r chi.Router, d deps.Deps) {
	r.Get("/launcher", handlers.Launcher(d))
}

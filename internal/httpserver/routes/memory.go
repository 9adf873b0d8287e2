package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/floos/floos/internal/httpserver/deps"
	"github.com/floos/floos/internal/httpserver/handlers"
)

func init() { Register(registerMemory) }

func registerMemory(r chi.Router, d deps.Deps) {
	r.Get("/memory", handlers.ListMemoryItems(d))
	r.Post("/memory", handlers.SaveMemoryItem(d))
}

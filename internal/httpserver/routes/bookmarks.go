package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/floos/floos/internal/httpserver/deps"
	"github.com/floos/floos/internal/httpserver/handlers"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	r.Get("/bookmarks", handlers.ListBookmarks(d))
	r.Post("/bookmarks", handlers.AddBookmark(d))
	r.Delete("/bookmarks/{category}/{id}", handlers.RemoveBookmark(d))
}

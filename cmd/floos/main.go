package main

import (
	"log"

	"github.com/floos/floos/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ floos failed to start: %v", err)
	}
}

package main

import (
	"log/slog"
	"os"

	"movie-booking/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

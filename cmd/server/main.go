package main

import (
	"os"

	"device-compare/internal/app"
)

// @title           Device Compare API
// @version         1.0
// @description     Side-by-side device comparison and grounded follow-up chat backed by Gemini.
// @BasePath        /
func main() {
	os.Exit(app.Run())
}

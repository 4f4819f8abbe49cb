package main

import (
	"os"

	"github.com/jobhunter/backend/cmd"
)

//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.6 init --generalInfo main.go --output docs

// @title Job Hunter API
// @version 1.0
// @description AI job hunting assistant: resume parsing, job search with skill match scoring, resume feedback and career advice chat.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8000
// @BasePath /

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

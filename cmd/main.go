// Package main is the entry point for the box-picker application.
//
// @title           Box Picker API
// @version         1.0.0
// @description     API for packing items into the smallest feasible set of boxes.
//
//	This service selects boxes from a configurable catalog using a shelf packing heuristic.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/packlane/box-picker
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT bearer token. Required for catalog mutations when a signing secret is configured.
//
// @tag.name        Packing
// @tag.description Item packing operations
//
// @tag.name        Boxes
// @tag.description Box catalog operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/packlane/box-picker/docs" // swagger docs

	"github.com/packlane/box-picker/config"
	"github.com/packlane/box-picker/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	defer app.ShutdownApp()

	server := app.NewServer(router, cfg.Server.Port)
	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

package main

import (
	"fmt"

	"github.com/MKhiriev/go-read-later/internal/config"
	"github.com/MKhiriev/go-read-later/internal/handler"
	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/internal/remote"
	"github.com/MKhiriev/go-read-later/internal/server"
	"github.com/MKhiriev/go-read-later/internal/utils"
	"github.com/MKhiriev/go-read-later/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("read-later-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Version == "" {
		cfg.Version = buildInfo.BuildVersion()
	}

	log.Debug().Str("address", cfg.HTTPAddress).Dur("request_timeout", cfg.RequestTimeout).Msg("received configs")

	service := remote.NewService(utils.NewUUIDGenerator(), log)

	handlers, err := handler.NewHandlers(service, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

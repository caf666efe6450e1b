package http

import (
	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/internal/remote"
)

type Handler struct {
	service *remote.Service
	token   string
	version string

	logger *logger.Logger
}

// NewHandler builds the handler. An empty token disables the bearer check.
func NewHandler(service *remote.Service, token, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		service: service,
		token:   token,
		version: version,
		logger:  logger,
	}
}

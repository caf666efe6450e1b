package handler

import (
	"testing"

	"github.com/MKhiriev/go-read-later/internal/config"
	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/internal/remote"
	"github.com/MKhiriev/go-read-later/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	svc := remote.NewService(utils.NewUUIDGenerator(), logger.Nop())

	handlers, err := NewHandlers(svc, &config.ServerConfig{HTTPAddress: "localhost:0"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)

	_, err = NewHandlers(svc, &config.ServerConfig{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}

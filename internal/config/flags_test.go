package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr error
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "IPv4", input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "IPv6", input: "[::1]:8080", want: NetAddress{Host: "::1", Port: 8080}},
		{name: "every interface", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "missing port", input: "localhost", wantErr: ErrInvalidNetAddress},
		{name: "too many colons", input: "host:port:extra", wantErr: ErrInvalidNetAddress},
		{name: "empty", input: "", wantErr: ErrInvalidNetAddress},
		{name: "non-numeric port", input: "localhost:abc", wantErr: ErrInvalidPort},
		{name: "zero port", input: "localhost:0", wantErr: ErrInvalidPort},
		{name: "port out of range", input: "localhost:70000", wantErr: ErrInvalidPort},
		{name: "hostname", input: "bookmarks.local:8080", wantErr: ErrInvalidHost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, NetAddress{}, addr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Empty(t, (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
	assert.Equal(t, ":8080", (&NetAddress{Port: 8080}).String())
	assert.Equal(t, "[::1]:9090", (&NetAddress{Host: "::1", Port: 9090}).String())
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "localhost:8080",
				"-r", "http://bookmarks.local",
				"-t", "secret-token",
				"-d", "/var/lib/read-later/local.db",
				"-f", "/var/lib/read-later/articles",
				"-l", "/var/log/read-later",
				"-c", "/path/to/config.json",
				"-request-timeout", "30s",
				"-server-timeout", "10s",
				"-sync-interval", "2m",
				"-articles-per-folder", "60",
				"-batch-size", "5",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
				assert.Equal(t, "http://bookmarks.local", cfg.Adapter.HTTPAddress)
				assert.Equal(t, "secret-token", cfg.Adapter.Token)
				assert.Equal(t, "/var/lib/read-later/local.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "/var/lib/read-later/articles", cfg.Storage.Files.ContentDir)
				assert.Equal(t, "/var/log/read-later", cfg.App.LogDir)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
				assert.Equal(t, 60, cfg.Sync.ArticlesPerFolder)
				assert.Equal(t, 5, cfg.Sync.BatchSize)
			},
		},
		{
			name: "config alias flag",
			args: []string{
				"-config", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "commands after flags",
			args: []string{"-d", "local.db", "move", "42", "3"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "local.db", cfg.Storage.DB.DSN)
				assert.Equal(t, []string{"move", "42", "3"}, flag.Args())
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Server.HTTPAddress)
				assert.Empty(t, cfg.Adapter.HTTPAddress)
				assert.Empty(t, cfg.Storage.DB.DSN)
				assert.Empty(t, cfg.JSONFilePath)
				assert.Zero(t, cfg.Sync.BatchSize)
				assert.Zero(t, cfg.Workers.SyncInterval)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			cfg := ParseFlags()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

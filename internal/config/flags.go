package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the command line.
//
// Flags:
//
//	-a development server address in format [host]:[port]
//	-r remote service address used by the client ([host]:[port] or base URL)
//	-t bearer token sent to the remote service
//	-d SQLite database path
//	-f downloaded article content directory
//	-l client log directory
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-server-timeout inbound request timeout of the development server
//	-sync-interval period of the background sync job
//	-articles-per-folder articles pulled per folder listing
//	-batch-size pending changes replayed per chunk
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var adapterAddress string
	var adapterToken string
	var databaseDSN string
	var contentDir string
	var logDir string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var serverTimeout time.Duration
	var syncInterval time.Duration
	var articlesPerFolder int
	var batchSize int

	flag.Var(&serverAddress, "a", "Development server address host:port")
	flag.StringVar(&adapterAddress, "r", "", "Remote service address")
	flag.StringVar(&adapterToken, "t", "", "Remote service bearer token")
	flag.StringVar(&databaseDSN, "d", "", "SQLite database path")
	flag.StringVar(&contentDir, "f", "", "Downloaded article content directory")
	flag.StringVar(&logDir, "l", "", "Client log directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&serverTimeout, "server-timeout", 0, "Server request timeout (e.g., 15s)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync period (e.g., 5m)")
	flag.IntVar(&articlesPerFolder, "articles-per-folder", 0, "Articles pulled per folder")
	flag.IntVar(&batchSize, "batch-size", 0, "Pending changes replayed per chunk")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogDir: logDir,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				ContentDir: contentDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
			Token:          adapterToken,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		Sync: Sync{
			ArticlesPerFolder: articlesPerFolder,
			BatchSize:         batchSize,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns host:port, or an empty string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host must be "localhost" or an IP address; an
// empty host listens on every interface.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNetAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", ErrInvalidPort, rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: %q", ErrInvalidHost, host)
	}

	a.Host = host
	a.Port = port
	return nil
}

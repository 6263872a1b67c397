package configs

import "time"

// HTTP configures the HTTP server.
type HTTP struct {
	// Port is the TCP port the server listens on.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// WSOrigins lists browser origins allowed to open campaign feeds, e.g.
	// https://app.example.org. Empty allows same-host pages only.
	WSOrigins []string `env:"WS_ORIGINS" envSeparator:","`
}

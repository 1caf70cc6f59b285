package server

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string   `json:"host"`
	Port           int      `json:"port"`
	StaticDir      string   `json:"staticDir,omitempty"`
	AllowedOrigins []string `json:"allowedOrigins"`
	EnableMCP      bool     `json:"enableMcp"`
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:           "0.0.0.0",
		Port:           3000,
		AllowedOrigins: []string{"*"},
		EnableMCP:      true,
	}
}

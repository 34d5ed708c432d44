package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server API base URL (e.g. "http://localhost:5000")
//	-realtime-url push channel websocket URL (e.g. "ws://localhost:5000/ws")
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var httpAddress string
	var realtimeURL string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&httpAddress, "a", "", "Chat API base URL")
	flag.StringVar(&realtimeURL, "realtime-url", "", "Realtime websocket URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    httpAddress,
			RequestTimeout: requestTimeout,
		},
		Realtime: Realtime{
			URL: realtimeURL,
		},
		JSONFilePath: jsonConfigPath,
	}
}

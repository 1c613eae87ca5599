// Package config handles loading and parsing the cellmon configuration file.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/cellmon/config.toml
//  3. If the file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # Default Values
//
//   - Server URL: http://127.0.0.1:8000
//   - Poll interval: 1000 ms
//   - Reconnect delay: 1000 ms
//   - Log directory: ~/.local/share/cellmon/logs
//
// # TOML Format
//
//	server_url = "http://crib-backend.local:8000"
//	poll_interval_ms = 1000
//	reconnect_delay_ms = 1000
//	log_dir = "~/.local/share/cellmon/logs"
//
// The websocket endpoint is not configured separately: it is derived from
// server_url by the backend client, upgrading http to ws and https to wss.
package config

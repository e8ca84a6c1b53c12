// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - AllowedOrigin: CORS origin (default: reflect the request Origin)
  - LogLevel: debug, info, warn, error (default: info)
  - LogFormat: text or json (default: text)
  - EnvFile: env file loaded before reading variables (default: .env)

# CLI Flags

	-p            Server port
	-origin       Allowed CORS origin
	-log-level    Log level
	-log-format   Log format
	-env          Env file path ("" disables)

# Environment Variables

Flags fall back to environment variables:

	PORT        → -p
	CORS_ORIGIN → -origin
	LOG_LEVEL   → -log-level
	LOG_FORMAT  → -log-format

CLI flags take precedence over environment variables, and variables already
in the environment take precedence over the env file.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	mux := router.NewRouter(cfg)
*/
package cliparse

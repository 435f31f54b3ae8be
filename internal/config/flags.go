// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"math"
	"time"
)

// ParseFlags parses the configuration flags found in args (usually
// os.Args[1:]). A dedicated flag set is used, so the function may be called
// more than once.
//
// Flags:
//
//	-d database DSN
//	-driver database driver ("pgx" or "sqlite3")
//	-max-open-conns connection pool size
//	-connect-timeout database ping timeout (e.g. "5s")
//	-c/-config json file path with configs
//	-algorithm envelope cipher ("aes-256-gcm" or "xchacha20-poly1305")
//	-argon-time Argon2id passes
//	-argon-memory Argon2id memory in KiB
//	-argon-threads Argon2id parallelism
//	-log-level log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("keyvault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		databaseDSN    string
		driver         string
		maxOpenConns   int
		connectTimeout time.Duration
		jsonConfigPath string
		algorithm      string
		argonTime      uint
		argonMemory    uint
		argonThreads   uint
		logLevel       string
	)

	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.IntVar(&maxOpenConns, "max-open-conns", 0, "Maximum number of open database connections")
	fs.DurationVar(&connectTimeout, "connect-timeout", 0, "Database connect timeout (e.g., 5s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&algorithm, "algorithm", "", "Envelope cipher (aes-256-gcm, xchacha20-poly1305)")
	fs.UintVar(&argonTime, "argon-time", 0, "Argon2id passes")
	fs.UintVar(&argonMemory, "argon-memory", 0, "Argon2id memory in KiB")
	fs.UintVar(&argonThreads, "argon-threads", 0, "Argon2id parallelism")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if argonTime > math.MaxUint32 || argonMemory > math.MaxUint32 || argonThreads > math.MaxUint8 {
		return nil, fmt.Errorf("%w: argon parameter out of range", ErrInvalidCryptoConfigs)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:         driver,
				DSN:            databaseDSN,
				MaxOpenConns:   maxOpenConns,
				ConnectTimeout: connectTimeout,
			},
		},
		Crypto: Crypto{
			Algorithm:    algorithm,
			ArgonTime:    uint32(argonTime),
			ArgonMemory:  uint32(argonMemory),
			ArgonThreads: uint8(argonThreads),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

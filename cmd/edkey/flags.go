package main

import "github.com/urfave/cli"

var (
	// LogLevelFlag flag to set log level
	LogLevelFlag = cli.StringFlag{
		Name:   "loglevel",
		Usage:  "log level, eg: (error, info, notice, debug)",
		Value:  "info",
		EnvVar: "EDKEY_LOG_LEVEL",
	}

	// EngineFlag selects the curve backend
	EngineFlag = cli.StringFlag{
		Name:   "engine",
		Usage:  "curve engine, eg: (constant, vartime)",
		Value:  engineConstantTime,
		EnvVar: "EDKEY_ENGINE",
	}

	// CacheSizeFlag number of derived points and validity results kept around, 0 disables caching
	CacheSizeFlag = cli.IntFlag{
		Name:   "cache-size",
		Usage:  "public key cache entries, 0 to disable",
		Value:  1024,
		EnvVar: "EDKEY_CACHE_SIZE",
	}

	// CacheTypeFlag eviction strategy of the public key cache
	CacheTypeFlag = cli.StringFlag{
		Name:   "cache-type",
		Usage:  "public key cache type, eg: (lru, map)",
		Value:  cacheTypeLRU,
		EnvVar: "EDKEY_CACHE_TYPE",
	}

	// PrintModeFlag how secret scalars are written out
	PrintModeFlag = cli.StringFlag{
		Name:   "print",
		Usage:  "scalar print mode, eg: (obfuscated, clear, hex-lower, hex-upper)",
		Value:  "obfuscated",
		EnvVar: "EDKEY_PRINT",
	}
)

var (
	// CountFlag number of pairs to generate
	CountFlag = cli.Uint64Flag{
		Name:  "n",
		Usage: "number of pairs to generate",
		Value: 1,
	}

	// RoutinesFlag worker goroutines, <= 0 is relative to the CPU count
	RoutinesFlag = cli.IntFlag{
		Name:  "routines",
		Usage: "worker goroutines, 0 or negative is relative to the number of CPUs",
		Value: 0,
	}

	// KeccakFlag use legacy Keccak-512 instead of BLAKE2b-512
	KeccakFlag = cli.BoolFlag{
		Name:  "keccak",
		Usage: "hash with legacy Keccak-512 instead of BLAKE2b-512",
	}
)

var (
	// GlobalFlags flags usable in every command
	GlobalFlags = []cli.Flag{
		LogLevelFlag,
		EngineFlag,
		CacheSizeFlag,
		CacheTypeFlag,
		PrintModeFlag,
	}
)

// Package main is the dmath command-line tool.
//
// It exposes the shortest-path Engine over edge-list files and the numeric
// routines as subcommands:
//
//	dmath path -graph roads.yaml.gz -from A [-to C]
//	dmath path -graph roads.toml -from A,B,C
//	dmath primes 100
//	dmath factor 5400
//	dmath phi 5400
//	dmath cfr [-n 5] 7
//	dmath farey 5
//	dmath sums -n 10 1 2 5 10
//
// Configuration:
//   - DMATH_LOG_DEV: development preset (console format, debug level)
//   - DMATH_LOG_LEVEL: overrides the preset's level (default info)
//   - DMATH_LOG_FILE, DMATH_LOG_MAX_SIZE_MB, DMATH_LOG_MAX_AGE_DAYS: rotating log file
//   - DMATH_WORKERS: concurrency bound for multi-source path queries
//
// Results go to stdout, logs to stderr. Exit status is 0 on success, 1 on a
// runtime error and 2 on a usage error.
package main

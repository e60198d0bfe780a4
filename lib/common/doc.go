// Package common provides the configuration and logging shared by the dSER
// command line tool and the library packages.
//
// The package focuses on:
//   - Configuration of a codec session as read from flags and environment
//   - Custom logging implementation integrated with Dragonboat's logger package
//
// Key Components:
//
//   - Config: Codec options (byte order, bit overflow policy, size bound) and
//     the log level. Converts to codec.Config and renders itself for the CLI.
//
//   - Logger: Custom logger implementing Dragonboat's logger.ILogger. Library
//     packages obtain named loggers with logger.GetLogger, InitLoggers installs
//     the factory and sets the level of all of them.
package common

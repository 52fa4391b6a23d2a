// Package common contains the configuration and logging setup shared by the dbytes commands.
//
// Logging goes through the logger facade of github.com/lni/dragonboat/v4/logger.
// Packages create their logger once with logger.GetLogger(name) and InitLoggers
// installs a pipe formatted implementation writing to stderr:
//
//	2025/01/01 12:00:00 INFO  | format   | encoded document: 12 bytes
package common

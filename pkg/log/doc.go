// Package log provides a thin wrapper around the Go standard library logger
// for the INSEE search pipeline.
//
// It adds:
//   - Named service loggers via ForService(name), one per pipeline stage
//     ("client", "search", "export", "history")
//   - An automatic "[<name>>]" message prefix so interleaved stage output
//     stays attributable
//   - Warn and Debug levels on top of the default Info level
//   - Debug enablement globally (SetGlobalDebug) or per service
//     (EnableDebugFor)
//   - A swappable output writer (SetOutput) so tests can capture log lines
//
// The package name intentionally collides with stdlib "log"; alias one of
// them when both are imported:
//
//	import (
//	    stdlog "log"
//	    "github.com/Mouaadag/inseeSearchEngine/pkg/log"
//	)
package log

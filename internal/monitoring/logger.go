// internal/monitoring/logger.go
package monitoring

import "log"

// Logf is the process-wide diagnostic sink. It writes through the std
// logger until replaced with SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger swaps the sink. nil mutes all diagnostics.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// For returns a logger that prefixes every line with "component: ".
// The current sink is looked up per call, so later SetLogger calls apply.
func For(component string) func(format string, v ...interface{}) {
	prefix := component + ": "
	return func(format string, v ...interface{}) {
		Logf(prefix+format, v...)
	}
}

package tempuscache

import "go.uber.org/zap"

// nopLogger is the default logger installed by New when the caller does
// not supply one via WithLogger. Keeping this as a field (rather than
// nil-checking at every call site) means every log call in the engine
// stays a one-liner.
func nopLogger() *zap.Logger {
	return zap.NewNop()
}

package logging

// NullLogger discards all log output. It is the engine's
// default logger.
type NullLogger struct{}

func (NullLogger) Debug(_ string, _ ...Field) {}
func (NullLogger) Info(_ string, _ ...Field)  {}
func (NullLogger) Warn(_ string, _ ...Field)  {}
func (NullLogger) Error(_ string, _ ...Field) {}

// WithFields returns the NullLogger itself.
func (NullLogger) WithFields(_ ...Field) Logger {
	return NullLogger{}
}

// Close is a no-op.
func (NullLogger) Close() error { return nil }

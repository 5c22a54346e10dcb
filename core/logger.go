package core

// Logger is the application-wide logging contract. Implementations may ship
// entries to an error-reporting service in addition to stdout.
//
// expected args: error, map[string]interface{} or any other context value.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

package i

// Logger is a leveled logger.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

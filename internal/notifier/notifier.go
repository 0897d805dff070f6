package notifier

// Notifier delivers best-effort operator alerts when generation fails.
type Notifier interface {
	// Notify sends one alert. Failures are the caller's to log, not to
	// act on; alerting never blocks artifact generation.
	Notify(title, message string) error
}

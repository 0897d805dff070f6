// Package notifier delivers best-effort operator alerts when scraping or
// generation fails without a usable cache fallback.
package notifier

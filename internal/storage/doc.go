// Package storage caches the last successfully generated artifacts per
// team so a transient scrape failure republishes known-good data instead
// of an empty calendar.
package storage

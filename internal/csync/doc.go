// Package csync holds small concurrency-safe containers shared by the
// stress workload and the browser.
package csync

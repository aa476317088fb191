// Package resilience provides fault tolerance patterns for the catalog
// service: a circuit breaker guarding database calls and retry logic with
// exponential backoff for transient startup failures.
package resilience

package metrics

import "time"

// RecordArticleOperation records the result of a lifecycle operation.
// Outcome should be "success", "not_found" or "error".
func RecordArticleOperation(operation, outcome string) {
	ArticleOperationsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordResolution records how a detached author/keyword reference was
// resolved. Decision is the resolver's tagged decision ("reuse" or "create").
func RecordResolution(entityType, decision string) {
	ResolutionsTotal.WithLabelValues(entityType, decision).Inc()
}

// RecordConflict records a store constraint conflict surfaced to the caller.
func RecordConflict(operation string) {
	ConflictsTotal.WithLabelValues(operation).Inc()
}

// RecordQueryDuration records the time taken by a read-path query.
func RecordQueryDuration(query string, duration time.Duration) {
	QueryDuration.WithLabelValues(query).Observe(duration.Seconds())
}

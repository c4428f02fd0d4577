// Package history contains the append-only audit trail for request lifecycle
// changes. Every state-changing operation writes exactly one Record in the
// same unit of work as the mutation it describes, so history is never
// observed without a matching state change and vice versa. External
// notifiers subscribe to these records; the core never sends notifications.
package history

// Package request contains the Request aggregate: a transport task moving
// through the pending → accepted → arrived → completed lifecycle, with
// cancellation from pending and rejection returning a tentatively bound
// request to the open pool. All state transitions are enforced by the Status
// state machine; the aggregate can only be built through its constructors.
package request

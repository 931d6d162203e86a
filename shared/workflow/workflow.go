// Package workflow provides the durable execution contract the booking saga
// runs on: every RPC and every local side effect is a journaled step, so a
// resumed execution observes each step's effect exactly once even when the
// underlying transport delivers a request more than once.
package workflow

import (
	"context"
	"encoding/json"
)

// StepFunc is a local side effect executed at most once per logical step.
// Its result must be JSON-serializable so it can be journaled and replayed.
type StepFunc func(ctx context.Context) (interface{}, error)

// Runtime is consumed by the saga orchestrator. Implementations must
// guarantee exactly-once apparent execution per step: a step whose result is
// already journaled is never executed again, its recorded result is returned
// instead.
type Runtime interface {
	// Run executes fn once and memoizes its result under the given step
	// name. On replay the journaled result is unmarshaled into result
	// (which may be nil when the caller does not need it).
	Run(ctx context.Context, step string, fn StepFunc, result interface{}) error

	// GenerateID durably generates a random identifier. The identifier is
	// stable across retries of the same execution.
	GenerateID(ctx context.Context, step string) (string, error)

	// Call performs a durable RPC against a keyed service operation and
	// unmarshals the response into result. Transient failures are retried
	// before surfacing; terminal failures are returned immediately and are
	// never retried.
	Call(ctx context.Context, service, key, operation string, params, result interface{}) error

	// Send performs a fire-and-forget durable RPC. Delivery failures are
	// logged, not returned; the orchestrator uses it for compensations so
	// rollback never blocks on a misbehaving downstream.
	Send(ctx context.Context, service, key, operation string, params interface{}) error
}

// Transport delivers a single RPC to a keyed service operation and returns
// the raw response payload.
type Transport interface {
	Invoke(ctx context.Context, service, key, operation string, params interface{}) (json.RawMessage, error)
}

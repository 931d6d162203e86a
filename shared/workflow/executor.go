package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	defaultRetryInitialInterval = 100 * time.Millisecond
	defaultRetryMaxElapsed      = 30 * time.Second
)

// Executor implements Runtime over a Journal and a Transport. One Executor
// drives one saga execution on a single logical thread of control: step keys
// are derived from a monotonic sequence, so a resumed execution that replays
// the same deterministic step order finds its journaled results again.
type Executor struct {
	executionID   string
	journal       Journal
	transport     Transport
	logger        *logrus.Entry
	retryInitial  time.Duration
	retryMaxTotal time.Duration
	seq           int
}

// ExecutorOption configures an Executor
type ExecutorOption func(*Executor)

// WithLogger sets the executor logger
func WithLogger(logger *logrus.Entry) ExecutorOption {
	return func(e *Executor) {
		e.logger = logger
	}
}

// WithRetryPolicy tunes the transient-failure backoff policy
func WithRetryPolicy(initial, maxElapsed time.Duration) ExecutorOption {
	return func(e *Executor) {
		e.retryInitial = initial
		e.retryMaxTotal = maxElapsed
	}
}

// NewExecutor creates an Executor for one saga execution
func NewExecutor(executionID string, journal Journal, transport Transport, opts ...ExecutorOption) *Executor {
	e := &Executor{
		executionID:   executionID,
		journal:       journal,
		transport:     transport,
		logger:        logrus.WithField("execution_id", executionID),
		retryInitial:  defaultRetryInitialInterval,
		retryMaxTotal: defaultRetryMaxElapsed,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExecutionID returns the identifier this executor journals under
func (e *Executor) ExecutionID() string {
	return e.executionID
}

// Run implements Runtime
func (e *Executor) Run(ctx context.Context, step string, fn StepFunc, result interface{}) error {
	key := e.nextKey(step)

	raw, ok, err := e.journal.Lookup(ctx, e.executionID, key)
	if err != nil {
		return errors.Wrap(err, "failed to look up journal")
	}
	if ok {
		return unmarshalInto(raw, result)
	}

	value, err := fn(ctx)
	if err != nil {
		return err
	}

	raw, err = json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal result of step %s", step)
	}

	stored, err := e.journal.Record(ctx, e.executionID, key, raw)
	if err != nil {
		return errors.Wrapf(err, "failed to journal step %s", step)
	}

	return unmarshalInto(stored, result)
}

// GenerateID implements Runtime
func (e *Executor) GenerateID(ctx context.Context, step string) (string, error) {
	var id string
	err := e.Run(ctx, step, func(context.Context) (interface{}, error) {
		return uuid.New().String(), nil
	}, &id)
	return id, err
}

// Call implements Runtime
func (e *Executor) Call(ctx context.Context, service, key, operation string, params, result interface{}) error {
	stepKey := e.nextKey(service + "." + operation)

	raw, ok, err := e.journal.Lookup(ctx, e.executionID, stepKey)
	if err != nil {
		return errors.Wrap(err, "failed to look up journal")
	}
	if !ok {
		raw, err = e.invokeWithRetry(ctx, service, key, operation, params)
		if err != nil {
			return err
		}

		// The journal is authoritative: when another executor of the same
		// execution won the race, its result replaces the local one.
		raw, err = e.journal.Record(ctx, e.executionID, stepKey, raw)
		if err != nil {
			return errors.Wrapf(err, "failed to journal call %s.%s", service, operation)
		}
	}

	return unmarshalInto(raw, result)
}

// Send implements Runtime
func (e *Executor) Send(ctx context.Context, service, key, operation string, params interface{}) error {
	stepKey := e.nextKey("send:" + service + "." + operation)

	_, ok, err := e.journal.Lookup(ctx, e.executionID, stepKey)
	if err != nil {
		return errors.Wrap(err, "failed to look up journal")
	}
	if ok {
		return nil
	}

	if _, err := e.transport.Invoke(ctx, service, key, operation, params); err != nil {
		// Fire-and-forget: the dispatch attempt is journaled either way so
		// a replayed execution does not dispatch it twice.
		e.logger.WithError(err).WithFields(logrus.Fields{
			"service":   service,
			"operation": operation,
		}).Warn("fire-and-forget delivery failed")
	}

	if _, err := e.journal.Record(ctx, e.executionID, stepKey, json.RawMessage(`{}`)); err != nil {
		return errors.Wrapf(err, "failed to journal send %s.%s", service, operation)
	}

	return nil
}

func (e *Executor) invokeWithRetry(ctx context.Context, service, key, operation string, params interface{}) (json.RawMessage, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = e.retryInitial
	policy.MaxElapsedTime = e.retryMaxTotal

	return backoff.RetryWithData(func() (json.RawMessage, error) {
		raw, err := e.transport.Invoke(ctx, service, key, operation, params)
		if err != nil {
			if IsTerminal(err) {
				return nil, backoff.Permanent(err)
			}
			e.logger.WithError(err).WithFields(logrus.Fields{
				"service":   service,
				"operation": operation,
			}).Warn("transient call failure, retrying")
			return nil, err
		}
		return raw, nil
	}, backoff.WithContext(policy, ctx))
}

func (e *Executor) nextKey(step string) string {
	key := fmt.Sprintf("%03d:%s", e.seq, step)
	e.seq++
	return key
}

func unmarshalInto(raw json.RawMessage, result interface{}) error {
	if result == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return errors.Wrap(err, "failed to unmarshal step result")
	}
	return nil
}

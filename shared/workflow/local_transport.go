package workflow

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ARM-software/golang-utils/utils/commonerrors"
	"github.com/pkg/errors"
)

// LocalHandler serves one keyed service operation in-process
type LocalHandler func(ctx context.Context, key string, params json.RawMessage) (interface{}, error)

// LocalTransport routes invocations to handlers registered in the same
// process. The single-binary deployment and the tests both use it, keeping
// error types (notably TerminalError) intact across the call boundary.
type LocalTransport struct {
	mu       sync.RWMutex
	handlers map[string]LocalHandler
}

// NewLocalTransport creates an empty in-process transport
func NewLocalTransport() *LocalTransport {
	return &LocalTransport{handlers: make(map[string]LocalHandler)}
}

// Register binds a handler to service/operation
func (t *LocalTransport) Register(service, operation string, handler LocalHandler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handlers[service+"/"+operation] = handler
}

// Invoke implements Transport
func (t *LocalTransport) Invoke(ctx context.Context, service, key, operation string, params interface{}) (json.RawMessage, error) {
	t.mu.RLock()
	handler, ok := t.handlers[service+"/"+operation]
	t.mu.RUnlock()

	if !ok {
		return nil, NewTerminalError(errors.Wrapf(commonerrors.ErrNotFound, "no handler for %s/%s", service, operation))
	}

	payload, err := json.Marshal(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal params")
	}

	result, err := handler(ctx, key, payload)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal result")
	}
	return raw, nil
}

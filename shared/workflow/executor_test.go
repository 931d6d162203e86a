package workflow

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	calls  int
	invoke func(call int, service, key, operation string, params interface{}) (json.RawMessage, error)
}

func (t *fakeTransport) Invoke(_ context.Context, service, key, operation string, params interface{}) (json.RawMessage, error) {
	t.calls++
	return t.invoke(t.calls, service, key, operation, params)
}

func TestExecutor_RunExecutesOnce(t *testing.T) {
	journal := NewMemoryJournal()
	executions := 0

	step := func(context.Context) (interface{}, error) {
		executions++
		return map[string]string{"value": "first"}, nil
	}

	executor := NewExecutor("exec-1", journal, NewLocalTransport())

	var result map[string]string
	require.NoError(t, executor.Run(context.Background(), "side-effect", step, &result))
	assert.Equal(t, "first", result["value"])
	assert.Equal(t, 1, executions)

	// A resumed execution replays the journaled result without re-running
	// the side effect.
	replayed := NewExecutor("exec-1", journal, NewLocalTransport())
	var replayResult map[string]string
	require.NoError(t, replayed.Run(context.Background(), "side-effect", step, &replayResult))
	assert.Equal(t, "first", replayResult["value"])
	assert.Equal(t, 1, executions)
}

func TestExecutor_RunPropagatesStepError(t *testing.T) {
	journal := NewMemoryJournal()
	executor := NewExecutor("exec-1", journal, NewLocalTransport())

	stepErr := errors.New("boom")
	err := executor.Run(context.Background(), "side-effect", func(context.Context) (interface{}, error) {
		return nil, stepErr
	}, nil)

	assert.ErrorIs(t, err, stepErr)
	assert.Equal(t, 0, journal.Len(), "failed steps must not be journaled")
}

func TestExecutor_GenerateIDStableAcrossReplay(t *testing.T) {
	journal := NewMemoryJournal()

	first, err := NewExecutor("exec-1", journal, NewLocalTransport()).GenerateID(context.Background(), "trip_id")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := NewExecutor("exec-1", journal, NewLocalTransport()).GenerateID(context.Background(), "trip_id")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := NewExecutor("exec-2", journal, NewLocalTransport()).GenerateID(context.Background(), "trip_id")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestExecutor_CallJournalsResult(t *testing.T) {
	journal := NewMemoryJournal()
	transport := &fakeTransport{
		invoke: func(_ int, service, key, operation string, _ interface{}) (json.RawMessage, error) {
			assert.Equal(t, "flights", service)
			assert.Equal(t, "trip-1", key)
			assert.Equal(t, "reserve", operation)
			return json.RawMessage(`{"booking_id":"b-1"}`), nil
		},
	}

	executor := NewExecutor("exec-1", journal, transport)

	var result struct {
		BookingID string `json:"booking_id"`
	}
	require.NoError(t, executor.Call(context.Background(), "flights", "trip-1", "reserve", map[string]string{}, &result))
	assert.Equal(t, "b-1", result.BookingID)
	assert.Equal(t, 1, transport.calls)

	// Replay serves the call from the journal.
	replayed := NewExecutor("exec-1", journal, transport)
	result.BookingID = ""
	require.NoError(t, replayed.Call(context.Background(), "flights", "trip-1", "reserve", map[string]string{}, &result))
	assert.Equal(t, "b-1", result.BookingID)
	assert.Equal(t, 1, transport.calls)
}

func TestExecutor_CallRetriesTransientFailures(t *testing.T) {
	transport := &fakeTransport{
		invoke: func(call int, _, _, _ string, _ interface{}) (json.RawMessage, error) {
			if call < 3 {
				return nil, errors.New("connection refused")
			}
			return json.RawMessage(`{"booking_id":"b-1"}`), nil
		},
	}

	executor := NewExecutor("exec-1", NewMemoryJournal(), transport,
		WithRetryPolicy(time.Millisecond, time.Second))

	var result struct {
		BookingID string `json:"booking_id"`
	}
	require.NoError(t, executor.Call(context.Background(), "flights", "trip-1", "reserve", nil, &result))
	assert.Equal(t, "b-1", result.BookingID)
	assert.Equal(t, 3, transport.calls)
}

func TestExecutor_CallDoesNotRetryTerminalFailures(t *testing.T) {
	transport := &fakeTransport{
		invoke: func(_ int, _, _, _ string, _ interface{}) (json.RawMessage, error) {
			return nil, NewTerminalErrorf("failed to reserve the flight")
		},
	}

	journal := NewMemoryJournal()
	executor := NewExecutor("exec-1", journal, transport,
		WithRetryPolicy(time.Millisecond, time.Second))

	err := executor.Call(context.Background(), "flights", "trip-1", "reserve", nil, nil)
	require.Error(t, err)
	assert.True(t, IsTerminal(err))
	assert.Equal(t, 1, transport.calls)
	assert.Equal(t, 0, journal.Len())
}

func TestExecutor_SendSwallowsDeliveryFailures(t *testing.T) {
	transport := &fakeTransport{
		invoke: func(_ int, _, _, _ string, _ interface{}) (json.RawMessage, error) {
			return nil, errors.New("unreachable")
		},
	}

	journal := NewMemoryJournal()
	executor := NewExecutor("exec-1", journal, transport)

	require.NoError(t, executor.Send(context.Background(), "cars", "trip-1", "cancel", map[string]string{"booking_id": "b-2"}))
	assert.Equal(t, 1, transport.calls)
	assert.Equal(t, 1, journal.Len(), "dispatch attempt must be journaled")

	// Replay must not dispatch the send again.
	replayed := NewExecutor("exec-1", journal, transport)
	require.NoError(t, replayed.Send(context.Background(), "cars", "trip-1", "cancel", map[string]string{"booking_id": "b-2"}))
	assert.Equal(t, 1, transport.calls)
}

func TestMemoryJournal_FirstRecordWins(t *testing.T) {
	journal := NewMemoryJournal()

	stored, err := journal.Record(context.Background(), "exec-1", "000:side-effect", json.RawMessage(`{"v":"first"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":"first"}`, string(stored))

	stored, err = journal.Record(context.Background(), "exec-1", "000:side-effect", json.RawMessage(`{"v":"second"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":"first"}`, string(stored))
	assert.Equal(t, 1, journal.Len())
}

// blindJournal hides recorded entries from Lookup, forcing the record
// conflict two executors racing the same execution would hit.
type blindJournal struct {
	*MemoryJournal
}

func (j *blindJournal) Lookup(context.Context, string, string) (json.RawMessage, bool, error) {
	return nil, false, nil
}

func TestExecutor_RacingWritersObserveFirstResult(t *testing.T) {
	journal := &blindJournal{NewMemoryJournal()}

	var first string
	require.NoError(t, NewExecutor("exec-1", journal, NewLocalTransport()).Run(context.Background(), "side-effect",
		func(context.Context) (interface{}, error) { return "first", nil }, &first))

	var second string
	require.NoError(t, NewExecutor("exec-1", journal, NewLocalTransport()).Run(context.Background(), "side-effect",
		func(context.Context) (interface{}, error) { return "second", nil }, &second))

	assert.Equal(t, "first", first)
	assert.Equal(t, "first", second, "the journal row is authoritative over the local result")
}

func TestLocalTransport_UnknownOperationIsTerminal(t *testing.T) {
	transport := NewLocalTransport()

	_, err := transport.Invoke(context.Background(), "flights", "trip-1", "reserve", nil)
	require.Error(t, err)
	assert.True(t, IsTerminal(err))
}

func TestLocalTransport_RoundTrip(t *testing.T) {
	transport := NewLocalTransport()
	transport.Register("flights", "reserve", func(_ context.Context, key string, params json.RawMessage) (interface{}, error) {
		var req struct {
			TripID string `json:"trip_id"`
		}
		require.NoError(t, json.Unmarshal(params, &req))
		assert.Equal(t, key, req.TripID)
		return map[string]string{"booking_id": "b-1"}, nil
	})

	raw, err := transport.Invoke(context.Background(), "flights", "trip-7", "reserve", map[string]string{"trip_id": "trip-7"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"booking_id":"b-1"}`, string(raw))
}

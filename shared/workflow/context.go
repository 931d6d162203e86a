package workflow

import "context"

type contextKey struct{}

// WithRuntime stores the runtime driving the current execution in the context
func WithRuntime(ctx context.Context, rt Runtime) context.Context {
	return context.WithValue(ctx, contextKey{}, rt)
}

// FromContext extracts the runtime for the current execution
func FromContext(ctx context.Context) (Runtime, bool) {
	rt, ok := ctx.Value(contextKey{}).(Runtime)
	return rt, ok
}

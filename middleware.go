package sqlcraft

import "context"

// Handler processes one statement context. The last handler in every chain
// hands the statement to the executor.
type Handler interface {
	HandleStatement(ctx context.Context, sc *StatementContext) (*StatementResult, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, sc *StatementContext) (*StatementResult, error)

func (h HandlerFunc) HandleStatement(ctx context.Context, sc *StatementContext) (*StatementResult, error) {
	return h(ctx, sc)
}

// Middleware wraps a handler with additional behavior.
type Middleware func(Handler) Handler

// BuildChain wires the middlewares around the core handler. Middlewares are
// applied back to front so the first registered one runs first.
func BuildChain(core Handler, ms []Middleware) Handler {
	h := core
	for i := len(ms) - 1; i >= 0; i-- {
		h = ms[i](h)
	}
	return h
}

// coreHandler is the last element of every chain.
type coreHandler struct {
	executor Executor
}

func (c *coreHandler) HandleStatement(ctx context.Context, sc *StatementContext) (*StatementResult, error) {
	return c.executor.ExecuteStatement(ctx, sc)
}

package llm

import (
	"context"
	"log"
)

// Middleware wraps a Client with a cross-cutting concern.
type Middleware func(Client) Client

// Wrap applies middlewares left to right, so the first one sees the call
// first.
func Wrap(c Client, mws ...Middleware) Client {
	for i := len(mws) - 1; i >= 0; i-- {
		c = mws[i](c)
	}
	return c
}

// WithLogging logs request size and errors. Pass nil to use log.Default().
func WithLogging(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next Client) Client {
		return &logging{next: next, log: logger}
	}
}

type logging struct {
	next Client
	log  *log.Logger
}

func (l *logging) Name() string { return l.next.Name() }
func (l *logging) Close() error { return l.next.Close() }

func (l *logging) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	size := 0
	for _, m := range messages {
		size += len(m.Content)
	}
	l.log.Printf("LLM request (%s): %d messages, %d bytes", l.next.Name(), len(messages), size)
	out, err := l.next.Complete(ctx, messages, opts)
	if err != nil {
		l.log.Printf("LLM error (%s): %v", l.next.Name(), err)
	}
	return out, err
}

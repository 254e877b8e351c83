package mock

import (
	"context"

	"github.com/fwojciec/secmda"
)

var _ secmda.Analyst = (*Analyst)(nil)

// Analyst is a mock implementation of secmda.Analyst.
type Analyst struct {
	ReplyFn func(ctx context.Context, conv *secmda.Conversation) (string, error)
}

func (a *Analyst) Reply(ctx context.Context, conv *secmda.Conversation) (string, error) {
	return a.ReplyFn(ctx, conv)
}

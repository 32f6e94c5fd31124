package notify

import "context"

// NoopNotifier discards all notices.
type NoopNotifier struct{}

func (NoopNotifier) Notify(ctx context.Context, notice Notice) {}

package event

import "context"

// MessageHandler processes one raw queue message. The wrappers in this
// package compose around it: idempotency, retry, timeout and metrics.
type MessageHandler func(ctx context.Context, msg []byte, headers map[string]interface{}) error

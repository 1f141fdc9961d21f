package events

import (
	"context"
	"time"
)

type Event interface {
	GetName() string
	GetDateTime() time.Time
	GetPayload() interface{}
	SetPayload(payload interface{})
}

type EventDispatcher interface {
	Dispatch(ctx context.Context, event Event) error
	DispatchRaw(ctx context.Context, topic string, payload []byte, headers map[string]string) error
}

type EventHandler interface {
	Handler(event Event)
}

// BaseEvent is a minimal Event implementation for publish-only callers.
type BaseEvent struct {
	Name     string
	DateTime time.Time
	Payload  interface{}
}

func NewBaseEvent(name string) *BaseEvent {
	return &BaseEvent{Name: name, DateTime: time.Now()}
}

func (e *BaseEvent) GetName() string          { return e.Name }
func (e *BaseEvent) GetDateTime() time.Time   { return e.DateTime }
func (e *BaseEvent) GetPayload() interface{}  { return e.Payload }
func (e *BaseEvent) SetPayload(p interface{}) { e.Payload = p }

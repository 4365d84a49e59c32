// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"encoding/json"
	"sync/atomic"

	"github.com/juju/errors"
)

// Notification is a server-initiated message such as "Player.OnPlay".
type Notification struct {
	Method string
	Params json.RawMessage
}

// NotificationParams is the params shape Kodi uses for its announcements.
type NotificationParams struct {
	Sender string          `json:"sender"`
	Data   json.RawMessage `json:"data"`
}

// Decode unmarshals the notification's params into v.
func (n Notification) Decode(v any) error {
	if err := json.Unmarshal(n.Params, v); err != nil {
		return errors.Annotatef(err, "decode %s params", n.Method)
	}
	return nil
}

// NotificationQueue buffers notifications for a consumer that reads at its
// own pace. When the buffer is full new notifications are dropped so the
// read loop never blocks.
type NotificationQueue struct {
	ch      chan Notification
	dropped atomic.Uint64
}

// NewNotificationQueue returns a queue holding up to size notifications.
func NewNotificationQueue(size int) *NotificationQueue {
	return &NotificationQueue{ch: make(chan Notification, size)}
}

// Handler returns the handler to pass to WithNotificationHandler.
func (q *NotificationQueue) Handler() NotificationHandler {
	return func(method string, params json.RawMessage) {
		select {
		case q.ch <- Notification{Method: method, Params: params}:
		default:
			q.dropped.Add(1)
		}
	}
}

// C delivers queued notifications.
func (q *NotificationQueue) C() <-chan Notification {
	return q.ch
}

// Dropped returns how many notifications were discarded on a full buffer.
func (q *NotificationQueue) Dropped() uint64 {
	return q.dropped.Load()
}

// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wschan carries JSON-RPC messages over a WebSocket connection as
// a jrpc2 channel, one text frame per message.
package wschan

import (
	"context"

	cws "github.com/coder/websocket"
	"github.com/creachadair/jrpc2/channel"
)

var _ channel.Channel = (*Channel)(nil)

// Channel is a channel.Channel backed by a coder/websocket.Conn. Its
// context bounds every read and write; cancelling it tears the socket down.
type Channel struct {
	conn *cws.Conn
	ctx  context.Context
}

// New wraps conn. ctx must stay live for as long as the channel is used.
func New(ctx context.Context, conn *cws.Conn) *Channel {
	return &Channel{conn: conn, ctx: ctx}
}

// Send writes one message as a text frame.
func (c *Channel) Send(data []byte) error {
	return c.conn.Write(c.ctx, cws.MessageText, data)
}

// Recv reads the next message.
func (c *Channel) Recv() ([]byte, error) {
	_, data, err := c.conn.Read(c.ctx)
	return data, err
}

// Close sends a normal closure.
func (c *Channel) Close() error {
	return c.conn.Close(cws.StatusNormalClosure, "")
}

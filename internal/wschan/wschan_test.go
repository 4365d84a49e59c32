// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wschan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	cws "github.com/coder/websocket"
	"github.com/stretchr/testify/require"
)

func TestChannelRoundTrip(t *testing.T) {
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := cws.Accept(w, r, nil)
		if err != nil {
			return
		}
		ch := New(r.Context(), conn)
		defer ch.Close()
		for {
			data, err := ch.Recv()
			if err != nil {
				return
			}
			if err := ch.Send(data); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	conn, _, err := cws.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(err)
	ch := New(ctx, conn)

	msg := `{"jsonrpc":"2.0","method":"JSONRPC.Ping"}`
	require.NoError(ch.Send([]byte(msg)))
	data, err := ch.Recv()
	require.NoError(err)
	require.Equal(msg, string(data))

	require.NoError(ch.Close())
	_, err = ch.Recv()
	require.Error(err)
}

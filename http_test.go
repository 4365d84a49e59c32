// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/luxfi/kodi/internal/fakekodi"
)

// newFakeKodi serves a fake media center for the duration of the test.
func newFakeKodi(t *testing.T, opts ...fakekodi.Option) (*fakekodi.Server, *httptest.Server) {
	t.Helper()
	opts = append([]fakekodi.Option{fakekodi.WithLogger(zaptest.NewLogger(t))}, opts...)
	fake, err := fakekodi.New(opts...)
	require.NoError(t, err)
	srv := httptest.NewServer(fake)
	t.Cleanup(func() {
		fake.Close()
		srv.Close()
	})
	return fake, srv
}

// echoRequest answers every call with the decoded request envelope.
func echoRequest(t *testing.T, answer func(w http.ResponseWriter, req map[string]json.RawMessage)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		answer(w, req)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPTransportInvoke(t *testing.T) {
	require := require.New(t)
	_, srv := newFakeKodi(t)

	tr := NewHTTPTransport(srv.URL+"/jsonrpc", WithLogger(zaptest.NewLogger(t)))
	defer tr.Close()

	result, err := tr.Invoke(context.Background(), "JSONRPC.Ping", nil)
	require.NoError(err)
	require.JSONEq(`"pong"`, string(result))
}

func TestHTTPTransportRemoteError(t *testing.T) {
	require := require.New(t)
	_, srv := newFakeKodi(t)

	tr := NewHTTPTransport(srv.URL)
	defer tr.Close()

	_, err := tr.Invoke(context.Background(), "GUI.ShowNotification", map[string]string{"title": "only a title"})
	require.True(IsRemoteError(err))
	remote, ok := errors.AsType[*RemoteError](err)
	require.True(ok)
	require.Equal(RemoteError{Code: CodeInvalidParams, Message: "Invalid params."}, *remote)
}

func TestHTTPTransportEnvelope(t *testing.T) {
	require := require.New(t)
	var (
		seen   map[string]json.RawMessage
		header http.Header
		method string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
		method = r.Method
		if err := json.NewDecoder(r.Body).Decode(&seen); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":"OK"}`, seen["id"])
	}))
	defer srv.Close()

	tr := NewHTTPTransport(srv.URL, WithBasicAuth("kodi", "secret"), WithHeader("X-Client", "test"))
	defer tr.Close()

	_, err := tr.Invoke(context.Background(), "Player.Stop", map[string]int{"playerid": 1})
	require.NoError(err)

	require.Equal(http.MethodPost, method)
	require.JSONEq(`"2.0"`, string(seen["jsonrpc"]))
	require.JSONEq(`"Player.Stop"`, string(seen["method"]))
	require.JSONEq(`{"playerid":1}`, string(seen["params"]))
	require.Equal("application/json", header.Get("Content-Type"))
	require.Equal("test", header.Get("X-Client"))

	r := &http.Request{Header: header}
	user, pass, ok := r.BasicAuth()
	require.True(ok)
	require.Equal("kodi", user)
	require.Equal("secret", pass)
}

func TestHTTPTransportBasicAuth(t *testing.T) {
	_, srv := newFakeKodi(t, fakekodi.WithBasicAuth("kodi", "secret"))

	t.Run("missing credentials", func(t *testing.T) {
		tr := NewHTTPTransport(srv.URL)
		defer tr.Close()

		_, err := tr.Invoke(context.Background(), "JSONRPC.Ping", nil)
		status, ok := errors.AsType[*StatusError](err)
		require.True(t, ok, "got %v", err)
		assert.Equal(t, http.StatusUnauthorized, status.StatusCode)
		assert.Contains(t, status.Body, "Unauthorized")
	})

	t.Run("valid credentials", func(t *testing.T) {
		tr := NewHTTPTransport(srv.URL, WithBasicAuth("kodi", "secret"))
		defer tr.Close()

		result, err := tr.Invoke(context.Background(), "JSONRPC.Ping", nil)
		require.NoError(t, err)
		assert.JSONEq(t, `"pong"`, string(result))
	})
}

func TestHTTPTransportStatusError(t *testing.T) {
	require := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	tr := NewHTTPTransport(srv.URL)
	defer tr.Close()

	_, err := tr.Invoke(context.Background(), "JSONRPC.Ping", nil)
	require.Equal(&StatusError{StatusCode: http.StatusInternalServerError, Body: "boom"}, errors.Cause(err))
	require.False(IsRemoteError(err))
}

func TestHTTPTransportRemoteErrorWithStatus(t *testing.T) {
	require := require.New(t)
	srv := echoRequest(t, func(w http.ResponseWriter, req map[string]json.RawMessage) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"error":{"code":-32601,"message":"Method not found."}}`, req["id"])
	})

	tr := NewHTTPTransport(srv.URL)
	defer tr.Close()

	_, err := tr.Invoke(context.Background(), "Nope.Nothing", nil)
	require.True(IsRemoteError(err))
}

func TestHTTPTransportMalformed(t *testing.T) {
	tests := []struct {
		name  string
		reply func(id json.RawMessage) string
	}{
		{
			name:  "not json",
			reply: func(json.RawMessage) string { return "<html>" },
		},
		{
			name:  "id mismatch",
			reply: func(json.RawMessage) string { return `{"jsonrpc":"2.0","id":"other","result":"OK"}` },
		},
		{
			name:  "neither result nor error",
			reply: func(id json.RawMessage) string { return fmt.Sprintf(`{"jsonrpc":"2.0","id":%s}`, id) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := echoRequest(t, func(w http.ResponseWriter, req map[string]json.RawMessage) {
				fmt.Fprint(w, tt.reply(req["id"]))
			})
			tr := NewHTTPTransport(srv.URL)
			defer tr.Close()

			_, err := tr.Invoke(context.Background(), "JSONRPC.Ping", nil)
			require.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestHTTPTransportTimeout(t *testing.T) {
	require := require.New(t)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	clk := testclock.NewClock(time.Now())
	tr := NewHTTPTransport(srv.URL, WithClock(clk), WithRequestTimeout(2*time.Second))
	defer tr.Close()

	errc := make(chan error, 1)
	go func() {
		_, err := tr.Invoke(context.Background(), "JSONRPC.Ping", nil)
		errc <- err
	}()
	require.NoError(clk.WaitAdvance(2*time.Second, time.Second, 1))

	err := <-errc
	require.ErrorIs(err, ErrTimeout)
	require.True(errors.Is(err, errors.Timeout))
}

func TestHTTPTransportReplyBeatsTimer(t *testing.T) {
	require := require.New(t)
	_, srv := newFakeKodi(t)

	clk := testclock.NewClock(time.Now())
	tr := NewHTTPTransport(srv.URL, WithClock(clk), WithRequestTimeout(2*time.Second))
	defer tr.Close()

	result, err := tr.Invoke(context.Background(), "JSONRPC.Ping", nil)
	require.NoError(err)
	require.JSONEq(`"pong"`, string(result))

	// The stopped timer must not fire into a later call.
	clk.Advance(time.Minute)
	result, err = tr.Invoke(context.Background(), "JSONRPC.Ping", nil)
	require.NoError(err)
	require.JSONEq(`"pong"`, string(result))
}

func TestHTTPTransportContextCanceled(t *testing.T) {
	_, srv := newFakeKodi(t)
	tr := NewHTTPTransport(srv.URL)
	defer tr.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := tr.Invoke(ctx, "JSONRPC.Ping", nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestHTTPTransportClosed(t *testing.T) {
	require := require.New(t)
	_, srv := newFakeKodi(t)

	tr := NewHTTPTransport(srv.URL)
	require.NoError(tr.Close())
	require.NoError(tr.Close())

	_, err := tr.Invoke(context.Background(), "JSONRPC.Ping", nil)
	require.ErrorIs(err, ErrClosed)
}

func TestHTTPTransportEmptyMethod(t *testing.T) {
	tr := NewHTTPTransport("http://127.0.0.1:1")
	defer tr.Close()

	_, err := tr.Invoke(context.Background(), "", nil)
	require.ErrorIs(t, err, ErrEmptyMethod)
}

func TestCleanlyCloseBody(t *testing.T) {
	require := require.New(t)
	require.NoError(CleanlyCloseBody(nil))

	r, w := io.Pipe()
	go func() {
		_, _ = w.Write([]byte("unread"))
		_ = w.Close()
	}()
	require.NoError(CleanlyCloseBody(r))
}

func TestTruncate(t *testing.T) {
	require := require.New(t)
	require.Equal("abc", truncate([]byte(" abc \n"), 10))
	require.Equal("ab", truncate([]byte("abcdef"), 2))
}

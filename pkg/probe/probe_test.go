// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package probe

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	endpoint string
	code     int
}

func testFunc(t *testing.T, addr string, ts []testCase) {
	for _, tt := range ts {
		resp, err := http.Get("http://" + addr + tt.endpoint)
		require.NoError(t, err)
		assert.Equal(t, tt.code, resp.StatusCode, tt.endpoint)
		resp.Body.Close()
	}
}

func TestBasicProbe(t *testing.T) {
	s := New("127.0.0.1:0")
	ctx := context.Background()
	require.NoError(t, s.Start(ctx))
	addr := s.Addr()

	notReady := []testCase{
		{"/liveness", http.StatusOK},
		{"/readiness", http.StatusServiceUnavailable},
		{"/health", http.StatusServiceUnavailable},
	}
	ready := []testCase{
		{"/liveness", http.StatusOK},
		{"/readiness", http.StatusOK},
		{"/health", http.StatusOK},
	}
	testFunc(t, addr, notReady)
	s.Ready()
	testFunc(t, addr, ready)
	s.NotReady()
	testFunc(t, addr, notReady)

	resp, err := http.Get("http://" + addr + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), "go_goroutines"))

	require.NoError(t, s.Stop(ctx))
	_, err = http.Get("http://" + addr + "/liveness")
	require.Error(t, err)
}

func TestReadinessHandler(t *testing.T) {
	ctx := context.Background()
	s := New("127.0.0.1:0", WithReadinessHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})))
	require.NoError(t, s.Start(ctx))
	defer s.Stop(ctx)

	s.Ready()
	testFunc(t, s.Addr(), []testCase{
		{"/liveness", http.StatusOK},
		{"/readiness", http.StatusAccepted},
		{"/health", http.StatusAccepted},
	})
}

func TestListenError(t *testing.T) {
	ctx := context.Background()
	s := New("127.0.0.1:0")
	require.NoError(t, s.Start(ctx))
	defer s.Stop(ctx)
	require.Error(t, New(s.Addr()).Start(ctx))
}

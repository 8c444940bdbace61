package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencer-trust/live"
)

func dialLive(t *testing.T, srv *httptest.Server, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readUpdate(t *testing.T, conn *websocket.Conn) live.Update {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var u live.Update
	require.NoError(t, conn.ReadJSON(&u))
	return u
}

func TestLive_StreamsStateAndAppliesFilters(t *testing.T) {
	r, _ := newTestServer(t, newFakeSource())
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn := dialLive(t, srv, "/api/live/peter-attia?category=nutrition")

	assert.Equal(t, live.UpdateLoading, readUpdate(t, conn).Type)
	first := readUpdate(t, conn)
	require.Equal(t, live.UpdateState, first.Type)
	assert.Equal(t, 2, first.Count)
	assert.Equal(t, "category=nutrition", first.Query)
	assert.Contains(t, first.HTML, "Showing 2 claims")

	require.NoError(t, conn.WriteJSON(live.Message{Type: live.MessageSet, Param: "status", Value: "debunked"}))
	set := readUpdate(t, conn)
	assert.Equal(t, 1, set.Count)
	assert.Equal(t, "category=nutrition&status=debunked", set.Query)
	assert.Contains(t, set.HTML, "Sugar causes hyperactivity")
	assert.Contains(t, set.HTML, `href="/peter-attia?category=nutrition"`)
}

func TestLive_DebouncesSearchInput(t *testing.T) {
	r, _ := newTestServer(t, newFakeSource())
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn := dialLive(t, srv, "/api/live/peter-attia")
	readUpdate(t, conn)
	readUpdate(t, conn)

	for _, v := range []string{"s", "su", "sug"} {
		require.NoError(t, conn.WriteJSON(live.Message{Type: live.MessageInput, Value: v}))
	}
	u := readUpdate(t, conn)
	assert.Equal(t, "search=sug", u.Query)
	assert.Equal(t, 1, u.Count)

	require.NoError(t, conn.WriteJSON(live.Message{Type: live.MessageClear}))
	cleared := readUpdate(t, conn)
	assert.Equal(t, "", cleared.Query)
	assert.Equal(t, 3, cleared.Count)
}

func TestLive_UsesHandoffFromPageRender(t *testing.T) {
	src := newFakeSource()
	r, h := newTestServer(t, src)
	srv := httptest.NewServer(r)
	defer srv.Close()

	token := h.handoff.Put(src.profiles["Peter Attia"])
	conn := dialLive(t, srv, "/api/live/peter-attia?token="+token)
	readUpdate(t, conn)
	u := readUpdate(t, conn)

	assert.Equal(t, live.UpdateState, u.Type)
	assert.Equal(t, "", u.Query)
	assert.Equal(t, 0, src.Calls())
}

func TestLive_FetchesProfile_When_TokenUnknown(t *testing.T) {
	src := newFakeSource()
	r, _ := newTestServer(t, src)
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn := dialLive(t, srv, "/api/live/peter-attia?token=stale")
	readUpdate(t, conn)
	u := readUpdate(t, conn)

	assert.Equal(t, live.UpdateState, u.Type)
	assert.Equal(t, 1, src.Calls())
}

func TestLive_EmitsEmpty_When_ProfileMissing(t *testing.T) {
	r, _ := newTestServer(t, newFakeSource())
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn := dialLive(t, srv, "/api/live/nobody")
	readUpdate(t, conn)
	assert.Equal(t, live.UpdateEmpty, readUpdate(t, conn).Type)
}

// This file is part of vinput.
//
// vinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vinput.  If not, see <https://www.gnu.org/licenses/>.

package touchbridge_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/vinput/controllers"
	"github.com/jetsetilly/vinput/curated"
	"github.com/jetsetilly/vinput/keys"
	"github.com/jetsetilly/vinput/touch"
	"github.com/jetsetilly/vinput/touchbridge"
	"github.com/jetsetilly/vinput/userinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	ev, err := touchbridge.Decode([]byte(`{"type":"touch","phase":"down","id":1110,"x":0.5,"y":0.25}`))
	require.NoError(t, err)
	assert.Equal(t, userinput.EventTouch{
		Phase:   userinput.TouchDown,
		Contact: touch.ContactID(1110),
		X:       0.5,
		Y:       0.25,
	}, ev)

	ev, err = touchbridge.Decode([]byte(`{"type":"key","key":"KEY_F2","down":true}`))
	require.NoError(t, err)
	assert.Equal(t, userinput.EventKeyboard{Key: keys.F2, Down: true}, ev)

	ev, err = touchbridge.Decode([]byte(`{"type":"button","button":"dpadleft","down":true}`))
	require.NoError(t, err)
	assert.Equal(t, userinput.EventControllerButton{Button: controllers.ButtonDPadLeft, Down: true}, ev)

	ev, err = touchbridge.Decode([]byte(`{"type":"device","change":"removed"}`))
	require.NoError(t, err)
	assert.Equal(t, userinput.EventControllerDevice{Change: userinput.DeviceRemoved}, ev)

	for _, bad := range []string{
		`not json`,
		`{"type":"touch","phase":"hover"}`,
		`{"type":"key","key":"NOT_A_KEY"}`,
		`{"type":"button","button":"Z"}`,
		`{"type":"wave"}`,
	} {
		_, err = touchbridge.Decode([]byte(bad))
		assert.True(t, curated.Is(err, touchbridge.BadMessage), bad)
	}
}

func receive(t *testing.T, srv *touchbridge.Server) userinput.Event {
	t.Helper()
	select {
	case ev := <-srv.Events():
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return nil
}

func TestServer(t *testing.T) {
	srv := touchbridge.NewServer(16)
	hs := httptest.NewServer(srv)
	defer hs.Close()
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(hs.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage,
		[]byte(`{"type":"touch","phase":"down","id":1114,"x":0.5,"y":0.1}`)))
	ev := receive(t, srv)
	assert.Equal(t, userinput.TouchDown, ev.(userinput.EventTouch).Phase)

	// bad messages are answered with an error
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"wave"}`)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(data), "unknown type")

	// closing the connection lifts the contact
	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()

	ev = receive(t, srv)
	assert.Equal(t, userinput.EventTouch{Phase: userinput.TouchUp, Contact: touch.ContactID(1114)}, ev)
}

func TestServerFullQueue(t *testing.T) {
	srv := touchbridge.NewServer(1)
	hs := httptest.NewServer(srv)
	defer hs.Close()
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(hs.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// contact in the throttle half of the pedal zone. nothing is read from
	// the queue until all three messages are sent
	for _, msg := range []string{
		`{"type":"touch","phase":"down","id":5,"x":0.8,"y":0.3}`,
		`{"type":"touch","phase":"motion","id":5,"x":0.8,"y":0.35}`,
		`{"type":"touch","phase":"up","id":5}`,
	} {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
	}

	var clk keys.ManualClock
	sys := userinput.NewSystem(&clk, nil)
	sys.Initialise()

	// the motion event may be dropped but the up event must arrive
	ev := receive(t, srv)
	require.Equal(t, userinput.TouchDown, ev.(userinput.EventTouch).Phase)
	sys.HandleEvent(ev)
	assert.True(t, sys.IsKeyPressed(keys.W))

	for {
		ev = receive(t, srv)
		sys.HandleEvent(ev)
		if ev.(userinput.EventTouch).Phase == userinput.TouchUp {
			break
		}
	}
	assert.Equal(t, touch.ContactID(5), ev.(userinput.EventTouch).Contact)
	assert.False(t, sys.IsKeyPressed(keys.W))
}

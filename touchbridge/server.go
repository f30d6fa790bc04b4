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

package touchbridge

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/vinput/logger"
	"github.com/jetsetilly/vinput/touch"
	"github.com/jetsetilly/vinput/userinput"
)

// Server accepts websocket connections and decodes the messages received on
// them. Server implements the http.Handler interface.
type Server struct {
	upgrader websocket.Upgrader
	events   chan userinput.Event

	crit  sync.Mutex
	conns map[*websocket.Conn]bool

	// closed by Close(). unblocks senders waiting on a full queue
	done      chan struct{}
	closeOnce sync.Once
}

// NewServer is the preferred method of initialisation for the Server type.
// The queue length is the capacity of the Events() channel. Events that
// arrive when the channel is full are dropped, except for touch up events,
// which wait for room in the channel.
func NewServer(queueLength int) *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			// the remote overlay is usually served from another origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		events: make(chan userinput.Event, queueLength),
		conns:  make(map[*websocket.Conn]bool),
		done:   make(chan struct{}),
	}
}

// Events returns the channel on which decoded events are sent.
func (srv *Server) Events() <-chan userinput.Event {
	return srv.events
}

// Close all open connections.
func (srv *Server) Close() {
	srv.closeOnce.Do(func() { close(srv.done) })

	srv.crit.Lock()
	defer srv.crit.Unlock()
	for c := range srv.conns {
		c.Close()
	}
	clear(srv.conns)
}

// ServeHTTP implements the http.Handler interface.
func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := srv.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log(logger.Allow, "touchbridge", err)
		return
	}

	srv.crit.Lock()
	srv.conns[conn] = true
	srv.crit.Unlock()

	logger.Logf(logger.Allow, "touchbridge", "connected: %s", conn.RemoteAddr())

	srv.serve(conn)

	srv.crit.Lock()
	delete(srv.conns, conn)
	srv.crit.Unlock()
	conn.Close()

	logger.Logf(logger.Allow, "touchbridge", "disconnected: %s", conn.RemoteAddr())
}

// serve reads messages until the connection fails
func (srv *Server) serve(conn *websocket.Conn) {
	// contacts currently on the surface for this connection
	live := make(map[touch.ContactID]bool)
	defer func() {
		for id := range live {
			srv.lift(userinput.EventTouch{Phase: userinput.TouchUp, Contact: id})
		}
	}()

	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Log(logger.Allow, "touchbridge", err)
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		ev, err := Decode(data)
		if err != nil {
			b, _ := json.Marshal(reply{Error: err.Error()})
			if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}
			continue
		}

		t, ok := ev.(userinput.EventTouch)
		if !ok {
			srv.send(ev)
			continue
		}

		// a contact is live once its down event is queued and stays live
		// until its up event is queued
		switch t.Phase {
		case userinput.TouchDown:
			if srv.send(t) {
				live[t.Contact] = true
			}
		case userinput.TouchUp:
			if srv.lift(t) {
				delete(live, t.Contact)
			}
		default:
			srv.send(t)
		}
	}
}

// send queues the event or drops it if the queue is full. Returns true if
// the event was queued.
func (srv *Server) send(ev userinput.Event) bool {
	select {
	case srv.events <- ev:
		return true
	default:
		logger.Log(logger.Allow, "touchbridge", "dropped input event")
		return false
	}
}

// lift queues a touch up event, waiting for room in the queue if necessary.
// Returns false only if the server was closed before the event was queued.
func (srv *Server) lift(ev userinput.EventTouch) bool {
	select {
	case srv.events <- ev:
		return true
	case <-srv.done:
		return false
	}
}

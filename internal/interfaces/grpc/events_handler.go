package grpcinterface

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-timelock/internal/core/application"
	"github.com/tdex-network/tdex-timelock/internal/core/ports"
	"github.com/tdex-network/tdex-timelock/internal/infrastructure/pubsub"
)

const writeTimeout = 10 * time.Second

// EventsSource is where the events streamed over websocket come from.
type EventsSource interface {
	Listen(topic string) (<-chan pubsub.Event, func())
}

type eventMessage struct {
	Topic   string          `json:"topic"`
	Payload json.RawMessage `json:"payload"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// eventsHandler streams the escrow events over a websocket connection. The
// optional topic query param filters the events, all are sent otherwise.
func eventsHandler(source EventsSource) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		topic := req.URL.Query().Get("topic")
		if topic == "" {
			topic = ports.AnyTopic
		}
		if _, ok := application.Topics[topic]; !ok {
			http.Error(w, application.ErrUnknownTopic.Error(), http.StatusBadRequest)
			return
		}

		events, stop := source.Listen(topic)
		defer stop()

		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			log.WithError(err).Debug("failed to upgrade events connection")
			return
		}
		defer conn.Close()

		// Nothing is expected from the client, reading is only needed to
		// detect the connection being closed.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-closed:
				return
			case event, ok := <-events:
				if !ok {
					//nolint
					conn.WriteControl(
						websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
						time.Now().Add(writeTimeout),
					)
					return
				}
				//nolint
				conn.SetWriteDeadline(time.Now().Add(writeTimeout))
				if err := conn.WriteJSON(eventMessage{
					Topic:   event.Topic,
					Payload: json.RawMessage(event.Message),
				}); err != nil {
					log.WithError(err).Debug("failed to send event")
					return
				}
			}
		}
	}
}

package pubsub

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/sony/gobreaker"
	"github.com/tdex-network/tdex-timelock/internal/core/ports"
	"github.com/tdex-network/tdex-timelock/pkg/circuitbreaker"
	"go.uber.org/ratelimit"
	"golang.org/x/sync/errgroup"
)

const (
	defaultRequestTimeout = 15 * time.Second
	listenerBufferSize    = 64
)

// Event is a message published for a topic, as delivered to listeners.
type Event struct {
	Topic   string
	Message string
}

// Service is a webhook pubsub. Subscriptions are kept in memory, each
// published message is POSTed to every endpoint subscribed for its topic or
// for any topic. In-process listeners can also be attached to receive the
// published events.
type Service struct {
	store      *store
	httpClient *client
	cb         *gobreaker.CircuitBreaker
	limiter    ratelimit.Limiter

	ctx    context.Context
	cancel context.CancelFunc

	lock      *sync.RWMutex
	listeners map[string]map[chan Event]struct{}
	closed    bool
}

// NewService returns a webhook pubsub that sends at most rateLimit requests
// per second.
func NewService(rateLimit int) (*Service, error) {
	if rateLimit <= 0 {
		return nil, fmt.Errorf("rate limit must be a positive number")
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		store:      newStore(),
		httpClient: newHTTPClient(defaultRequestTimeout),
		cb:         circuitbreaker.NewCircuitBreaker("webhooks"),
		limiter:    ratelimit.New(rateLimit),
		ctx:        ctx,
		cancel:     cancel,
		lock:       &sync.RWMutex{},
		listeners:  make(map[string]map[chan Event]struct{}),
	}, nil
}

func (ws *Service) Subscribe(topic, endpoint, secret string) (string, error) {
	sub, err := NewSubscription(topic, endpoint, secret)
	if err != nil {
		return "", err
	}

	ws.store.add(*sub)
	return sub.ID, nil
}

func (ws *Service) Unsubscribe(_, id string) error {
	return ws.store.remove(id)
}

func (ws *Service) ListSubscriptionsForTopic(topic string) []ports.Subscription {
	return ws.listSubscriptionsForTopic(topic).toPortable()
}

func (ws *Service) Publish(topic string, message string) error {
	if ws.isClosed() {
		return fmt.Errorf("pubsub service is closed")
	}

	ws.notifyListeners(topic, message)
	return ws.publishForTopic(topic, message)
}

// Listen registers a listener for the given topic, or for any topic with
// ports.AnyTopic. Events are dropped for listeners not keeping up. The
// returned func must be called to release the listener.
func (ws *Service) Listen(topic string) (<-chan Event, func()) {
	ch := make(chan Event, listenerBufferSize)

	ws.lock.Lock()
	defer ws.lock.Unlock()

	if ws.closed {
		close(ch)
		return ch, func() {}
	}

	if _, ok := ws.listeners[topic]; !ok {
		ws.listeners[topic] = make(map[chan Event]struct{})
	}
	ws.listeners[topic][ch] = struct{}{}

	once := &sync.Once{}
	stop := func() {
		once.Do(func() {
			ws.lock.Lock()
			defer ws.lock.Unlock()

			if _, ok := ws.listeners[topic][ch]; !ok {
				return
			}
			delete(ws.listeners[topic], ch)
			close(ch)
		})
	}
	return ch, stop
}

// Close aborts pending webhook requests and releases all listeners.
func (ws *Service) Close() {
	ws.lock.Lock()
	defer ws.lock.Unlock()

	if ws.closed {
		return
	}
	ws.closed = true
	ws.cancel()

	for topic, chans := range ws.listeners {
		for ch := range chans {
			close(ch)
		}
		delete(ws.listeners, topic)
	}
	ws.httpClient.CloseIdleConnections()
}

func (ws *Service) isClosed() bool {
	ws.lock.RLock()
	defer ws.lock.RUnlock()
	return ws.closed
}

func (ws *Service) listSubscriptionsForTopic(topic string) subscriptions {
	subs := ws.store.get(topic)
	if topic != ports.AnyTopic && topic != ports.UnspecifiedTopic {
		subsForAnyTopic := ws.store.get(ports.AnyTopic)
		subs = append(subs, subsForAnyTopic...)
	}
	return subs
}

func (ws *Service) publishForTopic(topic, message string) error {
	subs := ws.listSubscriptionsForTopic(topic)

	eg := &errgroup.Group{}
	for i := range subs {
		sub := subs[i]
		eg.Go(func() error { return ws.doRequest(sub, message) })
	}
	return eg.Wait()
}

func (ws *Service) notifyListeners(topic, message string) {
	ws.lock.RLock()
	defer ws.lock.RUnlock()

	event := Event{topic, message}
	for _, t := range []string{topic, ports.AnyTopic} {
		for ch := range ws.listeners[t] {
			select {
			case ch <- event:
			default:
			}
		}
		if topic == ports.AnyTopic {
			break
		}
	}
}

func (ws *Service) doRequest(sub Subscription, payload string) error {
	ws.limiter.Take()

	_, err := ws.cb.Execute(func() (interface{}, error) {
		headers := map[string]string{
			"Content-Type": "application/json",
		}
		if sub.IsSecured() {
			claims := jwt.StandardClaims{
				IssuedAt: time.Now().Unix(),
				Subject:  sub.Event,
			}
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
			tokenString, err := token.SignedString([]byte(sub.Secret))
			if err != nil {
				return nil, err
			}
			headers["Authorization"] = fmt.Sprintf("Bearer %s", tokenString)
		}

		status, resp, err := ws.httpClient.post(
			ws.ctx, sub.Endpoint, payload, headers,
		)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("webhook %s replied with status %d: %s", sub.ID, status, resp)
		}
		return nil, nil
	})

	return err
}

package pubsub

import (
	"fmt"
	"sort"
	"sync"

	"github.com/tdex-network/tdex-timelock/internal/core/ports"
)

// store keeps subscriptions in memory, indexed by id and by topic.
type store struct {
	lock        *sync.RWMutex
	subs        map[string]Subscription
	subsByTopic map[string]map[string]struct{}
}

func newStore() *store {
	return &store{
		lock:        &sync.RWMutex{},
		subs:        make(map[string]Subscription),
		subsByTopic: make(map[string]map[string]struct{}),
	}
}

func (s *store) add(sub Subscription) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.subs[sub.ID]; ok {
		return
	}
	s.subs[sub.ID] = sub
	if _, ok := s.subsByTopic[sub.Event]; !ok {
		s.subsByTopic[sub.Event] = make(map[string]struct{})
	}
	s.subsByTopic[sub.Event][sub.ID] = struct{}{}
}

func (s *store) remove(id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	sub, ok := s.subs[id]
	if !ok {
		return fmt.Errorf("webhook not found")
	}
	delete(s.subs, id)
	delete(s.subsByTopic[sub.Event], id)
	if len(s.subsByTopic[sub.Event]) <= 0 {
		delete(s.subsByTopic, sub.Event)
	}
	return nil
}

// get returns the subscriptions for the given topic sorted by id. The
// unspecified topic returns all of them.
func (s *store) get(topic string) subscriptions {
	s.lock.RLock()
	defer s.lock.RUnlock()

	subs := make(subscriptions, 0)
	if topic == ports.UnspecifiedTopic {
		for _, sub := range s.subs {
			subs = append(subs, sub)
		}
	} else {
		for id := range s.subsByTopic[topic] {
			subs = append(subs, s.subs[id])
		}
	}

	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].ID < subs[j].ID
	})
	return subs
}

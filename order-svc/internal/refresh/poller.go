package refresh

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// FetchFunc loads the current snapshot of one entity type.
type FetchFunc func(ctx context.Context) (any, error)

type Update struct {
	Entity string          `json:"entity"`
	Data   json.RawMessage `json:"data"`
}

// Poller re-fetches entity snapshots on a fixed interval, or right away when the hub
// signals a change, and emits only the snapshots that differ from the last one sent.
type Poller struct {
	fetchers map[string]FetchFunc
	interval time.Duration
	hub      *Hub
	log      *logrus.Entry
}

func NewPoller(fetchers map[string]FetchFunc, interval time.Duration, hub *Hub, log *logrus.Entry) *Poller {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &Poller{fetchers: fetchers, interval: interval, hub: hub, log: log}
}

// Entities lists the names the poller knows how to fetch.
func (p *Poller) Entities() []string {
	names := make([]string, 0, len(p.fetchers))
	for name := range p.fetchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run streams updates for the requested entities until ctx is done or emit fails.
// Every requested entity is sent once up front.
func (p *Poller) Run(ctx context.Context, entities []string, emit func(Update) error) error {
	for _, e := range entities {
		if _, ok := p.fetchers[e]; !ok {
			return fmt.Errorf("unknown entity %q", e)
		}
	}

	var signals <-chan string
	if p.hub != nil {
		ch, unsubscribe := p.hub.Subscribe(entities...)
		defer unsubscribe()
		signals = ch
	}

	last := make(map[string][]byte, len(entities))
	poll := func(names ...string) error {
		for _, name := range names {
			data, err := p.fetchers[name](ctx)
			if err != nil {
				p.log.WithError(err).WithField("entity", name).Warn("refresh fetch failed")
				continue
			}
			raw, err := json.Marshal(data)
			if err != nil {
				return err
			}
			if bytes.Equal(last[name], raw) {
				continue
			}
			last[name] = raw
			if err := emit(Update{Entity: name, Data: raw}); err != nil {
				return err
			}
		}
		return nil
	}

	if err := poll(entities...); err != nil {
		return err
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := poll(entities...); err != nil {
				return err
			}
		case name, ok := <-signals:
			if !ok {
				signals = nil
				continue
			}
			if err := poll(name); err != nil {
				return err
			}
		}
	}
}

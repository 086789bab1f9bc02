package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/ifplan-network/ifplan/pkg/model"
	"github.com/ifplan-network/ifplan/pkg/network"
)

const (
	// EventChannel is the pub/sub channel the prober publishes on.
	EventChannel = "ifplan:links"

	// snapshotPrefix is where the prober mirrors the current link set, one
	// JSON LiveInfo per key.
	snapshotPrefix = "ifplan:link:"
)

// Watcher subscribes to prober events and applies them to a Model. All
// registry mutation driven by the prober happens on the single Run
// goroutine, in event arrival order.
type Watcher struct {
	client *redis.Client
	model  *network.Model
	log    *logrus.Entry

	// OnUpdate, when set, is invoked for every device affected by an
	// update-link event (notification fan-out).
	OnUpdate func(*network.Device)
}

// NewWatcher creates a watcher against the Redis instance the prober
// publishes to.
func NewWatcher(addr string, m *network.Model, log *logrus.Entry) *Watcher {
	return &Watcher{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		model:  m,
		log:    log,
	}
}

// Connect tests the connection
func (w *Watcher) Connect(ctx context.Context) error {
	return w.client.Ping(ctx).Err()
}

// Close closes the connection
func (w *Watcher) Close() error {
	return w.client.Close()
}

// Snapshot replays the prober's current link set as new-link events, in
// stable name order. Called before Run so the model starts from the links
// that existed before we subscribed.
func (w *Watcher) Snapshot(ctx context.Context) error {
	keys, err := scanKeys(ctx, w.client, snapshotPrefix+"*", 100)
	if err != nil {
		return fmt.Errorf("scanning link snapshot: %w", err)
	}
	sort.Strings(keys)

	for _, key := range keys {
		data, err := w.client.Get(ctx, key).Result()
		if err == redis.Nil {
			continue // raced with a del-link
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", key, err)
		}
		var info model.LiveInfo
		if err := json.Unmarshal([]byte(data), &info); err != nil {
			w.log.Warnf("malformed link snapshot at %s: %v", key, err)
			continue
		}
		if info.Name == "" {
			info.Name = strings.TrimPrefix(key, snapshotPrefix)
		}
		w.model.NewLink(&info)
	}
	return nil
}

// Run subscribes to the event channel and applies events until ctx is
// cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	sub := w.client.Subscribe(ctx, EventChannel)
	defer sub.Close()

	// force the subscription before consuming
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribing to %s: %w", EventChannel, err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return fmt.Errorf("event channel closed")
			}
			w.apply([]byte(msg.Payload))
		}
	}
}

// apply dispatches one event. Malformed events are logged and dropped;
// prober noise is never fatal.
func (w *Watcher) apply(payload []byte) {
	ev, err := DecodeEvent(payload)
	if err != nil {
		w.log.Warnf("dropping event: %v", err)
		return
	}
	switch ev.Type {
	case EventNewLink:
		w.model.NewLink(ev.Link)
	case EventUpdateLink:
		if dev := w.model.UpdateLinkInfo(ev.Index, ev.Link); dev != nil && w.OnUpdate != nil {
			w.OnUpdate(dev)
		}
	case EventDelLink:
		w.model.DelLink(ev.Index)
	case EventDHCPState:
		err := w.model.SetDHCPState(ev.DHCP.Device, ev.DHCP.Version, ev.DHCP.State)
		if err != nil {
			w.log.Warnf("dhcp-state for %s dropped: %v", ev.DHCP.Device, err)
		}
	}
}

func scanKeys(ctx context.Context, client *redis.Client, pattern string, countHint int64) ([]string, error) {
	var cursor uint64
	var keys []string
	for {
		batch, nextCursor, err := client.Scan(ctx, cursor, pattern, countHint).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	return keys, nil
}

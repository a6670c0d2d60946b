package notification

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"atelier_ops/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DefaultChannel        = "tickets.transitions"
	defaultQueueSize      = 256
	defaultPublishTimeout = 2 * time.Second
)

// Publisher is the part of *redis.Client the notifier uses.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisTransitionNotifier publishes ticket transition events on a Redis
// pub/sub channel from a single background worker.
//
// NotifyTransition only enqueues. When the queue is full the event is dropped
// and logged; a transition is never held back by delivery.
type RedisTransitionNotifier struct {
	rdb     Publisher
	channel string
	timeout time.Duration
	log     *zap.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan interfaces.TransitionEvent
	wg     sync.WaitGroup
}

var _ interfaces.ITransitionNotifier = (*RedisTransitionNotifier)(nil)

func NewRedisTransitionNotifier(rdb Publisher, channel string, queueSize int, timeout time.Duration, log *zap.Logger) *RedisTransitionNotifier {
	if channel == "" {
		channel = DefaultChannel
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	n := &RedisTransitionNotifier{
		rdb:     rdb,
		channel: channel,
		timeout: timeout,
		log:     log.With(zap.String("channel", channel)),
		queue:   make(chan interfaces.TransitionEvent, queueSize),
	}
	n.wg.Add(1)
	go n.run()
	return n
}

func (n *RedisTransitionNotifier) NotifyTransition(_ context.Context, evt interfaces.TransitionEvent) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		n.log.Warn("notifier closed; transition event dropped", zap.String("ticket_id", evt.TicketID))
		return
	}
	select {
	case n.queue <- evt:
	default:
		n.log.Warn("notification queue full; transition event dropped",
			zap.String("ticket_id", evt.TicketID),
			zap.String("to", string(evt.ToStatus)),
		)
	}
}

// Close stops accepting events and waits for the queued ones to be published.
func (n *RedisTransitionNotifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	close(n.queue)
	n.mu.Unlock()
	n.wg.Wait()
}

func (n *RedisTransitionNotifier) run() {
	defer n.wg.Done()
	for evt := range n.queue {
		n.publish(evt)
	}
}

func (n *RedisTransitionNotifier) publish(evt interfaces.TransitionEvent) {
	data, err := json.Marshal(evt)
	if err != nil {
		n.log.Warn("failed to marshal transition event", zap.String("ticket_id", evt.TicketID), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()
	if err := n.rdb.Publish(ctx, n.channel, data).Err(); err != nil {
		n.log.Warn("failed to publish transition event (non-fatal)",
			zap.String("ticket_id", evt.TicketID),
			zap.String("to", string(evt.ToStatus)),
			zap.Error(err),
		)
		return
	}
	n.log.Debug("transition event published",
		zap.String("ticket_id", evt.TicketID),
		zap.String("from", string(evt.FromStatus)),
		zap.String("to", string(evt.ToStatus)),
	)
}

// LogNotifier records transitions in the process log only. It is used when no
// Redis instance is configured.
type LogNotifier struct {
	log *zap.Logger
}

var _ interfaces.ITransitionNotifier = (*LogNotifier)(nil)

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyTransition(_ context.Context, evt interfaces.TransitionEvent) {
	n.log.Info("ticket transition",
		zap.String("ticket_id", evt.TicketID),
		zap.String("from", string(evt.FromStatus)),
		zap.String("to", string(evt.ToStatus)),
		zap.String("actor", evt.Actor),
		zap.String("action", string(evt.Action)),
	)
}

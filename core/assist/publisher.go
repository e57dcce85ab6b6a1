package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const publishTimeout = 2 * time.Second

// Message is the payload published for every distinct search text.
type Message struct {
	Terminal string    `json:"terminal"`
	Text     string    `json:"text"`
	At       time.Time `json:"at"`
}

// Nop discards the search text.
type Nop struct{}

// SetSearchText does nothing.
func (Nop) SetSearchText(string) {}

// redisPublisher is the subset of the go-redis client used here.
type redisPublisher interface {
	Publish(ctx context.Context, channel string, message any) *goredis.IntCmd
	Close() error
}

// Publisher publishes search text to a Redis channel from a background
// goroutine.
type Publisher struct {
	rdb      redisPublisher
	channel  string
	terminal string
	logger   *zap.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan Message
	done   chan struct{}

	published atomic.Uint64
	dropped   atomic.Uint64
}

// New connects to Redis and starts the publisher.
func New(cfg Config, terminal string, logger *zap.Logger) (*Publisher, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return newPublisher(rdb, cfg.Channel, terminal, cfg.QueueSize, logger), nil
}

func newPublisher(rdb redisPublisher, channel, terminal string, queueSize int, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	p := &Publisher{
		rdb:      rdb,
		channel:  channel,
		terminal: terminal,
		logger:   logger.With(zap.String("component", "assist")),
		queue:    make(chan Message, queueSize),
		done:     make(chan struct{}),
	}
	go p.run()
	return p
}

// SetSearchText queues text for publishing. It never blocks.
func (p *Publisher) SetSearchText(text string) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}

	select {
	case p.queue <- Message{Terminal: p.terminal, Text: text, At: time.Now().UTC()}:
	default:
		p.dropped.Add(1)
	}
}

func (p *Publisher) run() {
	defer close(p.done)

	var last string
	sent := false
	for msg := range p.queue {
		if sent && msg.Text == last {
			continue
		}

		raw, err := json.Marshal(msg)
		if err != nil {
			p.logger.Warn("failed to encode search text", zap.Error(err))
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		err = p.rdb.Publish(ctx, p.channel, raw).Err()
		cancel()
		if err != nil {
			p.logger.Warn("failed to publish search text", zap.String("channel", p.channel), zap.Error(err))
			continue
		}

		last, sent = msg.Text, true
		p.published.Add(1)
	}
}

// Published returns the number of messages delivered to Redis.
func (p *Publisher) Published() uint64 {
	return p.published.Load()
}

// Dropped returns the number of texts discarded because the queue was full.
func (p *Publisher) Dropped() uint64 {
	return p.dropped.Load()
}

// Close drains the queue, stops the goroutine and closes the Redis client.
func (p *Publisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	<-p.done
	return p.rdb.Close()
}

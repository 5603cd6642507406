// Package consumer runs a franz-go group consumer with at-least-once delivery:
// records are committed only after the handler accepts them, and a handler error
// rewinds the partition so the record is redelivered.
package consumer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

const defaultRetryBackoff = time.Second

// Message is the transport-neutral view of a record handed to a Handler.
type Message struct {
	Topic     string
	Partition int32
	Offset    int64
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
}

// Handler processes one message. Returning nil commits the record; returning an
// error leaves it uncommitted and redelivers it after a backoff.
type Handler func(ctx context.Context, msg *Message) error

// Config selects brokers, group and topic.
type Config struct {
	Brokers []string
	Group   string
	Topic   string
}

// client is the part of *kgo.Client the loop uses.
type client interface {
	PollFetches(ctx context.Context) kgo.Fetches
	CommitRecords(ctx context.Context, rs ...*kgo.Record) error
	SetOffsets(setOffsets map[string]map[int32]kgo.EpochOffset)
	Close()
}

// Consumer polls records and feeds them to a Handler.
type Consumer struct {
	client       client
	handler      Handler
	logger       *slog.Logger
	retryBackoff time.Duration
}

// Option configures a Consumer.
type Option func(*Consumer)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Consumer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRetryBackoff sets the pause before a failed record is redelivered.
func WithRetryBackoff(d time.Duration) Option {
	return func(c *Consumer) {
		if d >= 0 {
			c.retryBackoff = d
		}
	}
}

// New connects a group consumer for cfg.Topic.
func New(cfg Config, handler Handler, opts ...Option) (*Consumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if cfg.Topic == "" || cfg.Group == "" {
		return nil, errors.New("kafka topic and consumer group are required")
	}
	cl, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ConsumerGroup(cfg.Group),
		kgo.ConsumeTopics(cfg.Topic),
		kgo.DisableAutoCommit(),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return newWithClient(cl, handler, opts...), nil
}

func newWithClient(cl client, handler Handler, opts ...Option) *Consumer {
	c := &Consumer{
		client:       cl,
		handler:      handler,
		logger:       slog.New(slog.DiscardHandler),
		retryBackoff: defaultRetryBackoff,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Run polls until ctx is cancelled or the client is closed.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() || ctx.Err() != nil {
			return nil
		}
		fetches.EachError(func(topic string, partition int32, err error) {
			if errors.Is(err, context.Canceled) {
				return
			}
			c.logger.ErrorContext(ctx, "kafka fetch error",
				"topic", topic,
				"partition", partition,
				"error", err,
			)
		})

		retry := false
		fetches.EachPartition(func(p kgo.FetchTopicPartition) {
			if c.consumePartition(ctx, p.Topic, p.Partition, p.Records) {
				retry = true
			}
		})
		if retry && c.retryBackoff > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.retryBackoff):
			}
		}
	}
}

// Close leaves the group and closes the client.
func (c *Consumer) Close() {
	c.client.Close()
}

// consumePartition handles records in order and commits the accepted prefix. It
// reports whether a record was rewound for redelivery.
func (c *Consumer) consumePartition(ctx context.Context, topic string, partition int32, records []*kgo.Record) bool {
	var accepted []*kgo.Record
	rewound := false
	for _, rec := range records {
		if err := c.handler(ctx, toMessage(rec)); err != nil {
			c.logger.WarnContext(ctx, "kafka record will be redelivered",
				"topic", topic,
				"partition", partition,
				"offset", rec.Offset,
				"error", err,
			)
			c.client.SetOffsets(map[string]map[int32]kgo.EpochOffset{
				topic: {partition: {Epoch: rec.LeaderEpoch, Offset: rec.Offset}},
			})
			rewound = true
			break
		}
		accepted = append(accepted, rec)
	}

	if len(accepted) > 0 {
		if err := c.client.CommitRecords(ctx, accepted...); err != nil {
			c.logger.ErrorContext(ctx, "kafka commit failed",
				"topic", topic,
				"partition", partition,
				"error", err,
			)
		}
	}
	return rewound
}

func toMessage(rec *kgo.Record) *Message {
	headers := make(map[string]string, len(rec.Headers))
	for _, h := range rec.Headers {
		headers[h.Key] = string(h.Value)
	}
	return &Message{
		Topic:     rec.Topic,
		Partition: rec.Partition,
		Offset:    rec.Offset,
		Key:       rec.Key,
		Value:     rec.Value,
		Headers:   headers,
		Timestamp: rec.Timestamp,
	}
}

// EnsureTopic creates topic if it does not exist.
func EnsureTopic(ctx context.Context, brokers []string, topic string, partitions int32, replicationFactor int16) error {
	cl, err := kgo.NewClient(kgo.SeedBrokers(brokers...))
	if err != nil {
		return fmt.Errorf("create kafka admin client: %w", err)
	}
	defer cl.Close()

	resp, err := kadm.NewClient(cl).CreateTopics(ctx, partitions, replicationFactor, nil, topic)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", topic, err)
	}
	for _, r := range resp {
		if r.Err != nil && !errors.Is(r.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", r.Topic, r.Err)
		}
	}
	return nil
}

//go:build integration

package consumer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"pixclaim/internal/platform/kafka/consumer"
	"pixclaim/pkg/testutil/containers"
)

func TestConsumeFromRedpanda(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	rp := containers.GetManager().GetRedpanda(t)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	const topic = "pix.claims.notifications.it"
	require.NoError(t, consumer.EnsureTopic(ctx, rp.Brokers, topic, 1, 1))
	require.NoError(t, consumer.EnsureTopic(ctx, rp.Brokers, topic, 1, 1))

	producer, err := kgo.NewClient(kgo.SeedBrokers(rp.Brokers...))
	require.NoError(t, err)
	defer producer.Close()
	require.NoError(t, producer.ProduceSync(ctx, &kgo.Record{Topic: topic, Key: []byte("k"), Value: []byte(`{"key":"k"}`)}).FirstErr())

	got := make(chan *consumer.Message, 1)
	c, err := consumer.New(consumer.Config{Brokers: rp.Brokers, Group: "it", Topic: topic},
		func(_ context.Context, msg *consumer.Message) error {
			got <- msg
			cancel()
			return nil
		})
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Run(ctx))
	select {
	case msg := <-got:
		require.Equal(t, `{"key":"k"}`, string(msg.Value))
	default:
		t.Fatal("no message consumed")
	}
}

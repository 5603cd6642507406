package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/twmb/franz-go/pkg/kgo"

	"pixclaim/internal/claim/models"
)

const headerRequestID = "x-request-id"

type producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

// newProducer is swapped in tests.
var newProducer = func(brokers []string) (producer, error) {
	return kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
}

func publishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a claim notification to the claim topic",
		Long: `Publish a JSON claim notification to the claim topic, keyed by Pix key.
The payload is read from --file, or from stdin when --file is "-".`,
		Example: `  claimctl publish --brokers localhost:9092 --file notification.json
  echo '{"key":"k","claimType":"PORTABILITY","status":"OPEN","donation":false}' | claimctl publish -f -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			brokers, _ := cmd.Flags().GetStringSlice("brokers")
			topic, _ := cmd.Flags().GetString("topic")
			file, _ := cmd.Flags().GetString("file")
			requestID, _ := cmd.Flags().GetString("request-id")
			skipValidation, _ := cmd.Flags().GetBool("skip-validation")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			if len(brokers) == 0 {
				brokers = splitBrokers(os.Getenv("KAFKA_BROKERS"))
			}
			if len(brokers) == 0 {
				return fmt.Errorf("no brokers: pass --brokers or set KAFKA_BROKERS")
			}

			payload, err := readPayload(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			var raw models.RawNotification
			if err := json.Unmarshal(payload, &raw); err != nil {
				return fmt.Errorf("payload is not valid JSON: %w", err)
			}
			var key []byte
			if raw.Key != nil {
				key = []byte(*raw.Key)
			}
			if !skipValidation {
				if _, err := models.ParseNotification(raw); err != nil {
					return fmt.Errorf("payload rejected (use --skip-validation to send anyway): %w", err)
				}
			}
			if requestID == "" {
				requestID = uuid.NewString()
			}

			client, err := newProducer(brokers)
			if err != nil {
				return fmt.Errorf("create kafka client: %w", err)
			}
			defer client.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			record := &kgo.Record{
				Topic:   topic,
				Key:     key,
				Value:   payload,
				Headers: []kgo.RecordHeader{{Key: headerRequestID, Value: []byte(requestID)}},
			}
			res, err := client.ProduceSync(ctx, record).First()
			if err != nil {
				return fmt.Errorf("produce to %s: %w", topic, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "published %s partition=%d offset=%d request_id=%s\n",
				res.Topic, res.Partition, res.Offset, requestID)
			return nil
		},
	}

	cmd.Flags().StringSlice("brokers", nil, "Kafka seed brokers (default $KAFKA_BROKERS)")
	cmd.Flags().String("topic", "pix.claims.notifications", "Claim notification topic")
	cmd.Flags().StringP("file", "f", "-", `Payload file, or "-" for stdin`)
	cmd.Flags().String("request-id", "", "Request ID header (generated when empty)")
	cmd.Flags().Bool("skip-validation", false, "Send payloads that fail validation")
	cmd.Flags().Duration("timeout", 10*time.Second, "Produce timeout")

	return cmd
}

func readPayload(stdin io.Reader, file string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("payload is empty")
	}
	return data, nil
}

func splitBrokers(v string) []string {
	var out []string
	for _, b := range strings.Split(v, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

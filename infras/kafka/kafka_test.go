package kafka_test

import (
	"agenda/config"
	"agenda/infras/kafka"
	"agenda/infras/otel/mocks"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

func TestMessageRoundTrip(t *testing.T) {
	msg := kafka.Message{Key: "company-1", Value: event{BookingID: "b1", Status: "pending"}}

	kafkaMsg, err := msg.ToKafkaMessage("booking-events")
	require.NoError(t, err)
	assert.Equal(t, "booking-events", kafkaMsg.Topic)
	assert.Equal(t, []byte("company-1"), kafkaMsg.Key)

	key, decoded, err := kafka.DecodeKafkaMessage[event](kafkaMsg)
	require.NoError(t, err)
	assert.Equal(t, "company-1", key)
	assert.Equal(t, event{BookingID: "b1", Status: "pending"}, decoded)
}

func TestToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage("topic")
	assert.Error(t, err)
}

func TestNew_DisabledDropsMessages(t *testing.T) {
	client := kafka.New(&config.Config{}, mocks.NewOtel())

	err := client.SendMessages(context.Background(), "booking-events", kafka.Message{Key: "k", Value: "v"})
	assert.NoError(t, err)
	assert.NoError(t, client.Close())
}

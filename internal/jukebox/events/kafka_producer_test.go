package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// MockKafkaWriter implements KafkaWriter for testing
type MockKafkaWriter struct {
	mock.Mock
}

func (m *MockKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockKafkaWriter) Close() error {
	args := m.Called()
	return args.Error(0)
}

type leadPayload struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

func TestNewProducerInternals(t *testing.T) {
	producer := newProducer(new(MockKafkaWriter), zaptest.NewLogger(t), 10)

	assert.NotNil(t, producer.writer)
	assert.Equal(t, 10, cap(producer.events))
	assert.NotNil(t, producer.closeChan)
	assert.Equal(t, "kafka_producer", producer.logger.Check(zap.InfoLevel, "").LoggerName)
}

func TestProducer_Produce(t *testing.T) {
	t.Run("successful produce", func(t *testing.T) {
		producer := newProducer(new(MockKafkaWriter), zaptest.NewLogger(t), 10)

		producer.Produce(LeadCreated, "1", leadPayload{ID: 1})

		require.Equal(t, 1, len(producer.events))
		event := <-producer.events
		assert.Equal(t, LeadCreated, event.Type)
		assert.Equal(t, "1", event.Key)
		assert.NotEmpty(t, event.ID.String())
		assert.False(t, event.OccurredAt.IsZero())
	})

	t.Run("dropped event when queue full", func(t *testing.T) {
		core, recorded := observer.New(zap.WarnLevel)
		producer := newProducer(new(MockKafkaWriter), zap.New(core), 1)

		producer.Produce(LeadCreated, "1", leadPayload{ID: 1})
		producer.Produce(LeadCreated, "2", leadPayload{ID: 2}) // This should be dropped

		assert.Equal(t, 1, recorded.FilterMessage("Kafka producer queue full, dropping event").Len())
	})
}

func TestProducer_SendEvent(t *testing.T) {
	mockWriter := new(MockKafkaWriter)
	producer := newProducer(mockWriter, zaptest.NewLogger(t), 1)
	event := Event{Type: SubscriptionCreated, Key: "7", Payload: leadPayload{ID: 7, Email: "fan@example.com"}}

	t.Run("successful send", func(t *testing.T) {
		mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(nil).Once()

		producer.sendEvent(context.Background(), event)

		mockWriter.AssertCalled(t, "WriteMessages", mock.Anything, []kafka.Message{
			{Key: []byte("7"), Value: mustMarshal(event)},
		})
	})

	t.Run("serialization error", func(t *testing.T) {
		core, recorded := observer.New(zap.ErrorLevel)
		producer.logger = zap.New(core)

		oldMarshal := jsonMarshal
		jsonMarshal = func(_ interface{}) ([]byte, error) {
			return nil, errors.New("mock marshal error")
		}
		defer func() { jsonMarshal = oldMarshal }()

		producer.sendEvent(context.Background(), event)

		assert.Equal(t, 1, recorded.FilterMessage("Failed to serialize event").Len())
		assert.Equal(t, 1, recorded.FilterField(zap.String("key", "7")).Len())
	})

	t.Run("write error", func(t *testing.T) {
		core, recorded := observer.New(zap.ErrorLevel)
		producer.logger = zap.New(core)
		mockWriter.ExpectedCalls = nil
		mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("kafka error"))

		producer.sendEvent(context.Background(), event)

		assert.Equal(t, 1, recorded.FilterMessage("Failed to produce event").Len())
	})
}

func TestProducer_CloseFlushesQueue(t *testing.T) {
	mockWriter := new(MockKafkaWriter)
	mockWriter.On("WriteMessages", mock.Anything, mock.Anything).Return(nil)
	mockWriter.On("Close").Return(nil)

	producer := newProducer(mockWriter, zaptest.NewLogger(t), 10)
	producer.Produce(LeadCreated, "1", leadPayload{ID: 1})
	producer.Produce(LeadStatusUpdated, "1", leadPayload{ID: 1})
	producer.Produce(LocationCreated, "3", nil)

	go producer.eventLoop()
	producer.Close()

	select {
	case <-producer.closeChan:
	default:
		t.Error("closeChan not closed")
	}
	mockWriter.AssertNumberOfCalls(t, "WriteMessages", 3)
	mockWriter.AssertCalled(t, "Close")
}

func TestNopProducer(t *testing.T) {
	assert.NotPanics(t, func() {
		NopProducer{}.Produce(LeadCreated, "1", nil)
	})
}

func mustMarshal(e Event) []byte {
	data, _ := json.Marshal(e)
	return data
}

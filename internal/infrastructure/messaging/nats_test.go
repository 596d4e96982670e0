package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/common"
	"github.com/nats-io/nats-server/v2/server"
	natstest "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runNatsServer(t *testing.T) *server.Server {
	t.Helper()
	s := natstest.RunRandClientPortServer()
	t.Cleanup(s.Shutdown)
	return s
}

func subscribeTodos(t *testing.T, url string) *nats.Subscription {
	t.Helper()
	nc, err := nats.Connect(url)
	require.NoError(t, err)
	t.Cleanup(nc.Close)

	sub, err := nc.SubscribeSync("todo.>")
	require.NoError(t, err)
	require.NoError(t, nc.Flush())
	return sub
}

func TestPublishTodoEvents(t *testing.T) {
	s := runNatsServer(t)
	sub := subscribeTodos(t, s.ClientURL())

	nc, err := ConnectNats(s.ClientURL())
	require.NoError(t, err)
	publisher := NewNatsPublisher(nc)
	defer publisher.Close()

	todo := &common.TodoResult{
		Id:        uuid.New(),
		Title:     "milk",
		Status:    "Pending",
		CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		UserId:    uuid.New(),
	}
	occurredAt := time.Date(2024, 3, 1, 9, 5, 0, 0, time.UTC)

	for _, eventType := range []string{common.TodoCreated, common.TodoUpdated, common.TodoDeleted} {
		t.Run(eventType, func(t *testing.T) {
			err := publisher.Publish(context.Background(), &common.TodoEvent{Type: eventType, Todo: todo, OccurredAt: occurredAt})
			require.NoError(t, err)

			msg, err := sub.NextMsg(2 * time.Second)
			require.NoError(t, err)
			assert.Equal(t, eventType, msg.Subject)

			var got common.TodoEvent
			require.NoError(t, json.Unmarshal(msg.Data, &got))
			assert.Equal(t, eventType, got.Type)
			assert.True(t, got.OccurredAt.Equal(occurredAt))
			require.NotNil(t, got.Todo)
			assert.Equal(t, todo.Id, got.Todo.Id)
			assert.Equal(t, todo.UserId, got.Todo.UserId)
			assert.Equal(t, "milk", got.Todo.Title)
			assert.Equal(t, "Pending", got.Todo.Status)
		})
	}
}

func TestCloseDrainsPendingEvents(t *testing.T) {
	s := runNatsServer(t)
	sub := subscribeTodos(t, s.ClientURL())

	nc, err := ConnectNats(s.ClientURL())
	require.NoError(t, err)
	publisher := NewNatsPublisher(nc)

	for i := 0; i < 5; i++ {
		require.NoError(t, publisher.Publish(context.Background(), &common.TodoEvent{Type: common.TodoCreated, Todo: &common.TodoResult{Id: uuid.New()}}))
	}
	publisher.Close()

	for i := 0; i < 5; i++ {
		_, err := sub.NextMsg(2 * time.Second)
		require.NoError(t, err)
	}
	assert.Eventually(t, nc.IsClosed, 2*time.Second, 10*time.Millisecond)

	err = publisher.Publish(context.Background(), &common.TodoEvent{Type: common.TodoDeleted})
	assert.True(t, errors.Is(err, nats.ErrConnectionClosed))
}

func TestPublishHonoursCanceledContext(t *testing.T) {
	s := runNatsServer(t)
	nc, err := ConnectNats(s.ClientURL())
	require.NoError(t, err)
	publisher := NewNatsPublisher(nc)
	defer publisher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = publisher.Publish(ctx, &common.TodoEvent{Type: common.TodoCreated})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPublishWithoutConnection(t *testing.T) {
	publisher := NewNatsPublisher(nil)

	err := publisher.Publish(context.Background(), &common.TodoEvent{Type: common.TodoCreated})

	assert.True(t, errors.Is(err, nats.ErrConnectionClosed))
	publisher.Close()
}

func TestConnectNatsUnreachable(t *testing.T) {
	_, err := ConnectNats("nats://127.0.0.1:1")
	assert.Error(t, err)
}

package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/common"
	"github.com/nats-io/nats.go"
)

// NatsPublisher publishes todo events on a subject equal to the event type.
type NatsPublisher struct {
	nc *nats.Conn
}

// ConnectNats opens a connection that reconnects on its own.
func ConnectNats(url string) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Name("todo-service"),
		nats.Timeout(5 * time.Second),
		nats.ReconnectWait(1 * time.Second),
		nats.MaxReconnects(10),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Printf("NATS disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Println("NATS reconnected")
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	log.Println("✅ Connected to NATS.")
	return nc, nil
}

func NewNatsPublisher(nc *nats.Conn) *NatsPublisher {
	return &NatsPublisher{nc: nc}
}

func (p *NatsPublisher) Publish(ctx context.Context, event *common.TodoEvent) error {
	if p.nc == nil || !p.nc.IsConnected() {
		return nats.ErrConnectionClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s: %w", event.Type, err)
	}

	if err := p.nc.Publish(event.Type, data); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

// Close drains pending messages before closing the connection.
func (p *NatsPublisher) Close() {
	if p.nc == nil || p.nc.IsClosed() {
		return
	}
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
	}
	log.Println("✅ NATS connection closed.")
}

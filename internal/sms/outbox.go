// chargebot - nearby EV chargers over SMS
// Copyright (C) 2026  nexus contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafka "github.com/segmentio/kafka-go"
)

// DefaultOutboxTopic is where replies are published for the sms-sender.
const DefaultOutboxTopic = "sms-outbox"

// Publisher hands a reply off for delivery.
type Publisher interface {
	Publish(ctx context.Context, msg OutboundMessage) error
}

// messageWriter is the subset of *kafka.Writer the outbox needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Outbox publishes JSON-encoded OutboundMessages to a Kafka topic, keyed by
// recipient so replies to one sender stay ordered within a partition.
type Outbox struct {
	writer messageWriter
	topic  string
}

// NewOutbox creates an Outbox connected to brokers. An empty topic falls back
// to DefaultOutboxTopic.
func NewOutbox(brokers []string, topic string) *Outbox {
	if topic == "" {
		topic = DefaultOutboxTopic
	}
	return &Outbox{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			// Publish runs inside the webhook request; flush each reply
			// immediately instead of waiting out the default 1s batch.
			BatchSize:    1,
			BatchTimeout: 10 * time.Millisecond,
		},
		topic: topic,
	}
}

// Topic returns the topic replies are written to.
func (o *Outbox) Topic() string { return o.topic }

// Publish writes msg to the outbox topic.
func (o *Outbox) Publish(ctx context.Context, msg OutboundMessage) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal outbound message: %w", err)
	}
	if err := o.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.To),
		Value: value,
	}); err != nil {
		return fmt.Errorf("write to %s: %w", o.topic, err)
	}
	return nil
}

// Close flushes pending writes and releases the Kafka connection.
func (o *Outbox) Close() error {
	return o.writer.Close()
}

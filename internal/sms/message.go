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

// Package sms models inbound webhook messages and publishes replies to the
// sms-outbox Kafka topic for asynchronous delivery.
package sms

import "github.com/google/uuid"

// IncomingMessage is one inbound text as posted by the messaging provider.
type IncomingMessage struct {
	// Body is the message text. Missing form fields arrive as "".
	Body string

	// From identifies the sender (e.g. "+15551234567" or "whatsapp:+44...").
	From string
}

// OutboundMessage is the JSON schema written to the sms-outbox topic.
//
//	{
//	  "id":   "550e8400-e29b-41d4-a716-446655440000",
//	  "to":   "+15551234567",
//	  "body": "Error fetching chargers: ..."
//	}
type OutboundMessage struct {
	// ID correlates a reply across the outbox and the downstream sender.
	ID   string `json:"id"`
	To   string `json:"to"`
	Body string `json:"body"`
}

// NewReply addresses body back to the sender of in.
func NewReply(in IncomingMessage, body string) OutboundMessage {
	return OutboundMessage{
		ID:   uuid.New().String(),
		To:   in.From,
		Body: body,
	}
}

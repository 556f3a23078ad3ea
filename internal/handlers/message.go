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

package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/jredh-dev/chargebot/internal/sms"
)

const (
	keyword = "charger"

	// FallbackReply is sent for any message that does not mention the keyword.
	FallbackReply = "Sorry, I didn't understand that. Try saying 'charger'."
)

// ChargerFinder produces the reply for a charger request. Failures are
// reported inside the returned text.
type ChargerFinder interface {
	FindChargers(ctx context.Context) string
}

// Handler holds dependencies for the webhook.
type Handler struct {
	finder ChargerFinder
	outbox sms.Publisher // nil disables publishing
}

// New creates a new Handler. outbox may be nil.
func New(finder ChargerFinder, outbox sms.Publisher) *Handler {
	return &Handler{finder: finder, outbox: outbox}
}

type messageResp struct {
	Response string `json:"response"`
}

// Message handles an inbound text from the messaging provider.
// POST /message  (form: Body, From)
//
// The reply is always 200 with {"response": "..."}.
func (h *Handler) Message(w http.ResponseWriter, r *http.Request) {
	in := parseIncoming(r)
	log.Printf("message received from %s: %q", in.From, in.Body)

	reply := h.reply(r.Context(), in)

	if h.outbox != nil {
		if err := h.outbox.Publish(r.Context(), sms.NewReply(in, reply)); err != nil {
			log.Printf("error publishing reply to %s: %v", in.From, err)
		}
	}

	jsonOK(w, http.StatusOK, messageResp{Response: reply})
}

func (h *Handler) reply(ctx context.Context, in sms.IncomingMessage) string {
	if strings.Contains(strings.ToLower(in.Body), keyword) {
		return h.finder.FindChargers(ctx)
	}
	return FallbackReply
}

// parseIncoming reads Body and From from the form or query string. A body
// that fails to parse is treated as an empty message.
func parseIncoming(r *http.Request) sms.IncomingMessage {
	if err := r.ParseForm(); err != nil {
		log.Printf("error parsing webhook form: %v", err)
	}
	return sms.IncomingMessage{
		Body: r.FormValue("Body"),
		From: r.FormValue("From"),
	}
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

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

// chargebot answers "charger" texts with the nearest public EV chargers.
//
// Configuration is read from the environment (and an optional .env file):
//
//	PORT / CHARGEBOT_PORT   listen port, default 8080
//	OPENCHARGEMAP_API_KEY   Open Charge Map API key
//	OPENCHARGEMAP_URL       POI endpoint override
//	OCM_TIMEOUT             outbound timeout ("10s"), default none
//	KAFKA_BROKERS           comma-separated brokers; enables the reply outbox
//	KAFKA_OUTBOX_TOPIC      default "sms-outbox"
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jredh-dev/chargebot/config"
	"github.com/jredh-dev/chargebot/internal/chargers"
	"github.com/jredh-dev/chargebot/internal/handlers"
	"github.com/jredh-dev/chargebot/internal/httpserver"
	"github.com/jredh-dev/chargebot/internal/sms"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("chargebot %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", buildDate)
		os.Exit(0)
	}

	cfg := config.Load()

	client := chargers.NewClient(cfg.OpenChargeMap.APIKey, cfg.OpenChargeMap.BaseURL, cfg.OpenChargeMap.Timeout)
	lookup := chargers.NewLookup(client)

	srv := httpserver.New()

	var outbox sms.Publisher
	if cfg.Kafka.Enabled() {
		o := sms.NewOutbox(cfg.Kafka.Brokers, cfg.Kafka.OutboxTopic)
		srv.OnStop(func() {
			if err := o.Close(); err != nil {
				log.Printf("error closing outbox: %v", err)
			}
		})
		outbox = o
		log.Printf("  Outbox:  %s on %v", o.Topic(), cfg.Kafka.Brokers)
	}

	h := handlers.New(lookup, outbox)
	srv.Router.Post("/message", h.Message)
	srv.Router.Post("/cost", h.Cost)

	addr := ":" + cfg.Server.Port
	log.Printf("chargebot starting on %s", addr)
	log.Printf("  Webhook: http://localhost%s/message", addr)
	log.Printf("  Cost:    http://localhost%s/cost", addr)
	log.Printf("  Health:  http://localhost%s/health", addr)

	if err := srv.ListenAndServe(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

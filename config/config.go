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

// Package config loads chargebot configuration from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultOpenChargeMapURL is the Open Charge Map POI endpoint.
const DefaultOpenChargeMapURL = "https://api.openchargemap.io/v3/poi/"

// Config holds all application configuration.
type Config struct {
	Server        ServerConfig
	OpenChargeMap OpenChargeMapConfig
	Kafka         KafkaConfig
}

type ServerConfig struct {
	Port string
}

type OpenChargeMapConfig struct {
	APIKey  string        // sent as X-API-Key; absence is not validated
	BaseURL string        // overridable for tests and mirrors
	Timeout time.Duration // 0 = no client timeout
}

type KafkaConfig struct {
	Brokers     []string // empty disables the reply outbox
	OutboxTopic string
}

// Enabled reports whether replies should be published to Kafka.
func (k KafkaConfig) Enabled() bool { return len(k.Brokers) > 0 }

// Load reads an optional .env file and then builds the configuration from
// environment variables. PORT (Cloud Run standard) takes precedence over
// CHARGEBOT_PORT.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using process environment")
	}

	port := getEnv("PORT", "")
	if port == "" {
		port = getEnv("CHARGEBOT_PORT", "8080")
	}

	return &Config{
		Server: ServerConfig{
			Port: port,
		},
		OpenChargeMap: OpenChargeMapConfig{
			APIKey:  getEnv("OPENCHARGEMAP_API_KEY", ""),
			BaseURL: getEnv("OPENCHARGEMAP_URL", DefaultOpenChargeMapURL),
			Timeout: getEnvDuration("OCM_TIMEOUT", 0),
		},
		Kafka: KafkaConfig{
			Brokers:     splitList(getEnv("KAFKA_BROKERS", "")),
			OutboxTopic: getEnv("KAFKA_OUTBOX_TOPIC", "sms-outbox"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration accepts Go durations ("10s") or a bare number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("config: ignoring invalid %s=%q", key, value)
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

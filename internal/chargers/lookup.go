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

package chargers

import (
	"context"
	"log"
)

// Source returns the raw chargers for a query. *Client is the real one.
type Source interface {
	Nearby(ctx context.Context, q GeoQuery) ([]POI, error)
}

// Lookup turns a Source into reply text. Every failure becomes the reply
// itself, so callers always get a string to send back.
type Lookup struct {
	source Source
	query  GeoQuery
}

// NewLookup creates a Lookup over DefaultQuery.
func NewLookup(src Source) *Lookup {
	return &Lookup{source: src, query: DefaultQuery}
}

// FindChargers fetches and formats the nearby chargers.
func (l *Lookup) FindChargers(ctx context.Context) string {
	pois, err := l.source.Nearby(ctx, l.query)
	if err != nil {
		log.Printf("chargers: lookup failed (%s): %v", Classify(err), err)
		return ErrorReply(err)
	}
	log.Printf("chargers: %d records returned", len(pois))
	return Format(pois)
}

// ErrorReply renders a lookup error as the user-facing reply.
func ErrorReply(err error) string {
	return "Error fetching chargers: " + err.Error()
}

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
	"fmt"
	"strings"
)

const (
	// NoChargersReply is sent when the API returns an empty result set.
	NoChargersReply = "No nearby chargers found."

	noConnections = "No connections available"
)

// Format renders pois as one block per charger, in input order:
//
//	- {name}, {address}, {town}, {postcode} ({status})
//	Connections: {type}, {type}
//
// Records without AddressInfo are dropped. An empty input yields
// NoChargersReply; input where every record is dropped yields "".
func Format(pois []POI) string {
	if len(pois) == 0 {
		return NoChargersReply
	}

	var b strings.Builder
	for _, p := range pois {
		if p.AddressInfo == nil || p.AddressInfo.empty {
			continue
		}
		a := p.AddressInfo

		status := "Status Unknown"
		if p.StatusType != nil {
			status = orDefault(p.StatusType.Title, "Status Unknown")
		}

		fmt.Fprintf(&b, "- %s, %s, %s, %s (%s)\nConnections: %s\n",
			orDefault(a.Title, "Unknown"),
			orDefault(a.AddressLine1, "No address"),
			orDefault(a.Town, "No town"),
			orDefault(a.Postcode, "No postcode"),
			status,
			connectionSummary(p.Connections),
		)
	}
	return strings.TrimSpace(b.String())
}

func connectionSummary(conns []Connection) string {
	if len(conns) == 0 {
		return noConnections
	}
	titles := make([]string, len(conns))
	for i, c := range conns {
		titles[i] = "Unknown"
		if c.ConnectionType != nil {
			titles[i] = orDefault(c.ConnectionType.Title, "Unknown")
		}
	}
	return strings.Join(titles, ", ")
}

func orDefault(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

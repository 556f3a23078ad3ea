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

// Package chargers looks up nearby EV charging stations on Open Charge Map
// and renders them as a plain-text SMS reply.
package chargers

import (
	"bytes"
	"encoding/json"
)

// GeoQuery describes the search area sent to Open Charge Map.
type GeoQuery struct {
	Latitude   float64
	Longitude  float64
	RadiusKM   float64
	MaxResults int
}

// DefaultQuery is central London, 5 km, three results. Every lookup uses it.
var DefaultQuery = GeoQuery{
	Latitude:   51.5074,
	Longitude:  -0.1278,
	RadiusKM:   5,
	MaxResults: 3,
}

// POI is the subset of an Open Charge Map point of interest we render.
//
// Every field is optional on the wire. A JSON null is treated the same as a
// missing key.
type POI struct {
	AddressInfo *AddressInfo `json:"AddressInfo"`
	StatusType  *StatusType  `json:"StatusType"`
	Connections []Connection `json:"Connections"`
}

// AddressInfo is the display name and location of a charger.
type AddressInfo struct {
	Title        *string `json:"Title"`
	AddressLine1 *string `json:"AddressLine1"`
	Town         *string `json:"Town"`
	Postcode     *string `json:"Postcode"`

	// empty is set when the object on the wire had no keys at all ("{}").
	empty bool
}

// UnmarshalJSON records whether the object was empty so an "AddressInfo": {}
// is skipped just like a missing one.
func (a *AddressInfo) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	type plain AddressInfo
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = AddressInfo(p)
	a.empty = len(keys) == 0
	return nil
}

// StatusType is the operational status of a charger, e.g. "Operational".
type StatusType struct {
	Title *string `json:"Title"`
}

// Connection is one physical connector at a charger.
type Connection struct {
	ConnectionType *ConnectionType `json:"ConnectionType"`
}

// ConnectionType names the connector standard, e.g. "Type 2 (Socket Only)".
type ConnectionType struct {
	Title *string `json:"Title"`
}

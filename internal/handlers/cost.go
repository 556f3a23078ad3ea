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
	"encoding/json"
	"net/http"
	"strconv"
)

const milesToKm = 1.60934

// costReq carries a trip in miles despite the field name; clients have always
// sent it that way.
type costReq struct {
	DistanceKm             float64 `json:"distanceKm"`
	PricePerKWh            float64 `json:"pricePerKWh"`
	ConsumptionKWhPer100Km float64 `json:"consumptionKWhPer100Km"`
}

type costResp struct {
	DistanceMiles          float64 `json:"distanceMiles"`
	DistanceKm             float64 `json:"distanceKm"`
	PricePerKWh            float64 `json:"pricePerKWh"`
	ConsumptionKWhPer100Km float64 `json:"consumptionKWhPer100Km"`
	EnergyNeededKWh        float64 `json:"energyNeededKWh"`
	EstimatedCost          string  `json:"estimatedCost"` // two decimals
}

// Cost estimates the electricity cost of a trip.
// POST /cost
func (h *Handler) Cost(w http.ResponseWriter, r *http.Request) {
	var req costReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.DistanceKm == 0 || req.PricePerKWh == 0 || req.ConsumptionKWhPer100Km == 0 {
		jsonError(w, "Missing parameters.", http.StatusBadRequest)
		return
	}
	jsonOK(w, http.StatusOK, estimateCost(req))
}

func estimateCost(req costReq) costResp {
	km := req.DistanceKm * milesToKm
	energy := km / 100 * req.ConsumptionKWhPer100Km
	return costResp{
		DistanceMiles:          req.DistanceKm,
		DistanceKm:             km,
		PricePerKWh:            req.PricePerKWh,
		ConsumptionKWhPer100Km: req.ConsumptionKWhPer100Km,
		EnergyNeededKWh:        energy,
		EstimatedCost:          strconv.FormatFloat(energy*req.PricePerKWh, 'f', 2, 64),
	}
}

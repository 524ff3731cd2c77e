package entities

import (
	"fmt"
	"strings"
)

type RouteRisk string

const (
	RiskLow    RouteRisk = "BAJO"
	RiskMedium RouteRisk = "MEDIO"
	RiskHigh   RouteRisk = "ALTO"
)

// RiskBand maps the upstream risk score into the three display bands.
func RiskBand(score float64) RouteRisk {
	switch {
	case score <= 0.33:
		return RiskLow
	case score <= 0.66:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// RoutePlan is the result of one optimize call.
type RoutePlan struct {
	DistanceKM  float64
	DurationHMS string
	DurationMin string
	TollCostCLP float64
	RiskScore   float64
	Path        []Location
}

func (p RoutePlan) Duration() string {
	if p.DurationHMS != "" {
		return p.DurationHMS
	}
	return FormatDurationHMS(p.DurationMin)
}

// RouteRecord is a stored route-query result.
type RouteRecord struct {
	ID              int64
	OriginText      string
	DestinationText string
	Origin          Location
	Destination     Location
	DistanceKM      float64
	DurationHMS     string
	DurationMin     string
	RiskScore       float64
}

func (r RouteRecord) Duration() string {
	if r.DurationHMS != "" {
		return r.DurationHMS
	}
	return FormatDurationHMS(r.DurationMin)
}

// OriginLabel falls back to raw coordinates when the stored text is empty.
func (r RouteRecord) OriginLabel() string {
	return locationLabel(r.OriginText, r.Origin)
}

func (r RouteRecord) DestinationLabel() string {
	return locationLabel(r.DestinationText, r.Destination)
}

func locationLabel(text string, loc Location) string {
	if text != "" {
		return text
	}
	return fmt.Sprintf("%.2f, %.2f", loc.Lat, loc.Lon)
}

// FormatDurationHMS renders an "H:MM" style duration as "HH:MM:00"; any other
// shape passes through unchanged.
func FormatDurationHMS(min string) string {
	if min == "" {
		return ""
	}
	parts := strings.Split(min, ":")
	if len(parts) != 2 {
		return min
	}
	h := parts[0]
	if len(h) < 2 {
		h = "0" + h
	}
	m := parts[1]
	if len(m) < 2 {
		m = "0" + m
	}
	return h + ":" + m + ":00"
}

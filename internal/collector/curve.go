package collector

import (
	"errors"
	"fmt"
	"log"
	"time"

	"EconTrack/internal/model"
)

// CurveMaturities lists the tenors sampled for a yield-curve snapshot,
// shortest first.
var CurveMaturities = []model.SeriesRequest{
	{Name: "3-Month", SeriesID: "DTB3"},
	{Name: "2-Year", SeriesID: "DGS2"},
	{Name: "5-Year", SeriesID: "DGS5"},
	{Name: "10-Year", SeriesID: "DGS10"},
	{Name: "30-Year", SeriesID: "DGS30"},
}

// CurvePoint is one maturity's yield on the snapshot date. Yield is nil when
// that maturity could not be resolved.
type CurvePoint struct {
	Maturity string
	Yield    *float64
}

// Curve is a yield-curve snapshot across the standard maturities.
type Curve struct {
	Date   time.Time
	Points []CurvePoint
}

// YieldCurve samples the Treasury curve at the given date, substituting each
// series' nearest available observation when the exact date has none. A zero
// date means latest available, resolved from the 10-year series.
func YieldCurve(src SeriesSource, date time.Time) (*Curve, error) {
	if date.IsZero() {
		ref, err := src.Series("DGS10", time.Time{}, time.Time{})
		if err != nil {
			return nil, fmt.Errorf("resolve latest curve date: %w", err)
		}
		if len(ref) == 0 {
			return nil, errors.New("resolve latest curve date: empty reference series")
		}
		date = ref[len(ref)-1].Date
	}
	curve := &Curve{Date: date}
	for _, req := range CurveMaturities {
		point := CurvePoint{Maturity: req.Name}
		obs, err := src.Series(req.SeriesID, time.Time{}, time.Time{})
		if err != nil {
			log.Printf("[ERROR] retrieving %s (series %s): %v", req.Name, req.SeriesID, err)
			curve.Points = append(curve.Points, point)
			continue
		}
		if o, ok := nearestObservation(obs, date); ok {
			point.Yield = o.Value
		}
		curve.Points = append(curve.Points, point)
	}
	return curve, nil
}

// nearestObservation returns the observation closest in time to target,
// preferring the earlier one on ties. It is a snapshot lookup only; the
// fetch pipeline never substitutes dates.
func nearestObservation(obs []model.Observation, target time.Time) (model.Observation, bool) {
	if len(obs) == 0 {
		return model.Observation{}, false
	}
	best := obs[0]
	bestDiff := absDuration(obs[0].Date.Sub(target))
	for _, o := range obs[1:] {
		diff := absDuration(o.Date.Sub(target))
		if diff < bestDiff {
			best, bestDiff = o, diff
		}
	}
	return best, true
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

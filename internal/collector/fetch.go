package collector

import (
	"context"
	"log"
	"time"

	"EconTrack/internal/model"
)

// Outcome is the per-series result of a batch fetch: a table on success, an
// error on provider failure, neither when the provider returned no rows.
type Outcome struct {
	Name  string
	Table model.Table
	Err   error
}

// Empty reports the no-data case: the fetch worked but produced nothing.
func (o Outcome) Empty() bool { return o.Table == nil && o.Err == nil }

// Tables assembles the successful outcomes into an ordered set, preserving
// batch order.
func Tables(outcomes []Outcome) *model.TableSet {
	set := model.NewTableSet()
	for _, o := range outcomes {
		if o.Table == nil {
			continue
		}
		if err := set.Add(o.Table); err != nil {
			log.Printf("[WARN] %v, keeping the first", err)
		}
	}
	return set
}

// fetchSeries runs the shared fetch-and-normalize loop over requests. One
// failed or empty series never aborts the batch. withInfo adds the metadata
// round-trip the indicators domain wants; a metadata failure only costs the
// Frequency/Units tags.
func fetchSeries(ctx context.Context, src SeriesSource, requests []model.SeriesRequest, start, end time.Time, withInfo bool) []Outcome {
	outcomes := make([]Outcome, 0, len(requests))
	for _, req := range requests {
		if ctx.Err() != nil {
			log.Printf("[WARN] fetch interrupted after %d of %d series", len(outcomes), len(requests))
			break
		}
		log.Printf("[INFO] retrieving %s (series %s)", req.Name, req.SeriesID)
		obs, err := src.Series(req.SeriesID, start, end)
		if err != nil {
			log.Printf("[ERROR] retrieving %s (series %s): %v", req.Name, req.SeriesID, err)
			outcomes = append(outcomes, Outcome{Name: req.Name, Err: err})
			continue
		}
		if len(obs) == 0 {
			log.Printf("[INFO] no data found for %s (series %s)", req.Name, req.SeriesID)
			outcomes = append(outcomes, Outcome{Name: req.Name})
			continue
		}
		table := model.NewSeriesTable(req, obs)
		if withInfo {
			info, err := src.Info(req.SeriesID)
			if err != nil {
				log.Printf("[WARN] metadata for %s (series %s): %v", req.Name, req.SeriesID, err)
			} else {
				table.Frequency = info.Frequency
				table.Units = info.Units
			}
		}
		log.Printf("[INFO] retrieved %d records for %s", table.Len(), req.Name)
		outcomes = append(outcomes, Outcome{Name: req.Name, Table: table})
	}
	return outcomes
}

package ioharvest

import (
	"context"
	"log/slog"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gnbarcode/pkg/gnbarcode"
	"github.com/gnames/gnbarcode/pkg/sequence"
)

// batch is a group of identifiers found by the same search.
type batch struct {
	hit  sequence.Hit
	uids []string
}

// batches groups consecutive hits of the same search into batches of at
// most size identifiers. An identifier is included only once, at its
// first appearance.
func batches(hits []sequence.Hit, size int) []batch {
	size = max(size, 1)
	seen := make(map[string]struct{}, len(hits))

	var res []batch
	for _, h := range hits {
		if _, ok := seen[h.UID]; ok {
			continue
		}
		seen[h.UID] = struct{}{}

		if n := len(res); n > 0 && sameSearch(res[n-1].hit, h) &&
			len(res[n-1].uids) < size {
			res[n-1].uids = append(res[n-1].uids, h.UID)
			continue
		}
		search := h
		search.UID = ""
		res = append(res, batch{hit: search, uids: []string{h.UID}})
	}
	return res
}

func sameSearch(a, b sequence.Hit) bool {
	return a.Method == b.Method && a.Species == b.Species && a.Query == b.Query
}

// process fetches records of hits and classifies them. Accepted records
// and statistics are saved to the summary.
func (h *harvester) process(
	ctx context.Context,
	hits []sequence.Hit,
	sum *gnbarcode.HarvestSummary,
	log *slog.Logger,
) error {
	reg := sequence.NewRegistry()
	cls := sequence.NewClassifier(reg, h.cfg.Harvest.ExcludeLong)
	bs := batches(hits, h.cfg.Harvest.PageSize)

	var total int
	for _, b := range bs {
		total += len(b.uids)
	}
	bar := pb.Full.Start(total)
	bar.Set("prefix", "Fetching records: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	for _, b := range bs {
		if err := ctx.Err(); err != nil {
			sum.Records = reg.Records()
			return err
		}

		recs, err := h.ncbi.Fetch(ctx, b.uids)
		if err != nil && len(b.uids) > 1 && ctx.Err() == nil {
			log.Warn("Cannot fetch records batch, fetching one by one",
				"query", b.hit.Query,
				"requested", len(b.uids),
				"error", err,
			)
			recs = h.fetchEach(ctx, b, log)
		} else if err != nil {
			log.Warn("Cannot fetch some records",
				"query", b.hit.Query,
				"requested", len(b.uids),
				"received", len(recs),
				"error", err,
			)
		}
		sum.FetchErrors += max(len(b.uids)-len(recs), 0)

		for _, rec := range recs {
			_, v := cls.Process(rec, b.hit)
			sum.Verdicts[v]++
			if v != sequence.Accepted {
				log.Debug("Record rejected",
					"accession", rec.Accession,
					"length", rec.Length,
					"verdict", v.String(),
				)
			}
		}
		bar.Add(len(b.uids))
	}

	sum.Records = reg.Records()
	return nil
}

// fetchEach requests records of a failed batch one at a time, so a
// single broken identifier does not cost the rest of the batch.
func (h *harvester) fetchEach(
	ctx context.Context,
	b batch,
	log *slog.Logger,
) []sequence.Record {
	var res []sequence.Record
	for _, uid := range b.uids {
		if ctx.Err() != nil {
			break
		}
		recs, err := h.ncbi.Fetch(ctx, []string{uid})
		if err != nil {
			log.Warn("Cannot fetch record",
				"query", b.hit.Query,
				"uid", uid,
				"error", err,
			)
			continue
		}
		res = append(res, recs...)
	}
	return res
}

package ioharvest

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gnbarcode/pkg/sequence"
	"github.com/gnames/gnbarcode/pkg/taxonomy"
)

// searcher runs searches of marker sequences. Every name is searched only
// once during its lifetime.
type searcher struct {
	svc      sequence.Service
	log      *slog.Logger
	searched map[string]struct{}
}

func newSearcher(svc sequence.Service, log *slog.Logger) *searcher {
	return &searcher{
		svc:      svc,
		log:      log,
		searched: make(map[string]struct{}),
	}
}

// species searches sequences of every species by its valid name and
// by all its synonyms.
func (s *searcher) species(
	ctx context.Context,
	taxa []taxonomy.Taxon,
) []sequence.Hit {
	var total int
	for _, v := range taxa {
		total += len(v.Synonyms) + 1
	}
	bar := pb.Full.Start(total)
	bar.Set("prefix", "Searching species: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	var res []sequence.Hit
	for _, t := range taxa {
		for _, name := range t.Names() {
			if ctx.Err() != nil {
				return res
			}
			res = append(res, s.search(ctx, sequence.MethodHierarchy, t.Name, name)...)
			bar.Increment()
		}
	}
	return res
}

// scope searches sequences by the name of the root taxon, by names of its
// families and by names of genera of these families.
func (s *searcher) scope(ctx context.Context, root string) []sequence.Hit {
	res := s.search(ctx, sequence.MethodDirect, "", root)

	families := s.taxa(ctx, root, "family")
	for _, fam := range families {
		if ctx.Err() != nil {
			return res
		}
		res = append(res, s.search(ctx, sequence.MethodFamily, "", fam)...)
	}

	for _, fam := range families {
		for _, genus := range s.taxa(ctx, fam, "genus") {
			if ctx.Err() != nil {
				return res
			}
			res = append(res, s.search(ctx, sequence.MethodGenus, "", genus)...)
		}
	}
	return res
}

func (s *searcher) taxa(ctx context.Context, parent, rank string) []string {
	res, err := s.svc.TaxaByRank(ctx, parent, rank)
	if err != nil {
		s.log.Warn("Cannot get taxa for scope search",
			"parent", parent,
			"rank", rank,
			"error", err,
		)
		return nil
	}
	s.log.Info("Taxa for scope search",
		"parent", parent,
		"rank", rank,
		"count", len(res),
	)
	return res
}

// search runs queries for a name with every marker variant. Failed
// queries are logged and skipped.
func (s *searcher) search(
	ctx context.Context,
	method sequence.Method,
	species, name string,
) []sequence.Hit {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil
	}
	if _, ok := s.searched[key]; ok {
		return nil
	}
	s.searched[key] = struct{}{}

	var res []sequence.Hit
	for _, v := range sequence.Variants() {
		if ctx.Err() != nil {
			return res
		}

		term := sequence.ScopeQuery(name, v)
		if method == sequence.MethodHierarchy {
			term = sequence.SpeciesQuery(name, v)
		}

		uids, err := s.svc.Search(ctx, term)
		if err != nil {
			s.log.Warn("Search failed, query is skipped",
				"term", term,
				"error", err,
			)
			continue
		}
		for _, uid := range uids {
			res = append(res, sequence.Hit{
				UID:     uid,
				Method:  method,
				Species: species,
				Query:   name,
			})
		}
	}

	if len(res) > 0 {
		s.log.Debug("Name searched",
			"name", name,
			"method", method.String(),
			"hits", len(res),
		)
	}
	return res
}

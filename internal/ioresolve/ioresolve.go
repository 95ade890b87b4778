// Package ioresolve implements taxonomy.Resolver. It descends a taxonomic
// hierarchy from a root taxon down to species and attaches synonyms to
// every species found.
package ioresolve

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/gnames/gnbarcode/pkg/parserpool"
	"github.com/gnames/gnbarcode/pkg/taxonomy"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnuuid"
	"golang.org/x/sync/errgroup"
)

type resolver struct {
	jobs   int
	svc    taxonomy.Service
	parser parserpool.Pool

	mu      sync.Mutex
	visited map[string]struct{}
	taxa    []taxonomy.Taxon
}

// New creates a Resolver that uses a taxonomy service for the descent and
// the parser pool for normalization of synonyms. Children of the root are
// processed by cfg.JobsNumber concurrent workers.
func New(
	cfg *config.Config,
	svc taxonomy.Service,
	parser parserpool.Pool,
) taxonomy.Resolver {
	return &resolver{
		jobs:   max(cfg.JobsNumber, 1),
		svc:    svc,
		parser: parser,
	}
}

// Resolve returns all species under the root sorted by name. It fails only
// if the children of the root are not available, problems deeper in the
// hierarchy prune the affected subtree.
func (r *resolver) Resolve(
	ctx context.Context,
	root taxonomy.Node,
) ([]taxonomy.Taxon, error) {
	r.mu.Lock()
	r.visited = map[string]struct{}{root.TSN: {}}
	r.taxa = nil
	r.mu.Unlock()

	if root.IsSpecies() {
		r.add(r.species(ctx, root))
		return r.result(), nil
	}

	children, err := r.svc.Children(ctx, root.TSN)
	if err != nil {
		if ctx.Err() != nil {
			return nil, CancelledError(ctx.Err())
		}
		return nil, TaxonHierarchyError(root.Name, root.TSN, err)
	}
	slog.Info("Descending hierarchy",
		"root", root.Name,
		"children", len(children),
		"jobs", r.jobs,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)
	for _, v := range children {
		g.Go(func() error {
			return r.descend(gctx, v)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, CancelledError(err)
	}
	return r.result(), nil
}

func (r *resolver) descend(ctx context.Context, node taxonomy.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !r.visit(node.TSN) {
		slog.Debug("Taxon already visited", "tsn", node.TSN, "name", node.Name)
		return nil
	}

	if node.IsSpecies() {
		r.add(r.species(ctx, node))
		return nil
	}

	children, err := r.svc.Children(ctx, node.TSN)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		slog.Warn("Cannot get children, subtree is skipped",
			"tsn", node.TSN,
			"name", node.Name,
			"error", err,
		)
		return nil
	}

	for _, v := range children {
		if err = r.descend(ctx, v); err != nil {
			return err
		}
	}
	return nil
}

// species creates a taxon from a species node. Synonyms that cannot be
// received are logged and left empty.
func (r *resolver) species(ctx context.Context, node taxonomy.Node) taxonomy.Taxon {
	canonical, _ := r.parser.Canonical(node.Name, nomcode.Zoological)
	res := taxonomy.Taxon{
		TSN:    node.TSN,
		Name:   strings.TrimSpace(node.Name),
		Rank:   node.Rank,
		NameID: gnuuid.New(canonical).String(),
	}

	syns, err := r.svc.Synonyms(ctx, node.TSN)
	if err != nil {
		slog.Warn("Cannot get synonyms",
			"tsn", node.TSN,
			"name", node.Name,
			"error", err,
		)
		return res
	}
	res.Synonyms = r.normalize(canonical, syns)
	return res
}

// normalize converts synonyms to canonical forms and removes duplicates
// and repetitions of the valid name.
func (r *resolver) normalize(valid string, syns []string) []string {
	seen := map[string]struct{}{strings.ToLower(valid): {}}
	var res []string
	for _, v := range syns {
		can, _ := r.parser.Canonical(v, nomcode.Zoological)
		key := strings.ToLower(can)
		if can == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		res = append(res, can)
	}
	return res
}

func (r *resolver) visit(tsn string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.visited[tsn]; ok {
		return false
	}
	r.visited[tsn] = struct{}{}
	return true
}

func (r *resolver) add(t taxonomy.Taxon) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.taxa = append(r.taxa, t)
	progressReport(len(r.taxa))
	slog.Debug("Species found", "tsn", t.TSN, "name", t.Name,
		"synonyms", len(t.Synonyms))
}

func (r *resolver) result() []taxonomy.Taxon {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.taxa) > 0 {
		fmt.Fprintln(os.Stderr)
	}
	res := slices.Clone(r.taxa)
	slices.SortStableFunc(res, func(a, b taxonomy.Taxon) int {
		return strings.Compare(a.Name, b.Name)
	})
	return res
}

// progressReport prints the number of species found so far.
func progressReport(num int) {
	str := fmt.Sprintf("Found %s species", humanize.Comma(int64(num)))
	fmt.Fprintf(os.Stderr, "\r%s", strings.Repeat(" ", 40))
	fmt.Fprintf(os.Stderr, "\r%s", str)
}

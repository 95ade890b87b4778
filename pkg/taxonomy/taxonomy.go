// Package taxonomy describes taxa harvested from a taxonomic hierarchy
// and the services that provide them.
package taxonomy

import (
	"context"
	"strings"
)

// RankSpecies is the rank of the leaves of a hierarchy descent.
const RankSpecies = "species"

// Node is an element of a taxonomic hierarchy.
type Node struct {
	// TSN is the Taxonomic Serial Number of ITIS.
	TSN string

	// Name is the scientific name of the taxon.
	Name string

	// Rank is the taxonomic rank, for example "Order" or "Species".
	Rank string
}

// IsSpecies returns true for nodes of the species rank.
func (n Node) IsSpecies() bool {
	return strings.EqualFold(strings.TrimSpace(n.Rank), RankSpecies)
}

// Taxon is a species found during a hierarchy descent together with its
// synonyms.
type Taxon struct {
	TSN  string
	Name string
	Rank string

	// Synonyms are canonical forms of synonym names. The list does not
	// contain duplicates or the valid name itself.
	Synonyms []string

	// NameID is UUID v5 generated from the canonical form of Name.
	NameID string
}

// Names returns the valid name followed by its synonyms.
func (t Taxon) Names() []string {
	res := make([]string, 0, len(t.Synonyms)+1)
	res = append(res, t.Name)
	return append(res, t.Synonyms...)
}

// Service provides access to a taxonomic information system.
type Service interface {
	// Node returns the name and rank of a taxon.
	Node(ctx context.Context, tsn string) (Node, error)

	// Children returns immediate descendants of a taxon.
	Children(ctx context.Context, tsn string) ([]Node, error)

	// Synonyms returns scientific names of synonyms of a taxon.
	Synonyms(ctx context.Context, tsn string) ([]string, error)
}

// Resolver collects all species under a root taxon.
type Resolver interface {
	Resolve(ctx context.Context, root Node) ([]Taxon, error)
}

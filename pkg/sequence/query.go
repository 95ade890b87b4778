package sequence

import (
	"fmt"
	"strings"
)

// SpeciesQuery builds a nucleotide search term for a species name and a
// marker variant. A variant of several words is searched word by word in
// all fields, a single word is searched as a gene name.
func SpeciesQuery(name, variant string) string {
	words := strings.Fields(variant)
	if len(words) > 1 {
		terms := make([]string, len(words))
		for i, v := range words {
			terms[i] = v + "[All Fields]"
		}
		return fmt.Sprintf("%s AND %s[ORGN]", strings.Join(terms, " AND "), name)
	}
	return fmt.Sprintf("%s[Gene] AND %s[ORGN]", variant, name)
}

// ScopeQuery builds a nucleotide search term for a higher taxon and a
// marker variant.
func ScopeQuery(name, variant string) string {
	return fmt.Sprintf("%s[ORGN] AND %s[Gene]", name, variant)
}

// RankQuery builds a taxonomy search term for taxa of a rank under
// a parent taxon.
func RankQuery(parent, rank string) string {
	return fmt.Sprintf("%s[ORGN] AND %s[Rank]", parent, strings.ToLower(rank))
}

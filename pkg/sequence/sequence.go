// Package sequence contains the pure logic of the harvest: marker genes,
// search queries, classification of GenBank records, extraction of
// specimen metadata and deduplication of accepted records.
package sequence

import "context"

// NA marks values absent from a GenBank record.
const NA = "NA"

// Method tells which search strategy discovered a record.
type Method int

const (
	// MethodUnknown is the zero value.
	MethodUnknown Method = iota
	// MethodHierarchy searches by species names and synonyms found in
	// the taxonomic hierarchy.
	MethodHierarchy
	// MethodDirect searches by the name of the root taxon.
	MethodDirect
	// MethodFamily searches by the names of families under the root.
	MethodFamily
	// MethodGenus searches by the names of genera under each family.
	MethodGenus
)

var methodNames = map[Method]string{
	MethodUnknown:   "Unknown",
	MethodHierarchy: "From ITIS",
	MethodDirect:    "Direct GenBank Search",
	MethodFamily:    "Family Search",
	MethodGenus:     "Genus Search",
}

func (m Method) String() string {
	if res, ok := methodNames[m]; ok {
		return res
	}
	return methodNames[MethodUnknown]
}

// IsScope is true for strategies that search by a higher taxon and take
// the species name from the record itself.
func (m Method) IsScope() bool {
	return m == MethodDirect || m == MethodFamily || m == MethodGenus
}

// Qualifier is a name/value pair of a GenBank feature.
type Qualifier struct {
	Name  string
	Value string
}

// Feature is an element of the feature table of a GenBank record.
type Feature struct {
	// Key is the feature type, for example "source" or "CDS".
	Key        string
	Qualifiers []Qualifier
}

// Value returns the first value of a qualifier.
func (f Feature) Value(name string) (string, bool) {
	for _, v := range f.Qualifiers {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// Values returns all values of a qualifier.
func (f Feature) Values(name string) []string {
	var res []string
	for _, v := range f.Qualifiers {
		if v.Name == name {
			res = append(res, v.Value)
		}
	}
	return res
}

// Record is a nucleotide record as it is received from GenBank.
type Record struct {
	// Accession is the versioned accession, for example "MN123456.1".
	Accession string

	// Definition is the description line of the record.
	Definition string

	// Organism is the organism name given by submitters.
	Organism string

	// Length is the number of base pairs.
	Length int

	Features []Feature
}

// Hit is an identifier found by a search together with the context of
// the search.
type Hit struct {
	// UID is the GenBank identifier of a record.
	UID string

	Method Method

	// Species is the valid name of the species for MethodHierarchy,
	// empty otherwise.
	Species string

	// Query is the name used in the search.
	Query string
}

// SequenceRecord is an accepted record with normalized metadata.
type SequenceRecord struct {
	Accession string

	// Species is the species name. For hierarchy searches it is the valid
	// name, with '*' appended if the organism of the record differs.
	Species string

	Method Method
	Gene   Gene

	Voucher        string
	Country        string
	Region         string
	Locality       string
	Latitude       string
	Longitude      string
	Length         int
	CollectionDate string
	BoldID         string

	// QueriedName is the name used in the search that found the record.
	QueriedName string
}

// Service provides access to a nucleotide sequence database.
type Service interface {
	// Search returns all identifiers matching a query term.
	Search(ctx context.Context, term string) ([]string, error)

	// Fetch returns full records for identifiers. Identifiers that could
	// not be retrieved are absent from the result.
	Fetch(ctx context.Context, uids []string) ([]Record, error)

	// TaxaByRank returns names of taxa of a rank under a parent taxon,
	// for example families of an order.
	TaxaByRank(ctx context.Context, parent, rank string) ([]string, error)
}

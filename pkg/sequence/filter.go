package sequence

import "strings"

const (
	// MinLength is the shortest accepted record in base pairs.
	MinLength = 590
	// MaxLength is the longest accepted record when long records are
	// excluded. Longer records are mitogenomes or assemblies.
	MaxLength = 1300
	// MinCYTBLength and MaxCYTBLength limit CYTB records.
	MinCYTBLength = 1000
	MaxCYTBLength = 1200
)

// Denylist contains terms that mark records of other loci.
var Denylist = []string{
	"von willebrand factor",
	"nad",
	"NADH",
	"12s",
	"16s",
	"rRNA",
	"tRNA",
	"ribosomal",
	"COX2",
	"COXII",
	"COXIII",
	"COX3",
}

// Verdict is the outcome of processing of a record.
type Verdict int

const (
	Accepted Verdict = iota
	Duplicate
	TooShort
	TooLong
	OutOfMarkerBand
	Denylisted
)

var verdictNames = []string{
	"accepted",
	"duplicate",
	"too short",
	"too long",
	"out of marker band",
	"denylisted",
}

func (v Verdict) String() string {
	if int(v) < 0 || int(v) >= len(verdictNames) {
		return "unknown"
	}
	return verdictNames[v]
}

// Verdicts lists all verdicts in a stable order.
func Verdicts() []Verdict {
	return []Verdict{
		Accepted, Duplicate, TooShort, TooLong, OutOfMarkerBand, Denylisted,
	}
}

// Classifier filters GenBank records and converts accepted ones to
// SequenceRecord. Accepted records are added to the registry.
type Classifier struct {
	reg         *Registry
	excludeLong bool
}

// NewClassifier creates a Classifier. If excludeLong is true, records
// longer than MaxLength are rejected.
func NewClassifier(reg *Registry, excludeLong bool) *Classifier {
	return &Classifier{reg: reg, excludeLong: excludeLong}
}

// Process decides the fate of a record found by a hit.
func (c *Classifier) Process(rec Record, hit Hit) (SequenceRecord, Verdict) {
	if c.reg.Has(rec.Accession) {
		return SequenceRecord{}, Duplicate
	}

	gene := ClassifyGene(rec.Definition)
	if v := c.check(rec, gene); v != Accepted {
		return SequenceRecord{}, v
	}

	res := SequenceRecord{
		Accession:      rec.Accession,
		Species:        speciesName(rec, hit),
		Method:         hit.Method,
		Gene:           gene,
		Voucher:        Voucher(rec.Features),
		Length:         rec.Length,
		CollectionDate: CollectionDate(rec.Features),
		BoldID:         BoldID(rec.Features),
		QueriedName:    hit.Query,
	}
	res.Country, res.Region, res.Locality = Location(rec.Features)
	res.Latitude, res.Longitude = LatLon(rec.Features)

	c.reg.Add(res)
	return res, Accepted
}

func (c *Classifier) check(rec Record, gene Gene) Verdict {
	switch {
	case rec.Length < MinLength:
		return TooShort
	case c.excludeLong && rec.Length > MaxLength:
		return TooLong
	case gene == GeneCYTB &&
		(rec.Length < MinCYTBLength || rec.Length > MaxCYTBLength):
		return OutOfMarkerBand
	case containsAny(strings.ToLower(rec.Definition), Denylist):
		return Denylisted
	}
	return Accepted
}

func speciesName(rec Record, hit Hit) string {
	if hit.Method.IsScope() || hit.Species == "" {
		if rec.Organism == "" {
			return NA
		}
		return rec.Organism
	}
	if !strings.EqualFold(rec.Organism, hit.Species) {
		return hit.Species + "*"
	}
	return hit.Species
}

package sequence

// Registry keeps accepted records of one harvest run, keyed by the
// versioned accession. It is not safe for concurrent use.
type Registry struct {
	index   map[string]int
	records []SequenceRecord
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Has tells if an accession is already registered.
func (r *Registry) Has(accession string) bool {
	_, ok := r.index[accession]
	return ok
}

// Add registers a record. It returns false if the accession is already
// known, the first registered record wins.
func (r *Registry) Add(rec SequenceRecord) bool {
	if r.Has(rec.Accession) {
		return false
	}
	r.index[rec.Accession] = len(r.records)
	r.records = append(r.records, rec)
	return true
}

// Len returns the number of registered records.
func (r *Registry) Len() int {
	return len(r.records)
}

// Records returns registered records in the order of registration.
func (r *Registry) Records() []SequenceRecord {
	res := make([]SequenceRecord, len(r.records))
	copy(res, r.records)
	return res
}

// ByGene returns registered records of one marker.
func (r *Registry) ByGene(g Gene) []SequenceRecord {
	var res []SequenceRecord
	for _, v := range r.records {
		if v.Gene == g {
			res = append(res, v)
		}
	}
	return res
}

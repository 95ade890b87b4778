package iotesting

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gnames/gnbarcode/pkg/sequence"
)

// Taxon is an entry of the fake NCBI taxonomy.
type Taxon struct {
	ID   string
	Name string
	Rank string
}

// NCBI is a fake NCBI E-utilities service.
type NCBI struct {
	// Searches are nucleotide identifiers by search term.
	Searches map[string][]string

	// Records are nucleotide records by identifier.
	Records map[string]sequence.Record

	// Taxa are taxonomy search results by search term.
	Taxa map[string][]Taxon

	// BrokenTerms always get a server error.
	BrokenTerms map[string]bool

	// BrokenIDs get a server error for any efetch request that includes
	// them.
	BrokenIDs map[string]bool

	mu      sync.Mutex
	terms   []string
	fetched int
	webEnvs int
}

// Server starts the fake service. It is closed at the end of the test.
func (f *NCBI) Server(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(srv.Close)
	return srv
}

// Terms returns search terms of the first pages of nucleotide searches
// in the order they were received.
func (f *NCBI) Terms() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.terms...)
}

// Fetched returns the number of nucleotide identifiers requested by
// efetch.
func (f *NCBI) Fetched() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetched
}

// HistoryPages returns the number of search pages that used WebEnv.
func (f *NCBI) HistoryPages() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.webEnvs
}

func (f *NCBI) handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	switch {
	case strings.HasSuffix(r.URL.Path, "esearch.fcgi"):
		f.esearch(w, q.Get("db"), q)
	case strings.HasSuffix(r.URL.Path, "efetch.fcgi"):
		ids := strings.Split(q.Get("id"), ",")
		if q.Get("db") == "taxonomy" {
			f.efetchTaxa(w, ids)
			return
		}
		f.efetchNucleotide(w, ids)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *NCBI) esearch(w http.ResponseWriter, db string, q map[string][]string) {
	get := func(k string) string {
		if v := q[k]; len(v) > 0 {
			return v[0]
		}
		return ""
	}
	term := get("term")
	if f.BrokenTerms[term] {
		w.WriteHeader(http.StatusBadGateway)
		return
	}

	var ids []string
	if db == "taxonomy" {
		for _, v := range f.Taxa[term] {
			ids = append(ids, v.ID)
		}
	} else {
		ids = f.Searches[term]
	}

	start, _ := strconv.Atoi(get("retstart"))
	size, err := strconv.Atoi(get("retmax"))
	if err != nil || size == 0 {
		size = 20
	}

	f.mu.Lock()
	if db == "nucleotide" && start == 0 {
		f.terms = append(f.terms, term)
	}
	if get("WebEnv") != "" {
		f.webEnvs++
	}
	f.mu.Unlock()

	page := []string{}
	if start < len(ids) {
		page = ids[start:min(start+size, len(ids))]
	}
	res := map[string]any{
		"esearchresult": map[string]any{
			"count":    strconv.Itoa(len(ids)),
			"retmax":   strconv.Itoa(len(page)),
			"retstart": strconv.Itoa(start),
			"idlist":   page,
			"webenv":   "MCID_test",
			"querykey": "1",
		},
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}

func (f *NCBI) efetchNucleotide(w http.ResponseWriter, ids []string) {
	f.mu.Lock()
	f.fetched += len(ids)
	f.mu.Unlock()

	for _, id := range ids {
		if f.BrokenIDs[id] {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
	}

	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<!DOCTYPE GBSet PUBLIC "-//NCBI//NCBI GBSeq/EN" "https://www.ncbi.nlm.nih.gov/dtd/NCBI_GBSeq.dtd">`)
	b.WriteString("\n<GBSet>\n")
	for _, id := range ids {
		rec, ok := f.Records[id]
		if !ok {
			continue
		}
		GBSeq(&b, rec)
	}
	b.WriteString("</GBSet>\n")
	w.Header().Set("Content-Type", "text/xml")
	_, _ = w.Write([]byte(b.String()))
}

func (f *NCBI) efetchTaxa(w http.ResponseWriter, ids []string) {
	byID := make(map[string]Taxon)
	for _, taxa := range f.Taxa {
		for _, v := range taxa {
			byID[v.ID] = v
		}
	}

	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString("<TaxaSet>\n")
	for _, id := range ids {
		tx, ok := byID[id]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "<Taxon>\n<TaxId>%s</TaxId>\n", tx.ID)
		fmt.Fprintf(&b, "<ScientificName>%s</ScientificName>\n", escape(tx.Name))
		b.WriteString("<LineageEx>\n<Taxon><TaxId>8342</TaxId>")
		b.WriteString("<ScientificName>Anura</ScientificName><Rank>order</Rank></Taxon>\n")
		b.WriteString("</LineageEx>\n")
		fmt.Fprintf(&b, "<Rank>%s</Rank>\n</Taxon>\n", escape(tx.Rank))
	}
	b.WriteString("</TaxaSet>\n")
	w.Header().Set("Content-Type", "text/xml")
	_, _ = w.Write([]byte(b.String()))
}

// GBSeq writes a record as a GBSeq XML element.
func GBSeq(b *strings.Builder, rec sequence.Record) {
	acc, _, _ := strings.Cut(rec.Accession, ".")
	b.WriteString("<GBSeq>\n")
	fmt.Fprintf(b, "<GBSeq_locus>%s</GBSeq_locus>\n", escape(acc))
	fmt.Fprintf(b, "<GBSeq_length>%d</GBSeq_length>\n", rec.Length)
	b.WriteString("<GBSeq_moltype>DNA</GBSeq_moltype>\n")
	fmt.Fprintf(b, "<GBSeq_definition>%s</GBSeq_definition>\n", escape(rec.Definition))
	fmt.Fprintf(b, "<GBSeq_primary-accession>%s</GBSeq_primary-accession>\n", escape(acc))
	fmt.Fprintf(b, "<GBSeq_accession-version>%s</GBSeq_accession-version>\n", escape(rec.Accession))
	fmt.Fprintf(b, "<GBSeq_organism>%s</GBSeq_organism>\n", escape(rec.Organism))
	b.WriteString("<GBSeq_feature-table>\n")
	for _, f := range rec.Features {
		b.WriteString("<GBFeature>\n")
		fmt.Fprintf(b, "<GBFeature_key>%s</GBFeature_key>\n", escape(f.Key))
		b.WriteString("<GBFeature_quals>\n")
		for _, q := range f.Qualifiers {
			b.WriteString("<GBQualifier>\n")
			fmt.Fprintf(b, "<GBQualifier_name>%s</GBQualifier_name>\n", escape(q.Name))
			fmt.Fprintf(b, "<GBQualifier_value>%s</GBQualifier_value>\n", escape(q.Value))
			b.WriteString("</GBQualifier>\n")
		}
		b.WriteString("</GBFeature_quals>\n</GBFeature>\n")
	}
	b.WriteString("</GBSeq_feature-table>\n</GBSeq>\n")
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

package iotesting

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gnames/gnbarcode/pkg/taxonomy"
)

// ITIS is a fake ITIS JSON service.
type ITIS struct {
	// Nodes are taxa by TSN.
	Nodes map[string]taxonomy.Node

	// Children are immediate descendants by TSN.
	Children map[string][]string

	// Synonyms are synonym names by TSN.
	Synonyms map[string][]string

	// Broken are TSNs that always get a server error.
	Broken map[string]bool

	mu    sync.Mutex
	calls map[string]int
}

// Server starts the fake service. It is closed at the end of the test.
func (f *ITIS) Server(t *testing.T) *httptest.Server {
	t.Helper()
	f.calls = make(map[string]int)
	srv := httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(srv.Close)
	return srv
}

// Calls returns the number of requests of a method for a TSN.
func (f *ITIS) Calls(method, tsn string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method+"/"+tsn]
}

func (f *ITIS) handle(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
	tsn := r.URL.Query().Get("tsn")

	f.mu.Lock()
	f.calls[method+"/"+tsn]++
	f.mu.Unlock()

	if f.Broken[tsn] {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var res any
	switch method {
	case "getTaxonomicRankNameFromTSN":
		res = map[string]any{"tsn": tsn, "rankName": f.Nodes[tsn].Rank}
	case "getScientificNameFromTSN":
		var name any
		if n, ok := f.Nodes[tsn]; ok {
			name = n.Name
		}
		res = map[string]any{"tsn": tsn, "combinedName": name}
	case "getHierarchyDownFromTSN":
		var list []any
		for _, v := range f.Children[tsn] {
			n := f.Nodes[v]
			list = append(list, map[string]any{
				"parentTsn": tsn,
				"rankName":  n.Rank,
				"taxonName": n.Name,
				"tsn":       v,
			})
		}
		// ITIS pads lists with nulls
		list = append(list, nil)
		res = map[string]any{"tsn": tsn, "hierarchyList": list}
	case "getFullRecordFromTSN":
		var syns []any
		for _, v := range f.Synonyms[tsn] {
			syns = append(syns, map[string]any{"sciName": v})
		}
		syns = append(syns, nil)
		res = map[string]any{
			"tsn":         tsn,
			"synonymList": map[string]any{"synonyms": syns},
		}
	default:
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}

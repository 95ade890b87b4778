// Package ioentrez implements sequence.Service with NCBI E-utilities.
// Searches use esearch with the history server, records are received
// from efetch as GBSeq XML, taxa as TaxaSet XML.
package ioentrez

import (
	"context"
	"log/slog"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/gnbarcode/internal/iohttp"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/gnames/gnbarcode/pkg/retry"
	"github.com/gnames/gnbarcode/pkg/sequence"
	"github.com/tidwall/gjson"
)

const (
	// rps limits of NCBI without and with an API key.
	rpsAnonymous = 3
	rpsWithKey   = 10

	// taxaMax is the maximum number of taxa requested from taxonomy.
	taxaMax = 500
)

type entrez struct {
	url      string
	email    string
	apiKey   string
	pageSize int
	client   *iohttp.Client
}

// New creates an E-utilities client from configuration.
func New(cfg *config.Config) sequence.Service {
	rps := cfg.NCBI.RequestsPerSecond
	if rps == 0 {
		rps = rpsAnonymous
		if cfg.NCBI.APIKey != "" {
			rps = rpsWithKey
		}
	}
	policy := retry.New(
		cfg.Retry.MaxAttempts,
		time.Duration(cfg.Retry.Delay)*time.Second,
	)
	timeout := time.Duration(cfg.Retry.Timeout) * time.Second

	return &entrez{
		url:      cfg.NCBI.URL,
		email:    cfg.NCBI.Email,
		apiKey:   cfg.NCBI.APIKey,
		pageSize: cfg.Harvest.PageSize,
		client:   iohttp.New(timeout, policy, rps),
	}
}

// Search pages through all identifiers of a nucleotide query. Pages after
// the first one reuse the query stored on the history server.
func (e *entrez) Search(ctx context.Context, term string) ([]string, error) {
	params := e.params("nucleotide")
	params.Set("term", term)
	params.Set("usehistory", "y")
	params.Set("retmax", strconv.Itoa(e.pageSize))

	var res []string
	var retstart int
	for {
		params.Set("retstart", strconv.Itoa(retstart))
		page, err := e.esearch(ctx, params)
		if err != nil {
			return nil, SequenceSearchError(term, err)
		}
		res = append(res, page.ids...)

		if page.count <= retstart+e.pageSize || len(page.ids) == 0 {
			break
		}
		retstart += e.pageSize
		if page.webEnv != "" {
			params.Set("WebEnv", page.webEnv)
			params.Set("query_key", page.queryKey)
		}
	}

	slog.Debug("Sequence search", "term", term, "ids", len(res))
	return res, nil
}

func (e *entrez) Fetch(
	ctx context.Context,
	uids []string,
) ([]sequence.Record, error) {
	var res []sequence.Record
	for batch := range slices.Chunk(uids, max(e.pageSize, 1)) {
		params := e.params("nucleotide")
		params.Set("id", strings.Join(batch, ","))
		params.Set("rettype", "gb")
		params.Set("retmode", "xml")

		body, err := e.client.Get(ctx, e.url+"efetch.fcgi", params)
		if err != nil {
			return res, SequenceFetchError(len(batch), err)
		}
		recs, err := decodeGBSet(body)
		if err != nil {
			return res, SequenceFetchError(len(batch), err)
		}
		res = append(res, recs...)
	}
	return res, nil
}

func (e *entrez) TaxaByRank(
	ctx context.Context,
	parent, rank string,
) ([]string, error) {
	term := sequence.RankQuery(parent, rank)
	params := e.params("taxonomy")
	params.Set("term", term)
	params.Set("retmax", strconv.Itoa(taxaMax))

	page, err := e.esearch(ctx, params)
	if err != nil {
		return nil, TaxaByRankError(parent, rank, err)
	}
	if len(page.ids) == 0 {
		return nil, nil
	}

	params = e.params("taxonomy")
	params.Set("id", strings.Join(page.ids, ","))
	params.Set("retmode", "xml")
	body, err := e.client.Get(ctx, e.url+"efetch.fcgi", params)
	if err != nil {
		return nil, TaxaByRankError(parent, rank, err)
	}
	taxa, err := decodeTaxaSet(body)
	if err != nil {
		return nil, TaxaByRankError(parent, rank, err)
	}

	var res []string
	for _, v := range taxa {
		if strings.EqualFold(v.Rank, rank) {
			res = append(res, v.ScientificName)
		}
	}
	return res, nil
}

type searchPage struct {
	count    int
	ids      []string
	webEnv   string
	queryKey string
}

func (e *entrez) esearch(
	ctx context.Context,
	params url.Values,
) (searchPage, error) {
	params.Set("retmode", "json")
	body, err := e.client.Get(ctx, e.url+"esearch.fcgi", params)
	if err != nil {
		return searchPage{}, err
	}
	if !gjson.ValidBytes(body) {
		return searchPage{}, DecodeResponseError("esearch", "invalid JSON")
	}

	data := gjson.GetBytes(body, "esearchresult")
	if msg := data.Get("ERROR").String(); msg != "" {
		return searchPage{}, DecodeResponseError("esearch", msg)
	}
	if !data.Exists() {
		msg := gjson.GetBytes(body, "error").String()
		if msg == "" {
			msg = "no esearchresult"
		}
		return searchPage{}, DecodeResponseError("esearch", msg)
	}

	res := searchPage{
		count:    int(data.Get("count").Int()),
		webEnv:   data.Get("webenv").String(),
		queryKey: data.Get("querykey").String(),
	}
	for _, v := range data.Get("idlist").Array() {
		res.ids = append(res.ids, v.String())
	}
	return res, nil
}

func (e *entrez) params(db string) url.Values {
	res := url.Values{"db": {db}, "tool": {"gnbarcode"}}
	if e.email != "" {
		res.Set("email", e.email)
	}
	if e.apiKey != "" {
		res.Set("api_key", e.apiKey)
	}
	return res
}

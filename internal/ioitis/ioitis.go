// Package ioitis implements taxonomy.Service with the JSON web service of
// the Integrated Taxonomic Information System (ITIS).
package ioitis

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gnames/gnbarcode/internal/iohttp"
	"github.com/gnames/gnbarcode/pkg/config"
	"github.com/gnames/gnbarcode/pkg/retry"
	"github.com/gnames/gnbarcode/pkg/taxonomy"
	"github.com/tidwall/gjson"
)

type itis struct {
	url    string
	client *iohttp.Client
}

// New creates ITIS client from configuration.
func New(cfg *config.Config) taxonomy.Service {
	policy := retry.New(cfg.Retry.MaxAttempts, seconds(cfg.Retry.Delay))
	return &itis{
		url:    cfg.ITIS.URL,
		client: iohttp.New(seconds(cfg.Retry.Timeout), policy, 0),
	}
}

func (t *itis) Node(ctx context.Context, tsn string) (taxonomy.Node, error) {
	res := taxonomy.Node{TSN: tsn}

	rank, err := t.get(ctx, "getTaxonomicRankNameFromTSN", tsn)
	if err != nil {
		return res, err
	}
	res.Rank = strings.TrimSpace(rank.Get("rankName").String())

	name, err := t.get(ctx, "getScientificNameFromTSN", tsn)
	if err != nil {
		return res, err
	}
	res.Name = strings.TrimSpace(name.Get("combinedName").String())

	if res.Name == "" || res.Rank == "" {
		return res, TaxonNotFoundError(tsn)
	}
	return res, nil
}

func (t *itis) Children(ctx context.Context, tsn string) ([]taxonomy.Node, error) {
	data, err := t.get(ctx, "getHierarchyDownFromTSN", tsn)
	if err != nil {
		return nil, err
	}

	var res []taxonomy.Node
	for _, v := range data.Get("hierarchyList").Array() {
		if !v.IsObject() {
			continue
		}
		node := taxonomy.Node{
			TSN:  strings.TrimSpace(v.Get("tsn").String()),
			Name: strings.TrimSpace(v.Get("taxonName").String()),
			Rank: strings.TrimSpace(v.Get("rankName").String()),
		}
		if node.TSN == "" {
			continue
		}
		res = append(res, node)
	}
	return res, nil
}

func (t *itis) Synonyms(ctx context.Context, tsn string) ([]string, error) {
	data, err := t.get(ctx, "getFullRecordFromTSN", tsn)
	if err != nil {
		return nil, err
	}

	var res []string
	for _, v := range data.Get("synonymList.synonyms").Array() {
		if !v.IsObject() {
			continue
		}
		name := strings.TrimSpace(v.Get("sciName").String())
		if name != "" {
			res = append(res, name)
		}
	}
	return res, nil
}

func (t *itis) get(ctx context.Context, method, tsn string) (gjson.Result, error) {
	params := url.Values{"tsn": {tsn}}
	body, err := t.client.Get(ctx, t.url+method, params)
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, DecodeResponseError(method, tsn)
	}
	return gjson.ParseBytes(body), nil
}

func seconds(i int) time.Duration {
	return time.Duration(i) * time.Second
}

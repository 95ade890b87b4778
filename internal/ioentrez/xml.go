package ioentrez

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/gnames/gnbarcode/pkg/sequence"
)

type gbSet struct {
	Seqs []gbSeq `xml:"GBSeq"`
}

type gbSeq struct {
	Length     string      `xml:"GBSeq_length"`
	Accession  string      `xml:"GBSeq_accession-version"`
	Primary    string      `xml:"GBSeq_primary-accession"`
	Definition string      `xml:"GBSeq_definition"`
	Organism   string      `xml:"GBSeq_organism"`
	Features   []gbFeature `xml:"GBSeq_feature-table>GBFeature"`
}

type gbFeature struct {
	Key        string        `xml:"GBFeature_key"`
	Qualifiers []gbQualifier `xml:"GBFeature_quals>GBQualifier"`
}

type gbQualifier struct {
	Name  string `xml:"GBQualifier_name"`
	Value string `xml:"GBQualifier_value"`
}

type taxaSet struct {
	Taxa []taxon `xml:"Taxon"`
}

type taxon struct {
	TaxID          string `xml:"TaxId"`
	ScientificName string `xml:"ScientificName"`
	Rank           string `xml:"Rank"`
}

func decodeGBSet(body []byte) ([]sequence.Record, error) {
	var set gbSet
	if err := decode(body, &set); err != nil {
		return nil, err
	}

	res := make([]sequence.Record, 0, len(set.Seqs))
	for _, v := range set.Seqs {
		res = append(res, v.record())
	}
	return res, nil
}

func (s gbSeq) record() sequence.Record {
	length, _ := strconv.Atoi(strings.TrimSpace(s.Length))
	acc := strings.TrimSpace(s.Accession)
	if acc == "" {
		acc = strings.TrimSpace(s.Primary)
	}

	res := sequence.Record{
		Accession:  acc,
		Definition: strings.TrimSpace(s.Definition),
		Organism:   strings.TrimSpace(s.Organism),
		Length:     length,
		Features:   make([]sequence.Feature, len(s.Features)),
	}
	for i, f := range s.Features {
		feat := sequence.Feature{Key: f.Key}
		for _, q := range f.Qualifiers {
			feat.Qualifiers = append(feat.Qualifiers, sequence.Qualifier{
				Name:  q.Name,
				Value: q.Value,
			})
		}
		res.Features[i] = feat
	}
	return res
}

func decodeTaxaSet(body []byte) ([]taxon, error) {
	var set taxaSet
	if err := decode(body, &set); err != nil {
		return nil, err
	}
	return set.Taxa, nil
}

func decode(body []byte, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(body))
	// tolerate entities unknown to encoding/xml
	dec.Strict = false
	return dec.Decode(v)
}

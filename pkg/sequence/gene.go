package sequence

import "strings"

// Gene is a mitochondrial marker gene.
type Gene int

const (
	// GeneUnknown is assigned when no marker name is in the description.
	GeneUnknown Gene = iota
	// GeneCOI is cytochrome c oxidase subunit I.
	GeneCOI
	// GeneCYTB is cytochrome b.
	GeneCYTB
)

func (g Gene) String() string {
	switch g {
	case GeneCOI:
		return "COI"
	case GeneCYTB:
		return "CYTB"
	default:
		return "Unknown"
	}
}

// COIVariants are names of COI used in GenBank records.
var COIVariants = []string{
	"cytochrome oxidase subunit 1",
	"cytochrome c oxidase I",
	"COI",
	"COX1",
	"MTCO1",
	"MT-CO1",
	"cytochrome c oxidase subunit I",
	"coi",
	"(coi)",
	"(coi) gene",
	"cytochrome oxidase subunit 1 (COI) gene",
}

// CYTBVariants are names of CYTB used in GenBank records.
var CYTBVariants = []string{
	"cytochrome b",
	"Cytochrome b",
	"CYTB",
	"cytb",
	"cytochrome B",
	"MT-CYB",
	"mt-cyb",
	"cytochrome b gene",
	"(cytb)",
	"(cytb) gene",
	"mt-Cytb",
}

// Variants returns all marker names in the order they are searched.
func Variants() []string {
	res := make([]string, 0, len(COIVariants)+len(CYTBVariants))
	res = append(res, COIVariants...)
	return append(res, CYTBVariants...)
}

// ClassifyGene detects the marker by a case-insensitive match of marker
// names in a description. CYTB names are checked first.
func ClassifyGene(description string) Gene {
	desc := strings.ToLower(description)
	if containsAny(desc, CYTBVariants) {
		return GeneCYTB
	}
	if containsAny(desc, COIVariants) {
		return GeneCOI
	}
	return GeneUnknown
}

func containsAny(lowText string, terms []string) bool {
	for _, v := range terms {
		if strings.Contains(lowText, strings.ToLower(v)) {
			return true
		}
	}
	return false
}

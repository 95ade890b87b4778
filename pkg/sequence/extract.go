package sequence

import (
	"regexp"
	"strings"
)

var latLonRe = regexp.MustCompile(`^([0-9.-]+ [NS]) ([0-9.-]+ [WE])`)

// Voucher returns the specimen voucher of the first source feature.
func Voucher(fs []Feature) string {
	src, ok := firstSource(fs)
	if !ok {
		return NA
	}
	return valueOrNA(src, "specimen_voucher")
}

// Location splits the country qualifier of the first feature into
// country, province or state, and locality. The "geo_loc_name"
// qualifier is used if "country" is absent.
//
// "Ecuador: Napo, Tena, Rio Pano" gives "Ecuador", "Napo", "Tena,  Rio Pano".
// Spaces after commas of the locality are kept.
func Location(fs []Feature) (country, region, locality string) {
	country, region, locality = NA, NA, NA
	if len(fs) == 0 {
		return
	}
	loc, ok := fs[0].Value("country")
	if !ok || loc == "" {
		loc, ok = fs[0].Value("geo_loc_name")
	}
	if !ok || loc == "" {
		return
	}

	parts := strings.Split(loc, ":")
	country = strings.TrimSpace(parts[0])
	if len(parts) < 2 {
		return
	}
	rest := strings.Split(parts[1], ",")
	region = strings.TrimSpace(rest[0])
	if len(rest) > 1 {
		locality = strings.TrimSpace(strings.Join(rest[1:], ", "))
	}
	return
}

// LatLon returns latitude and longitude from the "lat_lon" qualifier of
// the first feature, for example "0.99 S 77.81 W".
func LatLon(fs []Feature) (lat, lon string) {
	if len(fs) == 0 {
		return NA, NA
	}
	val, _ := fs[0].Value("lat_lon")
	m := latLonRe.FindStringSubmatch(val)
	if m == nil {
		return NA, NA
	}
	return m[1], m[2]
}

// CollectionDate returns the collection date of the first source feature
// that has one.
func CollectionDate(fs []Feature) string {
	for _, v := range fs {
		if v.Key != "source" {
			continue
		}
		if date, ok := v.Value("collection_date"); ok {
			return date
		}
	}
	return NA
}

// BoldID returns the BOLD process ID from the first "BOLD:" cross
// reference, without the marker suffix. "BOLD:ABCD123-19.COI-5P" gives
// "ABCD123-19".
func BoldID(fs []Feature) string {
	for _, f := range fs {
		for _, xref := range f.Values("db_xref") {
			if !strings.HasPrefix(xref, "BOLD:") {
				continue
			}
			id := strings.Split(xref, ":")[1]
			return strings.Split(id, ".")[0]
		}
	}
	return NA
}

func firstSource(fs []Feature) (Feature, bool) {
	for _, v := range fs {
		if v.Key == "source" {
			return v, true
		}
	}
	return Feature{}, false
}

func valueOrNA(f Feature, name string) string {
	if res, ok := f.Value(name); ok && res != "" {
		return res
	}
	return NA
}

package filter

import (
	"sort"

	"screentime/domain/dataset"
)

// All is the sentinel value that disables a categorical predicate.
const All = "All"

// Filter is the set of user-selected predicates applied to the dataset.
// Categorical fields use exact-match equality; the All sentinel disables
// the predicate. The age bound is inclusive on both sides.
type Filter struct {
	AgeMin     int    `json:"age_min" form:"age_min"`
	AgeMax     int    `json:"age_max" form:"age_max"`
	Gender     string `json:"gender" form:"gender"`
	CityType   string `json:"city_type" form:"city_type"`
	DeviceType string `json:"device_type" form:"device_type"`
}

// Options holds the observed value domains of a dataset, used to populate
// filter controls and to default an unset filter.
type Options struct {
	AgeMin      int      `json:"age_min"`
	AgeMax      int      `json:"age_max"`
	Genders     []string `json:"genders"`
	CityTypes   []string `json:"city_types"`
	DeviceTypes []string `json:"device_types"`
}

// OptionsFor collects the observed filter domains from the dataset.
// Categorical values are sorted for stable UI ordering.
func OptionsFor(records []dataset.Record) Options {
	opts := Options{}
	genders := make(map[string]bool)
	cities := make(map[string]bool)
	devices := make(map[string]bool)

	for i, r := range records {
		if i == 0 || r.Age < opts.AgeMin {
			opts.AgeMin = r.Age
		}
		if i == 0 || r.Age > opts.AgeMax {
			opts.AgeMax = r.Age
		}
		genders[r.Gender] = true
		cities[r.CityType] = true
		devices[r.DeviceType] = true
	}

	opts.Genders = sortedKeys(genders)
	opts.CityTypes = sortedKeys(cities)
	opts.DeviceTypes = sortedKeys(devices)
	return opts
}

// Default returns the filter that selects the entire dataset: categorical
// predicates disabled and the age bound at the full observed range.
func Default(records []dataset.Record) Filter {
	opts := OptionsFor(records)
	return Filter{
		AgeMin:     opts.AgeMin,
		AgeMax:     opts.AgeMax,
		Gender:     All,
		CityType:   All,
		DeviceType: All,
	}
}

// Normalize fills unset categorical selections with the All sentinel and
// swaps a reversed age bound. UI sliders can cross, so a reversed pair is
// treated as the same interval.
func (f Filter) Normalize() Filter {
	if f.Gender == "" {
		f.Gender = All
	}
	if f.CityType == "" {
		f.CityType = All
	}
	if f.DeviceType == "" {
		f.DeviceType = All
	}
	if f.AgeMin > f.AgeMax {
		f.AgeMin, f.AgeMax = f.AgeMax, f.AgeMin
	}
	return f
}

// Matches reports whether a record passes every active predicate.
func (f Filter) Matches(r dataset.Record) bool {
	if r.Age < f.AgeMin || r.Age > f.AgeMax {
		return false
	}
	if f.Gender != All && r.Gender != f.Gender {
		return false
	}
	if f.CityType != All && r.CityType != f.CityType {
		return false
	}
	if f.DeviceType != All && r.DeviceType != f.DeviceType {
		return false
	}
	return true
}

// Apply returns the records matching the filter. The input slice is never
// mutated; the result preserves dataset order. Predicates are independent
// conjunctive tests, so application order cannot affect the result and
// re-applying the same filter is a no-op.
func Apply(records []dataset.Record, f Filter) []dataset.Record {
	f = f.Normalize()
	filtered := make([]dataset.Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

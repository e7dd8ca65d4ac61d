// FILE: pkg/fixedfilter/filter.go
// PURPOSE: Hard filter on the catalog's fixed fields (price, rating, rating
// count). Extracts inclusive ranges from the query's special part and
// partitions candidates into a passing head and a failing tail.
package fixedfilter

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"bytemart-search-be/internal/constant"
	"bytemart-search-be/internal/entity"
	"bytemart-search-be/pkg/llm"
)

// Range is an inclusive bound pair; a nil end is open.
type Range struct {
	Min *float64
	Max *float64
}

// Spec holds one optional range per fixed field. A nil range means the field
// is unconstrained.
type Spec struct {
	Price       *Range
	Rating      *Range
	RatingCount *Range
}

// Empty reports whether no field is constrained.
func (s Spec) Empty() bool {
	return s.Price == nil && s.Rating == nil && s.RatingCount == nil
}

// Filter parses constraint text and applies the resulting spec.
type Filter struct {
	provider llm.LLMProvider
	logger   *log.Logger
}

func New(provider llm.LLMProvider, logger *log.Logger) *Filter {
	return &Filter{provider: provider, logger: logger}
}

// ParseSpec extracts the fixed-field constraints from the special part of a
// query. Empty input and any failure both come back as the unconstrained
// spec.
func (f *Filter) ParseSpec(ctx context.Context, special string) Spec {
	if strings.TrimSpace(special) == "" {
		return Spec{}
	}
	resp, err := f.provider.Generate(ctx, fmt.Sprintf(constant.FixedFilterPrompt, special))
	if err != nil {
		f.logger.Printf("WARN: fixed filter parse call failed, not filtering: %v", err)
		return Spec{}
	}

	var parsed struct {
		Price       []*float64 `json:"price"`
		Rating      []*float64 `json:"rating"`
		RatingCount []*float64 `json:"rating_count"`
	}
	raw := llm.ExtractJSONObject(resp)
	if raw == "" || json.Unmarshal([]byte(raw), &parsed) != nil {
		f.logger.Printf("WARN: unparseable fixed filter response, not filtering: %.120q", resp)
		return Spec{}
	}
	return Spec{
		Price:       toRange(parsed.Price),
		Rating:      toRange(parsed.Rating),
		RatingCount: toRange(parsed.RatingCount),
	}
}

func toRange(pair []*float64) *Range {
	if len(pair) != 2 {
		return nil
	}
	if pair[0] == nil && pair[1] == nil {
		return nil
	}
	return &Range{Min: pair[0], Max: pair[1]}
}

// Apply partitions indices into items that satisfy every constrained field
// followed by the rest, each part keeping its prior order. The return is
// always a permutation of the input; passed is the size of the passing head.
func (f *Filter) Apply(spec Spec, indices []int, items []entity.CatalogItem) (out []int, passed int) {
	if spec.Empty() {
		return indices, len(indices)
	}

	var pass, fail []int
	for _, idx := range indices {
		if idx < 0 || idx >= len(items) {
			fail = append(fail, idx)
			continue
		}
		item := items[idx]
		if matches(spec.Price, parsePrice(item.Price)) &&
			matches(spec.Rating, parseNumber(item.Rating)) &&
			matches(spec.RatingCount, parseCount(item.RatingCount)) {
			pass = append(pass, idx)
		} else {
			fail = append(fail, idx)
		}
	}
	return append(pass, fail...), len(pass)
}

// matches is inclusive on both ends. An item without a value never passes a
// constrained field.
func matches(r *Range, value *float64) bool {
	if r == nil {
		return true
	}
	if value == nil {
		return false
	}
	if r.Min != nil && *value < *r.Min {
		return false
	}
	if r.Max != nil && *value > *r.Max {
		return false
	}
	return true
}

var currencyReplacer = strings.NewReplacer("$", "", "₹", "", "€", "", "£", "", ",", "")

func parsePrice(s string) *float64 {
	return parseNumber(currencyReplacer.Replace(s))
}

func parseNumber(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseCount treats an unparseable rating count as zero rather than missing,
// the count field is routinely blank for new listings.
func parseCount(s string) *float64 {
	if v := parseNumber(currencyReplacer.Replace(s)); v != nil {
		return v
	}
	zero := 0.0
	return &zero
}

package models

import "strings"

// MerchantCategory classifies where a payment took place.
type MerchantCategory string

const (
	CategoryAll         MerchantCategory = "ALL"
	CategoryDining      MerchantCategory = "DINING"
	CategoryGrocery     MerchantCategory = "GROCERY"
	CategoryTravel      MerchantCategory = "TRAVEL"
	CategoryTransport   MerchantCategory = "TRANSPORT"
	CategoryShopping    MerchantCategory = "SHOPPING"
	CategoryOnline      MerchantCategory = "ONLINE"
	CategoryCafe        MerchantCategory = "CAFE"
	CategoryConvenience MerchantCategory = "CONVENIENCE"
	CategoryGas         MerchantCategory = "GAS"
)

var allCategories = []MerchantCategory{
	CategoryAll,
	CategoryDining,
	CategoryGrocery,
	CategoryTravel,
	CategoryTransport,
	CategoryShopping,
	CategoryOnline,
	CategoryCafe,
	CategoryConvenience,
	CategoryGas,
}

var categoryLabels = map[MerchantCategory]string{
	CategoryAll:         "전체 / 기본",
	CategoryDining:      "음식점",
	CategoryGrocery:     "대형마트",
	CategoryTravel:      "여행 / 항공",
	CategoryTransport:   "대중교통 / 택시",
	CategoryShopping:    "쇼핑 / 백화점",
	CategoryOnline:      "온라인 쇼핑",
	CategoryCafe:        "카페 / 베이커리",
	CategoryConvenience: "편의점",
	CategoryGas:         "주유소",
}

// AllCategories returns every merchant category in declaration order.
// The returned slice is a copy.
func AllCategories() []MerchantCategory {
	out := make([]MerchantCategory, len(allCategories))
	copy(out, allCategories)
	return out
}

// CategoryNames returns the category tags as plain strings, in declaration order.
func CategoryNames() []string {
	names := make([]string, len(allCategories))
	for i, c := range allCategories {
		names[i] = string(c)
	}
	return names
}

// IsValid reports whether c is one of the known categories.
func (c MerchantCategory) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the Korean display label, or the raw tag for unknown categories.
func (c MerchantCategory) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// ParseCategory normalizes s (trim, upper-case) and reports whether it names a known category.
func ParseCategory(s string) (MerchantCategory, bool) {
	c := MerchantCategory(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", false
	}
	return c, true
}

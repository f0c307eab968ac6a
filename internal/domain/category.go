package domain

// Category is the closed enumeration of catalog ingredient categories.
type Category string

const (
	CategoryBaseSpirit   Category = "BaseSpirit"
	CategoryBerries      Category = "berries"
	CategoryBrandy       Category = "brandy"
	CategoryDecoration   Category = "decoration"
	CategoryFruits       Category = "fruits"
	CategoryGin          Category = "gin"
	CategoryIce          Category = "ice"
	CategoryMixers       Category = "mixers"
	CategoryOthers       Category = "others"
	CategoryRum          Category = "rum"
	CategorySpicesHerbs  Category = "spices-herbs"
	CategorySpiritsOther Category = "spirits-other"
	CategoryTequila      Category = "tequila"
	CategoryVodka        Category = "vodka"
	CategoryWhisky       Category = "whisky"
)

// significance marks which categories count against a drink's match when the
// chat does not own them. Ice, decoration and similar "you have these anyway"
// categories are not significant.
var significance = map[Category]bool{
	CategoryBaseSpirit:   true,
	CategoryBerries:      false,
	CategoryBrandy:       true,
	CategoryDecoration:   false,
	CategoryFruits:       false,
	CategoryGin:          true,
	CategoryIce:          false,
	CategoryMixers:       false,
	CategoryOthers:       false,
	CategoryRum:          true,
	CategorySpicesHerbs:  true,
	CategorySpiritsOther: true,
	CategoryTequila:      true,
	CategoryVodka:        true,
	CategoryWhisky:       true,
}

func (c Category) String() string { return string(c) }

// IsValid reports whether the category is part of the closed enumeration.
func (c Category) IsValid() bool {
	_, ok := significance[c]
	return ok
}

// Significant reports whether a missing ingredient of this category counts
// against a drink candidate. A category outside the enumeration is treated
// as significant on purpose: the catalog occasionally grows new categories,
// and failing toward stricter matching beats silently recommending drinks
// the chat cannot mix.
func (c Category) Significant() bool {
	sig, ok := significance[c]
	if !ok {
		return true
	}
	return sig
}

// AllCategories returns every category of the enumeration. Order is not
// specified.
func AllCategories() []Category {
	all := make([]Category, 0, len(significance))
	for c := range significance {
		all = append(all, c)
	}
	return all
}

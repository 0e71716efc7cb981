// Package category maps raw transaction category keys onto the semantic
// buckets the budgeting engine allocates against. The lookup tables are
// static configuration with process-wide lifetime; they are never mutated.
package category

import "strings"

// Bucket is the normalized semantic category a raw transaction category
// resolves to.
type Bucket string

const (
	BucketHousing        Bucket = "housing"
	BucketUtilities      Bucket = "utilities"
	BucketFood           Bucket = "food"
	BucketTransportation Bucket = "transportation"
	BucketEntertainment  Bucket = "entertainment"
	BucketShopping       Bucket = "shopping"
	BucketSavings        Bucket = "savings"
	BucketRetirement     Bucket = "retirement"
	BucketOther          Bucket = "other"
)

// Nature splits expenses into mutually exclusive spending natures.
// A category belongs to at most one nature; unlisted categories belong to none.
type Nature string

const (
	NatureEssential     Nature = "essential"
	NatureFixed         Nature = "fixed"
	NatureVariable      Nature = "variable"
	NatureDiscretionary Nature = "discretionary"
)

var bucketByCategory = map[string]Bucket{
	"rent":             BucketHousing,
	"mortgage":         BucketHousing,
	"property-tax":     BucketHousing,
	"home-maintenance": BucketHousing,

	"electricity": BucketUtilities,
	"water":       BucketUtilities,
	"internet":    BucketUtilities,
	"phone":       BucketUtilities,
	"heating":     BucketUtilities,

	"groceries":   BucketFood,
	"restaurants": BucketFood,
	"dining":      BucketFood,
	"takeout":     BucketFood,

	"gas":              BucketTransportation,
	"fuel":             BucketTransportation,
	"public-transport": BucketTransportation,
	"car-payment":      BucketTransportation,
	"parking":          BucketTransportation,

	"entertainment": BucketEntertainment,
	"streaming":     BucketEntertainment,
	"movies":        BucketEntertainment,
	"hobbies":       BucketEntertainment,

	"shopping": BucketShopping,
	"clothing": BucketShopping,
	"gifts":    BucketShopping,

	"savings":         BucketSavings,
	"savings-account": BucketSavings,
	"emergency-fund":  BucketSavings,
	"general-savings": BucketSavings,

	"retirement":      BucketRetirement,
	"retirement-401k": BucketRetirement,
	"401k":            BucketRetirement,
	"pension":         BucketRetirement,
	"ira":             BucketRetirement,
}

// SavingsCategories are the category keys whose asset transactions count as
// savings transfers (emergency-fund contributions, totalSavings).
var SavingsCategories = map[string]bool{
	"savings":         true,
	"savings-account": true,
	"emergency-fund":  true,
	"general-savings": true,
}

// RetirementCategories are the category keys counted toward the retirement
// goal. Deliberately narrow: a generic "investment" category does not count
// unless the description carries a retirement keyword.
var RetirementCategories = map[string]bool{
	"retirement":      true,
	"retirement-401k": true,
	"401k":            true,
	"pension":         true,
	"ira":             true,
}

var natureByCategory = map[string]Nature{
	"rent":        NatureEssential,
	"mortgage":    NatureEssential,
	"groceries":   NatureEssential,
	"electricity": NatureEssential,
	"water":       NatureEssential,
	"healthcare":  NatureEssential,
	"insurance":   NatureEssential,

	"internet":      NatureFixed,
	"phone":         NatureFixed,
	"subscriptions": NatureFixed,
	"car-payment":   NatureFixed,
	"loan-payment":  NatureFixed,

	"fuel":             NatureVariable,
	"gas":              NatureVariable,
	"public-transport": NatureVariable,
	"restaurants":      NatureVariable,
	"takeout":          NatureVariable,

	"entertainment": NatureDiscretionary,
	"shopping":      NatureDiscretionary,
	"clothing":      NatureDiscretionary,
	"hobbies":       NatureDiscretionary,
	"streaming":     NatureDiscretionary,
	"travel":        NatureDiscretionary,
}

// Normalize lowercases and trims a raw category key.
func Normalize(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// Classify maps a raw category key to its semantic bucket.
// Unknown categories degrade to BucketOther rather than failing.
func Classify(category string) Bucket {
	if b, ok := bucketByCategory[Normalize(category)]; ok {
		return b
	}

	return BucketOther
}

// Nature reports the spending nature of a category. The second return is
// false for categories in none of the configured nature sets; those
// contribute to no nature bucket.
func NatureOf(category string) (Nature, bool) {
	n, ok := natureByCategory[Normalize(category)]
	return n, ok
}

// IsSavings reports whether the category is a configured savings category.
func IsSavings(category string) bool {
	return SavingsCategories[Normalize(category)]
}

// IsRetirement reports whether the category is a configured retirement category.
func IsRetirement(category string) bool {
	return RetirementCategories[Normalize(category)]
}

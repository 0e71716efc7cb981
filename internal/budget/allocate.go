package budget

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/peopleperf/dailyowo/internal/category"
)

// Category is a single budget line: a target allocation plus the derived
// spending state. Spent and OverBudget are recomputed on every evaluation,
// never stored.
type Category struct {
	ID         uuid.UUID
	Name       string
	Bucket     category.Bucket
	Allocated  decimal.Decimal
	Spent      decimal.Decimal
	OverBudget bool
}

// Budget is a set of category allocations for one period.
type Budget struct {
	ID         uuid.UUID
	UserID     string
	Method     Method
	Period     Period
	Categories []Category
	CreatedAt  time.Time
}

// fiftyThirtyTwenty is the fixed 50/30/20 split: needs sum to 50% (housing 20,
// utilities 10, food 12.5, transportation 7.5), wants split the 30% bucket
// evenly, savings and retirement split the 20% bucket evenly.
var fiftyThirtyTwenty = []struct {
	name    string
	bucket  category.Bucket
	percent decimal.Decimal
}{
	{"Housing", category.BucketHousing, decimal.NewFromFloat(0.20)},
	{"Utilities", category.BucketUtilities, decimal.NewFromFloat(0.10)},
	{"Food", category.BucketFood, decimal.NewFromFloat(0.125)},
	{"Transportation", category.BucketTransportation, decimal.NewFromFloat(0.075)},
	{"Entertainment", category.BucketEntertainment, decimal.NewFromFloat(0.10)},
	{"Shopping", category.BucketShopping, decimal.NewFromFloat(0.10)},
	{"Other", category.BucketOther, decimal.NewFromFloat(0.10)},
	{"Savings", category.BucketSavings, decimal.NewFromFloat(0.10)},
	{"Retirement", category.BucketRetirement, decimal.NewFromFloat(0.10)},
}

var zeroBasedCategories = []struct {
	name   string
	bucket category.Bucket
}{
	{"Housing", category.BucketHousing},
	{"Food", category.BucketFood},
	{"Transportation", category.BucketTransportation},
	{"Other", category.BucketOther},
}

// NewFromMethod produces the budget a method implies for the given income.
// Income is taken as-is: zero or negative income flows straight through the
// percentage arithmetic, matching the permissive error model of the engine.
func NewFromMethod(method Method, income decimal.Decimal, period Period, userID string) (*Budget, error) {
	b := &Budget{
		ID:     uuid.New(),
		UserID: userID,
		Method: method,
		Period: period,
	}

	switch method.Type {
	case MethodFiftyThirtyTwenty:
		b.Categories = make([]Category, 0, len(fiftyThirtyTwenty))
		for _, c := range fiftyThirtyTwenty {
			b.Categories = append(b.Categories, Category{
				ID:        uuid.New(),
				Name:      c.name,
				Bucket:    c.bucket,
				Allocated: income.Mul(c.percent),
			})
		}

	case MethodZeroBased:
		b.Categories = make([]Category, 0, len(zeroBasedCategories))
		for _, c := range zeroBasedCategories {
			b.Categories = append(b.Categories, Category{
				ID:     uuid.New(),
				Name:   c.name,
				Bucket: c.bucket,
			})
		}

	case MethodCustom:
		keys := make([]string, 0, len(method.Allocations))
		for k := range method.Allocations {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		b.Categories = make([]Category, 0, len(keys))
		titler := cases.Title(language.English)

		for _, k := range keys {
			b.Categories = append(b.Categories, Category{
				ID:        uuid.New(),
				Name:      titler.String(k),
				Bucket:    category.Classify(k),
				Allocated: method.Allocations[k],
			})
		}

	default:
		return nil, ErrUnsupportedMethod
	}

	return b, nil
}

// TotalAllocated sums the target allocations of all categories.
func (b *Budget) TotalAllocated() decimal.Decimal {
	total := decimal.Zero
	for _, c := range b.Categories {
		total = total.Add(c.Allocated)
	}

	return total
}

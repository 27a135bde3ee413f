// Package entity defines the core business entities for the domain layer.
package entity

// Category is a transaction category. Revenue and expense transactions draw
// from two disjoint enumerations; a category is only meaningful together with
// the transaction type it belongs to.
type Category string

// Revenue categories.
const (
	CategoryGeneralRevenue Category = "إيراد عام"
	CategoryZakat          Category = "زكاة"
	CategorySadaqa         Category = "صدقة"
	CategoryProjectSupport Category = "دعم مشروع أ"
	CategoryEventRevenue   Category = "إيرادات فعاليات"
	CategoryGrants         Category = "منح ومساعدات"
)

// Expense categories.
const (
	CategoryOperational  Category = "تشغيلي"
	CategorySalaries     Category = "رواتب"
	CategoryUtilities    Category = "خدمات ومرافق"
	CategoryProjectCosts Category = "تكاليف مشاريع"
	CategoryReliefAid    Category = "مساعدات إغاثية"
	CategoryRewards      Category = "مكافآت"
)

// revenueCategories and expenseCategories hold the definition order of each
// enumeration. Reports iterate in this order so output is stable across runs.
var revenueCategories = []Category{
	CategoryGeneralRevenue,
	CategoryZakat,
	CategorySadaqa,
	CategoryProjectSupport,
	CategoryEventRevenue,
	CategoryGrants,
}

var expenseCategories = []Category{
	CategoryOperational,
	CategorySalaries,
	CategoryUtilities,
	CategoryProjectCosts,
	CategoryReliefAid,
	CategoryRewards,
}

// RevenueCategories returns the revenue category enumeration in definition order.
func RevenueCategories() []Category {
	out := make([]Category, len(revenueCategories))
	copy(out, revenueCategories)
	return out
}

// ExpenseCategories returns the expense category enumeration in definition order.
func ExpenseCategories() []Category {
	out := make([]Category, len(expenseCategories))
	copy(out, expenseCategories)
	return out
}

// CategoriesForType returns the category enumeration matching a transaction type.
func CategoriesForType(transactionType TransactionType) []Category {
	if transactionType == TransactionTypeRevenue {
		return RevenueCategories()
	}
	return ExpenseCategories()
}

// IsValidCategory reports whether category belongs to the enumeration for the
// given transaction type.
func IsValidCategory(transactionType TransactionType, category Category) bool {
	for _, c := range CategoriesForType(transactionType) {
		if c == category {
			return true
		}
	}
	return false
}

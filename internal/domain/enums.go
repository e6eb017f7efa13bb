package domain

import "strings"

// PaymentMethod is how a recorded expense was paid.
type PaymentMethod string

const (
	PaymentMethodCash               PaymentMethod = "Cash"
	PaymentMethodCreditCard         PaymentMethod = "Credit Card"
	PaymentMethodDebitCard          PaymentMethod = "Debit Card"
	PaymentMethodElectronicTransfer PaymentMethod = "Electronic Transfer"
	PaymentMethodNETS               PaymentMethod = "NETS"
	PaymentMethodGiro               PaymentMethod = "Giro"
	PaymentMethodEzLink             PaymentMethod = "Ez-link"
	PaymentMethodGrabPay            PaymentMethod = "Grab Pay"
)

var paymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCreditCard,
	PaymentMethodDebitCard,
	PaymentMethodElectronicTransfer,
	PaymentMethodNETS,
	PaymentMethodGiro,
	PaymentMethodEzLink,
	PaymentMethodGrabPay,
}

// ResolvePaymentMethod returns the payment method stored under the raw code,
// or false when the code is blank or unknown.
func ResolvePaymentMethod(value string) (PaymentMethod, bool) {
	if strings.TrimSpace(value) == "" {
		return "", false
	}
	for _, method := range paymentMethods {
		if string(method) == value {
			return method, true
		}
	}
	return "", false
}

// ExpenseCategory is the top-level spending category of a recorded expense.
type ExpenseCategory string

const (
	ExpenseCategoryEntertainment ExpenseCategory = "Entertainment"
	ExpenseCategoryFood          ExpenseCategory = "Food"
	ExpenseCategoryHousehold     ExpenseCategory = "Household"
	ExpenseCategoryPersonal      ExpenseCategory = "Personal"
	ExpenseCategoryTransport     ExpenseCategory = "Transport"
	ExpenseCategoryLoans         ExpenseCategory = "Loans"
	ExpenseCategoryVacation      ExpenseCategory = "Vacation"
)

var expenseCategories = []ExpenseCategory{
	ExpenseCategoryEntertainment,
	ExpenseCategoryFood,
	ExpenseCategoryHousehold,
	ExpenseCategoryPersonal,
	ExpenseCategoryTransport,
	ExpenseCategoryLoans,
	ExpenseCategoryVacation,
}

// ResolveExpenseCategory returns the category stored under the raw code, or
// false when the code is blank or unknown.
func ResolveExpenseCategory(value string) (ExpenseCategory, bool) {
	if strings.TrimSpace(value) == "" {
		return "", false
	}
	for _, category := range expenseCategories {
		if string(category) == value {
			return category, true
		}
	}
	return "", false
}

// ExpenseSubCategory refines an ExpenseCategory.
type ExpenseSubCategory string

const (
	ExpenseSubCategoryAlcoholAndRestaurant ExpenseSubCategory = "Alcohol/ Restaurant"
	ExpenseSubCategoryFoodCourtAndFastFood ExpenseSubCategory = "Food court/ Fast food"
	ExpenseSubCategoryBreakfast            ExpenseSubCategory = "Breakfast"
	ExpenseSubCategoryClothing             ExpenseSubCategory = "Clothing"
	ExpenseSubCategoryKaraokeParty         ExpenseSubCategory = "Karaoke/ Party"
	ExpenseSubCategorySports               ExpenseSubCategory = "Sports"
	ExpenseSubCategoryPayForOthers         ExpenseSubCategory = "Pay For Others"
)

var expenseSubCategories = []ExpenseSubCategory{
	ExpenseSubCategoryAlcoholAndRestaurant,
	ExpenseSubCategoryFoodCourtAndFastFood,
	ExpenseSubCategoryBreakfast,
	ExpenseSubCategoryClothing,
	ExpenseSubCategoryKaraokeParty,
	ExpenseSubCategorySports,
	ExpenseSubCategoryPayForOthers,
}

// ResolveExpenseSubCategory returns the subcategory stored under the raw code,
// or false when the code is blank or unknown.
func ResolveExpenseSubCategory(value string) (ExpenseSubCategory, bool) {
	if strings.TrimSpace(value) == "" {
		return "", false
	}
	for _, subcategory := range expenseSubCategories {
		if string(subcategory) == value {
			return subcategory, true
		}
	}
	return "", false
}

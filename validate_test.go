package main

import (
	"testing"

	"fintrack/models"
)

func TestValidateIncomeCreate(t *testing.T) {
	cases := []struct {
		name    string
		body    incomeBody
		wantErr bool
	}{
		{"source only", incomeBody{Source: strPtr("Salary"), Amount: f64Ptr(100)}, false},
		{"description only", incomeBody{Description: strPtr("Freelance"), Amount: f64Ptr(100)}, false},
		{"no label", incomeBody{Amount: f64Ptr(100)}, true},
		{"no amount", incomeBody{Source: strPtr("Salary")}, true},
		{"negative amount", incomeBody{Source: strPtr("Salary"), Amount: f64Ptr(-1)}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateIncomeCreate(normalizeIncomePayload(tc.body))
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateExpenseCreate(t *testing.T) {
	full := func() expenseBody {
		var b expenseBody
		b.Description = strPtr("Lunch")
		b.Category = strPtr("Food")
		b.Amount = f64Ptr(12.5)
		b.Date = mustDate(t, `"2024-03-01T00:00:00.000Z"`)
		return b
	}

	if err := validateExpenseCreate(full()); err != nil {
		t.Fatalf("valid expense rejected: %v", err)
	}

	b := full()
	b.Description = nil
	if err := validateExpenseCreate(b); err == nil {
		t.Fatal("missing description accepted")
	}
	b = full()
	b.Category = nil
	if err := validateExpenseCreate(b); err == nil {
		t.Fatal("missing category accepted")
	}
	b = full()
	b.Date = DateValue{}
	if err := validateExpenseCreate(b); err == nil {
		t.Fatal("missing date accepted")
	}
	b = full()
	b.Amount = nil
	if err := validateExpenseCreate(b); err == nil {
		t.Fatal("missing amount accepted")
	}
}

func TestValidateTransactionCreate(t *testing.T) {
	if err := validateTransactionCreate(normalizeTransactionPayload(transactionBody{
		Kind:        strPtr(models.KindIncome),
		Description: strPtr("Refund"),
		Amount:      f64Ptr(20),
	})); err != nil {
		t.Fatalf("income-kind via description rejected: %v", err)
	}

	exp := transactionBody{
		Kind:        strPtr(models.KindExpense),
		Description: strPtr("Lunch"),
		Category:    strPtr("Food"),
		Amount:      f64Ptr(12.5),
		Date:        mustDate(t, `"2024-03-01T00:00:00.000Z"`),
	}
	if err := validateTransactionCreate(exp); err != nil {
		t.Fatalf("valid expense-kind rejected: %v", err)
	}

	if err := validateTransactionCreate(transactionBody{
		Kind:   strPtr("transfer"),
		Amount: f64Ptr(1),
	}); err == nil {
		t.Fatal("unknown kind accepted")
	}
	if err := validateTransactionCreate(transactionBody{
		Amount: f64Ptr(1),
	}); err == nil {
		t.Fatal("missing kind accepted")
	}
}

func mustDate(t *testing.T, rawJSON string) DateValue {
	t.Helper()
	var d DateValue
	if err := d.UnmarshalJSON([]byte(rawJSON)); err != nil {
		t.Fatalf("parse date %s: %v", rawJSON, err)
	}
	return d
}

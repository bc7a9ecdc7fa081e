package main

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"fintrack/models"
)

const isoLayout = "2006-01-02T15:04:05.000Z07:00"

func nowISO() string {
	return time.Now().UTC().Format(isoLayout)
}

// DateValue accepts a date either as a string or as a structured instant
// (epoch milliseconds). Structured instants are converted to an ISO-8601
// string; string inputs pass through verbatim, so normalization is
// idempotent. String instants are deliberately not re-validated here.
type DateValue struct {
	value string
	set   bool
}

func (d *DateValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		d.value = s
		d.set = s != ""
		return nil
	}
	ms, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(string(b), 64)
		if ferr != nil {
			return invalidField("date", "must be a string or epoch milliseconds")
		}
		ms = int64(f)
	}
	d.value = time.UnixMilli(ms).UTC().Format(isoLayout)
	d.set = true
	return nil
}

func (d DateValue) MarshalJSON() ([]byte, error) {
	if !d.set {
		return []byte("null"), nil
	}
	return json.Marshal(d.value)
}

func (d DateValue) String() string { return d.value }
func (d DateValue) IsSet() bool    { return d.set }

// incomeBody is the accepted payload for income create/update. Pointer
// fields distinguish "absent" from "zero" so partial updates only touch
// what the client supplied. Identity fields are not accepted at all.
type incomeBody struct {
	Source      *string   `json:"source"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Amount      *float64  `json:"amount"`
	Date        DateValue `json:"date"`
	Notes       *string   `json:"notes"`
}

type expenseBody struct {
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Amount      *float64  `json:"amount"`
	Date        DateValue `json:"date"`
	Notes       *string   `json:"notes"`
}

type transactionBody struct {
	Kind        *string   `json:"kind"`
	Source      *string   `json:"source"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Amount      *float64  `json:"amount"`
	Date        DateValue `json:"date"`
	Notes       *string   `json:"notes"`
}

// normalizeIncomePayload resolves the source/description alias: a supplied
// source always wins; otherwise description is copied into source.
// Description itself is kept as-is so it stays queryable. Returns a new
// value; the input is not mutated.
func normalizeIncomePayload(b incomeBody) incomeBody {
	out := b
	if strVal(out.Source) == "" && strVal(out.Description) != "" {
		v := *out.Description
		out.Source = &v
	}
	return out
}

// normalizeExpensePayload is date coercion only; expenses have no alias.
// The DateValue already carries the coerced form, so this is a copy.
func normalizeExpensePayload(b expenseBody) expenseBody {
	return b
}

// normalizeTransactionPayload applies the income aliasing rules when the
// record kind is income; expense-kind transactions keep description only.
func normalizeTransactionPayload(b transactionBody) transactionBody {
	out := b
	if strVal(out.Kind) == models.KindIncome &&
		strVal(out.Source) == "" && strVal(out.Description) != "" {
		v := *out.Description
		out.Source = &v
	}
	return out
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func validAmount(p *float64) error {
	if p == nil {
		return invalidField("amount", "required")
	}
	if math.IsNaN(*p) || math.IsInf(*p, 0) {
		return invalidField("amount", "must be a finite number")
	}
	if *p < 0 {
		return invalidField("amount", "must not be negative")
	}
	return nil
}

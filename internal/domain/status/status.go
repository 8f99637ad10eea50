// Package status maps an entity's status value to a semantic category that
// presentation layers turn into a visual treatment. The table is static and
// built once; lookups are exact and case-sensitive, and any pair missing from
// the table resolves to Neutral. Classification never fails.
package status

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Category is the semantic meaning of a status value.
type Category string

// Categories understood by presentation layers.
const (
	Positive Category = "positive"
	Warning  Category = "warning"
	Negative Category = "negative"
	Info     Category = "info"
	Neutral  Category = "neutral"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{Positive, Warning, Negative, Info, Neutral}
}

// EntityType names a kind of record that carries a status.
type EntityType string

// Entity types with classified statuses.
const (
	Invoice EntityType = "invoice"
	Receipt EntityType = "receipt"
	Mentee  EntityType = "mentee"
	Stock   EntityType = "stock"
)

// EntityTypes returns every entity type with a classification row.
func EntityTypes() []EntityType {
	return []EntityType{Invoice, Receipt, Mentee, Stock}
}

// Status values per entity type.
const (
	InvoicePaid      = "paid"
	InvoicePending   = "pending"
	InvoiceOverdue   = "overdue"
	InvoiceCancelled = "cancelled"

	ReceiptApproved = "approved"
	ReceiptPending  = "pending"
	ReceiptRejected = "rejected"

	MenteeActive    = "active"
	MenteeCompleted = "completed"
	MenteeOnHold    = "on-hold"
	MenteeDropped   = "dropped"

	StockIn   = "in-stock"
	StockLow  = "low-stock"
	StockOut  = "out-of-stock"
	StockOver = "overstock"
)

type row struct {
	status   string
	category Category
}

// rows keeps declaration order so Statuses can return a stable list.
var rows = map[EntityType][]row{
	Invoice: {
		{InvoicePaid, Positive},
		{InvoicePending, Warning},
		{InvoiceOverdue, Negative},
		{InvoiceCancelled, Neutral},
	},
	Receipt: {
		{ReceiptApproved, Positive},
		{ReceiptPending, Warning},
		{ReceiptRejected, Negative},
	},
	Mentee: {
		{MenteeActive, Positive},
		{MenteeCompleted, Info},
		{MenteeOnHold, Warning},
		{MenteeDropped, Negative},
	},
	Stock: {
		{StockIn, Positive},
		{StockLow, Warning},
		{StockOut, Negative},
		{StockOver, Info},
	},
}

var table = buildTable()

func buildTable() map[EntityType]map[string]Category {
	t := make(map[EntityType]map[string]Category, len(rows))
	for entity, rs := range rows {
		m := make(map[string]Category, len(rs))
		for _, r := range rs {
			m[r.status] = r.category
		}
		t[entity] = m
	}
	return t
}

// Classify returns the category for a status value of the given entity type.
// Unknown entity types and unknown status values are Neutral.
func Classify(entityType EntityType, statusValue string) Category {
	if c, ok := table[entityType][statusValue]; ok {
		return c
	}
	return Neutral
}

// Known reports whether statusValue is a recognised status for entityType.
func Known(entityType EntityType, statusValue string) bool {
	_, ok := table[entityType][statusValue]
	return ok
}

// Statuses returns the recognised status values for entityType in table
// order, or nil for an unknown entity type.
func Statuses(entityType EntityType) []string {
	rs, ok := rows[entityType]
	if !ok {
		return nil
	}
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.status
	}
	return out
}

// Descriptor is the presentation-ready form of a classified status.
type Descriptor struct {
	EntityType EntityType `json:"entityType"`
	Status     string     `json:"status"`
	Category   Category   `json:"category"`
	Label      string     `json:"label"`
	Badge      string     `json:"badge"`
	Icon       string     `json:"icon"`
}

// Badge and icon hints depend on the category alone.
var (
	badges = map[Category]string{
		Positive: "success",
		Warning:  "warning",
		Negative: "danger",
		Info:     "info",
		Neutral:  "secondary",
	}
	icons = map[Category]string{
		Positive: "check-circle",
		Warning:  "clock",
		Negative: "alert-circle",
		Info:     "info",
		Neutral:  "minus-circle",
	}
)

// Describe classifies statusValue and attaches a human label plus style hints.
func Describe(entityType EntityType, statusValue string) Descriptor {
	c := Classify(entityType, statusValue)
	return Descriptor{
		EntityType: entityType,
		Status:     statusValue,
		Category:   c,
		Label:      Label(statusValue),
		Badge:      badges[c],
		Icon:       icons[c],
	}
}

// Label turns a status value into display text: "-" and "_" become spaces
// and each word is capitalised ("on-hold" becomes "On Hold").
func Label(statusValue string) string {
	words := strings.FieldsFunc(statusValue, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the profile type in the database.
	Label = "profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldSemester holds the string denoting the semester field in the database.
	FieldSemester = "semester"
	// FieldAbout holds the string denoting the about field in the database.
	FieldAbout = "about"
	// FieldPriorCgpa holds the string denoting the prior_cgpa field in the database.
	FieldPriorCgpa = "prior_cgpa"
	// FieldPriorUnits holds the string denoting the prior_units field in the database.
	FieldPriorUnits = "prior_units"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the profile in the database.
	Table = "profiles"
)

// Columns holds all SQL columns for profile fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldLevel,
	FieldSemester,
	FieldAbout,
	FieldPriorCgpa,
	FieldPriorUnits,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultName holds the default value on creation for the "name" field.
	DefaultName string
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel string
	// DefaultSemester holds the default value on creation for the "semester" field.
	DefaultSemester string
	// DefaultAbout holds the default value on creation for the "about" field.
	DefaultAbout string
	// DefaultPriorCgpa holds the default value on creation for the "prior_cgpa" field.
	DefaultPriorCgpa float64
	// DefaultPriorUnits holds the default value on creation for the "prior_units" field.
	DefaultPriorUnits int
	// PriorUnitsValidator is a validator for the "prior_units" field. It is called by the builders before save.
	PriorUnitsValidator func(int) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Profile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// BySemester orders the results by the semester field.
func BySemester(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSemester, opts...).ToFunc()
}

// ByAbout orders the results by the about field.
func ByAbout(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAbout, opts...).ToFunc()
}

// ByPriorCgpa orders the results by the prior_cgpa field.
func ByPriorCgpa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorCgpa, opts...).ToFunc()
}

// ByPriorUnits orders the results by the prior_units field.
func ByPriorUnits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorUnits, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

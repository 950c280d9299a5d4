// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/great123-artV/GradeX/ent/predicate"
	"github.com/great123-artV/GradeX/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProfileUpdate) SetName(v string) *ProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ProfileUpdate) SetLevel(v string) *ProfileUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLevel(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSemester sets the "semester" field.
func (_u *ProfileUpdate) SetSemester(v string) *ProfileUpdate {
	_u.mutation.SetSemester(v)
	return _u
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableSemester(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetSemester(*v)
	}
	return _u
}

// SetAbout sets the "about" field.
func (_u *ProfileUpdate) SetAbout(v string) *ProfileUpdate {
	_u.mutation.SetAbout(v)
	return _u
}

// SetNillableAbout sets the "about" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableAbout(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetAbout(*v)
	}
	return _u
}

// SetPriorCgpa sets the "prior_cgpa" field.
func (_u *ProfileUpdate) SetPriorCgpa(v float64) *ProfileUpdate {
	_u.mutation.ResetPriorCgpa()
	_u.mutation.SetPriorCgpa(v)
	return _u
}

// SetNillablePriorCgpa sets the "prior_cgpa" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillablePriorCgpa(v *float64) *ProfileUpdate {
	if v != nil {
		_u.SetPriorCgpa(*v)
	}
	return _u
}

// AddPriorCgpa adds value to the "prior_cgpa" field.
func (_u *ProfileUpdate) AddPriorCgpa(v float64) *ProfileUpdate {
	_u.mutation.AddPriorCgpa(v)
	return _u
}

// SetPriorUnits sets the "prior_units" field.
func (_u *ProfileUpdate) SetPriorUnits(v int) *ProfileUpdate {
	_u.mutation.ResetPriorUnits()
	_u.mutation.SetPriorUnits(v)
	return _u
}

// SetNillablePriorUnits sets the "prior_units" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillablePriorUnits(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetPriorUnits(*v)
	}
	return _u
}

// AddPriorUnits adds value to the "prior_units" field.
func (_u *ProfileUpdate) AddPriorUnits(v int) *ProfileUpdate {
	_u.mutation.AddPriorUnits(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdate) SetUpdatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.PriorUnits(); ok {
		if err := profile.PriorUnitsValidator(v); err != nil {
			return &ValidationError{Name: "prior_units", err: fmt.Errorf(`ent: validator failed for field "Profile.prior_units": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(profile.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Semester(); ok {
		_spec.SetField(profile.FieldSemester, field.TypeString, value)
	}
	if value, ok := _u.mutation.About(); ok {
		_spec.SetField(profile.FieldAbout, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriorCgpa(); ok {
		_spec.SetField(profile.FieldPriorCgpa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriorCgpa(); ok {
		_spec.AddField(profile.FieldPriorCgpa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PriorUnits(); ok {
		_spec.SetField(profile.FieldPriorUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorUnits(); ok {
		_spec.AddField(profile.FieldPriorUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetName sets the "name" field.
func (_u *ProfileUpdateOne) SetName(v string) *ProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ProfileUpdateOne) SetLevel(v string) *ProfileUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLevel(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSemester sets the "semester" field.
func (_u *ProfileUpdateOne) SetSemester(v string) *ProfileUpdateOne {
	_u.mutation.SetSemester(v)
	return _u
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableSemester(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetSemester(*v)
	}
	return _u
}

// SetAbout sets the "about" field.
func (_u *ProfileUpdateOne) SetAbout(v string) *ProfileUpdateOne {
	_u.mutation.SetAbout(v)
	return _u
}

// SetNillableAbout sets the "about" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableAbout(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetAbout(*v)
	}
	return _u
}

// SetPriorCgpa sets the "prior_cgpa" field.
func (_u *ProfileUpdateOne) SetPriorCgpa(v float64) *ProfileUpdateOne {
	_u.mutation.ResetPriorCgpa()
	_u.mutation.SetPriorCgpa(v)
	return _u
}

// SetNillablePriorCgpa sets the "prior_cgpa" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillablePriorCgpa(v *float64) *ProfileUpdateOne {
	if v != nil {
		_u.SetPriorCgpa(*v)
	}
	return _u
}

// AddPriorCgpa adds value to the "prior_cgpa" field.
func (_u *ProfileUpdateOne) AddPriorCgpa(v float64) *ProfileUpdateOne {
	_u.mutation.AddPriorCgpa(v)
	return _u
}

// SetPriorUnits sets the "prior_units" field.
func (_u *ProfileUpdateOne) SetPriorUnits(v int) *ProfileUpdateOne {
	_u.mutation.ResetPriorUnits()
	_u.mutation.SetPriorUnits(v)
	return _u
}

// SetNillablePriorUnits sets the "prior_units" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillablePriorUnits(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetPriorUnits(*v)
	}
	return _u
}

// AddPriorUnits adds value to the "prior_units" field.
func (_u *ProfileUpdateOne) AddPriorUnits(v int) *ProfileUpdateOne {
	_u.mutation.AddPriorUnits(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdateOne) SetUpdatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.PriorUnits(); ok {
		if err := profile.PriorUnitsValidator(v); err != nil {
			return &ValidationError{Name: "prior_units", err: fmt.Errorf(`ent: validator failed for field "Profile.prior_units": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(profile.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Semester(); ok {
		_spec.SetField(profile.FieldSemester, field.TypeString, value)
	}
	if value, ok := _u.mutation.About(); ok {
		_spec.SetField(profile.FieldAbout, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriorCgpa(); ok {
		_spec.SetField(profile.FieldPriorCgpa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriorCgpa(); ok {
		_spec.AddField(profile.FieldPriorCgpa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PriorUnits(); ok {
		_spec.SetField(profile.FieldPriorUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorUnits(); ok {
		_spec.AddField(profile.FieldPriorUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/great123-artV/GradeX/ent/course"
	"github.com/great123-artV/GradeX/ent/predicate"
)

// CourseUpdate is the builder for updating Course entities.
type CourseUpdate struct {
	config
	hooks    []Hook
	mutation *CourseMutation
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdate) Where(ps ...predicate.Course) *CourseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *CourseUpdate) SetCode(v string) *CourseUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableCode(v *string) *CourseUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseUpdate) SetTitle(v string) *CourseUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableTitle(v *string) *CourseUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetUnits sets the "units" field.
func (_u *CourseUpdate) SetUnits(v int) *CourseUpdate {
	_u.mutation.ResetUnits()
	_u.mutation.SetUnits(v)
	return _u
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableUnits(v *int) *CourseUpdate {
	if v != nil {
		_u.SetUnits(*v)
	}
	return _u
}

// AddUnits adds value to the "units" field.
func (_u *CourseUpdate) AddUnits(v int) *CourseUpdate {
	_u.mutation.AddUnits(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *CourseUpdate) SetScore(v float64) *CourseUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableScore(v *float64) *CourseUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CourseUpdate) AddScore(v float64) *CourseUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *CourseUpdate) SetLevel(v string) *CourseUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableLevel(v *string) *CourseUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSemester sets the "semester" field.
func (_u *CourseUpdate) SetSemester(v string) *CourseUpdate {
	_u.mutation.SetSemester(v)
	return _u
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableSemester(v *string) *CourseUpdate {
	if v != nil {
		_u.SetSemester(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CourseUpdate) SetUpdatedAt(v time.Time) *CourseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdate) Mutation() *CourseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CourseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := course.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := course.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Course.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Units(); ok {
		if err := course.UnitsValidator(v); err != nil {
			return &ValidationError{Name: "units", err: fmt.Errorf(`ent: validator failed for field "Course.units": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(course.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Units(); ok {
		_spec.SetField(course.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnits(); ok {
		_spec.AddField(course.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(course.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(course.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(course.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Semester(); ok {
		_spec.SetField(course.FieldSemester, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(course.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseUpdateOne is the builder for updating a single Course entity.
type CourseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseMutation
}

// SetCode sets the "code" field.
func (_u *CourseUpdateOne) SetCode(v string) *CourseUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableCode(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseUpdateOne) SetTitle(v string) *CourseUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableTitle(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetUnits sets the "units" field.
func (_u *CourseUpdateOne) SetUnits(v int) *CourseUpdateOne {
	_u.mutation.ResetUnits()
	_u.mutation.SetUnits(v)
	return _u
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableUnits(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetUnits(*v)
	}
	return _u
}

// AddUnits adds value to the "units" field.
func (_u *CourseUpdateOne) AddUnits(v int) *CourseUpdateOne {
	_u.mutation.AddUnits(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *CourseUpdateOne) SetScore(v float64) *CourseUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableScore(v *float64) *CourseUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CourseUpdateOne) AddScore(v float64) *CourseUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *CourseUpdateOne) SetLevel(v string) *CourseUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableLevel(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSemester sets the "semester" field.
func (_u *CourseUpdateOne) SetSemester(v string) *CourseUpdateOne {
	_u.mutation.SetSemester(v)
	return _u
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableSemester(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetSemester(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CourseUpdateOne) SetUpdatedAt(v time.Time) *CourseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdateOne) Mutation() *CourseMutation {
	return _u.mutation
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdateOne) Where(ps ...predicate.Course) *CourseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseUpdateOne) Select(field string, fields ...string) *CourseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Course entity.
func (_u *CourseUpdateOne) Save(ctx context.Context) (*Course, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdateOne) SaveX(ctx context.Context) *Course {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CourseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := course.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := course.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Course.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Units(); ok {
		if err := course.UnitsValidator(v); err != nil {
			return &ValidationError{Name: "units", err: fmt.Errorf(`ent: validator failed for field "Course.units": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseUpdateOne) sqlSave(ctx context.Context) (_node *Course, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Course.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, course.FieldID)
		for _, f := range fields {
			if !course.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != course.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(course.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Units(); ok {
		_spec.SetField(course.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnits(); ok {
		_spec.AddField(course.FieldUnits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(course.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(course.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(course.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Semester(); ok {
		_spec.SetField(course.FieldSemester, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(course.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Course{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

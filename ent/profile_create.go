// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/great123-artV/GradeX/ent/profile"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ProfileCreate) SetName(v string) *ProfileCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableName(v *string) *ProfileCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *ProfileCreate) SetLevel(v string) *ProfileCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableLevel(v *string) *ProfileCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetSemester sets the "semester" field.
func (_c *ProfileCreate) SetSemester(v string) *ProfileCreate {
	_c.mutation.SetSemester(v)
	return _c
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableSemester(v *string) *ProfileCreate {
	if v != nil {
		_c.SetSemester(*v)
	}
	return _c
}

// SetAbout sets the "about" field.
func (_c *ProfileCreate) SetAbout(v string) *ProfileCreate {
	_c.mutation.SetAbout(v)
	return _c
}

// SetNillableAbout sets the "about" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableAbout(v *string) *ProfileCreate {
	if v != nil {
		_c.SetAbout(*v)
	}
	return _c
}

// SetPriorCgpa sets the "prior_cgpa" field.
func (_c *ProfileCreate) SetPriorCgpa(v float64) *ProfileCreate {
	_c.mutation.SetPriorCgpa(v)
	return _c
}

// SetNillablePriorCgpa sets the "prior_cgpa" field if the given value is not nil.
func (_c *ProfileCreate) SetNillablePriorCgpa(v *float64) *ProfileCreate {
	if v != nil {
		_c.SetPriorCgpa(*v)
	}
	return _c
}

// SetPriorUnits sets the "prior_units" field.
func (_c *ProfileCreate) SetPriorUnits(v int) *ProfileCreate {
	_c.mutation.SetPriorUnits(v)
	return _c
}

// SetNillablePriorUnits sets the "prior_units" field if the given value is not nil.
func (_c *ProfileCreate) SetNillablePriorUnits(v *int) *ProfileCreate {
	if v != nil {
		_c.SetPriorUnits(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProfileCreate) SetUpdatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableUpdatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProfileMutation object of the builder.
func (_c *ProfileCreate) Mutation() *ProfileMutation {
	return _c.mutation
}

// Save creates the Profile in the database.
func (_c *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileCreate) defaults() {
	if _, ok := _c.mutation.Name(); !ok {
		v := profile.DefaultName
		_c.mutation.SetName(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := profile.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Semester(); !ok {
		v := profile.DefaultSemester
		_c.mutation.SetSemester(v)
	}
	if _, ok := _c.mutation.About(); !ok {
		v := profile.DefaultAbout
		_c.mutation.SetAbout(v)
	}
	if _, ok := _c.mutation.PriorCgpa(); !ok {
		v := profile.DefaultPriorCgpa
		_c.mutation.SetPriorCgpa(v)
	}
	if _, ok := _c.mutation.PriorUnits(); !ok {
		v := profile.DefaultPriorUnits
		_c.mutation.SetPriorUnits(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := profile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Profile.name"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Profile.level"`)}
	}
	if _, ok := _c.mutation.Semester(); !ok {
		return &ValidationError{Name: "semester", err: errors.New(`ent: missing required field "Profile.semester"`)}
	}
	if _, ok := _c.mutation.About(); !ok {
		return &ValidationError{Name: "about", err: errors.New(`ent: missing required field "Profile.about"`)}
	}
	if _, ok := _c.mutation.PriorCgpa(); !ok {
		return &ValidationError{Name: "prior_cgpa", err: errors.New(`ent: missing required field "Profile.prior_cgpa"`)}
	}
	if _, ok := _c.mutation.PriorUnits(); !ok {
		return &ValidationError{Name: "prior_units", err: errors.New(`ent: missing required field "Profile.prior_units"`)}
	}
	if v, ok := _c.mutation.PriorUnits(); ok {
		if err := profile.PriorUnitsValidator(v); err != nil {
			return &ValidationError{Name: "prior_units", err: fmt.Errorf(`ent: validator failed for field "Profile.prior_units": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Profile.updated_at"`)}
	}
	return nil
}

func (_c *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(profile.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Semester(); ok {
		_spec.SetField(profile.FieldSemester, field.TypeString, value)
		_node.Semester = value
	}
	if value, ok := _c.mutation.About(); ok {
		_spec.SetField(profile.FieldAbout, field.TypeString, value)
		_node.About = value
	}
	if value, ok := _c.mutation.PriorCgpa(); ok {
		_spec.SetField(profile.FieldPriorCgpa, field.TypeFloat64, value)
		_node.PriorCgpa = value
	}
	if value, ok := _c.mutation.PriorUnits(); ok {
		_spec.SetField(profile.FieldPriorUnits, field.TypeInt, value)
		_node.PriorUnits = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
}

// Save creates the Profile entities in the database.
func (_c *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Profile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

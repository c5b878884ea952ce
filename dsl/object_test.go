package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrojosemoragallegos/specflow"
	"github.com/pedrojosemoragallegos/specflow/dsl"
)

func TestObjectBuilder(t *testing.T) {
	s, err := dsl.Object("person").
		Describe("a person record").
		Prop(dsl.Must(dsl.String("name", dsl.MinLength(1)))).
		Prop(dsl.Must(dsl.Integer("age", dsl.Minimum(0)))).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "person", s.Title())

	err = specflow.Validate(s, map[string]any{"name": "Ana", "age": 30})
	assert.NoError(t, err)
}

func TestObjectBuilderRejectsDuplicateTitles(t *testing.T) {
	_, err := dsl.Object("doc").
		Prop(dsl.Must(dsl.String("name"))).
		Prop(dsl.Must(dsl.Integer("name"))).
		Build()
	require.ErrorIs(t, err, specflow.ErrDuplicateTitle)
}

func TestObjectBuilderRequiresTitle(t *testing.T) {
	_, err := dsl.Object("").Build()
	require.ErrorIs(t, err, specflow.ErrMissingTitle)
}

func TestObjectBuilderKeepsFirstConditionError(t *testing.T) {
	_, err := dsl.Object("doc").
		When(nil, dsl.Must(dsl.String("x"))).
		When(dsl.Must(dsl.String("y", dsl.Const("y"))), nil).
		Build()
	require.ErrorIs(t, err, specflow.ErrIncompleteCondition)
}

func TestObjectBuilderConditions(t *testing.T) {
	s := dsl.Object("doc").
		Prop(dsl.Must(dsl.Boolean("flag"))).
		Prop(dsl.Must(dsl.String("label"))).
		When(
			dsl.Must(dsl.Boolean("flag", dsl.Const(true))),
			dsl.Must(dsl.String("label", dsl.MinLength(1))),
		).
		MustBuild()

	err := specflow.Validate(s, map[string]any{"flag": true, "label": ""})
	require.Error(t, err)
	iss, ok := specflow.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, specflow.CodeTooShort, iss[0].Code)
}

func TestMustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		dsl.Object("").MustBuild()
	})
}

package specflow_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pedrojosemoragallegos/specflow"
	"github.com/pedrojosemoragallegos/specflow/dsl"
)

func TestExport_FieldCarriesOnlyItsKindConstraints(t *testing.T) {
	f := dsl.Must(dsl.String("code",
		dsl.Description("short code"),
		dsl.Nullable(),
		dsl.MinLength(2),
		dsl.MaxLength(8),
		dsl.Pattern(`^[a-z]+$`),
	))
	out := specflow.Export(f)

	if out.Type != "string" || out.Title != "code" || out.Description != "short code" || !out.Nullable {
		t.Fatalf("core fields: %+v", out)
	}
	if out.MinLength == nil || *out.MinLength != 2 || out.MaxLength == nil || *out.MaxLength != 8 {
		t.Fatalf("lengths: %+v", out)
	}
	// The pattern round-trips as written, without the internal anchoring.
	if out.Pattern != `^[a-z]+$` {
		t.Fatalf("pattern=%q", out.Pattern)
	}
	if out.Minimum != nil || out.Items != nil || len(out.Properties) != 0 {
		t.Fatalf("foreign sections leaked: %+v", out)
	}
}

func TestExport_NumericBounds(t *testing.T) {
	f := dsl.Must(dsl.Integer("n",
		dsl.ExclusiveMinimum(0),
		dsl.Maximum(100),
		dsl.MultipleOf(5),
	))
	out := specflow.Export(f)
	if out.Type != "integer" {
		t.Fatalf("type=%s", out.Type)
	}
	if out.ExclusiveMinimum == nil || *out.ExclusiveMinimum != 0 {
		t.Fatalf("exclusiveMinimum: %+v", out)
	}
	if out.Maximum == nil || *out.Maximum != 100 || out.Minimum != nil {
		t.Fatalf("maximum: %+v", out)
	}
	if out.MultipleOf == nil || *out.MultipleOf != 5 {
		t.Fatalf("multipleOf: %+v", out)
	}
}

func TestExport_ArrayNesting(t *testing.T) {
	f := dsl.Must(dsl.Array("xs",
		dsl.PrefixItems(dsl.Must(dsl.String("head"))),
		dsl.Items(dsl.Must(dsl.Integer("rest"))),
		dsl.MinItems(1),
	))
	out := specflow.Export(f)
	if out.Type != "array" {
		t.Fatalf("type=%s", out.Type)
	}
	if len(out.PrefixItems) != 1 || out.PrefixItems[0].Type != "string" {
		t.Fatalf("prefixItems: %+v", out.PrefixItems)
	}
	if out.Items == nil || out.Items.Type != "integer" {
		t.Fatalf("items: %+v", out.Items)
	}
}

func TestExport_ObjectPreservesPropertyOrder(t *testing.T) {
	s := dsl.Object("doc").
		Prop(dsl.Must(dsl.String("zeta"))).
		Prop(dsl.Must(dsl.String("alpha"))).
		Prop(dsl.Must(dsl.String("mid"))).
		MustBuild()
	out := specflow.Export(s)

	if out.Type != "object" {
		t.Fatalf("type=%s", out.Type)
	}
	var keys []string
	for _, p := range out.Properties {
		keys = append(keys, p.Key)
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, keys); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	data, err := specflow.ExportJSON(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	text := string(data)
	iz, ia := strings.Index(text, `"zeta"`), strings.Index(text, `"alpha"`)
	if iz < 0 || ia < 0 || iz > ia {
		t.Fatalf("declaration order lost in JSON:\n%s", text)
	}
}

func TestExport_IsDeterministic(t *testing.T) {
	s := dsl.Object("doc").
		Prop(dsl.Must(dsl.String("name", dsl.MinLength(1)))).
		Prop(dsl.Must(dsl.Integer("age", dsl.Minimum(0)))).
		When(
			dsl.Must(dsl.Boolean("adult", dsl.Const(true))),
			dsl.Must(dsl.Integer("age", dsl.Minimum(18))),
		).
		MustBuild()

	if diff := cmp.Diff(specflow.Export(s), specflow.Export(s)); diff != "" {
		t.Fatalf("two exports differ:\n%s", diff)
	}
}

func TestExport_SingleConditionInlines(t *testing.T) {
	s := dsl.Object("doc").
		Prop(dsl.Must(dsl.Boolean("flag"))).
		WhenElse(
			dsl.Must(dsl.Boolean("flag", dsl.Const(true))),
			dsl.Must(dsl.String("label", dsl.MinLength(1))),
			dsl.Must(dsl.String("label", dsl.MaxLength(0))),
		).
		MustBuild()
	out := specflow.Export(s)

	if out.If == nil || out.Then == nil || out.Else == nil {
		t.Fatalf("single condition should inline: %+v", out)
	}
	if out.If.Const != true || out.Then.MinLength == nil {
		t.Fatalf("branch content: if=%+v then=%+v", out.If, out.Then)
	}
	if len(out.AllOf) != 0 {
		t.Fatalf("allOf should be empty: %+v", out.AllOf)
	}
}

func TestExport_MultipleConditionsUseAllOf(t *testing.T) {
	s := dsl.Object("doc").
		Prop(dsl.Must(dsl.Boolean("a"))).
		Prop(dsl.Must(dsl.Boolean("b"))).
		When(dsl.Must(dsl.Boolean("a", dsl.Const(true))), dsl.Must(dsl.Boolean("b", dsl.Const(true)))).
		When(dsl.Must(dsl.Boolean("b", dsl.Const(true))), dsl.Must(dsl.Boolean("a", dsl.Const(true)))).
		MustBuild()
	out := specflow.Export(s)

	if out.If != nil {
		t.Fatalf("multiple conditions must not inline")
	}
	if len(out.AllOf) != 2 {
		t.Fatalf("allOf len=%d", len(out.AllOf))
	}
	for i, triple := range out.AllOf {
		if triple.If == nil || triple.Then == nil {
			t.Fatalf("allOf[%d]: %+v", i, triple)
		}
	}
}

func TestExport_UntitledCompositionJoinsAllOf(t *testing.T) {
	s := dsl.Object("doc").
		Prop(dsl.Must(dsl.String("name"))).
		Prop(dsl.Must(dsl.AnyOf(
			dsl.Must(dsl.String("text")),
			dsl.Must(dsl.Integer("count")),
		))).
		MustBuild()
	out := specflow.Export(s)

	if got := out.Properties.Get("name"); got == nil || got.Type != "string" {
		t.Fatalf("titled property missing: %+v", out.Properties)
	}
	if len(out.AllOf) != 1 || len(out.AllOf[0].AnyOf) != 2 {
		t.Fatalf("composition placement: %+v", out.AllOf)
	}
}

func TestExport_Compositions(t *testing.T) {
	u := dsl.Must(dsl.OneOf(
		dsl.Must(dsl.String("s")),
		dsl.Must(dsl.Integer("i")),
	))
	out := specflow.Export(u)
	if len(out.OneOf) != 2 || out.OneOf[0].Type != "string" || out.OneOf[1].Type != "integer" {
		t.Fatalf("oneOf: %+v", out)
	}

	n := dsl.Must(dsl.Not(dsl.Must(dsl.String("s", dsl.Const("x")))))
	outN := specflow.Export(n)
	if outN.Not == nil || outN.Not.Const != "x" {
		t.Fatalf("not: %+v", outN)
	}
}

func TestExport_DoesNotAliasInternalState(t *testing.T) {
	f := dsl.Must(dsl.Integer("n", dsl.Minimum(1)))
	a := specflow.Export(f)
	*a.Minimum = 99
	b := specflow.Export(f)
	if *b.Minimum != 1 {
		t.Fatalf("export shares bound storage: %v", *b.Minimum)
	}
}

// Package dsl is the construction surface over the specflow node model.
//
// Leaves are built with Field (kind inferred from the options) or with the
// explicit String/Integer/Number/Boolean/Array constructors; composites with
// the Object builder; compositions with AnyOf/OneOf/Not. Every constructor
// returns the construction error eagerly, so a malformed schema never reaches
// validation; Must and MustBuild panic instead, for package-level schemas.
//
//	user := dsl.Object("user").
//		Prop(dsl.Must(dsl.String("name", dsl.MinLength(1)))).
//		Prop(dsl.Must(dsl.Integer("age", dsl.Minimum(0)))).
//		MustBuild()
package dsl

// Package specflow validates structured values against declaratively
// built schema trees.
//
// - Immutable node model: constraint leaves (string/integer/number/boolean/
//   array), composites with ordered properties and conditions, and the
//   AnyOf/OneOf/Not compositions
// - A stable failure model via Issues (structured path, code, message)
// - Construction-time type inference and constraint checking; a malformed
//   schema never reaches validation
// - Canonical export to the jsonschema form, serializable as JSON or YAML
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place construction sugar under dsl/, the export form under jsonschema/,
//   and message catalogs under i18n/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	addr := dsl.Object("address").
//		Prop(dsl.Must(dsl.String("street"))).
//		Prop(dsl.Must(dsl.String("zipcode", dsl.Pattern(`\d{5}`)))).
//		MustBuild()
//
//	err := specflow.Validate(addr, value)
//	iss := specflow.ValidateValue(addr, value)
//	out, err := specflow.ExportJSON(addr)
package specflow

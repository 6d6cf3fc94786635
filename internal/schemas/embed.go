// Package schemas holds the JSON Schema of the exported plan document and the
// Go types generated from it.
package schemas

import _ "embed"

//go:generate go run github.com/atombender/go-jsonschema@v0.20.0 -p schemas -o plans_v1.go plans-v1.json

//go:embed plans-v1.json
var PlansV1Schema string

package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/aaronromeo/swolecrew/internal/schemas"
)

var plansSchema = gojsonschema.NewStringLoader(schemas.PlansV1Schema)

func ValidateJSON(b []byte) error {
	loader := gojsonschema.NewBytesLoader(b)
	result, err := gojsonschema.Validate(plansSchema, loader)
	if err != nil {
		return fmt.Errorf("validate plans: %w", err)
	}
	if !result.Valid() {
		return fmt.Errorf("plans json invalid: %s", collect(result.Errors()))
	}
	return nil
}

func ValidateYAML(b []byte) error {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("yaml parse: %w", err)
	}
	jb, err := json.Marshal(v)
	if err != nil {
		return err
	}
	loader := gojsonschema.NewBytesLoader(jb)
	result, err := gojsonschema.Validate(plansSchema, loader)
	if err != nil {
		return fmt.Errorf("validate plans: %w", err)
	}
	if !result.Valid() {
		return fmt.Errorf("plans yaml invalid: %s", collect(result.Errors()))
	}
	return nil
}

func collect(errs []gojsonschema.ResultError) string {
	var buf bytes.Buffer
	for _, e := range errs {
		buf.WriteString(e.String())
		buf.WriteByte(';')
	}
	return buf.String()
}

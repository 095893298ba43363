package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed achievements.schema.json
var catalogSchemaJSON []byte

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(catalogSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadSchema, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(catalogSchemaURL, doc); err != nil {
		return nil, fmt.Errorf(ErrMsgLoadSchema, err)
	}
	return compiler.Compile(catalogSchemaURL)
})

// ValidateSchema checks a raw catalog seed file against the catalog JSON schema.
// YAML is decoded generically and re-encoded as JSON so the schema sees JSON numbers.
func ValidateSchema(data []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf(ErrMsgParseCatalog, err)
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf(ErrMsgParseCatalog, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf(ErrMsgParseCatalog, err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf(ErrMsgSchemaInvalid, err.Error())
	}

	var lines []string
	collectErrors(validationErr, &lines)
	return fmt.Errorf(ErrMsgSchemaInvalid, strings.Join(lines, "; "))
}

// collectErrors flattens the cause tree, keeping only leaf failures
func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")

	if err.ErrorKind != nil {
		if keywords := err.ErrorKind.KeywordPath(); len(keywords) > 0 {
			return fmt.Sprintf("at %s: %s", location, strings.Join(keywords, "."))
		}
	}
	return fmt.Sprintf("at %s: invalid", location)
}

package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrConfigValidation reports a config document rejected by the schema.
var ErrConfigValidation = errors.New("weave config: schema validation failed")

const configSchemaSource = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "content_dir": {"type": "string"},
    "artifacts_dir": {"type": "string"},
    "pattern": {"type": "string"},
    "recursive": {"type": "boolean"},
    "styling": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "h1": {"$ref": "#/$defs/heading"},
        "h2": {"$ref": "#/$defs/heading"},
        "h3": {"$ref": "#/$defs/heading"},
        "h4": {"$ref": "#/$defs/heading"},
        "h5": {"$ref": "#/$defs/heading"},
        "paragraph": {
          "type": "object",
          "additionalProperties": false,
          "properties": {
            "container": {"type": "string"},
            "text": {"type": "string"}
          }
        },
        "code_inline": {"$ref": "#/$defs/span"},
        "code_block": {
          "type": "object",
          "additionalProperties": false,
          "properties": {
            "container": {"type": "string"},
            "wrapper": {"type": "string"}
          }
        },
        "bold": {"$ref": "#/$defs/span"},
        "italic": {"$ref": "#/$defs/span"},
        "link": {"$ref": "#/$defs/span"},
        "list": {
          "type": "object",
          "additionalProperties": false,
          "properties": {
            "container": {"type": "string"},
            "list_class": {"type": "string"},
            "item": {"type": "string"},
            "bullet": {"type": "string"},
            "bullet_class": {"type": "string"}
          }
        },
        "card": {
          "type": "object",
          "additionalProperties": false,
          "properties": {
            "class": {"type": "string"}
          }
        }
      }
    },
    "api": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "enabled": {"type": "boolean"},
        "url": {"type": "string"},
        "method": {"type": "string", "enum": ["POST", "PUT", "post", "put"]},
        "headers": {
          "type": "object",
          "additionalProperties": {"type": "string"}
        },
        "timeout_seconds": {"type": "integer", "minimum": 0}
      }
    },
    "logging": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "provider": {"type": "string"},
        "level": {"type": "string"},
        "format": {"type": "string"},
        "add_source": {"type": "boolean"}
      }
    }
  },
  "$defs": {
    "heading": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "container": {"type": "string"},
        "heading": {"type": "string"},
        "prefix": {"type": "string"},
        "prefix_class": {"type": "string"},
        "divider": {"type": "boolean"}
      }
    },
    "span": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "class": {"type": "string"}
      }
    }
  }
}`

var (
	configSchemaOnce sync.Once
	configSchema     *jsonschema.Schema
	configSchemaErr  error
)

func compiledConfigSchema() (*jsonschema.Schema, error) {
	configSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("weave.config.schema.json", strings.NewReader(configSchemaSource)); err != nil {
			configSchemaErr = err
			return
		}
		configSchema, configSchemaErr = compiler.Compile("weave.config.schema.json")
	})
	return configSchema, configSchemaErr
}

func validateConfigDocument(doc any) error {
	schema, err := compiledConfigSchema()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigValidation, err)
	}
	if err := schema.Validate(doc); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("%w: %s", ErrConfigValidation, summarizeValidationError(validationErr))
		}
		return fmt.Errorf("%w: %v", ErrConfigValidation, err)
	}
	return nil
}

func summarizeValidationError(err *jsonschema.ValidationError) string {
	parts := []string{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			location := node.InstanceLocation
			if location == "" {
				location = "#"
			}
			parts = append(parts, fmt.Sprintf("%s: %s", location, node.Message))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return strings.Join(parts, "; ")
}

package binder

import (
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// containerSchema checks envelope shape before typed decoding. It is
// deliberately shape-only: version values, the type tag, group keys,
// and item codes are checked by code afterwards so each failure maps
// to its own sentinel.
const containerSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["dataModelVersion", "packageTypeVersion", "type", "objects"],
  "properties": {
    "dataModelVersion": {"type": "integer"},
    "packageTypeVersion": {"type": "integer"},
    "type": {"type": "string"},
    "objects": {
      "type": "array",
      "items": {"$ref": "#/$defs/object"}
    }
  },
  "$defs": {
    "object": {
      "type": "object",
      "required": ["name", "groups"],
      "properties": {
        "name": {"type": "string"},
        "groups": {
          "type": "array",
          "items": {"$ref": "#/$defs/group"}
        }
      }
    },
    "group": {
      "type": "object",
      "required": ["type", "subtype", "checklists"],
      "properties": {
        "type": {"type": "integer"},
        "subtype": {"type": "integer"},
        "checklists": {
          "type": "array",
          "items": {"$ref": "#/$defs/checklist"}
        }
      }
    },
    "checklist": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": {"type": "string"},
        "note": {"type": "string"},
        "items": {
          "type": "array",
          "items": {"$ref": "#/$defs/item"}
        }
      }
    },
    "item": {
      "type": "object",
      "required": ["type"],
      "properties": {
        "type": {"type": "integer"},
        "action": {"type": "integer"},
        "level": {"type": "integer", "minimum": 0, "maximum": 4},
        "text": {"type": "string"}
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("container.json", containerSchema)

// schemaDetail flattens a validation error to its first leaf cause,
// formatted as "pointer: message".
func schemaDetail(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	loc := leaf.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return loc + ": " + leaf.Message
}

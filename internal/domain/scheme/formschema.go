package scheme

// FormSchema builds a JSON-schema document from the scheme's form fields,
// used to validate a merged submission payload. Text, select and file
// answers are strings (file answers hold the stored document reference);
// number answers are numeric. Select answers must be one of the configured
// options. Keys outside the form definition are rejected.
func FormSchema(fields []FormField) map[string]interface{} {
	properties := map[string]interface{}{}
	required := []string{}

	for _, f := range fields {
		var prop map[string]interface{}
		switch f.FieldType {
		case FieldTypeNumber:
			prop = map[string]interface{}{"type": "number"}
		case FieldTypeSelect:
			prop = map[string]interface{}{"type": "string"}
			if len(f.Options) > 0 {
				enum := make([]interface{}, 0, len(f.Options))
				for _, o := range f.Options {
					enum = append(enum, o)
				}
				prop["enum"] = enum
			}
		default: // text and file answers are plain strings
			prop = map[string]interface{}{"type": "string"}
			if f.Required {
				prop["minLength"] = 1
			}
		}
		properties[f.Label] = prop
		if f.Required {
			required = append(required, f.Label)
		}
	}

	schema := map[string]interface{}{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

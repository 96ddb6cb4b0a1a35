package plugin

// FunctionProperties declares the extra properties function records may
// carry, the equivalent of the schema fragment a host registers through its
// defineFunctionProperties hook. Purely a capability declaration; loading
// behaviour does not depend on it.
func FunctionProperties() map[string]any {
	return map[string]any{
		"properties": map[string]any{
			"dotenv": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"environment": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
			},
		},
	}
}

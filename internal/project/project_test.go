package project

// Shared fixtures for the codec tests. sampleProject mirrors the shape of a
// real pulled document: a top-level screen, a navigator wrapping two more,
// block markup for some of them, and a spread of volatile fields.

func sampleProject() Document {
	return map[string]any{
		"data": map[string]any{
			"user": map[string]any{"id": "u1", "__typename": "User"},
			"project": map[string]any{
				"id":          "proj1",
				"projectName": "Demo App",
				"createdAt":   "2024-03-01T10:00:00Z",
				"updatedAt":   "2024-03-02T10:00:00Z",
				"username":    "alice",
				"hash":        "abc123",
				"settings": map[string]any{
					"appName":     "Demo App",
					"packageName": "com.example.demo",
				},
				"components": map[string]any{
					"type": "App",
					"children": []any{
						map[string]any{
							"name": "Screen1",
							"id":   "A1",
							"type": "Screen",
							"children": []any{
								map[string]any{"name": "Button1", "id": "btn1", "type": "Button"},
							},
						},
						map[string]any{
							"name": "Navigator1",
							"id":   "N1",
							"type": "StackNavigator",
							"children": []any{
								map[string]any{"name": "Screen2", "id": "B2", "type": "Screen"},
								map[string]any{"name": "Screen3", "id": "C3", "type": "Screen"},
							},
						},
					},
				},
				"blockly": map[string]any{
					"A1": map[string]any{
						"xml":                "<xml><block type=\"when_opened\"/></xml>",
						"code":               "var app = {};",
						"appVariableDefCode": "var defs = {};",
					},
					"B2": map[string]any{"xml": "<xml/>"},
					"C3": map[string]any{"xml": ""},
				},
			},
		},
	}
}

// minimalProject is the single-screen document from the concrete pull
// scenario: one screen A1 with markup.
func minimalProject() Document {
	return map[string]any{
		"data": map[string]any{
			"project": map[string]any{
				"components": map[string]any{
					"children": []any{
						map[string]any{"name": "Screen1", "id": "A1"},
					},
				},
				"blockly": map[string]any{
					"A1": map[string]any{"xml": "<xml/>"},
				},
			},
		},
	}
}

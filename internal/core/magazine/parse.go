// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// # Loose JSON Recovery

// documentSchema is the minimum shape a generated document must have.
const documentSchema = `{
	"type": "object",
	"properties": {
		"cover":        {"$ref": "#/definitions/section"},
		"editors_note": {"$ref": "#/definitions/section"},
		"introduction": {"$ref": "#/definitions/section"},
		"summary":      {"$ref": "#/definitions/section"},
		"chapters": {
			"type": "array",
			"items": {
				"allOf": [
					{"$ref": "#/definitions/section"},
					{"required": ["title", "content"]}
				]
			}
		}
	},
	"required": ["chapters"],
	"definitions": {
		"section": {
			"type": ["object", "null"],
			"properties": {
				"title":        {"type": "string"},
				"content":      {"type": "string"},
				"image_prompt": {"type": "string"}
			}
		}
	}
}`

var compiledDocumentSchema = jsonschema.MustCompileString("document.schema.json", documentSchema)

/*
ParseLooseJSON recovers a [Document] from free-form generator output.

Description: Markdown code fences are stripped, then the first balanced
{...} span is extracted with a string-aware scanner, validated against the
document schema and decoded. Braces inside string values do not affect
the balance.

Parameters:
  - text: string (raw generator output)

Returns:
  - Document
  - error: ErrNoJSONObject, a schema violation, or a decoding error
*/
func ParseLooseJSON(text string) (Document, error) {
	candidate, err := ExtractJSONObject(StripCodeFences(text))
	if err != nil {
		return Document{}, err
	}

	var raw any
	if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
		return Document{}, fmt.Errorf("decode generated json: %w", err)
	}

	if err := compiledDocumentSchema.Validate(raw); err != nil {
		return Document{}, fmt.Errorf("generated json does not match document shape: %w", err)
	}

	var doc Document
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return Document{}, fmt.Errorf("decode generated document: %w", err)
	}
	return doc, nil
}

// StripCodeFences removes Markdown fence lines such as ```json and ```.
func StripCodeFences(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// ExtractJSONObject returns the first balanced {...} span of text.
func ExtractJSONObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", ErrNoJSONObject
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		char := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case char == '\\':
				escaped = true
			case char == '"':
				inString = false
			}
			continue
		}

		switch char {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", ErrNoJSONObject
}

// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import (
	"encoding/json"
	"strings"
)

// ExtractJSONBlock returns the JSON document carried in a model reply.
// It prefers the first fenced ```json block; when no fence is present it
// falls back to treating the whole (cleaned) reply as JSON. The second
// return is false when no parseable JSON object could be located.
func ExtractJSONBlock(text string) (string, bool) {
	if block, ok := fencedBlock(text); ok {
		if isJSONObject(block) {
			return block, true
		}
		return "", false
	}

	cleaned := CleanJSONBlock(text)
	if isJSONObject(cleaned) {
		return cleaned, true
	}
	return "", false
}

// fencedBlock extracts the body of the first ``` fence in text.
func fencedBlock(text string) (string, bool) {
	start := strings.Index(text, "```")
	if start < 0 {
		return "", false
	}
	rest := text[start+3:]

	// Skip an optional language identifier on the fence line.
	if idx := strings.Index(rest, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(rest[:idx])
		if firstLine != "" && len(firstLine) < 20 && !strings.Contains(firstLine, "{") {
			rest = rest[idx+1:]
		}
	}

	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

// isJSONObject reports whether text parses as a JSON object.
func isJSONObject(text string) bool {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "{") {
		return false
	}
	var obj map[string]any
	return json.Unmarshal([]byte(text), &obj) == nil
}

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// LLMs often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

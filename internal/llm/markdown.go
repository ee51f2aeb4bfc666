package llm

import "strings"

// CleanMarkdownWrapper strips markdown code fences that models
// sometimes wrap around JSON responses (```json ... ```).
func CleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

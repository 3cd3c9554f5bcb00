package openai

import (
	"fmt"
	"strings"

	"gedapi/internal/model"
)

func buildSuggestPrompt(filename, subcategory string) string {
	return fmt.Sprintf(`Analyze the following document filename and subcategory.
Generate a short professional description (max 20 words) and a list of 3-5 relevant tags/keywords.
Return a strict JSON object with keys: description (string), keywords (array of strings).
No markdown, no extra keys.

Filename: %q
Subcategory: %q`, filename, subcategory)
}

func buildAnswerPrompt(query string, docs []model.Document) string {
	var summary strings.Builder
	for _, d := range docs {
		fmt.Fprintf(&summary, "- %s (%s/%s): %s\n", d.Title, d.Category, d.Subcategory, d.Description)
	}

	return fmt.Sprintf(`You are an assistant for a Document Management System (GED).
Here is the list of available documents:
%s
User Query: %q

Please answer the user's query based ONLY on the documents list.
If the user is looking for a document, recommend the best matches.
Keep it brief and helpful.`, summary.String(), query)
}

func extractJSONObject(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return raw
}

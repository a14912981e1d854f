package vision

import "strings"

// BuildMenuPrompt instructs the model to read a menu document and
// return strict JSON only.
func BuildMenuPrompt(existingCategories []string) string {
	var b strings.Builder

	b.WriteString(`You are a data extraction engine for restaurant menus.

Your task:
- Read the attached menu document.
- Convert it into STRICT JSON.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO comments.

Required JSON schema:
{
  "restaurant_name": "string",
  "currency": "RWF | USD | EUR | GBP | KES | TZS | UGX",
  "categories": [
    {
      "name": "string",
      "description": "string",
      "items": [
        { "name": "string", "description": "string", "price": number }
      ]
    }
  ]
}

Rules:
- Prices are plain numbers without separators or currency symbols.
- Skip page numbers, contact details and legal text.
- Keep item order as printed.
`)

	if len(existingCategories) > 0 {
		b.WriteString("\nWhen an item group matches one of these existing category names, reuse that exact name:\n")
		for _, name := range existingCategories {
			b.WriteString("- " + name + "\n")
		}
	}

	return b.String()
}

package llm

import "fmt"

func BuildSocialPostPrompt(title, city, district, category string, price float64) string {
	return fmt.Sprintf(`
You are a real estate marketing copywriter for a Turkish brokerage.

Your task:
- Write a social media post for the listing below, in Turkish.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO extra text.

Required JSON schema:
{
  "headline": "string",
  "body": "string",
  "hashtags": ["string"]
}

Listing:
- Title: %s
- City: %s
- District: %s
- Category: %s
- Price: %.0f TL
`, title, city, district, category, price)
}

func BuildArticlePrompt(topic, city string) string {
	return fmt.Sprintf(`
You are a real estate content writer for a Turkish brokerage.

Your task:
- Write a short informative article on the topic below, in Turkish.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO extra text.

Required JSON schema:
{
  "title": "string",
  "sections": [
    {
      "heading": "string",
      "text": "string"
    }
  ]
}

Topic: %s
Region: %s
`, topic, city)
}

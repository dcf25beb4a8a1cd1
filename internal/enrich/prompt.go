package enrich

import (
	"fmt"

	"InsuranceNewsAgent/internal/domain"
)

// promptContentLimit bounds how much cleaned body text is embedded in the
// prompt.
const promptContentLimit = 3000

const promptTemplate = `You are an expert AI analyst at a global insurance firm. Your task is to analyze the provided article and clearly summarize it into an insightful, detailed, and highly structured summary explicitly crafted for risk analysts and decision-makers in the insurance industry.

Explicitly include the following critical information in your summary clearly and concisely:

1. **Main Issue/Event**: Clearly describe what specifically happened (e.g., wildfire, flood, policy change, regulation update, insurtech development).

2. **Date and Location**: Clearly state when and where exactly the issue/event occurred or will occur.

3. **Key Stakeholders**: Clearly mention any important companies, organizations, governments, or individuals involved or affected directly.

4. **Impacts on Insurance Business**:
   - Describe clearly any direct or indirect effects on the insurance and reinsurance industry.
   - Clearly indicate potential changes in underwriting practices or risks to exposure.

5. **Regulatory or Policy Changes**: Clearly state any significant policy, regulatory, or legislative developments described in the article.

6. **Financial and Economic Implications**:
   - Clearly summarize any explicitly mentioned or implied financial losses, premiums adjustments, claims impacts, or economic repercussions.

7. **Technological Implications (if mentioned)**:
   - Describe clearly how technology or innovation (e.g., AI, IoT, blockchain, etc.) is involved or impacted.

8. **Environmental and Social Impact (if applicable)**:
   - Clearly summarize any mentioned environmental or social consequences.

9. **Immediate Action Recommendations**: Clearly and explicitly provide an actionable recommendation for insurance analysts to manage or monitor the described risk or situation.

10. **Explicitly Suggested External References**:
   - Clearly list relevant external references, explicitly providing both the name and the complete URL to official reports, trusted documents, or authoritative sources.

Structure your output clearly and explicitly as this JSON format:

{
  "title": "...",
  "url": "...",
  "date": "...",
  "source": "...",
  "category": "...",
  "location": "...",
  "summary": "...",
  "references": [
    {"name": "IPCC", "url": "https://ipcc.ch/report.pdf"},
    {"name": "TNFD", "url": "https://tnfd.global/report.pdf"}
  ],
  "sentiment": "...",
  "recommendation": "...",
  "financial_impact": "..."
}

Clearly use only the provided structured article content explicitly below to craft your response:

Title: %s
URL: %s
Date: %s
Source: %s
Summary: %s
Content: %s`

// BuildPrompt renders the deterministic analyst prompt for one article.
func BuildPrompt(article domain.StructuredArticle) string {
	content := article.FullContent
	if len(content) > promptContentLimit {
		content = content[:promptContentLimit]
	}
	return fmt.Sprintf(promptTemplate,
		article.Title,
		article.URL,
		article.Date,
		article.Source,
		article.SummaryInput,
		content,
	)
}

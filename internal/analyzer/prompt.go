package analyzer

import "sahayai/internal/domain"

// BuildAnalysisPrompt returns the structured legal analysis prompt for the
// given document text, framed from the role's perspective. The caller must
// request JSON-typed output from the model; the prompt restates that
// constraint because models do not always honor it.
func BuildAnalysisPrompt(documentText string, role domain.Role) string {
	r := string(role)
	return `Analyze the following legal document text from the perspective of the **` + r + `**.
Your entire response must be ONLY the raw JSON object, starting with { and ending with }.
Do not include any explanatory text, markdown formatting, code fences, or any words before or after the JSON object.

The JSON object must strictly adhere to this structure:
{
  "scraped_text": "The full text of the document...",
  "key_details": {
    "confidence_score": "A percentage (e.g., '95%') representing your confidence in the analysis.",
    "document_type": "The specific type of legal document (e.g., 'Employment Agreement', 'Lease Agreement').",
    "parties_involved": ["An array of strings with the names of the parties involved."],
    "effective_period": "A string describing the effective date, term, or duration (e.g., 'January 1, 2024 to December 31, 2024').",
    "clauses_involved": ["An array of strings listing the key clause titles found."],
    "key_terms": [
      { "term": "Term Name", "definition": "A concise definition of the term from the document." }
    ]
  },
  "analysis": {
    "summary": "A detailed, multi-paragraph summary of the document, tailored to the ` + r + `'s perspective.",
    "clauses_analysis": [
      {
        "clause": "The exact title of the clause (e.g., 'Clause 5: Confidentiality').",
        "meaning": "A clear, simple explanation of what this clause means for the ` + r + `.",
        "citation": "A direct, brief quote from the clause in the document that supports the meaning."
      }
    ],
    "references": ["An array of strings listing any laws, statutes, or other documents referenced."]
  },
  "actionable_checklist": ["An array of strings with clear, actionable next steps for the ` + r + `."]
}

Document Text:
---
` + documentText + `
---
`
}

// ChatFallbackSentence is the mandated reply when the answer is not present
// in the supplied document context.
const ChatFallbackSentence = "I could not find information about that in the provided document."

// BuildChatPrompt returns the grounding prompt for document Q&A. The model
// is constrained to answer only from the supplied context, with direct-quote
// citations, acting as an assistant for the given role.
func BuildChatPrompt(question, context, role string) string {
	return `**Persona**: You are a helpful AI assistant for 'Sahay AI'. Your goal is to demystify legal documents. Your tone should be clear, professional, and supportive. You are NOT a lawyer and you MUST NOT give legal advice.

**Task**: Answer the user's question based *only* on the provided 'Document Context'. You are acting as an assistant for the **` + role + `**.

**Rules for Citing**:
1. When you answer, you MUST cite the specific part of the document that supports your answer.
2. Use direct quotes for citations, like this: "... a direct quote from the text ..."
3. If possible, refer to the clause or section number, for example: "(see Clause 5.1)".

**Formatting**:
- Use markdown for clarity (bolding, bullet points).
- Keep answers concise and easy to understand.
- If the answer is not in the document, you MUST state: "` + ChatFallbackSentence + `"

---
**Document Context**:
` + context + `
---

**User's Question**:
` + question + `
`
}

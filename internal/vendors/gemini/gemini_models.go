package gemini

// Behold, a multi-billion dollar company API request/response schema
type Part struct {
	Text *string `json:"text,omitempty"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type GoogleSearch struct{}

type Tool struct {
	GoogleSearch *GoogleSearch `json:"google_search,omitempty"`
}

type SystemInstruction struct {
	Parts []Part `json:"parts"`
}

type GeminiRequest struct {
	Contents          []Content          `json:"contents"`
	Tools             []Tool             `json:"tools,omitempty"`
	SystemInstruction *SystemInstruction `json:"systemInstruction,omitempty"`
}

type Web struct {
	URI   *string `json:"uri,omitempty"`
	Title *string `json:"title,omitempty"`
}

type GroundingAttribution struct {
	Web *Web `json:"web,omitempty"`
}

type GroundingMetadata struct {
	GroundingAttributions []GroundingAttribution `json:"groundingAttributions,omitempty"`
}

type Candidate struct {
	Content           *Content           `json:"content,omitempty"`
	GroundingMetadata *GroundingMetadata `json:"groundingMetadata,omitempty"`
}

type GeminiResponse struct {
	Candidates []Candidate `json:"candidates"`
}

package request

type AnalyzeRequest struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

type CreateSafetyTipRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category,omitempty"`
}

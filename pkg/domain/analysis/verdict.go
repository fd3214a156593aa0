package analysis

// Category labels the kind of harm detected in a text. The set is open to
// extension; unknown labels coming back from a model are dropped during
// normalization instead of failing the verdict.
type Category string

const (
	CategoryHarassment    Category = "harassment"
	CategorySexualContent Category = "sexual_content"
	CategoryHateSpeech    Category = "hate_speech"
	CategoryBullying      Category = "bullying"
	CategoryThreats       Category = "threats"
	CategoryProfanity     Category = "profanity"
)

func KnownCategory(label string) (Category, bool) {
	switch Category(label) {
	case CategoryHarassment, CategorySexualContent, CategoryHateSpeech,
		CategoryBullying, CategoryThreats, CategoryProfanity:
		return Category(label), true
	}
	return "", false
}

// Verdict is the validated harmfulness assessment of one input text.
type Verdict struct {
	Score            int        `json:"toxicityScore"`
	Categories       []Category `json:"categories"`
	HighlightedWords []string   `json:"highlightedWords"`
	Severity         Severity   `json:"severity"`
	Explanation      string     `json:"explanation"`
}

func (v *Verdict) CategoryLabels() []string {
	labels := make([]string, 0, len(v.Categories))
	for _, c := range v.Categories {
		labels = append(labels, string(c))
	}
	return labels
}

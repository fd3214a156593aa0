package analyzer

import (
	"encoding/json"
	"strings"

	"github.com/digitalshield/shield/pkg/domain"
	"github.com/digitalshield/shield/pkg/domain/analysis"
)

// Parser turns raw model completions into validated verdicts. Models
// occasionally wrap the JSON body in prose or markdown fences, so a strict
// decode is attempted first and a balanced-brace extraction second. A
// completion with no recoverable structure is rejected; a fabricated "safe"
// verdict is never synthesized in its place.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

type rawVerdict struct {
	ToxicityScore    *float64 `json:"toxicityScore"`
	Categories       []string `json:"categories"`
	HighlightedWords []string `json:"highlightedWords"`
	Severity         string   `json:"severity"`
	Explanation      string   `json:"explanation"`
}

func (p *Parser) Parse(completion string) (*analysis.Verdict, error) {
	cleaned := stripFences(completion)

	var raw rawVerdict
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		span, ok := outermostObject(cleaned)
		if !ok {
			return nil, domain.NewMalformedVerdictError("no JSON object found in completion")
		}
		if err := json.Unmarshal([]byte(span), &raw); err != nil {
			return nil, domain.NewMalformedVerdictError("extracted JSON object does not decode: " + err.Error())
		}
	}

	if raw.ToxicityScore == nil {
		return nil, domain.NewMalformedVerdictError("completion is missing toxicityScore")
	}

	return normalize(raw), nil
}

// normalize clamps the score, drops unknown category labels and recomputes
// severity from the score; the model's self-reported band is advisory only.
func normalize(raw rawVerdict) *analysis.Verdict {
	score := clampScore(*raw.ToxicityScore)

	seen := make(map[analysis.Category]bool, len(raw.Categories))
	categories := make([]analysis.Category, 0, len(raw.Categories))
	for _, label := range raw.Categories {
		c, known := analysis.KnownCategory(strings.ToLower(strings.TrimSpace(label)))
		if !known || seen[c] {
			continue
		}
		seen[c] = true
		categories = append(categories, c)
	}

	return &analysis.Verdict{
		Score:            score,
		Categories:       categories,
		HighlightedWords: raw.HighlightedWords,
		Severity:         analysis.SeverityForScore(score),
		Explanation:      raw.Explanation,
	}
}

func clampScore(score float64) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return int(score)
	}
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// outermostObject returns the first top-level balanced {...} span in s. Brace
// depth is tracked outside of JSON string literals so prose around or inside
// the object cannot derail the match.
func outermostObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

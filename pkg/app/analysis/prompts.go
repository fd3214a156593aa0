package analysis

import (
	"fmt"
	"strings"

	domainAnalysis "github.com/digitalshield/shield/pkg/domain/analysis"
)

const toxicitySystemPrompt = `You are a toxicity detection AI for the Digital Shield platform. Analyze the given text for harmful content.

Provide your response in JSON format with:
{
  "toxicityScore": <number 0-100>,
  "categories": [list of detected categories from: "harassment", "sexual_content", "hate_speech", "bullying", "threats", "profanity"],
  "highlightedWords": [list of specific toxic words/phrases],
  "severity": "low" | "medium" | "high" | "critical",
  "explanation": "Brief explanation of why this content is toxic"
}

Be thorough but fair. Consider context and intent.`

const saferVersionSystemPrompt = `You are a communication coach for the Digital Shield platform. Rewrite the given message so it expresses the sender's underlying intent without harassment, insults, threats or profanity.

Keep the rewrite concise and natural. Respond with the rewritten message only, no commentary.`

func toxicityUserPrompt(text string) string {
	return fmt.Sprintf("Analyze this text for toxicity:\n\n%q", text)
}

func saferVersionUserPrompt(text string) string {
	return fmt.Sprintf("Rewrite this message:\n\n%q", text)
}

func adviceSystemPrompt(categories []domainAnalysis.Category) string {
	labels := "general"
	if len(categories) > 0 {
		parts := make([]string, 0, len(categories))
		for _, c := range categories {
			parts = append(parts, string(c))
		}
		labels = strings.Join(parts, ", ")
	}

	return fmt.Sprintf(`You are a safety advisor for the Digital Shield platform. Provide clear, actionable advice for someone who has received a harmful message.

Consider:
- The severity of the situation
- The type of harassment (%s)
- Practical steps they can take
- When to involve authorities
- How to document evidence
- Support resources available

Be empathetic, clear, and empowering. Focus on their safety and wellbeing.`, labels)
}

func adviceUserPrompt(text string, severity domainAnalysis.Severity) string {
	return fmt.Sprintf("A user received this message (%s severity):\n\n%q\n\nProvide safety advice and next steps.", severity, text)
}

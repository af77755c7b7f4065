package llm

import (
	"fmt"
	"strings"
)

const analystSystem = `You analyze YouTube videos and their comments. When asked for JSON, output JSON only, no other text.`

// System is the system prompt shared by every analysis request.
func System() string { return analystSystem }

func SentimentPrompt(text string) string {
	return fmt.Sprintf(`Analyze the sentiment of the following text and return a JSON response with:
- sentiment: positive, negative, or neutral
- confidence: 0.0 to 1.0
- reasoning: brief explanation

Text: %q

Return only valid JSON.`, text)
}

func CategoryPrompt(comment string) string {
	return fmt.Sprintf(`Categorize the following YouTube comment and return a JSON response with:
- category: question, feedback, spam, praise, criticism, suggestion, or other
- confidence: 0.0 to 1.0
- reasoning: brief explanation

Comment: %q

Return only valid JSON.`, comment)
}

func CritiquePrompt(content, feedbackType string) string {
	if feedbackType == "" {
		feedbackType = "general"
	}
	return fmt.Sprintf(`Critique the following content and provide improvement suggestions. Return JSON with:
- score: 1-10 rating
- strengths: list of positive aspects
- weaknesses: list of areas for improvement
- suggestions: specific improvement recommendations

Content: %s
Feedback type: %s

Return only valid JSON.`, content, feedbackType)
}

func GeneratePrompt(topic, contentType string) string {
	return fmt.Sprintf(`Based on the following context, generate %s:

Context: %s

Generate engaging and relevant %s.`, contentType, topic, contentType)
}

func CommentSummaryPrompt(title string, comments []string) string {
	var sb strings.Builder
	for i, c := range comments {
		fmt.Fprintf(&sb, "[%d] %s\n", i+1, c)
	}
	subject := "this video"
	if title != "" {
		subject = fmt.Sprintf("the video %q", title)
	}
	return fmt.Sprintf(`Summarize what viewers are saying about %s in three to five sentences.
Mention recurring questions, praise and complaints.

Comments:
%s`, subject, sb.String())
}

// transcriptPromptLimit bounds how much of a transcript is sent to the model.
const transcriptPromptLimit = 2000

func TranscriptPrompt(transcript string) string {
	return fmt.Sprintf(`Analyze this video transcript and provide insights about:
1. Main topics discussed
2. Key points
3. Overall tone
4. Engagement potential

Transcript: %s`, truncate(transcript, transcriptPromptLimit))
}

func ImagePrompt(content, analytics string) string {
	return fmt.Sprintf(`Based on this content and analytics, create an image prompt for generating a relevant image.

Content: %s
Analytics:
%s

Write a clear, descriptive image prompt that would create an engaging visual for this content.`, truncate(content, 500), analytics)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

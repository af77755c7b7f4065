package analysis

import (
	"regexp"
	"strings"

	"github.com/asal3ti/charizard/internal/model"
)

// CategoryRule assigns Label when any keyword occurs in the lower-cased text.
// Containment is substring based, so "badge" matches "bad".
type CategoryRule struct {
	Label    model.Category
	Keywords []string
}

// Matches reports whether the rule fires on already lower-cased text.
func (r CategoryRule) Matches(lower string) bool {
	return containsAny(lower, r.Keywords)
}

// QuestionRule assigns Type when any phrase occurs in the lower-cased text.
type QuestionRule struct {
	Type    model.QuestionType
	Phrases []string
}

// DefaultCategoryRules returns the category cascade in precedence order.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{model.CategoryAppreciation, []string{"great", "awesome", "love", "amazing", "perfect", "excellent", "fantastic", "brilliant", "wonderful", "outstanding"}},
		{model.CategoryCriticism, []string{"bad", "terrible", "awful", "hate", "dislike", "worst", "garbage", "trash", "boring", "disappointing"}},
		{model.CategoryQuestion, []string{"?"}},
		{model.CategorySuggestion, []string{"should", "could", "would", "suggest", "recommend", "maybe", "perhaps", "consider", "try"}},
		{model.CategoryFeedback, []string{"feedback", "review", "thought", "opinion", "think", "feel", "experience"}},
		{model.CategorySpam, spamKeywords},
		{model.CategoryHumor, []string{"lol", "haha", "funny", "joke", "hilarious", "comedy", "😂", "🤣", "😄"}},
		{model.CategoryTechnical, []string{"how", "what", "when", "where", "why", "setup", "config", "install", "error", "problem", "solution"}},
		{model.CategoryPersonal, []string{"i", "me", "my", "myself", "personal", "experience", "story", "life"}},
	}
}

// DefaultQuestionRules returns the question-subtype cascade in precedence order.
func DefaultQuestionRules() []QuestionRule {
	return []QuestionRule{
		{model.QuestionHowTo, []string{"how to", "how do", "how can", "how would"}},
		{model.QuestionWhatIs, []string{"what is", "what are", "what does", "what do"}},
		{model.QuestionWhenWill, []string{"when will", "when does", "when do", "when is"}},
		{model.QuestionWhy, []string{"why"}},
		{model.QuestionWhere, []string{"where"}},
	}
}

var spamKeywords = []string{"subscribe", "like", "comment", "check out my channel", "follow me", "watch my video", "click here", "free"}

var questionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\?$`),
	regexp.MustCompile(`\b(how|what|when|where|why|who|which|whose|whom)\b`),
	regexp.MustCompile(`\b(can you|could you|would you|will you)\b`),
	regexp.MustCompile(`\b(do you|does it|is it|are you)\b`),
}

// Categorizer evaluates ordered rule cascades; the first matching rule wins.
type Categorizer struct {
	rules     []CategoryRule
	questions []QuestionRule
}

func NewCategorizer(rules []CategoryRule, questions []QuestionRule) *Categorizer {
	return &Categorizer{rules: rules, questions: questions}
}

// Categorize returns the label of the first matching rule, or other.
func (c *Categorizer) Categorize(text string) model.Category {
	lower := Normalize(text)
	if lower == "" {
		return model.CategoryOther
	}
	for _, r := range c.rules {
		if r.Matches(lower) {
			return r.Label
		}
	}
	return model.CategoryOther
}

// CategorizeQuestion returns the question subtype of text, or general.
func (c *Categorizer) CategorizeQuestion(text string) model.QuestionType {
	lower := Normalize(text)
	for _, r := range c.questions {
		if containsAny(lower, r.Phrases) {
			return r.Type
		}
	}
	return model.QuestionGeneral
}

// IsQuestion reports whether text reads as a question.
func IsQuestion(text string) bool {
	lower := Normalize(text)
	if lower == "" {
		return false
	}
	for _, re := range questionPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// IsSpam reports whether text contains a spam keyword, independent of the cascade.
func IsSpam(text string) bool {
	return containsAny(strings.ToLower(text), spamKeywords)
}

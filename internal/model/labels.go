package model

// Sentiment is the polarity bucket assigned to a piece of text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Sarcasm is the binary sarcasm verdict. The label keeps the space so stored
// rows and API consumers see "not sarcastic".
type Sarcasm string

const (
	Sarcastic    Sarcasm = "sarcastic"
	NotSarcastic Sarcasm = "not sarcastic"
)

// Category is a comment category label.
type Category string

const (
	CategoryAppreciation Category = "appreciation"
	CategoryCriticism    Category = "criticism"
	CategoryQuestion     Category = "question"
	CategorySuggestion   Category = "suggestion"
	CategoryFeedback     Category = "feedback"
	CategorySpam         Category = "spam"
	CategoryHumor        Category = "humor"
	CategoryTechnical    Category = "technical"
	CategoryPersonal     Category = "personal"
	CategoryOther        Category = "other"
)

// Categories lists every label in precedence order.
var Categories = []Category{
	CategoryAppreciation,
	CategoryCriticism,
	CategoryQuestion,
	CategorySuggestion,
	CategoryFeedback,
	CategorySpam,
	CategoryHumor,
	CategoryTechnical,
	CategoryPersonal,
	CategoryOther,
}

// QuestionType is the subtype of a question comment.
type QuestionType string

const (
	QuestionHowTo    QuestionType = "how_to"
	QuestionWhatIs   QuestionType = "what_is"
	QuestionWhenWill QuestionType = "when_will"
	QuestionWhy      QuestionType = "why"
	QuestionWhere    QuestionType = "where"
	QuestionGeneral  QuestionType = "general"
)

// SponsorshipLevel is the ordinal bucket derived from a sponsorship confidence score.
type SponsorshipLevel string

const (
	SponsorshipNone   SponsorshipLevel = "none"
	SponsorshipLow    SponsorshipLevel = "low"
	SponsorshipMedium SponsorshipLevel = "medium"
	SponsorshipHigh   SponsorshipLevel = "high"
)

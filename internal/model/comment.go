package model

import "time"

// Comment is a top-level comment or reply as fetched from YouTube.
// It is never mutated after fetch.
type Comment struct {
	ID              string    `json:"id"`
	Author          string    `json:"author"`
	AuthorChannelID string    `json:"author_channel_id,omitempty"`
	Text            string    `json:"text"`
	PublishedAt     time.Time `json:"published_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	LikeCount       int64     `json:"like_count"`
	ReplyCount      int64     `json:"reply_count"`
	ParentID        string    `json:"parent_id,omitempty"`
}

// AnalyzedComment is a Comment with its derived classifier outputs attached.
type AnalyzedComment struct {
	Comment
	Sentiment    Sentiment    `json:"sentiment"`
	Sarcasm      Sarcasm      `json:"sarcasm"`
	Category     Category     `json:"category"`
	QuestionType QuestionType `json:"question_type,omitempty"`
	IsQuestion   bool         `json:"is_question"`
	IsEnglish    bool         `json:"is_english"`
}

// KeywordCount is a word and its frequency.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// CommentInsights is the insight set computed over a collection of analyzed
// comments. Every histogram sums to TotalComments.
type CommentInsights struct {
	TotalComments         int                  `json:"total_comments"`
	SentimentDistribution map[Sentiment]int    `json:"sentiment_distribution"`
	CategoryDistribution  map[Category]int     `json:"category_distribution"`
	QuestionTypes         map[QuestionType]int `json:"question_types"`
	AverageLikes          float64              `json:"average_likes"`
	SentimentScore        float64              `json:"sentiment_score"`
	SarcasticCount        int                  `json:"sarcastic_count"`
	EnglishCount          int                  `json:"english_count"`
	AvgCommentLength      float64              `json:"avg_comment_length"`
	TopComments           []AnalyzedComment    `json:"top_comments"`
	TopKeywords           []KeywordCount       `json:"top_keywords"`
	Insights              []string             `json:"insights"`
}

// Influencer is a commenter whose comments draw repeated attention.
type Influencer struct {
	Author          string `json:"author"`
	AuthorChannelID string `json:"author_channel_id,omitempty"`
	CommentCount    int    `json:"comment_count"`
	TotalLikes      int64  `json:"total_likes"`
	TotalReplies    int64  `json:"total_replies"`
	InfluenceScore  int64  `json:"influence_score"`
}

// AudienceBehavior highlights the comments and commenters that drive engagement.
type AudienceBehavior struct {
	AvgRepliesPerComment   float64           `json:"avg_replies_per_comment"`
	AvgLikesPerComment     float64           `json:"avg_likes_per_comment"`
	ConversationStarters   int               `json:"conversation_starters"`
	HighEngagementComments []AnalyzedComment `json:"high_engagement_comments"`
	Influencers            []Influencer      `json:"influencers"`
}

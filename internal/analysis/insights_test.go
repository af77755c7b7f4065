package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asal3ti/charizard/internal/model"
)

func analyzed(id string, cat model.Category, sent model.Sentiment, likes int64) model.AnalyzedComment {
	c := model.AnalyzedComment{
		Comment:   model.Comment{ID: id, Author: "author-" + id, Text: "comment text number " + id, LikeCount: likes},
		Sentiment: sent,
		Sarcasm:   model.NotSarcastic,
		Category:  cat,
		IsEnglish: true,
	}
	if cat == model.CategoryQuestion {
		c.QuestionType = model.QuestionHowTo
		c.IsQuestion = true
	}
	return c
}

func sampleComments() []model.AnalyzedComment {
	return []model.AnalyzedComment{
		analyzed("1", model.CategoryAppreciation, model.SentimentPositive, 0),
		analyzed("2", model.CategoryAppreciation, model.SentimentPositive, 1),
		analyzed("3", model.CategoryAppreciation, model.SentimentPositive, 0),
		analyzed("4", model.CategoryAppreciation, model.SentimentNeutral, 2),
		analyzed("5", model.CategoryCriticism, model.SentimentNegative, 0),
		analyzed("6", model.CategoryQuestion, model.SentimentNeutral, 3),
		analyzed("7", model.CategoryQuestion, model.SentimentNeutral, 0),
		analyzed("8", model.CategorySpam, model.SentimentNeutral, 0),
		analyzed("9", model.CategorySpam, model.SentimentNeutral, 0),
		analyzed("10", model.CategoryOther, model.SentimentNeutral, 1),
	}
}

func TestSummarizeComments_Insights(t *testing.T) {
	got := SummarizeComments(sampleComments())

	assert.Equal(t, 10, got.TotalComments)
	assert.Equal(t, []string{
		"Comments are predominantly appreciation (4 comments)",
		"Most common question type: how_to (2 questions)",
		"Low engagement: Comments receive few likes on average",
		"High spam content: 2 spam comments detected",
		"Very positive community: Appreciation comments significantly outnumber criticism",
	}, got.Insights)
	assert.Equal(t, 0.7, got.AverageLikes)
	assert.Equal(t, 0.2, got.SentimentScore)
	assert.Equal(t, 10, got.EnglishCount)
}

func TestSummarizeComments_HistogramsSumToTotal(t *testing.T) {
	comments := sampleComments()
	got := SummarizeComments(comments)

	sum := 0
	for _, n := range got.SentimentDistribution {
		sum += n
	}
	if sum != len(comments) {
		t.Errorf("sentiment histogram sums to %d, want %d", sum, len(comments))
	}
	sum = 0
	for _, n := range got.CategoryDistribution {
		sum += n
	}
	if sum != len(comments) {
		t.Errorf("category histogram sums to %d, want %d", sum, len(comments))
	}
	if len(got.CategoryDistribution) != len(model.Categories) {
		t.Errorf("category histogram has %d buckets, want %d", len(got.CategoryDistribution), len(model.Categories))
	}
}

func TestSummarizeComments_Thresholds(t *testing.T) {
	tests := []struct {
		name     string
		comments []model.AnalyzedComment
		contains string
		absent   string
	}{
		{
			name: "exactly 30 percent is not dominant",
			comments: []model.AnalyzedComment{
				analyzed("1", model.CategoryHumor, model.SentimentNeutral, 5),
				analyzed("2", model.CategoryHumor, model.SentimentNeutral, 5),
				analyzed("3", model.CategoryHumor, model.SentimentNeutral, 5),
				analyzed("4", model.CategoryTechnical, model.SentimentNeutral, 5),
				analyzed("5", model.CategoryTechnical, model.SentimentNeutral, 5),
				analyzed("6", model.CategoryPersonal, model.SentimentNeutral, 5),
				analyzed("7", model.CategoryPersonal, model.SentimentNeutral, 5),
				analyzed("8", model.CategoryOther, model.SentimentNeutral, 5),
				analyzed("9", model.CategoryOther, model.SentimentNeutral, 5),
				analyzed("10", model.CategoryFeedback, model.SentimentNeutral, 5),
			},
			absent: "Comments are predominantly",
		},
		{
			name: "average likes above 10 is high",
			comments: []model.AnalyzedComment{
				analyzed("1", model.CategoryOther, model.SentimentNeutral, 11),
				analyzed("2", model.CategoryOther, model.SentimentNeutral, 11),
			},
			contains: "High engagement: Comments receive many likes on average",
		},
		{
			name: "average likes of exactly 10 is neither",
			comments: []model.AnalyzedComment{
				analyzed("1", model.CategoryOther, model.SentimentNeutral, 10),
			},
			absent: "engagement: Comments receive",
		},
		{
			name: "criticism outnumbers appreciation",
			comments: []model.AnalyzedComment{
				analyzed("1", model.CategoryCriticism, model.SentimentNegative, 5),
				analyzed("2", model.CategoryCriticism, model.SentimentNegative, 5),
				analyzed("3", model.CategoryAppreciation, model.SentimentPositive, 5),
			},
			contains: "Critical community: Criticism comments outnumber appreciation",
		},
		{
			name: "spam at exactly 10 percent is not flagged",
			comments: append([]model.AnalyzedComment{
				analyzed("s", model.CategorySpam, model.SentimentNeutral, 5),
			}, repeatComments(9, model.CategoryOther)...),
			absent: "High spam content",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeComments(tt.comments)
			if tt.contains != "" {
				assert.Contains(t, got.Insights, tt.contains)
			}
			if tt.absent != "" {
				for _, line := range got.Insights {
					assert.NotContains(t, line, tt.absent)
				}
			}
		})
	}
}

func repeatComments(n int, cat model.Category) []model.AnalyzedComment {
	out := make([]model.AnalyzedComment, n)
	for i := range out {
		out[i] = analyzed(fmt.Sprintf("r%d", i), cat, model.SentimentNeutral, 5)
	}
	return out
}

func TestSummarizeComments_Empty(t *testing.T) {
	got := SummarizeComments(nil)
	assert.Equal(t, 0, got.TotalComments)
	assert.Empty(t, got.Insights)
	assert.NotNil(t, got.TopComments)
	assert.Equal(t, 0, got.CategoryDistribution[model.CategoryOther])
}

func TestSummarizeComments_TopComments(t *testing.T) {
	var comments []model.AnalyzedComment
	for i := range 8 {
		comments = append(comments, analyzed(fmt.Sprintf("c%d", i), model.CategoryOther, model.SentimentNeutral, int64(i)))
	}
	got := SummarizeComments(comments)
	require.Len(t, got.TopComments, 5)
	assert.Equal(t, int64(7), got.TopComments[0].LikeCount)
	assert.Equal(t, int64(3), got.TopComments[4].LikeCount)
}

func TestCommentTally_MergeOrderIndependent(t *testing.T) {
	comments := sampleComments()
	parts := [][]model.AnalyzedComment{comments[:3], comments[3:7], comments[7:]}

	tallies := make([]*CommentTally, len(parts))
	for i, p := range parts {
		tallies[i] = NewCommentTally()
		for _, c := range p {
			tallies[i].Add(c)
		}
	}

	forward := NewCommentTally()
	for _, tl := range tallies {
		forward.Merge(tl)
	}
	backward := NewCommentTally()
	for i := len(tallies) - 1; i >= 0; i-- {
		backward.Merge(tallies[i])
	}

	assert.Equal(t, SummarizeComments(comments), forward.Insights())
	assert.Equal(t, forward.Insights(), backward.Insights())
}

func TestAudience(t *testing.T) {
	mk := func(id, author string, likes, replies int64) model.AnalyzedComment {
		return model.AnalyzedComment{Comment: model.Comment{ID: id, Author: author, LikeCount: likes, ReplyCount: replies}}
	}
	comments := []model.AnalyzedComment{
		mk("1", "alice", 15, 0),
		mk("2", "alice", 10, 2),
		mk("3", "bob", 1, 6),
		mk("4", "bob", 1, 6),
		mk("5", "carol", 100, 0),
	}
	got := Audience(comments)

	require.Len(t, got.HighEngagementComments, 2)
	assert.Equal(t, "5", got.HighEngagementComments[0].ID)
	assert.Equal(t, 2, got.ConversationStarters)

	// carol has one comment only; alice passes on likes, bob on replies.
	require.Len(t, got.Influencers, 2)
	assert.Equal(t, "alice", got.Influencers[0].Author)
	assert.Equal(t, int64(29), got.Influencers[0].InfluenceScore)
	assert.Equal(t, "bob", got.Influencers[1].Author)
	assert.Equal(t, int64(26), got.Influencers[1].InfluenceScore)
}

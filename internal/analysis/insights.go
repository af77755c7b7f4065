package analysis

import (
	"cmp"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/asal3ti/charizard/internal/model"
)

// Insight thresholds. Shares are fractions of the total comment count.
const (
	dominantCategoryShare = 0.3
	spamShare             = 0.1
	highAvgLikes          = 10
	lowAvgLikes           = 2
	appreciationMultiple  = 2

	topCommentsLimit  = 5
	topKeywordsLimit  = 10
	minKeywordLength  = 4
	highEngagementMin = 10
	influencerMinPost = 2
	influencerLikes   = 20
	influencerReplies = 10
	influencersLimit  = 10
	conversationMin   = 5
)

var questionTypeOrder = []model.QuestionType{
	model.QuestionHowTo,
	model.QuestionWhatIs,
	model.QuestionWhenWill,
	model.QuestionWhy,
	model.QuestionWhere,
	model.QuestionGeneral,
}

// CommentTally is a partial aggregate over analyzed comments. Tallies built
// over disjoint partitions can be merged in any order and produce the same
// CommentInsights.
type CommentTally struct {
	total     int
	sentiment map[model.Sentiment]int
	category  map[model.Category]int
	questions map[model.QuestionType]int
	likes     int64
	length    int
	sarcastic int
	english   int
	keywords  map[string]int
	top       []model.AnalyzedComment
}

func NewCommentTally() *CommentTally {
	return &CommentTally{
		sentiment: make(map[model.Sentiment]int),
		category:  make(map[model.Category]int),
		questions: make(map[model.QuestionType]int),
		keywords:  make(map[string]int),
	}
}

// Add folds one comment into the tally.
func (t *CommentTally) Add(c model.AnalyzedComment) {
	t.total++
	t.sentiment[c.Sentiment]++
	t.category[c.Category]++
	if c.Category == model.CategoryQuestion {
		qt := c.QuestionType
		if qt == "" {
			qt = model.QuestionGeneral
		}
		t.questions[qt]++
	}
	t.likes += c.LikeCount
	t.length += utf8.RuneCountInString(c.Text)
	if c.Sarcasm == model.Sarcastic {
		t.sarcastic++
	}
	if c.IsEnglish {
		t.english++
	}
	for _, w := range Tokenize(c.Text) {
		if utf8.RuneCountInString(w) >= minKeywordLength {
			t.keywords[w]++
		}
	}
	t.top = topByLikes(append(t.top, c), topCommentsLimit)
}

// Merge folds another tally into t.
func (t *CommentTally) Merge(o *CommentTally) {
	t.total += o.total
	for k, v := range o.sentiment {
		t.sentiment[k] += v
	}
	for k, v := range o.category {
		t.category[k] += v
	}
	for k, v := range o.questions {
		t.questions[k] += v
	}
	t.likes += o.likes
	t.length += o.length
	t.sarcastic += o.sarcastic
	t.english += o.english
	for k, v := range o.keywords {
		t.keywords[k] += v
	}
	t.top = topByLikes(append(slices.Clone(t.top), o.top...), topCommentsLimit)
}

// Insights finalizes the tally.
func (t *CommentTally) Insights() model.CommentInsights {
	out := model.CommentInsights{
		TotalComments:         t.total,
		SentimentDistribution: map[model.Sentiment]int{model.SentimentPositive: 0, model.SentimentNegative: 0, model.SentimentNeutral: 0},
		CategoryDistribution:  make(map[model.Category]int, len(model.Categories)),
		QuestionTypes:         make(map[model.QuestionType]int, len(questionTypeOrder)),
		SarcasticCount:        t.sarcastic,
		EnglishCount:          t.english,
		TopComments:           slices.Clone(t.top),
		TopKeywords:           topCounts(t.keywords, topKeywordsLimit),
		Insights:              []string{},
	}
	for k, v := range t.sentiment {
		out.SentimentDistribution[k] = v
	}
	for _, c := range model.Categories {
		out.CategoryDistribution[c] = t.category[c]
	}
	for _, q := range questionTypeOrder {
		out.QuestionTypes[q] = t.questions[q]
	}
	if out.TopComments == nil {
		out.TopComments = []model.AnalyzedComment{}
	}
	if t.total == 0 {
		return out
	}

	n := float64(t.total)
	avgLikes := float64(t.likes) / n
	out.AverageLikes = Round(avgLikes, 1)
	out.AvgCommentLength = Round(float64(t.length)/n, 1)
	pos := t.sentiment[model.SentimentPositive]
	neg := t.sentiment[model.SentimentNegative]
	out.SentimentScore = Round(float64(pos-neg)/n, 3)
	out.Insights = commentInsightLines(out, avgLikes)
	return out
}

// SummarizeComments aggregates analyzed comments into an insight set.
func SummarizeComments(comments []model.AnalyzedComment) model.CommentInsights {
	t := NewCommentTally()
	for _, c := range comments {
		t.Add(c)
	}
	return t.Insights()
}

func commentInsightLines(ci model.CommentInsights, avgLikes float64) []string {
	lines := []string{}
	total := float64(ci.TotalComments)
	cats := ci.CategoryDistribution

	dominant, dominantCount := model.Categories[0], -1
	for _, c := range model.Categories {
		if cats[c] > dominantCount {
			dominant, dominantCount = c, cats[c]
		}
	}
	if float64(dominantCount) > total*dominantCategoryShare {
		lines = append(lines, fmt.Sprintf("Comments are predominantly %s (%d comments)", dominant, dominantCount))
	}

	questions := 0
	topQuestion, topQuestionCount := questionTypeOrder[0], -1
	for _, q := range questionTypeOrder {
		questions += ci.QuestionTypes[q]
		if ci.QuestionTypes[q] > topQuestionCount {
			topQuestion, topQuestionCount = q, ci.QuestionTypes[q]
		}
	}
	if questions > 0 {
		lines = append(lines, fmt.Sprintf("Most common question type: %s (%d questions)", topQuestion, topQuestionCount))
	}

	switch {
	case avgLikes > highAvgLikes:
		lines = append(lines, "High engagement: Comments receive many likes on average")
	case avgLikes < lowAvgLikes:
		lines = append(lines, "Low engagement: Comments receive few likes on average")
	}

	if spam := cats[model.CategorySpam]; float64(spam) > total*spamShare {
		lines = append(lines, fmt.Sprintf("High spam content: %d spam comments detected", spam))
	}

	appreciation, criticism := cats[model.CategoryAppreciation], cats[model.CategoryCriticism]
	switch {
	case appreciation > criticism*appreciationMultiple:
		lines = append(lines, "Very positive community: Appreciation comments significantly outnumber criticism")
	case criticism > appreciation:
		lines = append(lines, "Critical community: Criticism comments outnumber appreciation")
	}
	return lines
}

// Audience finds the comments and commenters that draw the most attention.
func Audience(comments []model.AnalyzedComment) model.AudienceBehavior {
	out := model.AudienceBehavior{
		HighEngagementComments: []model.AnalyzedComment{},
		Influencers:            []model.Influencer{},
	}
	if len(comments) == 0 {
		return out
	}

	var likes, replies int64
	byAuthor := make(map[string]*model.Influencer)
	for _, c := range comments {
		likes += c.LikeCount
		replies += c.ReplyCount
		if c.LikeCount > highEngagementMin {
			out.HighEngagementComments = append(out.HighEngagementComments, c)
		}
		if c.ReplyCount > conversationMin {
			out.ConversationStarters++
		}
		inf, ok := byAuthor[c.Author]
		if !ok {
			inf = &model.Influencer{Author: c.Author, AuthorChannelID: c.AuthorChannelID}
			byAuthor[c.Author] = inf
		}
		inf.CommentCount++
		inf.TotalLikes += c.LikeCount
		inf.TotalReplies += c.ReplyCount
	}
	n := float64(len(comments))
	out.AvgLikesPerComment = Round(float64(likes)/n, 2)
	out.AvgRepliesPerComment = Round(float64(replies)/n, 2)
	out.HighEngagementComments = topByLikes(out.HighEngagementComments, len(out.HighEngagementComments))

	for _, inf := range byAuthor {
		if inf.CommentCount >= influencerMinPost && (inf.TotalLikes > influencerLikes || inf.TotalReplies > influencerReplies) {
			inf.InfluenceScore = inf.TotalLikes + inf.TotalReplies*2
			out.Influencers = append(out.Influencers, *inf)
		}
	}
	slices.SortFunc(out.Influencers, func(a, b model.Influencer) int {
		return cmp.Or(cmp.Compare(b.InfluenceScore, a.InfluenceScore), cmp.Compare(a.Author, b.Author))
	})
	if len(out.Influencers) > influencersLimit {
		out.Influencers = out.Influencers[:influencersLimit]
	}
	return out
}

// topByLikes sorts by like count descending with a total tie-break so the
// result does not depend on input order, then truncates to k.
func topByLikes(cs []model.AnalyzedComment, k int) []model.AnalyzedComment {
	slices.SortFunc(cs, func(a, b model.AnalyzedComment) int {
		return cmp.Or(
			cmp.Compare(b.LikeCount, a.LikeCount),
			cmp.Compare(a.ID, b.ID),
			cmp.Compare(a.Text, b.Text),
		)
	})
	if len(cs) > k {
		cs = cs[:k]
	}
	return cs
}

// topCounts returns the k most frequent keys, ties broken alphabetically.
func topCounts(counts map[string]int, k int) []model.KeywordCount {
	out := make([]model.KeywordCount, 0, len(counts))
	for w, c := range counts {
		out = append(out, model.KeywordCount{Word: w, Count: c})
	}
	slices.SortFunc(out, func(a, b model.KeywordCount) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Word, b.Word))
	})
	if len(out) > k {
		out = out[:k]
	}
	return out
}

package analysis

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/asal3ti/charizard/internal/model"
)

// DefaultWorkers bounds the per-batch classification fan-out.
const DefaultWorkers = 8

// Engine bundles the classifiers. All of its components are read-only after
// construction, so a single Engine is shared across requests.
type Engine struct {
	Sentiment   *SentimentAnalyzer
	Sarcasm     *SarcasmDetector
	Categorizer *Categorizer
	Sponsorship *SponsorshipDetector
	workers     int
}

// NewEngine builds an Engine with the built-in lexicons and rule sets.
func NewEngine(workers int) *Engine {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	sentiment := NewSentimentAnalyzer()
	return &Engine{
		Sentiment:   sentiment,
		Sarcasm:     NewSarcasmDetector(DefaultSarcasmLexicon(), sentiment),
		Categorizer: NewCategorizer(DefaultCategoryRules(), DefaultQuestionRules()),
		Sponsorship: NewSponsorshipDetector(DefaultKnownBrands()),
		workers:     workers,
	}
}

// AnalyzeComment runs every comment classifier over one comment.
func (e *Engine) AnalyzeComment(c model.Comment) model.AnalyzedComment {
	out := model.AnalyzedComment{
		Comment:    c,
		Sentiment:  e.Sentiment.Classify(c.Text),
		Sarcasm:    e.Sarcasm.Detect(c.Text).Label,
		Category:   e.Categorizer.Categorize(c.Text),
		IsQuestion: IsQuestion(c.Text),
		IsEnglish:  IsEnglish(c.Text),
	}
	if out.Category == model.CategoryQuestion {
		out.QuestionType = e.Categorizer.CategorizeQuestion(c.Text)
	}
	return out
}

// AnalyzeText classifies a single piece of free text.
func (e *Engine) AnalyzeText(text string) model.TextAnalysis {
	compound := e.Sentiment.Compound(text)
	sarcasm := e.Sarcasm.Detect(text)
	out := model.TextAnalysis{
		Text:         text,
		Sentiment:    SentimentFromCompound(compound),
		Compound:     compound,
		Sarcasm:      sarcasm.Label,
		SarcasmScore: sarcasm.Score,
		Category:     e.Categorizer.Categorize(text),
		IsQuestion:   IsQuestion(text),
		IsEnglish:    IsEnglish(text),
	}
	if out.IsQuestion || out.Category == model.CategoryQuestion {
		out.QuestionType = e.Categorizer.CategorizeQuestion(text)
	}
	return out
}

// AnalyzeComments classifies comments concurrently and aggregates them. Output
// order matches input order; the insight set does not depend on the order in
// which partitions finish.
func (e *Engine) AnalyzeComments(ctx context.Context, comments []model.Comment) ([]model.AnalyzedComment, model.CommentInsights, error) {
	out := make([]model.AnalyzedComment, len(comments))
	total := NewCommentTally()
	if len(comments) == 0 {
		return out, total.Insights(), nil
	}

	chunk := (len(comments) + e.workers - 1) / e.workers
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for start := 0; start < len(comments); start += chunk {
		end := min(start+chunk, len(comments))
		g.Go(func() error {
			part := NewCommentTally()
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				out[i] = e.AnalyzeComment(comments[i])
				part.Add(out[i])
			}
			mu.Lock()
			total.Merge(part)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, model.CommentInsights{}, err
	}
	return out, total.Insights(), nil
}

// DetectSponsorships runs the sponsorship detector.
func (e *Engine) DetectSponsorships(transcript, title, description string) model.SponsorshipAnalysis {
	return e.Sponsorship.Detect(transcript, title, description)
}

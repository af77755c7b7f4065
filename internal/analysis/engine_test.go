package analysis

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asal3ti/charizard/internal/model"
)

func TestEngine_AnalyzeComments(t *testing.T) {
	e := NewEngine(3)
	texts := []string{
		"great video!",
		"this is bad",
		"how do I install this?",
		"subscribe to me",
		"lol",
		"zzz",
		"you should try vim",
	}
	comments := make([]model.Comment, len(texts))
	for i, txt := range texts {
		comments[i] = model.Comment{ID: fmt.Sprintf("c%d", i), Text: txt}
	}

	got, insights, err := e.AnalyzeComments(context.Background(), comments)
	require.NoError(t, err)
	require.Len(t, got, len(comments))

	for i := range comments {
		assert.Equal(t, comments[i].ID, got[i].ID, "order preserved")
	}
	assert.Equal(t, model.CategoryAppreciation, got[0].Category)
	assert.Equal(t, model.CategoryCriticism, got[1].Category)
	assert.Equal(t, model.CategoryQuestion, got[2].Category)
	assert.Equal(t, model.QuestionHowTo, got[2].QuestionType)
	assert.Empty(t, got[0].QuestionType)

	assert.Equal(t, len(comments), insights.TotalComments)
	assert.Equal(t, SummarizeComments(got), insights)
}

func TestEngine_AnalyzeComments_Empty(t *testing.T) {
	got, insights, err := NewEngine(0).AnalyzeComments(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, insights.TotalComments)
}

func TestEngine_AnalyzeComments_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewEngine(2).AnalyzeComments(ctx, []model.Comment{{Text: "a"}, {Text: "b"}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestEngine_AnalyzeText(t *testing.T) {
	e := NewEngine(1)
	got := e.AnalyzeText("wow great job, thanks a lot for this garbage update")

	assert.Equal(t, model.Sarcastic, got.Sarcasm)
	assert.Equal(t, model.CategoryAppreciation, got.Category)
	assert.False(t, got.IsQuestion)
	assert.Empty(t, got.QuestionType)

	q := e.AnalyzeText("what is the song at 2:30?")
	assert.True(t, q.IsQuestion)
	assert.Equal(t, model.QuestionWhatIs, q.QuestionType)

	assert.Equal(t, got, e.AnalyzeText("wow great job, thanks a lot for this garbage update"))
}

package analysis

import (
	"testing"

	"github.com/RadhiFadlillah/whatlanggo"

	"github.com/asal3ti/charizard/internal/model"
)

func TestClassifySentiment(t *testing.T) {
	a := NewSentimentAnalyzer()
	tests := []struct {
		name string
		text string
		want model.Sentiment
	}{
		{"empty", "", model.SentimentNeutral},
		{"whitespace", "   ", model.SentimentNeutral},
		{"positive", "I love this, it's amazing!", model.SentimentPositive},
		{"negative", "This is terrible and awful", model.SentimentNegative},
		{"no lexicon words", "The video is ten minutes long", model.SentimentNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSentimentFromCompound(t *testing.T) {
	tests := []struct {
		compound float64
		want     model.Sentiment
	}{
		{0.05, model.SentimentPositive},
		{0.049, model.SentimentNeutral},
		{0, model.SentimentNeutral},
		{-0.049, model.SentimentNeutral},
		{-0.05, model.SentimentNegative},
		{-1, model.SentimentNegative},
	}
	for _, tt := range tests {
		if got := SentimentFromCompound(tt.compound); got != tt.want {
			t.Errorf("SentimentFromCompound(%v) = %q, want %q", tt.compound, got, tt.want)
		}
	}
}

func TestDetectSarcasm(t *testing.T) {
	d := NewSarcasmDetector(DefaultSarcasmLexicon(), NewSentimentAnalyzer())
	tests := []struct {
		name string
		text string
		want model.Sarcasm
	}{
		{"stacked signals", "wow great job, thanks a lot for this garbage update", model.Sarcastic},
		{"empty", "", model.NotSarcastic},
		{"plain statement", "the tutorial covers installation on linux", model.NotSarcastic},
		{"indicator caps and quotes", `Sure, "BEST" video ever`, model.Sarcastic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.text).Label; got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectSarcasm_Score(t *testing.T) {
	d := NewSarcasmDetector(DefaultSarcasmLexicon(), NewSentimentAnalyzer())
	res := d.Detect("wow great job, thanks a lot for this garbage update 🙄")
	// negative context 2 + indicator 2 + emoji 1
	if res.Score != 5 {
		t.Errorf("score = %d, want 5", res.Score)
	}
	if !res.Signals.Emoji || !res.Signals.NegativeContext || !res.Signals.Indicator {
		t.Errorf("signals = %+v, want emoji, negative context and indicator", res.Signals)
	}
	if res.Signals.Caps {
		t.Error("caps signal fired on lower-case text")
	}
}

func TestCategorize_Precedence(t *testing.T) {
	c := NewCategorizer(DefaultCategoryRules(), DefaultQuestionRules())
	tests := []struct {
		name string
		text string
		want model.Category
	}{
		{"appreciation beats criticism", "great video but the audio is bad", model.CategoryAppreciation},
		{"criticism beats question", "why is this so bad?", model.CategoryCriticism},
		{"question beats suggestion", "should I upgrade?", model.CategoryQuestion},
		{"suggestion", "you should try the new version", model.CategorySuggestion},
		{"feedback beats personal", "i think so", model.CategoryFeedback},
		{"spam", "subscribe to my channel", model.CategorySpam},
		{"humor", "lol", model.CategoryHumor},
		{"technical", "install failed on step two", model.CategoryTechnical},
		{"personal", "my life changed", model.CategoryPersonal},
		{"other", "zzz", model.CategoryOther},
		{"empty", "", model.CategoryOther},
		{"substring quirk", "nice badge", model.CategoryCriticism},
		{"case insensitive", "AWESOME", model.CategoryAppreciation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Categorize(tt.text); got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestCategorize_AlwaysKnownLabel(t *testing.T) {
	c := NewCategorizer(DefaultCategoryRules(), DefaultQuestionRules())
	known := make(map[model.Category]bool, len(model.Categories))
	for _, l := range model.Categories {
		known[l] = true
	}
	inputs := []string{"", "?", "😂", "12345", "Ünïcödé text", "\n\t", "how do I install this?"}
	for _, in := range inputs {
		got := c.Categorize(in)
		if !known[got] {
			t.Errorf("Categorize(%q) = %q, not a known label", in, got)
		}
		if again := c.Categorize(in); again != got {
			t.Errorf("Categorize(%q) not idempotent: %q then %q", in, got, again)
		}
	}
}

func TestCategorizeQuestion(t *testing.T) {
	c := NewCategorizer(DefaultCategoryRules(), DefaultQuestionRules())
	tests := []struct {
		text string
		want model.QuestionType
	}{
		{"How to fix this?", model.QuestionHowTo},
		{"what is this song?", model.QuestionWhatIs},
		{"when will part 2 come out?", model.QuestionWhenWill},
		{"why?", model.QuestionWhy},
		{"where can I buy it?", model.QuestionWhere},
		{"ok?", model.QuestionGeneral},
	}
	for _, tt := range tests {
		if got := c.CategorizeQuestion(tt.text); got != tt.want {
			t.Errorf("CategorizeQuestion(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestIsQuestion(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"is this real?", true},
		{"Is it good", true},
		{"where is the link", true},
		{"could you share the code", true},
		{"Nice video", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsQuestion(tt.text); got != tt.want {
			t.Errorf("IsQuestion(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsSpam(t *testing.T) {
	if !IsSpam("Check out my channel for FREE stuff") {
		t.Error("expected spam")
	}
	if IsSpam("great explanation") {
		t.Error("unexpected spam")
	}
}

func TestIsEnglish(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"whitespace", "  ", false},
		{"english sentence", "This is a really helpful tutorial about programming and testing", true},
		{"russian sentence", "Это очень хороший видеоролик о программировании и тестировании", false},
		{"short ascii", "nice video bro", true},
		{"single word", "thanks", true},
		{"short with emoji", "great job 👍", true},
		{"exclamation", "first!", true},
		{"japanese", "この動画はとても面白いです", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEnglish(tt.text); got != tt.want {
				t.Errorf("IsEnglish(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestEnglishVerdict(t *testing.T) {
	tests := []struct {
		name  string
		info  whatlanggo.Info
		ratio float64
		want  bool
	}{
		{"confident english", whatlanggo.Info{Lang: whatlanggo.Eng, Confidence: 0.9}, 0.5, true},
		{"weak english, ascii heavy", whatlanggo.Info{Lang: whatlanggo.Eng, Confidence: 0.1}, 0.9, true},
		{"mislabelled short ascii", whatlanggo.Info{Lang: whatlanggo.Ron, Confidence: 0.04}, 1.0, true},
		{"other language, little ascii", whatlanggo.Info{Lang: whatlanggo.Rus, Confidence: 0.9}, 0.1, false},
		{"weak english, little ascii", whatlanggo.Info{Lang: whatlanggo.Eng, Confidence: 0.3}, 0.5, false},
		{"undecided, ascii heavy", whatlanggo.Info{}, 0.85, true},
		{"undecided, below stricter cutoff", whatlanggo.Info{}, 0.75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := englishVerdict(tt.info, tt.ratio); got != tt.want {
				t.Errorf("englishVerdict(%+v, %.2f) = %v, want %v", tt.info, tt.ratio, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Hello, World! It's 2024")
	want := []string{"hello", "world", "it", "s", "2024"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

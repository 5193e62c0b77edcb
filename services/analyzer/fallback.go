package analyzer

import (
	"strings"
	"unicode"

	"github.com/shivangi1713/The-Intelligent-Content-API/models"
)

// SummaryBudget is the maximum fallback summary length in runes, before the
// ellipsis marker.
const SummaryBudget = 200

// Heuristic keyword lists
var positiveKeywords = []string{
	"good", "great", "excellent", "amazing", "love", "happy", "win", "wins", "success",
}

var negativeKeywords = []string{
	"bad", "terrible", "awful", "horrible", "hate", "sad", "loss", "fail", "failure",
}

// Fallback analyzes text locally: sentiment by comparing positive vs
// negative keyword counts (ties and zero matches are Neutral), summary by
// truncating the input to SummaryBudget runes.
func Fallback(text string) *Result {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}

	var pos, neg int
	for _, k := range positiveKeywords {
		pos += counts[k]
	}
	for _, k := range negativeKeywords {
		neg += counts[k]
	}

	sentiment := models.SentimentNeutral
	if pos > neg {
		sentiment = models.SentimentPositive
	} else if neg > pos {
		sentiment = models.SentimentNegative
	}

	return &Result{
		Summary:   truncate(text, SummaryBudget),
		Sentiment: sentiment,
	}
}

func truncate(text string, budget int) string {
	runes := []rune(text)
	if len(runes) <= budget {
		return text
	}
	return string(runes[:budget]) + "..."
}

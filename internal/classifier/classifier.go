// Package classifier derives category, priority, spam/offensive flags and a
// one-line summary from complaint text using fixed keyword tables. It is a
// deterministic lookup, not a learned model.
package classifier

import (
	"fmt"
	"strings"

	"github.com/campusvoice/backend/internal/models"
)

// Result is the complete classification of one complaint text. Classify
// always returns a fully populated Result.
type Result struct {
	Category    string                   `json:"category"`
	Priority    models.ComplaintPriority `json:"priority"`
	Summary     string                   `json:"summary"`
	IsSpam      bool                     `json:"isSpam"`
	IsOffensive bool                     `json:"isOffensive"`
}

type categoryRule struct {
	name     string
	keywords []string
}

// Table order is the tie-break: the first category with any keyword match
// wins, regardless of how many keywords matched.
var categoryRules = []categoryRule{
	{"Academic", []string{
		"exam", "grade", "course", "assignment", "syllabus", "curriculum",
		"lecture", "professor", "semester", "education",
	}},
	{"Infrastructure", []string{
		"building", "classroom", "lab", "library", "computer", "wifi",
		"internet", "electricity", "water", "maintenance", "repair",
		"broken", "facility", "projector",
	}},
	{"Hostel", []string{
		"hostel", "room", "mess", "food", "accommodation", "bathroom",
		"laundry", "warden", "residence",
	}},
	{"Transport", []string{
		"bus", "transport", "parking", "vehicle", "traffic", "commute",
		"shuttle",
	}},
	{"Faculty", []string{
		"faculty", "staff", "administration", "office", "registration",
		"admission", "fee", "payment", "counseling",
	}},
}

// DefaultCategory is used when no keyword table matches.
const DefaultCategory = "Other"

var highPriorityKeywords = []string{
	"emergency", "urgent", "dangerous", "unsafe", "health", "medical",
	"fire", "theft", "harassment", "violence",
}

var mediumPriorityKeywords = []string{
	"delay", "problem", "issue", "complaint", "concern", "inconvenience",
	"maintenance", "repair", "broken",
}

var spamKeywords = []string{
	"buy", "sell", "advertisement", "promotion", "lottery", "winner",
	"free money", "click here", "limited time offer",
}

var offensiveKeywords = []string{
	"abuse", "hate", "racist", "sexist", "vulgar", "insult", "threat",
	"harassment", "inappropriate",
}

// Classify maps complaint text to a classification result. It is pure and
// safe to call concurrently; identical inputs always produce identical
// output. Callers are responsible for ensuring title and description are
// non-empty.
func Classify(title, description string) Result {
	text := strings.ToLower(title + " " + description)

	category := DefaultCategory
	for _, rule := range categoryRules {
		if containsAny(text, rule.keywords) {
			category = rule.name
			break
		}
	}

	priority := models.PriorityLow
	if containsAny(text, highPriorityKeywords) {
		priority = models.PriorityHigh
	} else if containsAny(text, mediumPriorityKeywords) {
		priority = models.PriorityMedium
	}

	return Result{
		Category:    category,
		Priority:    priority,
		Summary:     fmt.Sprintf("Complaint regarding %s issues: %s", strings.ToLower(category), title),
		IsSpam:      containsAny(text, spamKeywords),
		IsOffensive: containsAny(text, offensiveKeywords),
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

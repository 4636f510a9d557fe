// Package assistant contains the natural language intent parser and its
// use cases.
package assistant

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/lifeos/backend/internal/application/adapter"
)

// Intent names produced by the parser.
const (
	IntentExpense         = "expense"
	IntentTask            = "task"
	IntentStudySession    = "study_session"
	IntentHabitCompletion = "habit_completion"
	IntentJournal         = "journal"
)

var (
	numberPattern  = regexp.MustCompile(`\$?(\d+(?:\.\d{1,2})?)`)
	minutesPattern = regexp.MustCompile(`(\d+)\s*(?:min|mins|minutes)`)
	hoursPattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:hr|hrs|hour|hours)`)
	subjectPattern = regexp.MustCompile(`studied\s+(\w+)`)

	moneyKeywords = []string{"spent", "bought", "paid", "purchase", "cost"}
	studyVerbs    = []string{"studied", "study", "learned", "practiced", "revised"}
	habitPhrases  = []string{"did my", "completed my", "done with my", "finished my"}
	moodPhrases   = []string{"feeling", "i feel", "felt", "mood"}

	// Whole words only, so "completed my run" and "finished my workout"
	// slide past the task branch and reach the habit branch.
	actionVerbPattern = regexp.MustCompile(`\b(?:remind|need to|have to|todo|task|schedule|call|email|submit|finish|complete)\b`)

	// Checked in order; the first keyword found in the text wins.
	expenseCategories = []struct {
		keyword  string
		category string
	}{
		{"lunch", "food"}, {"dinner", "food"}, {"breakfast", "food"}, {"coffee", "food"},
		{"food", "food"}, {"groceries", "food"}, {"restaurant", "food"}, {"snack", "food"},
		{"uber", "transport"}, {"taxi", "transport"}, {"bus", "transport"}, {"train", "transport"},
		{"gas", "transport"}, {"fuel", "transport"}, {"parking", "transport"},
		{"movie", "entertainment"}, {"cinema", "entertainment"}, {"game", "entertainment"},
		{"concert", "entertainment"}, {"netflix", "entertainment"},
	}

	weekdays = map[string]time.Weekday{
		"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
		"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday,
		"sunday": time.Sunday,
	}

	// Ordered ladder: the first matching keyword wins.
	moodLadder = []struct {
		keyword string
		mood    int
	}{
		{"amazing", 10}, {"fantastic", 10}, {"great", 9}, {"happy", 8},
		{"good", 7}, {"fine", 6}, {"okay", 5}, {"ok", 5}, {"meh", 4},
		{"tired", 4}, {"sad", 3}, {"stressed", 3}, {"awful", 2}, {"terrible", 1},
	}
)

// Parse classifies free-form text into a structured intent. Branches are
// tried in a fixed order and the first match wins; anything unmatched
// falls through to a bare task. Confidence is static per branch.
func Parse(text string, now time.Time) *adapter.ParsedIntent {
	lower := strings.ToLower(strings.TrimSpace(text))

	if intent := parseExpense(lower); intent != nil {
		return intent
	}
	if intent := parseTask(lower, text, now); intent != nil {
		return intent
	}
	if intent := parseStudy(lower); intent != nil {
		return intent
	}
	if intent := parseHabit(lower); intent != nil {
		return intent
	}
	if intent := parseMood(lower); intent != nil {
		return intent
	}

	return &adapter.ParsedIntent{
		Intent:     IntentTask,
		Confidence: 0.5,
		Parameters: map[string]any{"title": strings.TrimSpace(text)},
		Message:    "I'll add that as a task.",
	}
}

func parseExpense(lower string) *adapter.ParsedIntent {
	hasKeyword := false
	for _, kw := range moneyKeywords {
		if strings.Contains(lower, kw) {
			hasKeyword = true
			break
		}
	}
	if !hasKeyword && !strings.Contains(lower, "$") {
		return nil
	}

	match := numberPattern.FindStringSubmatch(lower)
	if match == nil {
		return nil
	}
	amount, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return nil
	}

	category := "other"
	for _, e := range expenseCategories {
		if strings.Contains(lower, e.keyword) {
			category = e.category
			break
		}
	}

	return &adapter.ParsedIntent{
		Intent:     IntentExpense,
		Confidence: 0.85,
		Parameters: map[string]any{
			"amount":   amount,
			"category": category,
		},
		Message: "Logged that as an expense.",
	}
}

func parseStudy(lower string) *adapter.ParsedIntent {
	matched := false
	for _, verb := range studyVerbs {
		if strings.Contains(lower, verb) {
			matched = true
			break
		}
	}
	if !matched {
		return nil
	}

	minutes := 30
	if m := minutesPattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			minutes = v
		}
	} else if h := hoursPattern.FindStringSubmatch(lower); h != nil {
		if v, err := strconv.ParseFloat(h[1], 64); err == nil {
			minutes = int(v * 60)
		}
	}

	params := map[string]any{"duration_minutes": minutes}
	if s := subjectPattern.FindStringSubmatch(lower); s != nil {
		params["subject"] = s[1]
	}

	return &adapter.ParsedIntent{
		Intent:     IntentStudySession,
		Confidence: 0.75,
		Parameters: params,
		Message:    "Recorded your study session.",
	}
}

func parseHabit(lower string) *adapter.ParsedIntent {
	for _, phrase := range habitPhrases {
		if idx := strings.Index(lower, phrase); idx >= 0 {
			name := strings.TrimSpace(lower[idx+len(phrase):])
			name = strings.TrimSuffix(name, " today")
			return &adapter.ParsedIntent{
				Intent:     IntentHabitCompletion,
				Confidence: 0.7,
				Parameters: map[string]any{"habit": name, "completed": true},
				Message:    "Marked that habit as done.",
			}
		}
	}
	return nil
}

func parseMood(lower string) *adapter.ParsedIntent {
	matched := false
	for _, phrase := range moodPhrases {
		if strings.Contains(lower, phrase) {
			matched = true
			break
		}
	}
	if !matched {
		return nil
	}

	mood := 5
	for _, entry := range moodLadder {
		if strings.Contains(lower, entry.keyword) {
			mood = entry.mood
			break
		}
	}

	return &adapter.ParsedIntent{
		Intent:     IntentJournal,
		Confidence: 0.65,
		Parameters: map[string]any{"mood": mood},
		Message:    "Noted in your journal.",
	}
}

func parseTask(lower, original string, now time.Time) *adapter.ParsedIntent {
	if !actionVerbPattern.MatchString(lower) {
		return nil
	}

	params := map[string]any{"title": strings.TrimSpace(original)}

	if due := deadlineFrom(lower, now); due != nil {
		params["due_date"] = due.Format("2006-01-02")
	}

	return &adapter.ParsedIntent{
		Intent:     IntentTask,
		Confidence: 0.8,
		Parameters: params,
		Message:    "Added that to your tasks.",
	}
}

// deadlineFrom resolves "tomorrow" and weekday names. A weekday always
// picks the next strictly-future occurrence, so naming today's weekday
// lands a full week out.
func deadlineFrom(lower string, now time.Time) *time.Time {
	today := now.UTC().Truncate(24 * time.Hour)

	if strings.Contains(lower, "tomorrow") {
		d := today.Add(24 * time.Hour)
		return &d
	}

	for name, weekday := range weekdays {
		if !strings.Contains(lower, name) {
			continue
		}
		days := int(weekday-today.Weekday()+7) % 7
		if days == 0 {
			days = 7
		}
		d := today.Add(time.Duration(days) * 24 * time.Hour)
		return &d
	}

	return nil
}

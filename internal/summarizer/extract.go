package summarizer

import (
	"sort"
	"strings"
	"unicode/utf8"
)

var decisionKeywords = []string{
	"decided", "agree", "agreed", "will", "going to",
	"should", "must", "determined", "concluded", "commit",
}

var actionKeywords = []string{
	"need to", "have to", "will", "should", "must",
	"todo", "task", "action", "follow up", "next step",
	"assign", "responsible", "deadline",
}

// bulletSet is an ordered, capped list of unique bullets.
type bulletSet struct {
	items []string
	seen  map[string]struct{}
	limit int
}

func newBulletSet(limit int) *bulletSet {
	return &bulletSet{
		items: make([]string, 0, limit),
		seen:  make(map[string]struct{}, limit),
		limit: limit,
	}
}

func (b *bulletSet) full() bool {
	return len(b.items) >= b.limit
}

// add appends bullet unless it is empty, already present or the set is full.
func (b *bulletSet) add(bullet string) {
	if bullet == "" || b.full() {
		return
	}
	if _, ok := b.seen[bullet]; ok {
		return
	}
	b.seen[bullet] = struct{}{}
	b.items = append(b.items, bullet)
}

// ExtractKeyPoints takes the first lead sentences in document order, then
// fills up to maxPoints with the remaining sentences from longest to
// shortest. Ties keep document order.
func ExtractKeyPoints(sentences []string, lead, maxPoints, maxWords int) []string {
	points := newBulletSet(maxPoints)

	if lead > len(sentences) {
		lead = len(sentences)
	}
	for _, s := range sentences[:lead] {
		points.add(FormatBullet(s, maxWords))
	}

	rest := make([]string, len(sentences)-lead)
	copy(rest, sentences[lead:])
	sort.SliceStable(rest, func(i, j int) bool {
		return utf8.RuneCountInString(rest[i]) > utf8.RuneCountInString(rest[j])
	})

	for _, s := range rest {
		if points.full() {
			break
		}
		points.add(FormatBullet(s, maxWords))
	}

	return points.items
}

// ExtractDecisions returns sentences that contain a decision keyword.
func ExtractDecisions(sentences []string, limit, maxWords int) []string {
	return extractByKeywords(sentences, decisionKeywords, limit, maxWords)
}

// ExtractActionItems returns sentences that contain an action keyword.
func ExtractActionItems(sentences []string, limit, maxWords int) []string {
	return extractByKeywords(sentences, actionKeywords, limit, maxWords)
}

func extractByKeywords(sentences, keywords []string, limit, maxWords int) []string {
	found := newBulletSet(limit)
	for _, s := range sentences {
		if found.full() {
			break
		}
		if containsAny(strings.ToLower(s), keywords) {
			found.add(FormatBullet(s, maxWords))
		}
	}
	return found.items
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

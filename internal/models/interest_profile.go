// ABOUTME: InterestProfile represents the user's stated interests for ranking
// ABOUTME: Singleton record, persisted by storage and embedded for relevance scoring
package models

import (
	"strings"
	"time"
)

// InterestProfile holds the topics the user wants to engage with. The
// joined interest list is what gets embedded and compared against post text.
type InterestProfile struct {
	Handle      string    `json:"handle,omitempty"`
	Interests   []string  `json:"interests"`
	LastUpdated time.Time `json:"last_updated"`
}

// AddInterest appends a topic if not already present
func (p *InterestProfile) AddInterest(topic string) {
	if topic == "" {
		return
	}
	for _, t := range p.Interests {
		if t == topic {
			return
		}
	}
	p.Interests = append(p.Interests, topic)
	p.LastUpdated = time.Now()
}

// InterestText returns the text that gets embedded for similarity scoring
func (p *InterestProfile) InterestText() string {
	return strings.Join(p.Interests, ", ")
}

// Package entity defines the domain entities for the risk feature.
package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Question is one entry of the fixed risk questionnaire. Options maps the
// answer letters A-D to their display text.
type Question struct {
	Text    string            `json:"text"`
	Options map[string]string `json:"options"`
}

// AssetClass pairs a recommended asset-class name with its rationale.
type AssetClass struct {
	Name      string
	Rationale string
}

// Portfolio is an insertion-ordered mapping from asset-class name to
// rationale. It marshals as a JSON object whose keys keep the slice order,
// which plain Go maps cannot guarantee.
type Portfolio []AssetClass

// MarshalJSON writes the portfolio as a JSON object in slice order.
func (p Portfolio) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ac := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ac.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(ac.Rationale)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object back into the slice, preserving the
// document's key order.
func (p *Portfolio) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("portfolio: expected JSON object, got %v", tok)
	}
	out := Portfolio{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("portfolio: expected string key, got %v", keyTok)
		}
		var rationale string
		if err := dec.Decode(&rationale); err != nil {
			return err
		}
		out = append(out, AssetClass{Name: key, Rationale: rationale})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*p = out
	return nil
}

// AdvisorInfo is one of the three fixed investor-profile records returned by
// the advisory resolver. Values are static content, never user-constructed.
type AdvisorInfo struct {
	Title     string    `json:"title"`
	Goals     []string  `json:"goals"`
	Portfolio Portfolio `json:"portfolio"`
	Tips      []string  `json:"tips"`
}

// Profile is the persisted risk assessment for a user.
type Profile struct {
	Score   int         `json:"score"`
	Message string      `json:"message"`
	Advisor AdvisorInfo `json:"advisor"`
}

// questionnaire is the fixed set of ten risk questions.
var questionnaire = []Question{
	{
		Text: "1. You have an offer to invest 15% of your net worth in a deal with an 80% chance of profit. You'd say:",
		Options: map[string]string{
			"A": "Not worth it.", "B": "7x return", "C": "3x return", "D": "1x return",
		},
	},
	{
		Text: "2. Comfortable assuming $10,000 debt for $20,000 gain?",
		Options: map[string]string{
			"A": "Totally uncomfortable. I would never do it.",
			"B": "Somewhat uncomfortable. I would probably never do it",
			"C": "Somewhat uncomfortable. But, I might do it.",
			"D": "Very comfortable. I would definitely do it.",
		},
	},
	{
		Text: "3. You have a lottery ticket with 25% chance of $100,000. You would sell it for no less than:",
		Options: map[string]string{
			"A": "$15,000", "B": "$20,000", "C": "$35,000", "D": "$60,000",
		},
	},
	{
		Text: "4. How often do you bet over $150 on gambling activities:",
		Options: map[string]string{
			"A": "Never", "B": "Few times", "C": "Once this year", "D": "Two or more times",
		},
	},
	{
		Text: "5. If a stock you bought doubled you would:",
		Options: map[string]string{
			"A": "Sell all", "B": "Sell half", "C": "Hold", "D": "Buy more",
		},
	},
	{
		Text: "6. Your CD is maturing and rates are down. You would most likely put that money in which of the following?:",
		Options: map[string]string{
			"A": "Savings bond", "B": "Short-term bond", "C": "Long-term bond", "D": "Stock fund",
		},
	},
	{
		Text: "7. When deciding where to invest a large sum of money you:",
		Options: map[string]string{
			"A": "Delay", "B": "Let others decide", "C": "Ask advisor", "D": "Decide myself",
		},
	},
	{
		Text: "8. How do you make investment decisions:",
		Options: map[string]string{
			"A": "Never alone", "B": "Sometimes alone", "C": "Often alone", "D": "Always alone",
		},
	},
	{
		Text: "9. How is your current luck in investing:",
		Options: map[string]string{
			"A": "Terrible", "B": "Average", "C": "Better than avg", "D": "Fantastic",
		},
	},
	{
		Text: "10. Why are your investments successful:",
		Options: map[string]string{
			"A": "Fate is on my side",
			"B": "I was in the right place at the right time",
			"C": "When opportunities come, I take advantage of them",
			"D": "I carefully planned them to work out that way.",
		},
	},
}

// Questionnaire returns the fixed risk questions in display order.
func Questionnaire() []Question {
	out := make([]Question, len(questionnaire))
	copy(out, questionnaire)
	return out
}

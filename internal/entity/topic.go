package entity

import "strings"

// Question is one card of a topic file. Alternatives are additional accepted
// spellings of Answer.
type Question struct {
	Question     string   `json:"question"`
	Answer       string   `json:"answer"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// Topic names a topic and the data file holding its questions.
type Topic struct {
	Name string `json:"name"`
	File string `json:"file"`
}

// TopicData is the content of a topic file.
type TopicData struct {
	Questions []Question `json:"questions"`
}

// TopicsConfig is the index of every topic available for study.
type TopicsConfig struct {
	Topics []Topic `json:"topics"`
}

// TopicSummary is what the home screen lists.
type TopicSummary struct {
	Topic
	QuestionCount int `json:"question_count"`
}

// Normalize trims fields and drops alternatives that are blank or repeat the answer.
func (q Question) Normalize() Question {
	out := Question{
		Question: strings.TrimSpace(q.Question),
		Answer:   strings.TrimSpace(q.Answer),
	}
	seen := map[string]struct{}{NormalizeTopicAnswer(out.Answer): {}}
	for _, alt := range q.Alternatives {
		alt = strings.TrimSpace(alt)
		key := NormalizeTopicAnswer(alt)
		if alt == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out.Alternatives = append(out.Alternatives, alt)
	}
	return out
}

// Valid reports whether both sides of the card are present.
func (q Question) Valid() bool {
	return q.Question != "" && q.Answer != ""
}

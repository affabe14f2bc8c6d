package question

import "time"

const OptionCount = 5

type Question struct {
	ID            string    `json:"id"`
	AuthorID      string    `json:"authorId"`
	AuthorName    string    `json:"authorName"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	Statement     string    `json:"statement"`
	Options       []string  `json:"options"`
	CorrectOption int       `json:"correctOption"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Author is who gets stamped on a new question. It comes from the session,
// never from the submitted form.
type Author struct {
	ID   string
	Name string
}

func (q Question) HasTag(tag string) bool {
	for _, t := range q.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

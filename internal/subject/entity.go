package subject

import "time"

type Subject struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Category is the view of a subject offered to the question form.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s Subject) Category() Category {
	return Category{ID: s.ID, Name: s.Name}
}

func DefaultSubjects(now time.Time) []Subject {
	now = now.UTC()
	return []Subject{
		{ID: "subj-1", Name: "Matemática", CreatedAt: now},
		{ID: "subj-2", Name: "Português", CreatedAt: now},
		{ID: "subj-3", Name: "História", CreatedAt: now},
		{ID: "subj-4", Name: "Geografia", CreatedAt: now},
	}
}

func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Matemática"},
		{ID: "2", Name: "Português"},
		{ID: "3", Name: "História"},
		{ID: "4", Name: "Geografia"},
		{ID: "5", Name: "Ciências"},
	}
}

func categoriesOf(subjects []Subject) []Category {
	out := make([]Category, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, s.Category())
	}
	return out
}

package question

import "time"

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func DefaultQuestions() []Question {
	return []Question{
		{
			ID:            "1",
			AuthorID:      "1",
			AuthorName:    "Prof. João Silva",
			Category:      "Matemática",
			Tags:          []string{"álgebra", "equações"},
			Statement:     "Qual o valor de x na equação: 2x + 5 = 15?",
			Options:       []string{"x = 3", "x = 5", "x = 7", "x = 10", "x = 15"},
			CorrectOption: 1,
			CreatedAt:     mustTime("2024-01-15T10:30:00Z"),
		},
		{
			ID:         "2",
			AuthorID:   "2",
			AuthorName: "Prof. Maria Santos",
			Category:   "Português",
			Tags:       []string{"gramática", "verbos"},
			Statement:  `Qual é o tempo verbal da frase: "Eu estudarei amanhã"?`,
			Options: []string{
				"Presente do indicativo",
				"Pretérito perfeito",
				"Futuro do presente",
				"Pretérito imperfeito",
				"Futuro do pretérito",
			},
			CorrectOption: 2,
			CreatedAt:     mustTime("2024-01-16T14:20:00Z"),
		},
		{
			ID:            "3",
			AuthorID:      "1",
			AuthorName:    "Prof. João Silva",
			Category:      "História",
			Tags:          []string{"brasil", "independência"},
			Statement:     "Em que ano ocorreu a Independência do Brasil?",
			Options:       []string{"1808", "1822", "1889", "1500", "1930"},
			CorrectOption: 1,
			CreatedAt:     mustTime("2024-01-17T09:15:00Z"),
		},
	}
}

package teacher

import "time"

type Teacher struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func DefaultTeachers(now time.Time) []Teacher {
	now = now.UTC()
	return []Teacher{
		{ID: "prof-1", Name: "Professor", Email: "professor@escola.com", CreatedAt: now},
		{ID: "prof-2", Name: "Maria Silva", Email: "maria.silva@escola.com", CreatedAt: now},
		{ID: "prof-3", Name: "João Santos", Email: "joao.santos@escola.com", CreatedAt: now},
	}
}

// Package bank prepares the store before the service starts answering
// requests.
package bank

import (
	"context"
	"fmt"
	"time"

	"github.com/saulo-duarte/banco-questoes/internal/config"
	"github.com/saulo-duarte/banco-questoes/internal/question"
	"github.com/saulo-duarte/banco-questoes/internal/subject"
	"github.com/saulo-duarte/banco-questoes/internal/teacher"
)

type Repositories struct {
	Questions question.QuestionRepository
	Subjects  subject.SubjectRepository
	Teachers  teacher.TeacherRepository
}

// Initialize seeds every absent collection. Keys already present are left
// alone, including empty collections. A corrupted key aborts startup.
func Initialize(ctx context.Context, repos Repositories, now time.Time) error {
	log := config.WithContext(ctx)

	seeded, err := repos.Questions.EnsureSeeded(ctx, question.DefaultQuestions())
	if err != nil {
		return fmt.Errorf("failed to initialize questions: %w", err)
	}
	if seeded {
		log.Info("Questões iniciais cadastradas")
	}

	if _, err := repos.Subjects.ResolveCategories(ctx, subject.DefaultCategories()); err != nil {
		return fmt.Errorf("failed to initialize categories: %w", err)
	}

	seeded, err = repos.Teachers.EnsureSeeded(ctx, teacher.DefaultTeachers(now))
	if err != nil {
		return fmt.Errorf("failed to initialize teachers: %w", err)
	}
	if seeded {
		log.Info("Professores iniciais cadastrados")
	}

	seeded, err = repos.Subjects.EnsureSubjects(ctx, subject.DefaultSubjects(now))
	if err != nil {
		return fmt.Errorf("failed to initialize subjects: %w", err)
	}
	if seeded {
		log.Info("Disciplinas iniciais cadastradas")
	}
	return nil
}

package container

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/saulo-duarte/banco-questoes/internal/auth"
	"github.com/saulo-duarte/banco-questoes/internal/bank"
	"github.com/saulo-duarte/banco-questoes/internal/config"
	"github.com/saulo-duarte/banco-questoes/internal/editor"
	"github.com/saulo-duarte/banco-questoes/internal/question"
	"github.com/saulo-duarte/banco-questoes/internal/router"
	"github.com/saulo-duarte/banco-questoes/internal/store"
	"github.com/saulo-duarte/banco-questoes/internal/subject"
	"github.com/saulo-duarte/banco-questoes/internal/teacher"
	"github.com/saulo-duarte/banco-questoes/internal/user"
)

type Container struct {
	Settings          config.Settings
	Store             store.Store
	UserContainer     *user.UserContainer
	QuestionContainer *question.QuestionContainer
	SubjectContainer  *subject.SubjectContainer
	TeacherContainer  *teacher.TeacherContainer
	EditorHandler     *editor.Handler
}

// New reads the environment, opens the store and initializes the bank. Any
// failure here is fatal for the process.
func New(ctx context.Context) *Container {
	config.LoadEnv()
	config.Init()
	auth.Init()
	config.InitCrypto()

	settings := config.Load()
	s, err := store.Open(ctx, settings)
	if err != nil {
		config.Logger.Fatalf("failed to open store: %v", err)
	}

	c, err := Build(ctx, settings, s)
	if err != nil {
		config.Logger.Fatalf("failed to initialize bank: %v", err)
	}
	return c
}

// Build wires every feature over s and seeds absent collections.
func Build(ctx context.Context, settings config.Settings, s store.Store) (*Container, error) {
	c := &Container{
		Settings:          settings,
		Store:             s,
		UserContainer:     user.NewUserContainer(s, settings),
		QuestionContainer: question.NewQuestionContainer(s),
		SubjectContainer:  subject.NewSubjectContainer(s),
		TeacherContainer:  teacher.NewTeacherContainer(s),
		EditorHandler:     editor.NewHandler(),
	}

	err := bank.Initialize(ctx, bank.Repositories{
		Questions: c.QuestionContainer.Repo,
		Subjects:  c.SubjectContainer.Repo,
		Teachers:  c.TeacherContainer.Repo,
	}, time.Now())
	if err != nil {
		return nil, fmt.Errorf("bank initialization: %w", err)
	}
	return c, nil
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		CorsOrigin:      c.Settings.CorsOrigin,
		UserHandler:     c.UserContainer.Handler,
		QuestionHandler: c.QuestionContainer.Handler,
		SubjectHandler:  c.SubjectContainer.Handler,
		TeacherHandler:  c.TeacherContainer.Handler,
		EditorHandler:   c.EditorHandler,
	})
}

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/banco-questoes/docs"
	"github.com/saulo-duarte/banco-questoes/internal/auth"
	"github.com/saulo-duarte/banco-questoes/internal/config"
	"github.com/saulo-duarte/banco-questoes/internal/editor"
	"github.com/saulo-duarte/banco-questoes/internal/middlewares"
	"github.com/saulo-duarte/banco-questoes/internal/question"
	"github.com/saulo-duarte/banco-questoes/internal/subject"
	"github.com/saulo-duarte/banco-questoes/internal/teacher"
	"github.com/saulo-duarte/banco-questoes/internal/user"
)

type RouterConfig struct {
	CorsOrigin      string
	UserHandler     *user.Handler
	QuestionHandler *question.Handler
	SubjectHandler  *subject.Handler
	TeacherHandler  *teacher.Handler
	EditorHandler   *editor.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(config.NewRequestLogFormatter(config.Logger)))
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.CorsOrigin))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Mount("/auth", user.Routes(cfg.UserHandler))

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/questions", question.Routes(cfg.QuestionHandler))
		r.Mount("/categories", subject.CategoryRoutes(cfg.SubjectHandler))
		r.Mount("/editor", editor.Routes(cfg.EditorHandler))

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireRole(user.RoleCoordinator))

			r.Mount("/subjects", subject.AdminRoutes(cfg.SubjectHandler))
			r.Mount("/teachers", teacher.Routes(cfg.TeacherHandler))
		})
	})
	return r
}

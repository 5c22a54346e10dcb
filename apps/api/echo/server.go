package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"escolaadmin/core"
	"escolaadmin/core/admin"
	"escolaadmin/core/billing"
	"escolaadmin/core/language"
	"escolaadmin/core/ledger"
	"escolaadmin/core/lesson"
	"escolaadmin/core/schedule"
	"escolaadmin/core/student"
	"escolaadmin/core/teacher"
	"escolaadmin/core/todo"
)

type (
	ServerDeps struct {
		Conf       *core.Config
		Logger     core.Logger
		Store      sessions.Store
		Validate   *validator.Validate
		Translator ut.Translator

		AdminSvc    *admin.Service
		LessonSvc   *lesson.Service
		TeacherSvc  *teacher.Service
		StudentSvc  *student.Service
		LanguageSvc *language.Service
		BillingSvc  *billing.Service
		LedgerSvc   *ledger.Service
		TodoSvc     *todo.Service
		Mutator     *schedule.Mutator
		Rosters     schedule.RosterFetcher
	}

	Server struct {
		deps     ServerDeps
		app      *echo.Echo
		errs     chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		errs:     make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.SignalShutdown)
	s.app.Debug = conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	auth := sessionAuthMiddleware(s.deps.Store)

	registerAuthAPI(v1, auth, s.deps)
	registerScheduleAPI(v1, auth, s.deps)
	registerLessonAPI(v1, auth, s.deps)
	registerTeacherAPI(v1, auth, s.deps)
	registerStudentAPI(v1, auth, s.deps)
	registerLanguageAPI(v1, auth, s.deps)
	registerBillingAPI(v1, auth, s.deps)
	registerLedgerAPI(v1, auth, s.deps)
	registerTodoAPI(v1, auth, s.deps)
}

func (s *Server) Start() {
	if err := s.app.Start(s.deps.Conf.Server.Addr); err != nil && err != http.ErrServerClosed {
		s.errs <- err
	}
}

func (s *Server) Errors() <-chan error {
	return s.errs
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

// SignalShutdown requests a graceful stop, as if SIGTERM had been received.
func (s *Server) SignalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Escola Admin API!")
}

package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	echoapi "escolaadmin/apps/api/echo"
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
	logsvc "escolaadmin/services/logger"
	"escolaadmin/services/schoolapi"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up the school API client and services
	client, err := schoolapi.NewClient(conf, logger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up school api client: %v", err), err)
	}

	adminSvc := admin.NewService(client)
	lessonSvc := lesson.NewService(client, logger)
	teacherSvc := teacher.NewService(client)
	studentSvc := student.NewService(client)
	languageSvc := language.NewService(client)
	billingSvc := billing.NewService(client, logger)
	ledgerSvc := ledger.NewService(client)
	todoSvc := todo.NewService(client)
	mutator := schedule.NewMutator(client, conf.Schedule.BulkInterval, logger)

	// set up the cookie session store
	store := newSessionStore(conf)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	admin.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			Store:      store,
			Validate:   validate,
			Translator: translator,

			AdminSvc:    adminSvc,
			LessonSvc:   lessonSvc,
			TeacherSvc:  teacherSvc,
			StudentSvc:  studentSvc,
			LanguageSvc: languageSvc,
			BillingSvc:  billingSvc,
			LedgerSvc:   ledgerSvc,
			TodoSvc:     todoSvc,
			Mutator:     mutator,
			Rosters:     client,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

// newSessionStore builds the cookie store holding the upstream bearer token.
// Without a configured secret the keys are random and sessions die with the
// process.
func newSessionStore(conf *core.Config) sessions.Store {
	key := []byte(conf.SecretKey)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
	}
	store := sessions.NewCookieStore(key)
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	store.Options.Secure = !conf.Debug
	return store
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

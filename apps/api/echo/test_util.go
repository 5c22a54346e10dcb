package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"

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
	"escolaadmin/services/schoolapi"
)

const (
	testToken    = "test-token"
	testAdmin    = "admin"
	testPassword = "pass"
)

type testLogger struct{}

func (testLogger) Enable(bool)                  {}
func (testLogger) Debug(string, ...interface{}) {}
func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}
func (testLogger) Fatal(string, ...interface{}) {}

// fakeSchool stands in for the upstream school API, covering the routes the
// tests exercise.
type fakeSchool struct {
	mu      sync.Mutex
	lessons []lesson.Lesson
	deleted []int
	updated map[int]json.RawMessage
}

func (f *fakeSchool) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := strings.TrimSuffix(r.URL.Path, "/")
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodPost && path == "/auth/login":
		var creds struct {
			Name     string `json:"nome"`
			Password string `json:"senha"`
		}
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Name != testAdmin || creds.Password != testPassword {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "incorrect credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": testToken, "token_type": "bearer"})

	case r.Method == http.MethodPost && path == "/administradores":
		var na struct {
			Name string `json:"nome"`
		}
		_ = json.NewDecoder(r.Body).Decode(&na)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": 2, "nome": na.Name})

	case path == "/administradores/atual":
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "not authenticated"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": 1, "nome": testAdmin})

	case r.Method == http.MethodGet && path == "/aulas":
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"items": f.lessons, "total": len(f.lessons), "skip": 0, "limit": 100,
		})

	case r.Method == http.MethodDelete && strings.HasPrefix(path, "/aulas/"):
		id, _ := strconv.Atoi(strings.TrimPrefix(path, "/aulas/"))
		f.deleted = append(f.deleted, id)
		kept := f.lessons[:0:0]
		for _, l := range f.lessons {
			if l.ID != id {
				kept = append(kept, l)
			}
		}
		f.lessons = kept
		w.WriteHeader(http.StatusNoContent)

	case r.Method == http.MethodPut && strings.HasPrefix(path, "/aulas/"):
		id, _ := strconv.Atoi(strings.TrimPrefix(path, "/aulas/"))
		var wl lesson.WriteLesson
		_ = json.NewDecoder(r.Body).Decode(&wl)
		data, _ := json.Marshal(wl)
		if f.updated == nil {
			f.updated = make(map[int]json.RawMessage)
		}
		f.updated[id] = data
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": id, "professor_id": wl.TeacherID})

	default:
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Not Found"})
	}
}

func newTestServer(t *testing.T, school *fakeSchool) *Server {
	upstream := httptest.NewServer(school)
	t.Cleanup(upstream.Close)

	conf := &core.Config{
		Env:       "TEST",
		TestMode:  true,
		SecretKey: "test-secret",
		API:       core.APIConfig{BaseURL: upstream.URL},
	}

	logger := testLogger{}
	client, err := schoolapi.NewClient(conf, logger)
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}

	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(validate, translator)
	admin.InitValidators(validate, translator)

	return NewServer(ServerDeps{
		Conf:       conf,
		Logger:     logger,
		Store:      sessions.NewCookieStore([]byte(conf.SecretKey)),
		Validate:   validate,
		Translator: translator,

		AdminSvc:    admin.NewService(client),
		LessonSvc:   lesson.NewService(client, logger),
		TeacherSvc:  teacher.NewService(client),
		StudentSvc:  student.NewService(client),
		LanguageSvc: language.NewService(client),
		BillingSvc:  billing.NewService(client, logger),
		LedgerSvc:   ledger.NewService(client),
		TodoSvc:     todo.NewService(client),
		Mutator:     schedule.NewMutator(client, 0, logger),
		Rosters:     client,
	})
}

func login(t *testing.T, srv *Server) []*http.Cookie {
	req, rec := newRequest(http.MethodPost, "/v1/auth/login", []byte(`{"nome": "admin", "senha": "pass"}`))
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	return rec.Result().Cookies()
}

func newAuthRequest(method, path string, cookies []*http.Cookie, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, nil, data...)
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

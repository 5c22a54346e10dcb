package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"escolaadmin/core"
	"escolaadmin/core/admin"
	logsvc "escolaadmin/services/logger"
	"escolaadmin/services/schoolapi"
)

func setup(t *testing.T) *commandLine {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/administradores/":
			var na struct {
				Name string `json:"nome"`
			}
			_ = json.NewDecoder(r.Body).Decode(&na)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": 2, "nome": na.Name})
		case "/auth/login":
			_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok", "token_type": "bearer"})
		case "/administradores/atual":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": 1, "nome": "chief"})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(upstream.Close)

	conf := &core.Config{API: core.APIConfig{BaseURL: upstream.URL}}
	logger = log.New(io.Discard, "", 0)
	client, err := schoolapi.NewClient(conf, logsvc.NewRollbarLogger(logger, conf))
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}
	return &commandLine{svc: admin.NewService(client)}
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
}

func Test_commandLine_run(t *testing.T) {
	cli := setup(t)

	readPasswordFunc = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	defer func() { readPasswordFunc = nil }()

	tests := []cliTest{
		{name: "no subcommand", args: []string{}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"lol"}, wantErr: errHelp},
		{name: "addadmin: no name", args: []string{"addadmin"}, wantErr: errHelp},
		{name: "addadmin", args: []string{"addadmin", "-name", "maria"}},
		{name: "ping: no name", args: []string{"ping"}, wantErr: errHelp},
		{name: "ping", args: []string{"ping", "-name", "chief"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(append([]string{"admin"}, tt.args...))
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("run() error = %v; want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("run() unexpected error: %v", err)
			}
		})
	}
}

func Test_commandLine_emptyPassword(t *testing.T) {
	cli := setup(t)

	readPasswordFunc = func(fd int) ([]byte, error) { return nil, nil }
	defer func() { readPasswordFunc = nil }()

	if err := cli.run([]string{"admin", "addadmin", "-name", "maria"}); err != errHelp {
		t.Errorf("run() error = %v; want %v", err, errHelp)
	}
}

package main

import (
	"log"
	"os"

	"escolaadmin/core"
	"escolaadmin/core/admin"
	logsvc "escolaadmin/services/logger"
	"escolaadmin/services/schoolapi"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	rollbar := logsvc.NewRollbarLogger(logger, conf)
	rollbar.Enable(false) // operator CLI; stdout only

	client, err := schoolapi.NewClient(conf, rollbar)
	errAndDie(err)

	// start CLI
	cli := commandLine{
		svc: admin.NewService(client),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}

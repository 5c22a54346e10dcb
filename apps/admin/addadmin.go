package main

import (
	"context"
	"fmt"

	"escolaadmin/core/admin"
	"escolaadmin/services/schoolapi"
)

func (cli *commandLine) addAdmin(name, password string) error {
	adm, err := cli.svc.Create(context.Background(), admin.NewAdmin{Name: name, Password: password})
	if err != nil {
		return err
	}
	fmt.Printf("administrator %q created (id %d)\n", adm.Name, adm.ID)
	return nil
}

func (cli *commandLine) ping(name, password string) error {
	ctx := context.Background()
	token, err := cli.svc.Login(ctx, admin.Credentials{Name: name, Password: password})
	if err != nil {
		return err
	}
	adm, err := cli.svc.Current(schoolapi.WithToken(ctx, token.AccessToken))
	if err != nil {
		return err
	}
	fmt.Printf("authenticated as %q (id %d)\n", adm.Name, adm.ID)
	return nil
}

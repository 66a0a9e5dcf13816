package cli

import (
	"context"
	"fmt"
	"os"
)

// Lookup asks the server for a generated message for a name and prints it.
func (a *App) Lookup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter a name", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.api.LookupMessage(ctx, name)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println()
	fmt.Println(res.Message)
	return nil
}

// Exists reports whether a name belongs to a known person.
func (a *App) Exists(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter a name", os.Stdout)
	if err != nil {
		return err
	}

	exists, err := a.api.CheckNameExists(ctx, name)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if exists {
		fmt.Printf("%s is a known person.\n", name)
	} else {
		fmt.Printf("%s is not known.\n", name)
	}
	return nil
}

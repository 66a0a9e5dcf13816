package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/avdeluna/whispernote/internal/client/client"
	"github.com/avdeluna/whispernote/internal/common"
)

// Sweep triggers the server-side cleanup of expired messages. The shared
// sweep secret is read without echo, like a password.
func (a *App) Sweep(ctx context.Context) error {
	secret, err := getSecret(os.Stdout, "Enter sweep secret: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(secret)

	n, err := a.api.Sweep(ctx, string(secret))
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			fmt.Println("Wrong sweep secret.")
			return err
		}
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Deleted %d expired message(s).\n", n)
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"
)

// Forget removes a cached unlocked plaintext, so the next open of that
// message requires the passphrase again.
func (a *App) Forget(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter message id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.unlocks.DeleteByMessageID(ctx, id); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("Forgotten.")
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/avdeluna/whispernote/internal/client/client"
	"github.com/avdeluna/whispernote/internal/client/models"
	"github.com/avdeluna/whispernote/internal/common"
)

// Open fetches a message by id and displays it.
//
// For a locked message the local unlock cache is consulted first: a cached
// unlock token is sent with the read so the server returns plaintext without
// a new passphrase round. When the message is still locked, the user is
// prompted for the passphrase and, on success, the plaintext and unlock
// token are cached for subsequent opens.
func (a *App) Open(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter message id", os.Stdout)
	if err != nil {
		return err
	}

	token := ""
	if cached, err := a.unlocks.GetByMessageID(ctx, id); err == nil {
		token = cached.UnlockToken
	}

	view, err := a.api.GetMessage(ctx, id, token)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			fmt.Println("Message not found or expired.")
			// the cached plaintext is useless once the message is gone
			_ = a.unlocks.DeleteByMessageID(ctx, id)
			return nil
		}
		fmt.Println(err.Error())
		return err
	}

	if !view.Locked {
		a.printMessage(view, view.Message)
		return nil
	}

	passphrase, err := getSecret(os.Stdout, "Message is locked. Enter passphrase: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	res, err := a.api.VerifyMessage(ctx, id, string(passphrase))
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if !res.Success {
		fmt.Println("Wrong passphrase.")
		return nil
	}

	if err := a.unlocks.Save(ctx, &models.UnlockedMessage{
		MessageID:   id,
		Message:     res.Message,
		UnlockToken: res.UnlockToken,
		UnlockedAt:  time.Now(),
	}); err != nil {
		// cache failures only cost a re-prompt next time
		fmt.Println("warning: could not cache unlocked message:", err.Error())
	}

	a.printMessage(view, res.Message)
	return nil
}

// printMessage renders a message the way a valentine card reads: salutation,
// body, closing, sender. The [Name] placeholder in the salutation is
// replaced with the recipient name.
func (a *App) printMessage(view *models.MessageView, body string) {
	salutation := strings.ReplaceAll(view.Salutation, "[Name]", view.RecipientName)

	fmt.Println()
	fmt.Println(salutation)
	fmt.Println()
	fmt.Println(body)
	fmt.Println()
	fmt.Println(view.Closing)
	fmt.Println(view.SenderName)
}

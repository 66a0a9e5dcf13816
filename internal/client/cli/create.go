package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/avdeluna/whispernote/internal/client/client"
	"github.com/avdeluna/whispernote/internal/client/models"
	"github.com/avdeluna/whispernote/internal/common"
)

// getSimpleText, getSecret and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getSecret = GetSecret
var getMultiline = GetMultiline

// Create walks the user through composing a new message and submits it.
//
// Salutation, closing and passphrase are optional; an empty salutation or
// closing gets the server-side default, an empty passphrase leaves the
// message unprotected. On success the assigned message id is printed so it
// can be shared with the recipient.
func (a *App) Create(ctx context.Context) error {
	sender, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}

	recipient, err := getSimpleText(a.reader, "Enter recipient name", os.Stdout)
	if err != nil {
		return err
	}

	salutation, err := getSimpleText(a.reader, "Enter salutation (empty for default)", os.Stdout)
	if err != nil {
		return err
	}

	message, err := getMultiline(a.reader, "Enter message text", os.Stdout)
	if err != nil {
		return err
	}

	closing, err := getSimpleText(a.reader, "Enter closing (empty for default)", os.Stdout)
	if err != nil {
		return err
	}

	passphrase, err := getSecret(os.Stdout, "Enter passphrase (empty to leave unprotected): ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	draft := &models.MessageDraft{
		SenderName:    sender,
		RecipientName: recipient,
		Salutation:    salutation,
		Message:       message,
		Closing:       closing,
		Passphrase:    string(passphrase),
	}

	id, err := a.api.CreateMessage(ctx, draft)
	if err != nil {
		if errors.Is(err, client.ErrRejected) {
			fmt.Println("The message was rejected, please rephrase it.")
			return err
		}
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("Message created. Share this id with the recipient:")
	fmt.Println(id)
	fmt.Println("It expires in 24 hours.")
	return nil
}

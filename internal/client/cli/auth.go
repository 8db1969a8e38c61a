package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/arshopsy/arshopsy/internal/client/session"
	"github.com/arshopsy/arshopsy/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a display name, email, password and password
// confirmation and creates an account via the storefront API. Missing fields
// and a confirmation mismatch are rejected locally, before any network call.
//
// On success it prints "Success! You can sign in now." and returns nil. The
// password byte slices are securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if name == "" || email == "" || len(password) == 0 {
		fmt.Println("Please fill in all the required fields.")
		return nil
	}
	if !bytes.Equal(password, confirm) {
		fmt.Println("Passwords do not match.")
		return nil
	}

	if _, err := a.api.Register(ctx, name, email, password); err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			log.Printf("That email is already registered")
			return err
		}
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success! You can sign in now.")
	return nil
}

// Login prompts for credentials, authenticates against the API and persists
// the session locally so it survives restarts.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.api.Login(ctx, email, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	rec := session.Record{UserID: user.ID, Name: user.Name, Email: user.Email, Token: a.api.Token()}
	if err := a.session.Start(ctx, rec); err != nil {
		log.Printf("Could not save session: %s", err.Error())
	}

	a.userName = user.Name
	a.userEmail = user.Email
	log.Printf("Signed in as %s", user.Email)
	return nil
}

// Logout ends the persisted session and clears the in-memory identity and
// API token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.End(ctx); err != nil {
		return err
	}
	a.api.SetToken("")
	a.userName = ""
	a.userEmail = ""
	fmt.Println("Signed out.")
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and runs the login state machine. On
// success it prints the account's public fields, including the expiry date
// read back from the store.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	info, err := a.engine.Login(ctx, username, password)
	if err != nil {
		fmt.Printf("Login failed: %v\n", err)
		return err
	}

	fmt.Println("Login successful!")
	fmt.Printf("Username: %s\n", info.Username)
	if info.Subscription != "" {
		fmt.Printf("Subscription: %s\n", info.Subscription)
	}
	if expiryDate, err := a.engine.ExpiryDate(ctx); err == nil {
		fmt.Printf("Expiry date: %s\n", expiryDate)
	}
	return nil
}

// Register prompts for a username, password, and license key, and redeems
// the key into a new account.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	licenseKey, err := getSimpleText(a.reader, "License key", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.engine.Register(ctx, username, password, licenseKey); err != nil {
		fmt.Printf("Registration failed: %v\n", err)
		return err
	}

	fmt.Println("Registration successful!")
	return nil
}

// Logout drops the current session identity.
func (a *App) Logout(ctx context.Context) error {
	a.engine.Logout()
	fmt.Println("Logged out")
	return nil
}

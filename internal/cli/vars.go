package cli

import (
	"context"
	"fmt"
)

// ShowVariable fetches one application variable (cache first, then store).
func (a *App) ShowVariable(ctx context.Context, name string) error {
	v, err := a.engine.GetVariable(ctx, name)
	if err != nil {
		fmt.Printf("Variable lookup failed: %v\n", err)
		return err
	}
	fmt.Printf("%s = %s\n", name, v)
	return nil
}

// RefreshVariables re-fetches all application variables, replacing the cache.
func (a *App) RefreshVariables(ctx context.Context) error {
	n, err := a.engine.RefreshVariables(ctx)
	if err != nil {
		fmt.Printf("Refresh failed: %v\n", err)
		return err
	}
	fmt.Printf("Refreshed %d variables\n", n)
	return nil
}

// WhoAmI prints the current session identity.
func (a *App) WhoAmI(ctx context.Context) error {
	s, ok := a.engine.Session()
	if !ok {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("Username: %s\nApplication: %s\n", s.Username, s.AppName)
	return nil
}

// ShowExpiry prints the authenticated user's expiry date.
func (a *App) ShowExpiry(ctx context.Context) error {
	expiryDate, err := a.engine.ExpiryDate(ctx)
	if err != nil {
		fmt.Printf("Expiry lookup failed: %v\n", err)
		return err
	}
	fmt.Printf("Expiry date: %s\n", expiryDate)
	return nil
}

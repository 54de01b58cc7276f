package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s, ok := a.engine.Session()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s)", s.Username)
}

// Root runs the interactive loop. It exits on scanner EOF or when the user
// types "exit" or "quit". Command handlers report their own errors; the
// loop stays resilient and focused on I/O.
func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to TenzoAuth (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("tenzo %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.engine.IsLoggedIn() {
				fmt.Println("Available commands: whoami, expiry, var <name>, refresh, logout, exit")
			} else {
				fmt.Println("Available commands: login, register, var <name>, refresh, exit")
			}

		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "expiry":
			_ = a.ShowExpiry(ctx)
		case "var":
			if len(args) == 0 {
				fmt.Println("Usage: var <name>")
				continue
			}
			_ = a.ShowVariable(ctx, args[0])
		case "refresh":
			_ = a.RefreshVariables(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

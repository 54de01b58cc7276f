// Package auth is the client-side licensing engine: it gates the running
// application on its deployed version and pause flag, authenticates users
// against remotely stored credentials, redeems single-use license keys into
// new accounts, and caches application-scoped variables.
//
// The remote store offers no transactions, so every business-critical
// invariant (one redemption per license, one hardware binding per account,
// fail-safe expiry) is enforced here through strict read-check-write
// sequencing and, on the one partial-failure path (license update after user
// creation), an explicit compensating delete.
//
// Typical flow:
//
//	engine := auth.New(cfg, store, hwid.NewSystemProvider(), log)
//	if err := engine.CheckVersion(ctx); err != nil { ... }   // gate first
//	info, err := engine.Login(ctx, username, password)       // or Register
//	v, err := engine.GetVariable(ctx, "motd")
//
// Every public operation is safe to call from any goroutine; the engine's
// session identity and variable cache are guarded by a single mutex. No
// operation retries or spawns background work.
package auth

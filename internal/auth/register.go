package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tenzodev/tenzoauth/internal/expiry"
)

// Register redeems a license key to provision a new account. The backend
// offers no transactions, so consistency is enforced by strict sequencing:
// every check runs against a fresh read, the user document is written before
// the license is marked used, and a failed license update compensates by
// deleting the just-created user. Two racing registrations for the same key
// can still both pass the "not used" check; that is an accepted limitation
// of the store, not something this engine can close.
//
// The new account is hwid-locked and bound to this machine immediately: the
// registering device is definitionally the first device.
func (e *Engine) Register(ctx context.Context, username, password, licenseKey string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	licenseKey = strings.TrimSpace(licenseKey)

	if username == "" || password == "" || licenseKey == "" {
		return ErrMissingCredentials
	}

	if err := e.CheckVersion(ctx); err != nil {
		return err
	}

	lowered := strings.ToLower(username)
	userPath := e.userPath(lowered)

	// Existence, not content, decides the username conflict.
	existing, err := e.store.Get(ctx, userPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	if existing != nil {
		return fmt.Errorf("%w: %s", ErrUsernameExists, lowered)
	}

	licPath := e.licensePath(licenseKey)

	body, err := e.store.Get(ctx, licPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	if body == nil {
		return fmt.Errorf("%w: %s", ErrInvalidLicense, licenseKey)
	}

	var lic LicenseRecord
	if err := json.Unmarshal(body, &lic); err != nil {
		return fmt.Errorf("%w: license %s: %v", ErrParse, licenseKey, err)
	}
	lic.normalize()

	if lic.Used {
		return fmt.Errorf("%w: %s", ErrLicenseUsed, licenseKey)
	}

	expired, perr := expiry.IsExpired(lic.Expiry, e.now())
	if expired {
		if perr != nil {
			e.log.Warn(ctx, "unparsable expiry on license, denying",
				"license", licenseKey, "expiry", lic.Expiry)
		}
		return fmt.Errorf("%w: %s", ErrLicenseExpired, licenseKey)
	}

	user := UserRecord{
		Password:  password,
		Expiry:    lic.Expiry,
		HwidLock:  true,
		BoundHwid: e.hwid,
		Banned:    false,
		OneTime:   lic.OneTime,
		CreatedAt: expiry.Format(e.now()),
	}

	if err := e.store.Put(ctx, userPath, user); err != nil {
		// Nothing else was written yet; no compensation needed.
		return fmt.Errorf("%w: %w", ErrFailedCreateUser, err)
	}

	update := LicenseRecord{
		Used:           true,
		AssociatedUser: lowered,
		Expiry:         lic.Expiry,
		DisplayName:    lic.DisplayName,
	}

	if err := e.store.Put(ctx, licPath, update); err != nil {
		// Compensate: without this delete, an unredeemed license would have
		// spawned a live, unlinked account. A failed compensation leaves an
		// orphaned user document; the primary error still surfaces.
		if derr := e.store.Delete(ctx, userPath); derr != nil {
			e.log.Warn(ctx, "compensating user delete failed, orphaned account remains",
				"user", lowered, "err", derr)
		}
		return fmt.Errorf("%w: %s: %w", ErrFailedUpdateLicense, licenseKey, err)
	}

	if lic.OneTime {
		if err := e.store.Delete(ctx, licPath); err != nil {
			e.log.Warn(ctx, "one-time license delete failed", "license", licenseKey, "err", err)
		}
	}

	e.setSession(username)
	return nil
}

package auth

import (
	"github.com/tenzodev/tenzoauth/internal/expiry"
)

// Records mirror the wire shape of the remote documents. Every optional
// field keeps its zero value when absent; the only normalisation applied is
// a missing expiry, which means "lifetime".

// ApplicationRecord identifies one deployed application under one secret
// namespace. Read-only to this engine.
type ApplicationRecord struct {
	Version string `json:"version"`
	Paused  bool   `json:"applicationPaused"`
}

// UserRecord is one account. The identity key is the lowercased username
// within the application namespace; it is carried in the document path, not
// in the document itself. The bound hardware id lives in the legacy "sid"
// field.
type UserRecord struct {
	Password     string `json:"password"`
	Expiry       string `json:"expiry"`
	HwidLock     bool   `json:"hwidLock"`
	BoundHwid    string `json:"sid"`
	Banned       bool   `json:"isBanned"`
	Subscription string `json:"subscription,omitempty"`
	OneTime      bool   `json:"oneTime,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

func (u *UserRecord) normalize() {
	if u.Expiry == "" {
		u.Expiry = expiry.Lifetime
	}
}

// LicenseRecord is one redeemable key. Invariant: used=true means exactly
// one associated user, and the license must never be redeemable again.
type LicenseRecord struct {
	Used           bool   `json:"used"`
	AssociatedUser string `json:"associatedUser,omitempty"`
	Expiry         string `json:"expiry"`
	OneTime        bool   `json:"oneTime,omitempty"`
	DisplayName    string `json:"displayName,omitempty"`
}

func (l *LicenseRecord) normalize() {
	if l.Expiry == "" {
		l.Expiry = expiry.Lifetime
	}
}

// Session identifies the authenticated user of this engine instance. Absence
// (nil) means "not authenticated".
type Session struct {
	Username string
	AppName  string
	Secret   string
}

// UserInfo is the public view of an account returned on successful login.
type UserInfo struct {
	Username     string
	Subscription string
	Expiry       string
}

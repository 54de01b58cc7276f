package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/tenzodev/tenzoauth/internal/auth"
)

func stubInputs(t *testing.T, lines []string, password string) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeEngine struct {
	// Login
	loginUser string
	loginPass string
	loginInfo *auth.UserInfo
	loginErr  error

	// Register
	regUser    string
	regPass    string
	regLicense string
	regErr     error

	// Variables
	varName    string
	varValue   string
	varErr     error
	refreshN   int
	refreshErr error

	// Session
	session      auth.Session
	hasSession   bool
	logoutCalled bool

	checkErr  error
	expiry    string
	expiryErr error
}

func (f *fakeEngine) CheckVersion(context.Context) error { return f.checkErr }

func (f *fakeEngine) Login(_ context.Context, username, password string) (*auth.UserInfo, error) {
	f.loginUser, f.loginPass = username, password
	return f.loginInfo, f.loginErr
}

func (f *fakeEngine) Register(_ context.Context, username, password, licenseKey string) error {
	f.regUser, f.regPass, f.regLicense = username, password, licenseKey
	return f.regErr
}

func (f *fakeEngine) GetVariable(_ context.Context, name string) (string, error) {
	f.varName = name
	return f.varValue, f.varErr
}

func (f *fakeEngine) RefreshVariables(context.Context) (int, error) {
	return f.refreshN, f.refreshErr
}

func (f *fakeEngine) ExpiryDate(context.Context) (string, error) { return f.expiry, f.expiryErr }

func (f *fakeEngine) Session() (auth.Session, bool) { return f.session, f.hasSession }
func (f *fakeEngine) IsLoggedIn() bool              { return f.hasSession }
func (f *fakeEngine) Logout()                       { f.logoutCalled = true }

func TestLogin_PassesCredentials(t *testing.T) {
	f := &fakeEngine{
		loginInfo: &auth.UserInfo{Username: "alice", Expiry: "lifetime"},
		expiry:    "lifetime",
	}
	a := &App{engine: f}

	restore := stubInputs(t, []string{"alice"}, "secret")
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginUser != "alice" {
		t.Fatalf("Login user mismatch: %q", f.loginUser)
	}
	if f.loginPass != "secret" {
		t.Fatalf("Login pass mismatch: %q", f.loginPass)
	}
}

func TestLogin_ErrorPropagates(t *testing.T) {
	f := &fakeEngine{loginErr: auth.ErrInvalidPassword}
	a := &App{engine: f}

	restore := stubInputs(t, []string{"alice"}, "wrong")
	defer restore()

	if err := a.Login(context.Background()); !errors.Is(err, auth.ErrInvalidPassword) {
		t.Fatalf("want ErrInvalidPassword, got %v", err)
	}
}

func TestRegister_PassesAllFields(t *testing.T) {
	f := &fakeEngine{}
	a := &App{engine: f}

	restore := stubInputs(t, []string{"bob", "KEY1"}, "pw")
	defer restore()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regUser != "bob" || f.regPass != "pw" || f.regLicense != "KEY1" {
		t.Fatalf("Register fields mismatch: %q %q %q", f.regUser, f.regPass, f.regLicense)
	}
}

func TestRegister_ErrorPropagates(t *testing.T) {
	f := &fakeEngine{regErr: auth.ErrLicenseUsed}
	a := &App{engine: f}

	restore := stubInputs(t, []string{"bob", "KEY1"}, "pw")
	defer restore()

	if err := a.Register(context.Background()); !errors.Is(err, auth.ErrLicenseUsed) {
		t.Fatalf("want ErrLicenseUsed, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	f := &fakeEngine{hasSession: true, session: auth.Session{Username: "alice"}}
	a := &App{engine: f}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatalf("engine.Logout not called")
	}
}

func TestShowVariable(t *testing.T) {
	f := &fakeEngine{varValue: "hello"}
	a := &App{engine: f}

	if err := a.ShowVariable(context.Background(), "motd"); err != nil {
		t.Fatalf("ShowVariable err: %v", err)
	}
	if f.varName != "motd" {
		t.Fatalf("variable name mismatch: %q", f.varName)
	}
}

func TestRun_GateFailureReturned(t *testing.T) {
	f := &fakeEngine{checkErr: auth.ErrAppPaused}
	a := &App{engine: f}

	if err := a.Run(context.Background()); !errors.Is(err, auth.ErrAppPaused) {
		t.Fatalf("want ErrAppPaused, got %v", err)
	}
}

package pages

import (
	"strings"

	"github.com/papertrade/tradesim-e2e/internal/domain"
)

// Login is the page object for the login screen.
type Login struct {
	b   *Base
	url string
	loc LoginLocators
}

// NewLogin builds the login page object around a shared base.
func NewLogin(b *Base) *Login {
	return &Login{b: b, url: b.cfg.LoginURL(), loc: b.locs.Login}
}

// Navigate opens the login page and waits for the URL to settle on /login.
func (p *Login) Navigate() error {
	if err := p.b.Goto(p.url); err != nil {
		return err
	}
	return p.b.WaitForURL("/login")
}

// IsLoaded reports whether the login form is fully rendered.
func (p *Login) IsLoaded() (bool, error) {
	for _, sel := range []string{p.loc.EmailInput, p.loc.PasswordInput, p.loc.SubmitButton} {
		visible, err := p.b.IsVisible(sel)
		if err != nil || !visible {
			return false, err
		}
	}
	return true, nil
}

// FillEmail fills the email input.
func (p *Login) FillEmail(email string) error {
	return p.b.Fill(p.loc.EmailInput, email)
}

// FillPassword fills the password input.
func (p *Login) FillPassword(password string) error {
	return p.b.Fill(p.loc.PasswordInput, password)
}

// ClickSubmit submits the login form.
func (p *Login) ClickSubmit() error {
	return p.b.Click(p.loc.SubmitButton)
}

// Login signs in as user and optionally waits for the dashboard redirect.
func (p *Login) Login(user domain.User, waitForRedirect bool) error {
	if err := p.FillEmail(user.Email); err != nil {
		return err
	}
	if err := p.FillPassword(user.Password); err != nil {
		return err
	}
	if err := p.ClickSubmit(); err != nil {
		return err
	}
	if waitForRedirect {
		return p.b.WaitForURL("/dashboard")
	}
	return nil
}

// LoginWithCredentials signs in with raw credentials, bypassing User
// validation so negative tests can submit anything.
func (p *Login) LoginWithCredentials(email, password string, waitForRedirect bool) error {
	if err := p.FillEmail(email); err != nil {
		return err
	}
	if err := p.FillPassword(password); err != nil {
		return err
	}
	if err := p.ClickSubmit(); err != nil {
		return err
	}
	if waitForRedirect {
		return p.b.WaitForURL("/dashboard")
	}
	return nil
}

// ErrorDisplayed reports whether the credentials error is visible.
func (p *Login) ErrorDisplayed() (bool, error) {
	return p.b.IsVisible(p.loc.ErrorMessage)
}

// ErrorMessage returns the error text, or "" when no error is shown.
func (p *Login) ErrorMessage() (string, error) {
	shown, err := p.ErrorDisplayed()
	if err != nil || !shown {
		return "", err
	}
	return p.b.GetText(p.loc.ErrorMessage)
}

// NavigateToRegister follows the sign-up link.
func (p *Login) NavigateToRegister() error {
	if err := p.b.Click(p.loc.RegisterLink); err != nil {
		return err
	}
	return p.b.WaitForURL("/register")
}

// ClickLoginLink follows the sign-in link back from the register screen.
func (p *Login) ClickLoginLink() error {
	return p.b.Click(p.loc.LoginLink)
}

// OnLoginPage reports whether the current URL is under /login.
func (p *Login) OnLoginPage() bool {
	return strings.Contains(p.b.CurrentURL(), "/login")
}

// ExpectLoaded asserts the three form elements are visible.
func (p *Login) ExpectLoaded() error {
	for _, sel := range []string{p.loc.EmailInput, p.loc.PasswordInput, p.loc.SubmitButton} {
		if err := p.b.ExpectVisible(sel); err != nil {
			return err
		}
	}
	return nil
}

// ExpectErrorMessage asserts the credentials error becomes visible. The
// budget is short: the error renders straight from the login response.
func (p *Login) ExpectErrorMessage() error {
	return p.b.ExpectVisible(p.loc.ErrorMessage, errorMessageTimeout)
}

// ExpectOnLoginPage asserts the URL settles under /login.
func (p *Login) ExpectOnLoginPage() error {
	return p.b.ExpectURL("/login")
}

package ui

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Policy decides how the chosen mode survives navigation
type Policy string

const (
	// PolicyReset carries the mode in the theme query parameter of in-app
	// links. A fresh load starts light.
	PolicyReset Policy = "reset"
	// PolicyCookie keeps the mode in a persistent cookie.
	PolicyCookie Policy = "cookie"
)

const (
	// ThemeParam is the query parameter used by PolicyReset
	ThemeParam = "theme"
	// ThemeCookie is the cookie used by PolicyCookie
	ThemeCookie = "theme"

	// TogglePath is the route flipping the mode
	TogglePath = "/theme/toggle"

	themeCookieMaxAge = 365 * 24 * time.Hour
)

// AppTitle is shown in the nav bar and the page title
const AppTitle = "AI Writing Services"

// Context is the layout state of one request
type Context struct {
	Mode    Mode
	Policy  Policy
	Path    string
	Palette Palette
	Title   string
}

// Resolve reads the mode of r according to policy.
func Resolve(policy Policy, r *http.Request) *Context {
	mode := ModeLight
	switch policy {
	case PolicyCookie:
		if c, err := r.Cookie(ThemeCookie); err == nil {
			mode = ParseMode(c.Value)
		}
	default:
		policy = PolicyReset
		mode = ParseMode(r.URL.Query().Get(ThemeParam))
	}

	return &Context{
		Mode:    mode,
		Policy:  policy,
		Path:    r.URL.Path,
		Palette: PaletteFor(mode),
		Title:   AppTitle,
	}
}

// IsDark reports whether the dark palette is active
func (c *Context) IsDark() bool {
	return c.Mode == ModeDark
}

// Link returns path with the theme preserved. Under PolicyReset a dark mode
// is appended as a query parameter; light is the default and adds nothing.
func (c *Context) Link(path string) string {
	return withMode(path, c.Policy, c.Mode)
}

// ToggleURL is the nav bar toggle target, returning to the current page.
func (c *Context) ToggleURL() string {
	q := url.Values{}
	q.Set("return_to", c.Path)
	if c.Policy == PolicyReset && c.Mode == ModeDark {
		q.Set(ThemeParam, string(ModeDark))
	}
	return TogglePath + "?" + q.Encode()
}

// IsCurrent reports whether path is the page being rendered
func (c *Context) IsCurrent(path string) bool {
	return c.Path == path
}

// Toggle flips the mode of r and returns where to send the visitor next.
// Under PolicyCookie the returned cookie must be set on the response; it is
// nil under PolicyReset.
func Toggle(policy Policy, r *http.Request) (string, *http.Cookie) {
	current := Resolve(policy, r)
	next := current.Mode.Toggle()
	target := SafeReturnPath(r.URL.Query().Get("return_to"))

	if current.Policy == PolicyCookie {
		return target, &http.Cookie{
			Name:     ThemeCookie,
			Value:    string(next),
			Path:     "/",
			MaxAge:   int(themeCookieMaxAge.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}
	}
	return withMode(target, PolicyReset, next), nil
}

// SafeReturnPath keeps only local absolute paths, falling back to "/".
func SafeReturnPath(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	return raw
}

func withMode(path string, policy Policy, mode Mode) string {
	if policy != PolicyReset {
		return path
	}
	u, err := url.Parse(path)
	if err != nil {
		return path
	}
	q := u.Query()
	q.Del(ThemeParam)
	if mode == ModeDark {
		q.Set(ThemeParam, string(ModeDark))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

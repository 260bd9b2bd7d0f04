// Package mathtex is the injected math-rendering capability. Writers
// receive a Renderer instead of reaching for a global library, so the
// fallback path is testable without any real TeX engine present.
package mathtex

import "html"

// Renderer turns raw TeX source into target-specific markup. display
// selects display math ($$) over inline math ($). A failed render only
// affects the one occurrence; callers degrade it to an error-styled
// literal and keep going.
type Renderer interface {
	Render(tex string, display bool) (string, error)
}

// Func adapts a plain function to Renderer.
type Func func(tex string, display bool) (string, error)

func (f Func) Render(tex string, display bool) (string, error) {
	return f(tex, display)
}

// Literal always succeeds and returns the TeX source unchanged. It is
// the "no math engine available" path and the default everywhere.
type Literal struct{}

func (Literal) Render(tex string, _ bool) (string, error) {
	return tex, nil
}

// Deferred emits HTML-escaped TeX inside MathJax delimiters so a
// browser-side engine can typeset it later: \(...\) inline, \[...\]
// for display math.
type Deferred struct{}

func (Deferred) Render(tex string, display bool) (string, error) {
	escaped := html.EscapeString(tex)
	if display {
		return `\[` + escaped + `\]`, nil
	}
	return `\(` + escaped + `\)`, nil
}

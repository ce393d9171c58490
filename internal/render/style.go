package render

import (
	"html/template"
	"regexp"
	"strings"
)

// gradientToken matches custom property references, colours and gradient
// functions. Characters that could end the declaration or the attribute are excluded.
var gradientToken = regexp.MustCompile(`^[a-zA-Z0-9#%.,()\s-]+$`)

// blockedFuncs load external resources or run script in old engines
var blockedFuncs = []string{"url(", "image(", "image-set(", "expression(", "element("}

// glowStyle returns the background declaration for a card's gradient token,
// or nothing when the token is not a plain colour or gradient.
func glowStyle(token string) template.CSS {
	token = strings.TrimSpace(token)
	if token == "" || !gradientToken.MatchString(token) {
		return ""
	}
	lower := strings.ToLower(token)
	for _, f := range blockedFuncs {
		if strings.Contains(lower, f) {
			return ""
		}
	}
	return template.CSS("background: " + token + ";")
}

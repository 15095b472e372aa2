// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompt

import (
	"log/slog"
	"regexp"
)

// placeholder matches a {{name}} token.
var placeholder = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// Render substitutes {{name}} tokens in tmpl with values from vars in a
// single pass. Substituted values are not scanned for further
// substitution. A cleanup pass then removes every token left in the
// output, including any carried in by a value, so template syntax never
// reaches the model. Tokens of tmpl with no entry in vars are logged.
func Render(tmpl string, vars map[string]string) string {
	out := placeholder.ReplaceAllStringFunc(tmpl, func(token string) string {
		name := token[2 : len(token)-2]
		if v, ok := vars[name]; ok {
			return v
		}
		slog.Warn("prompt placeholder has no value", "placeholder", name)
		return ""
	})
	return placeholder.ReplaceAllString(out, "")
}

// Placeholders returns the distinct placeholder names of tmpl in order of
// first appearance.
func Placeholders(tmpl string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholder.FindAllStringSubmatch(tmpl, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

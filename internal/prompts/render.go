package prompts

import "strings"

// Render substitutes {name} placeholders with values from vars. Unknown
// placeholders stay in the text so a mistyped override is visible instead
// of swallowed.
func Render(template string, vars map[string]string) string {
	if len(vars) == 0 {
		return template
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

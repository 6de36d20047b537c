package render

import (
	"regexp"

	"github.com/danieljhkim/repogen/internal/errors"
)

// placeholderRE matches ${dotted.path} tokens in template text.
var placeholderRE = regexp.MustCompile(`\$\{([^}]+)\}`)

// Placeholders returns the distinct dotted paths referenced by the template
// text, in first-occurrence order.
func Placeholders(text string) []string {
	seen := map[string]bool{}
	var paths []string
	for _, m := range placeholderRE.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			paths = append(paths, m[1])
		}
	}
	return paths
}

// Render substitutes every ${dotted.path} token in text using the context.
// Resolution failure is always fatal; there is no leave-literal fallback.
// The error names the first unresolved dotted path.
func Render(text string, ctx *Context) (string, error) {
	var unresolved error
	rendered := placeholderRE.ReplaceAllStringFunc(text, func(token string) string {
		if unresolved != nil {
			return token
		}
		dotted := token[2 : len(token)-1]
		value, ok := ctx.Resolve(dotted)
		if !ok {
			unresolved = errors.Newf(errors.EValidation, "unresolved placeholder ${%s}", dotted)
			return token
		}
		out, err := value.Render()
		if err != nil {
			unresolved = errors.Wrap(errors.EInternal, "failed to render placeholder ${"+dotted+"}", err)
			return token
		}
		return out
	})
	if unresolved != nil {
		return "", unresolved
	}
	return rendered, nil
}

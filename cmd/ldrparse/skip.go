package main

import (
	"slices"
	"strings"

	"github.com/fwojciec/ldraw"
	"github.com/sahilm/fuzzy"
)

// parseSkip parses the --skip names. An unknown name is reported with the
// closest line type name when one resembles it.
func parseSkip(names []string) (ldraw.LineTypeSet, error) {
	skip, err := ldraw.ParseLineTypes(names)
	if err == nil || ldraw.ErrorCode(err) != ldraw.EINVALID {
		return skip, err
	}

	i := slices.IndexFunc(names, func(name string) bool {
		_, err := ldraw.ParseLineType(name)
		return err != nil && strings.TrimSpace(name) != ""
	})
	if i < 0 {
		return 0, err
	}
	if guess := suggestLineType(names[i]); guess != "" {
		return 0, ldraw.Errorf(ldraw.EINVALID, "unknown line type %q, did you mean %q?", names[i], guess)
	}
	return 0, err
}

// suggestLineType returns the line type name that best matches name, or an
// empty string. Abbreviations ("opt") and longer spellings ("triangle") both
// match.
func suggestLineType(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	types := ldraw.LineTypes()
	candidates := make([]string, len(types))
	for i, t := range types {
		candidates[i] = strings.ToLower(t.String())
	}

	if matches := fuzzy.Find(name, candidates); len(matches) > 0 {
		return matches[0].Str
	}

	var best string
	bestScore := 0
	for _, c := range candidates {
		matches := fuzzy.Find(c, []string{name})
		if len(matches) == 0 {
			continue
		}
		if best == "" || matches[0].Score > bestScore {
			best, bestScore = c, matches[0].Score
		}
	}
	return best
}

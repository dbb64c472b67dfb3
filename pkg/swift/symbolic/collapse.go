package symbolic

import (
	"regexp"
	"strings"

	"github.com/appsworld/swiftsym/types/swift"
)

var (
	objcModulePattern = regexp.MustCompile(`So[0-9]+`)
	lengthPrefix      = regexp.MustCompile(`^[0-9]+`)
)

const (
	boundGenericSeparator = "->"
	dispatchQueue         = "DispatchQueue"
)

// collapse renders scanned fragments as a space separated name. A single
// fragment is returned as is; longer lists have their sugar folded first.
func collapse(frags []Fragment, qualified bool) string {
	if len(frags) <= 1 {
		for _, f := range frags {
			return f.name(qualified)
		}
		return ""
	}

	var results []string
	boundGeneric := false
	for i, f := range frags {
		if !f.IsLiteral() {
			if name := f.name(qualified); name != "" {
				results = append(results, name)
			}
			continue
		}

		s := f.Literal
		last := i == len(frags)-1
		switch {
		case strings.HasSuffix(s, "y"):
			boundGeneric = true
			s = s[:len(s)-1]
		case s == "G" && last:
			continue
		case len(s) >= 2 && s[0] == 'y' && s[len(s)-1] == 'G':
			s = s[1 : len(s)-1]
		case last:
			s = strings.TrimSuffix(s, "G")
			s = strings.TrimSuffix(s, "_p")
			if (s == "Qz" || s == "Qy_" || s == "Qy0_") && len(results) == 2 {
				results = []string{results[1] + "." + results[0]}
				continue
			}
		}
		if s == "" {
			continue
		}

		switch {
		case objcModulePattern.MatchString(s):
			if strings.Contains(s, "OS_dispatch_queue") {
				results = append(results, dispatchQueue)
			} else {
				results = append(results, "_"+swift.MANGLING_PREFIX+s)
			}
		case lengthPrefix.MatchString(s):
			if rest := lengthPrefix.ReplaceAllString(s, ""); rest != "" {
				results = append(results, rest)
			}
		case strings.HasPrefix(s, swift.MANGLING_PREFIX):
			results = append(results, "_"+s)
		default:
			if name, ok := swift.LookupMangledType(s); ok {
				results = append(results, name)
				if boundGeneric {
					results = append(results, boundGenericSeparator)
					boundGeneric = false
				}
			} else if boundGeneric {
				results = append(results, s, boundGenericSeparator)
				boundGeneric = false
			} else {
				results = append(results, "_"+swift.MANGLING_PREFIX+s)
			}
		}
	}
	return strings.Join(results, " ")
}

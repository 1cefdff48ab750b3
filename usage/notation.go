package usage

import (
	"strconv"

	"github.com/vk/cliarg/arity"
)

// Notation renders token under the given arity.
//
// Arities that can be written with the token at most twice get a hand-tuned
// form such as "[x]", "x [x]" or "[x]..."; all others fall back to a
// regex-like repetition: "(x){3}", "(x){3,}" or "(x){2,5}".
func Notation(token string, a arity.Arity) string {
	switch a.Min() {
	case 0:
		switch a.Max() {
		case 1:
			return "[" + token + "]"
		case 2:
			return "[" + token + " [" + token + "]]"
		case arity.Unlimited:
			return "[" + token + "]..."
		}
	case 1:
		switch a.Max() {
		case 1:
			return token
		case 2:
			return token + " [" + token + "]"
		case arity.Unlimited:
			return token + " [" + token + "]..."
		}
	case 2:
		if a.Max() == 2 {
			return token + " " + token
		}
	}

	lo := strconv.FormatUint(uint64(a.Min()), 10)
	switch {
	case a.Min() == a.Max():
		return "(" + token + "){" + lo + "}"
	case a.IsUnbounded():
		return "(" + token + "){" + lo + ",}"
	default:
		return "(" + token + "){" + lo + "," + strconv.FormatUint(uint64(a.Max()), 10) + "}"
	}
}

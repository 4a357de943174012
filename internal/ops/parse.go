package ops

import (
	mdwerror "github.com/msto63/dynstr/pkg/core/error"
	"github.com/msto63/dynstr/pkg/dynstr"
)

// Step is one parsed operation invocation
type Step struct {
	Name string
	Args []string
}

// ParseLine parses "name arg..." into a Step.
func ParseLine(line string) (Step, error) {
	words, err := SplitWords(line)
	if err != nil {
		return Step{}, err
	}
	if len(words) == 0 {
		return Step{}, invalidInput("ops.ParseLine", "empty command")
	}
	return Step{Name: words[0], Args: words[1:]}, nil
}

// ParseLines parses every line into a Step.
func ParseLines(lines []string) ([]Step, error) {
	steps := make([]Step, 0, len(lines))
	for _, line := range lines {
		step, err := ParseLine(line)
		if err != nil {
			return nil, mdwerror.Wrap(err, "ops.ParseLines").WithDetail("line", line)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// SplitWords splits line at unquoted blanks. Double quotes group blanks into
// a word and "" yields an empty word; a backslash takes the next byte literally.
func SplitWords(line string) ([]string, error) {
	var (
		words   []string
		word    dynstr.String
		inWord  bool
		quoted  bool
		escaped bool
	)

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case escaped:
			escaped = false
			if err := word.PushBack(c); err != nil {
				return nil, err
			}
		case c == '\\':
			escaped, inWord = true, true
		case c == '"':
			quoted, inWord = !quoted, true
		case !quoted && (c == ' ' || c == '\t' || c == '\n'):
			if inWord {
				words = append(words, word.String())
				word.Destroy()
				inWord = false
			}
		default:
			inWord = true
			if err := word.PushBack(c); err != nil {
				return nil, err
			}
		}
	}

	if quoted {
		return nil, invalidInput("ops.SplitWords", "unterminated quote").WithDetail("line", line)
	}
	if escaped {
		return nil, invalidInput("ops.SplitWords", "trailing backslash").WithDetail("line", line)
	}
	if inWord {
		words = append(words, word.String())
	}
	return words, nil
}

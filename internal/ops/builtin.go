// File: builtin.go
// Title: Built-in Operations
// Description: The operation table exposing the dynstr API by name.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial operation set

package ops

import (
	"strconv"

	mdwerror "github.com/msto63/dynstr/pkg/core/error"
	"github.com/msto63/dynstr/pkg/dynstr"
)

// mutate wraps an in-place operation without a report.
func mutate(fn func(s *dynstr.String)) RunFunc {
	return func(s *dynstr.String, _ []string) (string, error) {
		fn(s)
		return "", nil
	}
}

func report(fn func(s dynstr.String) string) RunFunc {
	return func(s *dynstr.String, _ []string) (string, error) {
		return fn(*s), nil
	}
}

// intArg parses a non-negative decimal argument.
func intArg(name, value string) (int, error) {
	v, err := dynstr.FromString(value)
	if err != nil {
		return 0, err
	}
	v.Trim()
	if v.IsEmpty() || !v.IsDigits() {
		return 0, invalidInput(name, "expected a non-negative integer").WithDetail("value", value)
	}
	n, err := v.ParseInt()
	if err != nil {
		return 0, mdwerror.Wrap(err, name).WithDetail("value", value)
	}
	return int(n), nil
}

// byteArg accepts a single byte or one of the names space, tab and newline.
func byteArg(name, value string) (byte, error) {
	switch value {
	case "space":
		return ' ', nil
	case "tab":
		return '\t', nil
	case "newline":
		return '\n', nil
	}
	if len(value) != 1 {
		return 0, invalidInput(name, "expected a single byte").WithDetail("value", value)
	}
	return value[0], nil
}

var byteClasses = map[string]func(byte) bool{
	"digit": dynstr.IsDigit,
	"alpha": dynstr.IsAlpha,
	"alnum": dynstr.IsAlphanum,
	"lower": dynstr.IsLower,
	"upper": dynstr.IsUpper,
	"nospace": func(c byte) bool {
		return c != ' ' && c != '\t' && c != '\n'
	},
}

func rot13(c byte) byte {
	switch {
	case dynstr.IsLower(c):
		return 'a' + (c-'a'+13)%26
	case dynstr.IsUpper(c):
		return 'A' + (c-'A'+13)%26
	}
	return c
}

func alternate(i int, c byte) byte {
	if i%2 == 0 {
		return dynstr.ToUpperByte(c)
	}
	return dynstr.ToLowerByte(c)
}

func pad(left bool) RunFunc {
	return func(s *dynstr.String, args []string) (string, error) {
		n, err := intArg("pad", args[0])
		if err != nil {
			return "", err
		}
		fill := byte(' ')
		if len(args) > 1 {
			if fill, err = byteArg("pad", args[1]); err != nil {
				return "", err
			}
		}
		if left {
			return "", s.PadLeft(n, fill)
		}
		return "", s.PadRight(n, fill)
	}
}

func pop(front bool) RunFunc {
	return func(s *dynstr.String, _ []string) (string, error) {
		var (
			c   byte
			err error
		)
		if front {
			c, err = s.PopFront()
		} else {
			c, err = s.PopBack()
		}
		if err != nil {
			return "", err
		}
		return strconv.QuoteRune(rune(c)), nil
	}
}

func push(front bool) RunFunc {
	return func(s *dynstr.String, args []string) (string, error) {
		c, err := byteArg("push", args[0])
		if err != nil {
			return "", err
		}
		if front {
			return "", s.PushFront(c)
		}
		return "", s.PushBack(c)
	}
}

func builtins() []*Operation {
	return []*Operation{
		{Name: "trim", Description: "strip spaces, tabs and newlines at both ends", Run: mutate((*dynstr.String).Trim)},
		{Name: "trim-left", Aliases: []string{"ltrim"}, Description: "strip leading delimiters", Run: mutate((*dynstr.String).TrimLeft)},
		{Name: "trim-right", Aliases: []string{"rtrim"}, Description: "strip trailing delimiters", Run: mutate((*dynstr.String).TrimRight)},
		{Name: "upper", Aliases: []string{"toupper"}, Description: "uppercase ASCII letters", Run: mutate((*dynstr.String).ToUpper)},
		{Name: "lower", Aliases: []string{"tolower"}, Description: "lowercase ASCII letters", Run: mutate((*dynstr.String).ToLower)},
		{Name: "reverse", Aliases: []string{"rev"}, Description: "reverse the bytes", Run: mutate((*dynstr.String).Reverse)},
		{Name: "capitalize", Aliases: []string{"cap"}, Description: "uppercase the first letter of every word", Run: mutate((*dynstr.String).Capitalize)},
		{Name: "clear", Description: "release the buffer", Run: mutate((*dynstr.String).Destroy)},
		{Name: "rot13", Description: "rotate letters by 13 places", Run: func(s *dynstr.String, _ []string) (string, error) {
			return "", s.Map(rot13)
		}},
		{Name: "alternate", Description: "alternate upper and lower case by position", Run: func(s *dynstr.String, _ []string) (string, error) {
			return "", s.MapIndexed(alternate)
		}},
		{Name: "pad-left", Usage: "<len> [byte]", Description: "prepend a fill byte up to len", MinArgs: 1, MaxArgs: 2, Run: pad(true)},
		{Name: "pad-right", Usage: "<len> [byte]", Description: "append a fill byte up to len", MinArgs: 1, MaxArgs: 2, Run: pad(false)},
		{Name: "push-back", Aliases: []string{"push"}, Usage: "<byte>", Description: "append one byte", MinArgs: 1, MaxArgs: 1, Run: push(false)},
		{Name: "push-front", Usage: "<byte>", Description: "prepend one byte", MinArgs: 1, MaxArgs: 1, Run: push(true)},
		{Name: "pop-back", Aliases: []string{"pop"}, Description: "remove the last byte", Run: pop(false)},
		{Name: "pop-front", Description: "remove the first byte", Run: pop(true)},
		{Name: "append", Usage: "<text>", Description: "append text", MinArgs: 1, MaxArgs: 1, Run: func(s *dynstr.String, args []string) (string, error) {
			return "", s.AppendString(args[0])
		}},
		{Name: "remove", Aliases: []string{"rm"}, Usage: "<pos> <len>", Description: "delete len bytes at pos", MinArgs: 2, MaxArgs: 2, Run: func(s *dynstr.String, args []string) (string, error) {
			pos, err := intArg("remove", args[0])
			if err != nil {
				return "", err
			}
			n, err := intArg("remove", args[1])
			if err != nil {
				return "", err
			}
			return "", s.Remove(pos, n)
		}},
		{Name: "remove-byte", Usage: "<byte>", Description: "delete every occurrence of a byte", MinArgs: 1, MaxArgs: 1, Run: func(s *dynstr.String, args []string) (string, error) {
			c, err := byteArg("remove-byte", args[0])
			if err != nil {
				return "", err
			}
			s.RemoveByte(c)
			return "", nil
		}},
		{Name: "replace", Aliases: []string{"replace-all"}, Usage: "<old> <new>", Description: "replace every occurrence of old", MinArgs: 2, MaxArgs: 2, Run: func(s *dynstr.String, args []string) (string, error) {
			return "", s.ReplaceAll(args[0], args[1])
		}},
		{Name: "filter", Usage: "<digit|alpha|alnum|lower|upper|nospace>", Description: "keep only bytes of a class", MinArgs: 1, MaxArgs: 1, Run: func(s *dynstr.String, args []string) (string, error) {
			keep, ok := byteClasses[args[0]]
			if !ok {
				return "", invalidInput("filter", "unknown byte class").WithDetail("class", args[0])
			}
			return "", s.Filter(keep)
		}},
		{Name: "substr", Usage: "<pos> <len>", Description: "keep len bytes starting at pos", MinArgs: 2, MaxArgs: 2, Run: func(s *dynstr.String, args []string) (string, error) {
			pos, err := intArg("substr", args[0])
			if err != nil {
				return "", err
			}
			n, err := intArg("substr", args[1])
			if err != nil {
				return "", err
			}
			sub, err := s.Substring(pos, n)
			if err != nil {
				return "", err
			}
			*s = sub
			return "", nil
		}},
		{Name: "reserve", Usage: "<cap>", Description: "grow capacity to at least cap", MinArgs: 1, MaxArgs: 1, Run: func(s *dynstr.String, args []string) (string, error) {
			n, err := intArg("reserve", args[0])
			if err != nil {
				return "", err
			}
			return "", s.Reserve(n)
		}},
		{Name: "shrink", Description: "shrink capacity to the length", Run: func(s *dynstr.String, _ []string) (string, error) {
			return "", s.ShrinkToFit()
		}},
		{Name: "find", Aliases: []string{"index"}, Usage: "<pattern>", Description: "index of the first occurrence, -1 if none", MinArgs: 1, MaxArgs: 1, Run: func(s *dynstr.String, args []string) (string, error) {
			return strconv.Itoa(s.FindFirstString(args[0])), nil
		}},
		{Name: "contains", Usage: "<pattern>", Description: "whether pattern occurs", MinArgs: 1, MaxArgs: 1, Run: func(s *dynstr.String, args []string) (string, error) {
			return strconv.FormatBool(s.ContainsString(args[0])), nil
		}},
		{Name: "starts-with", Aliases: []string{"prefix"}, Usage: "<text>", Description: "whether the value starts with text", MinArgs: 1, MaxArgs: 1, Run: func(s *dynstr.String, args []string) (string, error) {
			return strconv.FormatBool(s.HasPrefixString(args[0])), nil
		}},
		{Name: "ends-with", Aliases: []string{"suffix"}, Usage: "<text>", Description: "whether the value ends with text", MinArgs: 1, MaxArgs: 1, Run: func(s *dynstr.String, args []string) (string, error) {
			return strconv.FormatBool(s.HasSuffixString(args[0])), nil
		}},
		{Name: "compare", Aliases: []string{"cmp"}, Usage: "<text>", Description: "order against text: -1, 0 or 1", MinArgs: 1, MaxArgs: 1, Run: compareOp(false)},
		{Name: "compare-ci", Usage: "<text>", Description: "order against text ignoring ASCII case", MinArgs: 1, MaxArgs: 1, Run: compareOp(true)},
		{Name: "count", Usage: "<byte>", Description: "occurrences of a byte", MinArgs: 1, MaxArgs: 1, Run: func(s *dynstr.String, args []string) (string, error) {
			c, err := byteArg("count", args[0])
			if err != nil {
				return "", err
			}
			return strconv.Itoa(s.Count(c)), nil
		}},
		{Name: "len", Aliases: []string{"size"}, Description: "content length", Run: report(func(s dynstr.String) string { return strconv.Itoa(s.Len()) })},
		{Name: "capacity", Description: "buffer capacity", Run: report(func(s dynstr.String) string { return strconv.Itoa(s.Cap()) })},
		{Name: "debug", Description: "bracketed representation with size and capacity", Run: report(dynstr.String.DebugString)},
		{Name: "is-digits", Description: "whether every byte is a digit", Run: report(func(s dynstr.String) string { return strconv.FormatBool(s.IsDigits()) })},
		{Name: "is-alphas", Description: "whether every byte is a letter", Run: report(func(s dynstr.String) string { return strconv.FormatBool(s.IsAlphas()) })},
		{Name: "palindrome", Description: "whether the value reads the same backwards", Run: report(func(s dynstr.String) string { return strconv.FormatBool(s.IsPalindrome()) })},
		{Name: "parse-int", Aliases: []string{"int"}, Description: "parse a decimal int64", Run: func(s *dynstr.String, _ []string) (string, error) {
			n, err := s.ParseInt()
			return strconv.FormatInt(n, 10), err
		}},
		{Name: "parse-float", Aliases: []string{"float"}, Description: "parse a decimal fraction", Run: func(s *dynstr.String, _ []string) (string, error) {
			f, err := s.ParseFloat()
			return strconv.FormatFloat(f, 'g', -1, 64), err
		}},
	}
}

func compareOp(ignoreCase bool) RunFunc {
	return func(s *dynstr.String, args []string) (string, error) {
		other, err := dynstr.FromString(args[0])
		if err != nil {
			return "", err
		}
		if ignoreCase {
			return strconv.Itoa(s.CompareIgnoreCase(other)), nil
		}
		return strconv.Itoa(s.Compare(other)), nil
	}
}

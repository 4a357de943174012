package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/dynstr/pkg/core/error"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dynstr.toml")
	body := "[general]\nlog_level = \"error\"\n\n[random]\nseed = 7\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", path}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		stdin    string
		expected string
	}{
		{
			name:     "chain with report",
			args:     []string{"apply", "  hello world  ", "--op", "trim", "--op", "capitalize", "--op", "find World"},
			expected: "find: 6\nHello World\n",
		},
		{
			name:     "quoted arguments",
			args:     []string{"apply", "a-b-c", "-o", `replace - " + "`},
			expected: "a + b + c\n",
		},
		{
			name:     "debug output",
			args:     []string{"apply", "abc", "--debug"},
			expected: "[abc, size = 3, cap = 3]\n",
		},
		{
			name:     "cleared value",
			args:     []string{"apply", "abc", "-o", "clear", "-d"},
			expected: "[NULL, size = 0, cap = 0]\n",
		},
		{
			name:     "stdin",
			args:     []string{"apply", "--stdin", "-o", "upper"},
			stdin:    "shout\n",
			expected: "SHOUT\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("apply error = %v", err)
			}
			if out != tt.expected {
				t.Errorf("apply output = %q, want %q", out, tt.expected)
			}
		})
	}
}

func TestApply_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code mdwerror.Code
	}{
		{"unknown operation", []string{"apply", "x", "-o", "explode"}, mdwerror.CodeNotFound},
		{"empty pop", []string{"apply", "", "-o", "pop"}, mdwerror.CodeEmptyStringPop},
		{"bad arity", []string{"apply", "x", "-o", "find"}, mdwerror.CodeInvalidInput},
		{"argument and stdin", []string{"apply", "x", "--stdin"}, mdwerror.CodeInvalidInput},
		{"huge pad", []string{"apply", "x", "-o", "pad-right 9223372036854775807"}, mdwerror.CodeAllocationFailure},
		{"huge reserve", []string{"apply", "x", "-o", "reserve 1099511627776"}, mdwerror.CodeAllocationFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("apply error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestFailureCarriesCommand(t *testing.T) {
	_, err := run(t, "", "apply", "", "-o", "pop")

	var e *mdwerror.Error
	if !errors.As(err, &e) {
		t.Fatalf("apply error %T is not *mdwerror.Error", err)
	}
	if e.Context() != "apply" {
		t.Errorf("Context() = %q; want apply", e.Context())
	}
	if !strings.Contains(e.String(), "Context: apply") {
		t.Errorf("String() misses the command: %q", e.String())
	}
}

func TestScan(t *testing.T) {
	out, err := run(t, "  alpha\tbeta\n\ngamma", "scan", "-o", "reverse")
	if err != nil {
		t.Fatalf("scan error = %v", err)
	}
	if expected := "ahpla\nateb\nammag\n"; out != expected {
		t.Errorf("scan output = %q, want %q", out, expected)
	}

	out, err = run(t, "   ", "scan")
	if err != nil || out != "" {
		t.Errorf("scan of blank input = %q, %v", out, err)
	}
}

func TestParse(t *testing.T) {
	out, err := run(t, "", "parse", "int", "42", "  -17")
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	if expected := "\"42\"\t42\n\"  -17\"\t-17\n"; out != expected {
		t.Errorf("parse output = %q, want %q", out, expected)
	}

	out, err = run(t, "", "parse", "int", "abc", "9223372036854775808")
	if err == nil {
		t.Fatal("parse of invalid input succeeded")
	}
	if !strings.Contains(out, "INVALID_NUMBER_FORMAT") || !strings.Contains(out, "(partial 922337203685477580)") {
		t.Errorf("parse output = %q", out)
	}

	out, err = run(t, "", "parse", "float", "3.25")
	if err != nil || out != "\"3.25\"\t3.25\n" {
		t.Errorf("parse float = %q, %v", out, err)
	}

	if _, err := run(t, "", "parse", "hex", "ff"); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("parse hex error = %v", err)
	}
}

func TestRand(t *testing.T) {
	first, err := run(t, "", "rand", "12", "-n", "3")
	if err != nil {
		t.Fatalf("rand error = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(first, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("rand printed %d lines, want 3", len(lines))
	}
	for _, line := range lines {
		if len(line) != 12 {
			t.Errorf("rand value %q has length %d", line, len(line))
		}
	}

	// the config seeds the generator
	second, _ := run(t, "", "rand", "12", "-n", "3")
	if first != second {
		t.Errorf("seeded output differs: %q vs %q", first, second)
	}

	other, _ := run(t, "", "rand", "12", "-n", "3", "--seed", "99")
	if other == first {
		t.Error("--seed did not override the config seed")
	}

	if _, err := run(t, "", "rand", "-4"); err == nil {
		t.Error("negative length accepted")
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"distance", "kitten", "sitting"}, "3\n"},
		{[]string{"distance", "kitten", "sitting", "--recursive"}, "3\n"},
		{[]string{"distance", "", "abc"}, "3\n"},
	}

	for _, tt := range tests {
		out, err := run(t, "", tt.args...)
		if err != nil || out != tt.expected {
			t.Errorf("%v = %q, %v; want %q", tt.args, out, err, tt.expected)
		}
	}

	long := strings.Repeat("x", 20)
	if _, err := run(t, "", "distance", long, long, "--recursive"); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("long recursive distance error = %v", err)
	}
}

func TestOpsAndVersion(t *testing.T) {
	out, err := run(t, "", "ops")
	if err != nil {
		t.Fatalf("ops error = %v", err)
	}
	for _, name := range []string{"trim", "replace <old> <new>", "parse-int"} {
		if !strings.Contains(out, name) {
			t.Errorf("ops listing misses %q", name)
		}
	}

	out, err = run(t, "", "version", "--short")
	if err != nil || strings.TrimSpace(out) == "" {
		t.Errorf("version = %q, %v", out, err)
	}
}

func TestConfigErrors(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.toml"), "ops"})
	if err := root.Execute(); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("missing config error = %v", err)
	}

	if _, err := run(t, "", "--log-format", "xml", "ops"); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("bad --log-format error = %v", err)
	}
}

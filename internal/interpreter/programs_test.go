package interpreter

import (
	"bytes"
	"os"
	"testing"

	"gopkg.in/yaml.v3"
)

// programCase 一个端到端测试程序
type programCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Output string `yaml:"output"`
	Result string `yaml:"result"`
	Error  string `yaml:"error"`
}

func loadPrograms(t *testing.T) []programCase {
	t.Helper()
	file, err := os.Open("testdata/programs.yaml")
	if err != nil {
		t.Fatalf("open fixtures: %v", err)
	}
	defer file.Close()

	var cases []programCase
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cases); err != nil {
		t.Fatalf("parse fixtures: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("no programs in fixtures")
	}
	return cases
}

func TestPrograms(t *testing.T) {
	for _, tc := range loadPrograms(t) {
		t.Run(tc.Name, func(t *testing.T) {
			var out bytes.Buffer
			in := New(WithOutput(&out), WithSeed(1))
			v, err := in.Run(tc.Source)

			if tc.Error != "" {
				if err == nil {
					t.Fatalf("expected error %q, got result %s", tc.Error, v.Repr())
				}
				if err.Error() != tc.Error {
					t.Errorf("error = %q, want %q", err.Error(), tc.Error)
				}
			} else if err != nil {
				t.Fatalf("Run: %v", err)
			}

			if out.String() != tc.Output {
				t.Errorf("output = %q, want %q", out.String(), tc.Output)
			}
			if tc.Result != "" && v.Repr() != tc.Result {
				t.Errorf("result = %s, want %s", v.Repr(), tc.Result)
			}
		})
	}
}

package attr

import "testing"

func TestParseString(t *testing.T) {
	cases := []struct {
		input  string
		name   string
		format string
	}{
		{input: "title", name: "title", format: "text"},
		{input: "description:html", name: "description", format: "html"},
		{input: "created_at:datetime", name: "created_at", format: "datetime"},
		{input: "count : integer", name: "count", format: "integer"},
		{input: "a1_b2", name: "a1_b2", format: "text"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			spec, err := ParseString(tc.input)
			if err != nil {
				t.Fatalf("ParseString(%q): %v", tc.input, err)
			}
			if spec.Name != tc.name || spec.Format != tc.format {
				t.Fatalf("ParseString(%q) = {%s %s}, want {%s %s}", tc.input, spec.Name, spec.Format, tc.name, tc.format)
			}
		})
	}
}

func TestParseString_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"bad name",
		"a:b:c",
		"name:",
		":format",
		"name-with-dash",
		"owner.title",
		" title",
		"title ",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseString(input); !IsConfigurationError(err) {
				t.Fatalf("ParseString(%q) err = %v, want ConfigurationError", input, err)
			}
		})
	}
}

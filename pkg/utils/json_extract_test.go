package utils

import "testing"

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			in:   `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name: "fenced object",
			in:   "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "uppercase fence",
			in:   "```JSON\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "prose around object",
			in:   "Sure! Here is the plan: {\"a\": 1} Hope that helps.",
			want: `{"a": 1}`,
		},
		{
			name: "nested braces kept to the last one",
			in:   `text {"a": {"b": 2}} trailing`,
			want: `{"a": {"b": 2}}`,
		},
		{
			name:    "no object at all",
			in:      "I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "reversed delimiters",
			in:      "} nothing here {",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		got, err := ExtractJSONObject(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: expected an error, got %q", tc.name, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestImagePromptURL(t *testing.T) {
	got := ImagePromptURL("Boutique hotel Paris", 7)
	want := "https://image.pollinations.ai/prompt/Boutique%20hotel%20Paris?width=600&height=400&nologo=true&seed=7"
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

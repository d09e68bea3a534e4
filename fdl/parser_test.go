package fdl

import "testing"

func TestParseTokens_Tree(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   []Section
	}{
		{
			name:   "empty token list",
			tokens: nil,
			want:   nil,
		},
		{
			name: "single section with one field",
			tokens: []Token{
				{Kind: KindSectionStart, Text: "flap"},
				{Kind: KindField, Text: "frames"},
				{Kind: KindValue, Text: "1"},
				{Kind: KindSectionEnd},
			},
			want: []Section{
				{Name: "flap", Fields: []Field{{Name: "frames", Value: "1"}}},
			},
		},
		{
			name: "multiple sections preserve order",
			tokens: []Token{
				{Kind: KindSectionStart, Text: "b"},
				{Kind: KindSectionEnd},
				{Kind: KindSectionStart, Text: "a"},
				{Kind: KindSectionEnd},
			},
			want: []Section{
				{Name: "b"},
				{Name: "a"},
			},
		},
		{
			name: "unterminated section closes implicitly",
			tokens: []Token{
				{Kind: KindSectionStart, Text: "a"},
				{Kind: KindField, Text: "x"},
				{Kind: KindValue, Text: "1"},
			},
			want: []Section{
				{Name: "a", Fields: []Field{{Name: "x", Value: "1"}}},
			},
		},
		{
			name: "orphan field swallows the following token",
			tokens: []Token{
				{Kind: KindSectionStart, Text: "a"},
				{Kind: KindField, Text: "x"},
				{Kind: KindSectionEnd},
				{Kind: KindField, Text: "y"},
				{Kind: KindValue, Text: "2"},
			},
			// The SectionEnd after the orphan "x" is consumed as its
			// would-be value, so the section never closes and the stray
			// y=2 pair lands inside it.
			want: []Section{
				{Name: "a", Fields: []Field{{Name: "y", Value: "2"}}},
			},
		},
		{
			name: "trailing orphan field is dropped",
			tokens: []Token{
				{Kind: KindSectionStart, Text: "a"},
				{Kind: KindField, Text: "x"},
			},
			want: []Section{
				{Name: "a"},
			},
		},
		{
			name: "stray tokens outside sections are ignored",
			tokens: []Token{
				{Kind: KindValue, Text: "loose"},
				{Kind: KindSectionEnd},
				{Kind: KindSectionStart, Text: "a"},
				{Kind: KindSectionEnd},
			},
			want: []Section{
				{Name: "a"},
			},
		},
		{
			name: "stray value inside a section is ignored",
			tokens: []Token{
				{Kind: KindSectionStart, Text: "a"},
				{Kind: KindValue, Text: "loose"},
				{Kind: KindField, Text: "x"},
				{Kind: KindValue, Text: "1"},
				{Kind: KindSectionEnd},
			},
			want: []Section{
				{Name: "a", Fields: []Field{{Name: "x", Value: "1"}}},
			},
		},
		{
			name: "nested section start carries no structure",
			tokens: []Token{
				{Kind: KindSectionStart, Text: "a"},
				{Kind: KindSectionStart, Text: "b"},
				{Kind: KindField, Text: "x"},
				{Kind: KindValue, Text: "1"},
				{Kind: KindSectionEnd},
			},
			want: []Section{
				{Name: "a", Fields: []Field{{Name: "x", Value: "1"}}},
			},
		},
		{
			name: "duplicate sections both survive",
			tokens: []Token{
				{Kind: KindSectionStart, Text: "a"},
				{Kind: KindSectionEnd},
				{Kind: KindSectionStart, Text: "a"},
				{Kind: KindField, Text: "x"},
				{Kind: KindValue, Text: "2"},
				{Kind: KindSectionEnd},
			},
			want: []Section{
				{Name: "a"},
				{Name: "a", Fields: []Field{{Name: "x", Value: "2"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTokens(tt.tokens)

			if len(got) != len(tt.want) {
				t.Fatalf("parseTokens() = %+v, want %+v", got, tt.want)
			}

			for i := range got {
				if got[i].Name != tt.want[i].Name {
					t.Errorf("section %d name = %q, want %q", i, got[i].Name, tt.want[i].Name)
				}

				if len(got[i].Fields) != len(tt.want[i].Fields) {
					t.Fatalf("section %d fields = %+v, want %+v", i, got[i].Fields, tt.want[i].Fields)
				}

				for j := range got[i].Fields {
					if got[i].Fields[j] != tt.want[i].Fields[j] {
						t.Errorf("section %d field %d = %+v, want %+v",
							i, j, got[i].Fields[j], tt.want[i].Fields[j])
					}
				}
			}
		})
	}
}

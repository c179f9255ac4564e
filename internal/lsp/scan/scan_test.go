package scan

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokens(t *testing.T) {
	type tc struct {
		text string
		want []Token
	}

	tests := map[string]tc{
		"opening and closing": {
			text: `<A x="1"></A>`,
			want: []Token{
				{Name: "A", Start: 0, End: 9},
				{Name: "A", Start: 9, End: 13, Closing: true},
			},
		},
		"self-closing": {
			text: `<B/>`,
			want: []Token{{Name: "B", Start: 0, End: 4, SelfClosing: true}},
		},
		"token spans lines": {
			text: "<A\n  x=\"1\">",
			want: []Token{{Name: "A", Start: 0, End: 11}},
		},
		"unterminated tag is not a token": {
			text: `<A><B x="`,
			want: []Token{{Name: "A", Start: 0, End: 3}},
		},
		"angle without name is skipped": {
			text: `a < b <C>`,
			want: []Token{{Name: "C", Start: 6, End: 9}},
		},
		"declaration and comments are skipped": {
			text: `<?xml version="1.0"?><!-- c --><R>`,
			want: []Token{{Name: "R", Start: 31, End: 34}},
		},
		"inner angle is swallowed by the first token": {
			text: `<A <B>`,
			want: []Token{{Name: "A", Start: 0, End: 6}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Tokens(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokens(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestReplay(t *testing.T) {
	type tc struct {
		text       string
		wantStack  []string
		wantStrays []string
	}

	tests := map[string]tc{
		"well formed": {
			text: `<A><B></B><C/></A>`,
		},
		"unclosed": {
			text:      `<A><B x="1">`,
			wantStack: []string{"A", "B"},
		},
		"nearest match removed, not top": {
			text:      `<A><B><C></B>`,
			wantStack: []string{"A", "C"},
		},
		"rightmost duplicate removed": {
			text:      `<A><B><A></A>`,
			wantStack: []string{"A", "B"},
		},
		"stray closer reported and ignored": {
			text:       `<A></X></A>`,
			wantStrays: []string{"X"},
		},
		"closer before opener is stray": {
			text:       `</A><A>`,
			wantStack:  []string{"A"},
			wantStrays: []string{"A"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stack, strays := Replay(tt.text)
			if len(stack) != 0 || len(tt.wantStack) != 0 {
				if !reflect.DeepEqual(stack, tt.wantStack) {
					t.Errorf("stack = %v, want %v", stack, tt.wantStack)
				}
			}
			var strayNames []string
			for _, s := range strays {
				strayNames = append(strayNames, s.Name)
			}
			if !reflect.DeepEqual(strayNames, tt.wantStrays) {
				t.Errorf("strays = %v, want %v", strayNames, tt.wantStrays)
			}
		})
	}
}

// naiveStack is a strict LIFO reparse used as the reference on well-formed input.
func naiveStack(text string) []string {
	var stack []string
	for _, tok := range Tokens(text) {
		switch {
		case tok.Closing:
			stack = stack[:len(stack)-1]
		case tok.Opening():
			stack = append(stack, tok.Name)
		}
	}
	return stack
}

func TestStackMatchesNaiveOnWellFormed(t *testing.T) {
	doc := `<EtaRsccat UpsilonProduct="p">
  <ZetaMessage>
    <BetaEntry PsiKey="k">
      <OmegaA RhoHref="h"/>
      <LambdaActions>
        <DeltaAction MuType="help"></DeltaAction>
      </LambdaActions>
    </BetaEntry>
  </ZetaMessage>
</EtaRsccat>`

	for offset := 0; offset <= len(doc); offset++ {
		prefix := doc[:offset]
		got := Stack(prefix)
		want := naiveStack(prefix)
		if len(got) == 0 && len(want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("offset %d: Stack = %v, naive = %v", offset, got, want)
		}
	}
}

func TestInnermost(t *testing.T) {
	got := Innermost(`<Root><Child a="1">`)
	want := []string{"Child", "Root"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Innermost = %v, want %v", got, want)
	}
}

func TestNameRefs(t *testing.T) {
	line := `  <OmegaA RhoHref="x"></OmegaA> <Bad`
	refs := NameRefs(line)
	if len(refs) != 3 {
		t.Fatalf("expected 3 refs, got %+v", refs)
	}
	if refs[0].Name != "OmegaA" || refs[0].Lt != 2 || refs[0].Start != 3 || refs[0].Closing {
		t.Errorf("unexpected first ref %+v", refs[0])
	}
	if refs[1].Name != "OmegaA" || !refs[1].Closing || refs[1].Start != strings.Index(line, "</")+2 {
		t.Errorf("unexpected closing ref %+v", refs[1])
	}
	if refs[2].Name != "Bad" || refs[2].End() != len(line) {
		t.Errorf("unexpected trailing ref %+v", refs[2])
	}
}

func TestUTF16(t *testing.T) {
	type tc struct {
		s         string
		wantLen   int
		units     int
		wantBytes int
	}

	tests := map[string]tc{
		"ascii":          {s: "abc", wantLen: 3, units: 2, wantBytes: 2},
		"two-byte rune":  {s: "é<", wantLen: 2, units: 1, wantBytes: 2},
		"surrogate pair": {s: "😀x", wantLen: 3, units: 2, wantBytes: 4},
		"clamped":        {s: "ab", wantLen: 2, units: 10, wantBytes: 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := UTF16Len(tt.s); got != tt.wantLen {
				t.Errorf("UTF16Len(%q) = %d, want %d", tt.s, got, tt.wantLen)
			}
			if got := ByteOffset(tt.s, tt.units); got != tt.wantBytes {
				t.Errorf("ByteOffset(%q, %d) = %d, want %d", tt.s, tt.units, got, tt.wantBytes)
			}
		})
	}
}

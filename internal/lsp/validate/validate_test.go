package validate

import (
	"strings"
	"testing"

	"github.com/grindlemire/rmcxml/internal/lsp/schema"
)

const validDoc = `<?xml version="1.0"?>
<EtaRsccat UpsilonProduct="rmc">
  <BetaEntry PsiKey="main_entry" PhiTranslate="false">
    <LambdaActions KappaEnabled="true">
      <DeltaAction MuType="fixthis" NuBtn="fix"></DeltaAction>
    </LambdaActions>
  </BetaEntry>
</EtaRsccat>`

func messages(errs []Error) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Message)
	}
	return out
}

func TestSimple(t *testing.T) {
	type tc struct {
		text string
		want []string
	}

	tests := map[string]tc{
		"valid document": {
			text: validDoc,
			want: []string{},
		},
		"missing root": {
			text: `<BetaEntry PsiKey="k"></BetaEntry>`,
			want: []string{`Root element must be "EtaRsccat"`},
		},
		"unknown element": {
			text: `<EtaRsccat UpsilonProduct="p"><Bogus/></EtaRsccat>`,
			want: []string{"Unknown element: Bogus"},
		},
		"closing tags are not element checked": {
			text: `<EtaRsccat UpsilonProduct="p"></Bogus></EtaRsccat>`,
			want: []string{},
		},
		"missing required attribute": {
			text: `<EtaRsccat>`,
			want: []string{"EtaRsccat element requires UpsilonProduct attribute"},
		},
		"invalid enum value": {
			text: "<EtaRsccat UpsilonProduct=\"p\">\n<DeltaAction MuType=\"nope\">",
			want: []string{`Invalid value "nope" for attribute MuType. Valid values: fixthis, suggest, suppress, help, doc`},
		},
		"invalid identifier": {
			text: "<EtaRsccat UpsilonProduct=\"p\">\n<BetaEntry PsiKey=\"1bad\">",
			want: []string{"Invalid PsiKey format. Must match pattern: [a-zA-Z_][a-zA-Z0-9_]*"},
		},
		"boolean case insensitive": {
			text: "<EtaRsccat UpsilonProduct=\"p\">\n<ThetaActions KappaEnabled=\"TRUE\">",
			want: []string{},
		},
		"invalid boolean": {
			text: "<EtaRsccat UpsilonProduct=\"p\">\n<ThetaActions KappaEnabled=\"yes\">",
			want: []string{`Invalid boolean value "yes" for attribute KappaEnabled. Must be "true" or "false"`},
		},
		"empty values are not checked": {
			text: "<EtaRsccat UpsilonProduct=\"p\">\n<ThetaActions KappaEnabled=\"\">",
			want: []string{},
		},
	}

	v := New(schema.RMC, Options{})
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := messages(v.Simple(tt.text))
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("messages = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSimpleRanges(t *testing.T) {
	type tc struct {
		text string
		want Error
	}

	tests := map[string]tc{
		"root placeholder range": {
			text: "",
			want: Error{Line: 0, Col: 0, EndLine: 0, EndCol: 10},
		},
		"unknown element spans lt and name": {
			text: "<EtaRsccat UpsilonProduct=\"p\">\n  <Bogus>",
			want: Error{Line: 1, Col: 2, EndLine: 1, EndCol: 8},
		},
		"required attribute spans the line": {
			text: "<EtaRsccat UpsilonProduct=\"p\">\n  <BetaEntry>",
			want: Error{Line: 1, Col: 0, EndLine: 1, EndCol: 13},
		},
		"value error spans the match": {
			text: "<EtaRsccat UpsilonProduct=\"p\">\n<BetaEntry PsiKey=\"9\">",
			want: Error{Line: 1, Col: 11, EndLine: 1, EndCol: 21},
		},
		"columns count utf16 units": {
			text: "<EtaRsccat UpsilonProduct=\"p\">\n😀<Bogus>",
			want: Error{Line: 1, Col: 2, EndLine: 1, EndCol: 8},
		},
	}

	v := New(schema.RMC, Options{})
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			errs := v.Simple(tt.text)
			if len(errs) != 1 {
				t.Fatalf("got %d errors (%q), want 1", len(errs), messages(errs))
			}
			got := errs[0]
			if got.Line != tt.want.Line || got.Col != tt.want.Col || got.EndLine != tt.want.EndLine || got.EndCol != tt.want.EndCol {
				t.Errorf("range = %d:%d-%d:%d, want %d:%d-%d:%d",
					got.Line, got.Col, got.EndLine, got.EndCol,
					tt.want.Line, tt.want.Col, tt.want.EndLine, tt.want.EndCol)
			}
			if got.Severity != SeverityError {
				t.Errorf("severity = %d, want %d", got.Severity, SeverityError)
			}
		})
	}
}

func TestRequiredOncePerAttributePerLine(t *testing.T) {
	text := `<EtaRsccat UpsilonProduct="p"><BetaEntry></BetaEntry><BetaEntry></BetaEntry></EtaRsccat>`
	errs := New(schema.RMC, Options{}).Simple(text)
	count := 0
	for _, e := range errs {
		if e.Message == "BetaEntry element requires PsiKey attribute" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("got %d required-attribute errors, want 1", count)
	}
}

func TestStructure(t *testing.T) {
	type tc struct {
		text string
		want []string
	}

	tests := map[string]tc{
		"balanced": {
			text: validDoc,
			want: []string{},
		},
		"stray closing tag": {
			text: `<EtaRsccat UpsilonProduct="p"></BetaEntry></EtaRsccat>`,
			want: []string{"Closing tag </BetaEntry> has no matching opening tag"},
		},
		"unclosed tags": {
			text: `<EtaRsccat UpsilonProduct="p"><BetaEntry PsiKey="k">`,
			want: []string{"Unclosed tag: EtaRsccat", "Unclosed tag: BetaEntry"},
		},
		"mismatched close removes the nearest match": {
			text: `<EtaRsccat UpsilonProduct="p"><BetaEntry PsiKey="k"></EtaRsccat>`,
			want: []string{"Unclosed tag: BetaEntry"},
		},
		"self closing tags do not open": {
			text: `<EtaRsccat UpsilonProduct="p"><OmegaA RhoHref="h"/></EtaRsccat>`,
			want: []string{},
		},
	}

	v := New(schema.RMC, Options{})
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := messages(v.Structure(tt.text))
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("messages = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructureStrayRange(t *testing.T) {
	text := "<EtaRsccat UpsilonProduct=\"p\">\n  </BetaEntry>\n</EtaRsccat>"
	errs := New(schema.RMC, Options{}).Structure(text)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	e := errs[0]
	if e.Line != 1 || e.Col != 2 || e.EndLine != 1 || e.EndCol != 14 {
		t.Errorf("range = %d:%d-%d:%d, want 1:2-1:14", e.Line, e.Col, e.EndLine, e.EndCol)
	}
}

func TestValidateOptions(t *testing.T) {
	body := `<EtaRsccat UpsilonProduct="p"><BetaEntry PsiKey="k">`

	type tc struct {
		opts Options
		text string
		want []string
	}

	tests := map[string]tc{
		"simple only": {
			opts: Options{},
			text: body,
			want: []string{},
		},
		"with structure": {
			opts: Options{Structure: true},
			text: body,
			want: []string{"Unclosed tag: EtaRsccat", "Unclosed tag: BetaEntry"},
		},
		"declaration warning": {
			opts: Options{RequireDeclaration: true},
			text: body,
			want: []string{"XML document should start with XML declaration"},
		},
		"declaration present": {
			opts: Options{RequireDeclaration: true},
			text: "  <?xml version=\"1.0\"?>\n" + body,
			want: []string{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := messages(New(schema.RMC, tt.opts).Validate(tt.text))
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("messages = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeclarationSeverity(t *testing.T) {
	errs := Declaration("<EtaRsccat/>")
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Severity != SeverityWarning || errs[0].EndCol != 5 {
		t.Errorf("got %+v, want warning ending at col 5", errs[0])
	}
}

package lsp

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/grindlemire/rmcxml/internal/lsp/provider"
	"github.com/grindlemire/rmcxml/internal/lsp/validate"
)

const validSessionDoc = `<?xml version="1.0" encoding="UTF-8"?>
<EtaRsccat UpsilonProduct="rmc_core" TauVersion="2">
  <ZetaMessage>
    <BetaEntry PsiKey="entry_one" XiContext="warning" PhiTranslate="true">
      <OmegaA RhoHref="model://a"/>
      <SigmaDiag PhiObjP="p" ChiObjU="u"/>
      <LambdaActions XiExFixThese="yes" MuOrder="block">
        <DeltaAction MuType="fixthis" NuBtn="fix" XiRetvalue="no">
          <ThetaTxt>Apply</ThetaTxt>
        </DeltaAction>
      </LambdaActions>
    </BetaEntry>
  </ZetaMessage>
</EtaRsccat>
`

const testURI = "file:///catalog.rmc.xml"

func endOf(text string) Position {
	return OffsetToPosition(text, len(text))
}

func completionLabels(items []CompletionItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Label)
	}
	return out
}

func errorMessages(errs []validate.Error) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Message)
	}
	return out
}

func TestSessionValidDocumentHasNoErrors(t *testing.T) {
	s := NewSession(DefaultConfig())
	s.OpenDocument(testURI, validSessionDoc, 1)
	if errs := s.Validate(testURI); len(errs) != 0 {
		t.Errorf("unexpected errors: %q", errorMessages(errs))
	}
}

func TestSessionUnclosedScenario(t *testing.T) {
	s := NewSession(DefaultConfig())
	text := `<EtaRsccat UpsilonProduct="p"><ZetaMessage>`
	s.OpenDocument(testURI, text, 1)

	want := []string{"Unclosed tag: EtaRsccat", "Unclosed tag: ZetaMessage"}
	if got := errorMessages(s.Validate(testURI)); !reflect.DeepEqual(got, want) {
		t.Errorf("errors = %q, want %q", got, want)
	}

	doc, err := s.ApplyEdit(testURI, []TextDocumentContentChangeEvent{{Range: &Range{Start: endOf(text), End: endOf(text)}, Text: "</"}}, 2)
	if err != nil {
		t.Fatal(err)
	}
	got := completionLabels(s.Complete(testURI, endOf(doc.Content)))
	if want := []string{"ZetaMessage", "EtaRsccat"}; !reflect.DeepEqual(got, want) {
		t.Errorf("closing completions = %v, want %v", got, want)
	}
}

func TestSessionEnumScenario(t *testing.T) {
	s := NewSession(DefaultConfig())
	text := "<EtaRsccat UpsilonProduct=\"p\">\n<DeltaAction MuType=\""
	s.OpenDocument(testURI, text, 1)

	got := completionLabels(s.Complete(testURI, endOf(text)))
	if want := []string{"fixthis", "suggest", "suppress", "help", "doc"}; !reflect.DeepEqual(got, want) {
		t.Errorf("value completions = %v, want %v", got, want)
	}
}

func TestSessionMissingRequiredScenario(t *testing.T) {
	s := NewSession(DefaultConfig())
	text := "<EtaRsccat UpsilonProduct=\"p\"><ZetaMessage>\n<BetaEntry NuNote=\"x\"> <OmegaA RhoHref=\"h\"/> text\n</BetaEntry></ZetaMessage></EtaRsccat>"
	s.OpenDocument(testURI, text, 1)

	count := 0
	for _, e := range s.Validate(testURI) {
		if strings.Contains(e.Message, "requires PsiKey attribute") {
			count++
			if e.Line != 1 {
				t.Errorf("diagnostic on line %d, want 1", e.Line)
			}
		}
	}
	if count != 1 {
		t.Errorf("got %d PsiKey diagnostics, want 1 (all: %q)", count, errorMessages(s.Validate(testURI)))
	}
}

func TestSessionLineScopedRequiredCheck(t *testing.T) {
	s := NewSession(DefaultConfig())
	text := "<EtaRsccat UpsilonProduct=\"p\"><ZetaMessage>\n<BetaEntry\n  PsiKey=\"k\"></BetaEntry></ZetaMessage></EtaRsccat>"
	s.OpenDocument(testURI, text, 1)

	want := []string{"BetaEntry element requires PsiKey attribute"}
	if got := errorMessages(s.Validate(testURI)); !reflect.DeepEqual(got, want) {
		t.Errorf("errors = %q, want %q", got, want)
	}
}

func TestSessionCompletionExcludesExistingAttributes(t *testing.T) {
	s := NewSession(DefaultConfig())
	text := `<EtaRsccat UpsilonProduct="p"><ZetaMessage><BetaEntry PsiKey="k" NuNote="n" `
	s.OpenDocument(testURI, text, 1)

	for _, item := range s.Complete(testURI, endOf(text)) {
		if item.Label == "PsiKey" || item.Label == "NuNote" {
			t.Errorf("existing attribute %s offered", item.Label)
		}
	}
}

func TestSessionElementCompletion(t *testing.T) {
	s := NewSession(DefaultConfig())
	text := "<EtaRsccat UpsilonProduct=\"p\">\n  <ZetaMessage>\n    <"
	s.OpenDocument(testURI, text, 3)

	items := s.Complete(testURI, endOf(text))
	if len(items) != 1 {
		t.Fatalf("got %v, want only BetaEntry", completionLabels(items))
	}
	if items[0].InsertText != `BetaEntry PsiKey="$1">$2</BetaEntry>` {
		t.Errorf("insertText = %q", items[0].InsertText)
	}
	if items[0].Kind != CompletionItemKindClass {
		t.Errorf("kind = %d, want Class", items[0].Kind)
	}
}

func TestSessionRequestMisses(t *testing.T) {
	s := NewSession(DefaultConfig())

	if items := s.Complete("file:///nope.xml", Position{}); items == nil || len(items) != 0 {
		t.Errorf("complete on unknown doc = %v, want empty", items)
	}
	if h := s.Hover("file:///nope.xml", Position{}); h != nil {
		t.Errorf("hover on unknown doc = %+v", h)
	}
	if errs := s.Validate("file:///nope.xml"); errs == nil || len(errs) != 0 {
		t.Errorf("validate on unknown doc = %v, want empty", errs)
	}

	s.OpenDocument(testURI, validSessionDoc, 1)
	if items := s.Complete(testURI, Position{Line: 8, Character: 22}); len(items) != 0 {
		t.Errorf("completion in text content = %v", completionLabels(items))
	}
}

func TestSessionHover(t *testing.T) {
	s := NewSession(DefaultConfig())
	s.OpenDocument(testURI, validSessionDoc, 1)

	hover := s.Hover(testURI, Position{Line: 3, Character: 7})
	if hover == nil || !strings.HasPrefix(hover.Contents.Value, "## BetaEntry") {
		t.Errorf("element hover = %+v", hover)
	}

	hover = s.Hover(testURI, Position{Line: 3, Character: 17})
	if hover == nil || !strings.HasPrefix(hover.Contents.Value, "**PsiKey** (BetaEntry)") {
		t.Errorf("attribute hover = %+v", hover)
	}
}

func TestSessionCloseDiscardsBuffer(t *testing.T) {
	s := NewSession(DefaultConfig())
	s.OpenDocument(testURI, validSessionDoc, 1)
	s.CloseDocument(testURI)

	if s.Documents().Get(testURI) != nil {
		t.Error("buffer survived close")
	}
	_, err := s.ApplyEdit(testURI, []TextDocumentContentChangeEvent{{Text: "x"}}, 2)
	if !errors.Is(err, ErrDocumentNotOpen) {
		t.Errorf("err = %v, want ErrDocumentNotOpen", err)
	}
}

func TestSessionConfigure(t *testing.T) {
	s := NewSession(DefaultConfig())
	s.OpenDocument(testURI, `<EtaRsccat UpsilonProduct="p">`, 1)

	cfg := s.Config()
	cfg.Structure = false
	cfg.RequireDeclaration = true
	s.Configure(cfg)

	want := []string{"XML document should start with XML declaration"}
	if got := errorMessages(s.Validate(testURI)); !reflect.DeepEqual(got, want) {
		t.Errorf("errors = %q, want %q", got, want)
	}

	diags := s.Diagnostics(testURI)
	if len(diags) != 1 || diags[0].Severity != DiagnosticSeverityWarning || diags[0].Source != provider.DefaultSource {
		t.Errorf("diagnostics = %+v", diags)
	}
}

func TestConfigWithInitOptions(t *testing.T) {
	type tc struct {
		raw       string
		want      Config
		wantError bool
	}

	base := DefaultConfig()
	declared := base
	declared.RequireDeclaration = true
	flat := base
	flat.Structure = false
	unique := base
	unique.UniqueKeys = true

	tests := map[string]tc{
		"absent":      {raw: "", want: base},
		"null":        {raw: "null", want: base},
		"empty":       {raw: "{}", want: base},
		"declaration": {raw: `{"requireXmlDeclaration": true}`, want: declared},
		"structure":   {raw: `{"structuralDiagnostics": false}`, want: flat},
		"unique keys": {raw: `{"uniqueEntryKeys": true}`, want: unique},
		"malformed":   {raw: `{"structuralDiagnostics": "no"}`, wantError: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := base.WithInitOptions([]byte(tt.raw))
			if tt.wantError {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Structure != tt.want.Structure || got.RequireDeclaration != tt.want.RequireDeclaration || got.UniqueKeys != tt.want.UniqueKeys || got.Source != tt.want.Source {
				t.Errorf("config = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSessionUniqueKeys(t *testing.T) {
	text := "<EtaRsccat UpsilonProduct=\"p\"><ZetaMessage>\n" +
		"<BetaEntry PsiKey=\"dup\"></BetaEntry>\n" +
		"<BetaEntry PsiKey=\"dup\"></BetaEntry>\n" +
		"</ZetaMessage></EtaRsccat>"

	s := NewSession(DefaultConfig())
	s.OpenDocument(testURI, text, 1)
	if errs := s.Validate(testURI); len(errs) != 0 {
		t.Fatalf("duplicates reported without the option: %q", errorMessages(errs))
	}

	cfg := s.Config()
	cfg.UniqueKeys = true
	s.Configure(cfg)

	errs := s.Validate(testURI)
	if len(errs) != 1 || errs[0].Line != 2 || !strings.HasPrefix(errs[0].Message, "Duplicate PsiKey") {
		t.Errorf("errors = %+v", errs)
	}
}

package schema

// RMC is the built-in registry for the RMC resource catalog dialect.
var RMC = New("EtaRsccat", rmcElements(),
	WithEnum("XiContext", "error", "warning", "diagnostic", "textstring", "paramobject"),
	WithEnum("UpsilonType", "text", "menu"),
	WithEnum("MuType", "fixthis", "suggest", "suppress", "help", "doc"),
	WithEnum("NuBtn", "none", "fix", "resolve", "apply", "open", "suppress", "disable"),
	WithEnum("XiRetvalue", "false", "no", "true", "yes"),
	WithEnum("XiExFixThese", "yes", "no"),
	WithEnum("MuOrder", "block"),
	WithIdentifier("PsiKey", "UpsilonProduct"),
	WithBoolean("PhiTranslate", "MuCdata", "KappaEnabled", "OmegaDecorateCxxNames"),
)

func rmcElements() []*ElementDef {
	return []*ElementDef{
		{
			Name:        "EtaRsccat",
			Description: "Root element for RMC resource catalog",
			Details:     "Contains version information and message definitions for the resource catalog.",
			Children:    []string{"ZetaMessage"},
			Attributes: []AttributeDef{
				{Name: "TauVersion", Description: "Version number of the resource catalog"},
				{Name: "UpsilonProduct", Description: "Product identifier", Required: true},
				{Name: "ChiLocale", Description: "Locale specification for internationalization"},
				{Name: "OmegaDecorateCxxNames", Description: "Whether to decorate C++ names"},
			},
		},
		{
			Name:        "ZetaMessage",
			Description: "Container for message entries",
			Details:     "Groups all message entries in the resource catalog.",
			Children:    []string{"BetaEntry"},
		},
		{
			Name:        "BetaEntry",
			Description: "Individual message entry with unique key",
			Details:     "Represents a single message or diagnostic entry in the catalog. Each entry must have a unique PsiKey.",
			Children:    []string{"OmegaA", "SigmaDiag", "LambdaActions", "RandomElement1"},
			Attributes: []AttributeDef{
				{Name: "PsiKey", Description: "Unique identifier for this message entry", Required: true},
				{Name: "PhiTranslate", Description: "Whether this entry should be translated"},
				{Name: "MuCdata", Description: "Whether content should be treated as CDATA"},
				{Name: "NuNote", Description: "Additional notes for translators"},
				{Name: "XiContext", Description: "Context type: error, warning, diagnostic, textstring, paramobject"},
				{Name: "RandomAttr1", Description: "Optional integer attribute"},
			},
		},
		{
			Name:        "LambdaActions",
			Description: "Container for message actions",
			Details:     "Groups related actions that can be performed on a message entry.",
			Children:    actionChildren(),
			Attributes:  actionContainerAttrs(),
		},
		{
			Name:        "ThetaActions",
			Description: "Advanced action container",
			Details:     "Container for complex action definitions with additional features.",
			Children:    actionChildren(),
			Attributes:  actionContainerAttrs(),
		},
		{
			Name:        "DeltaAction",
			Description: "Action definition for user interactions",
			Details:     "Defines an action that can be performed by the user, such as fix-it suggestions or help actions.",
			Children:    []string{"EpsilonCmd", "ZetaParams", "EtaCargs", "ThetaTxt", "IotaMsg"},
			Attributes: []AttributeDef{
				{Name: "KappaEnabled", Description: "Whether this action is enabled"},
				{Name: "LambdaId", Description: "Unique identifier for this action"},
				{Name: "MuType", Description: "Action type: fixthis, suggest, suppress, help, doc", Required: true},
				{Name: "NuBtn", Description: "Button type: none, fix, resolve, apply, open, suppress, disable"},
				{Name: "XiRetvalue", Description: "Return value: true, false, yes, no"},
			},
		},
		{
			Name:        "OmegaA",
			Description: "Hyperlink to Custom objects",
			Details:     "Creates a link to a Custom object or model element.",
			Attributes: []AttributeDef{
				{Name: "RhoHref", Description: "Target reference for the hyperlink", Required: true},
				{Name: "SigmaFileName", Description: "Associated file name"},
				{Name: "TauStyle", Description: "Display style for the link"},
				{Name: "UpsilonId", Description: "Unique identifier for the link"},
				{Name: "RandomAttr2", Description: "Optional string attribute"},
			},
		},
		{
			Name:        "SigmaDiag",
			Description: "Diagnostic link to Custom UI",
			Details:     "Creates a link to Custom UI elements for diagnostic purposes.",
			Attributes: []AttributeDef{
				{Name: "PhiObjP", Description: "Object paramobject reference", Required: true},
				{Name: "ChiObjU", Description: "Object UI reference", Required: true},
				{Name: "PsiObjN", Description: "Object name for display"},
			},
		},
		linkHost("EpsilonCmd", "Command text of an action"),
		{
			Name:        "ZetaParams",
			Description: "Parameter list of an action",
			Children:    []string{"BetaPrm"},
		},
		{
			Name:        "BetaPrm",
			Description: "A single action parameter",
			Children:    []string{"GammaObj", "DeltaName", "EpsilonVal"},
		},
		linkHost("GammaObj", "Object a parameter refers to"),
		{Name: "DeltaName", Description: "Parameter name"},
		{Name: "EpsilonVal", Description: "Parameter value"},
		{
			Name:        "EtaCargs",
			Description: "Command argument list of an action",
			Children:    []string{"PhiCarg"},
		},
		{
			Name:        "PhiCarg",
			Description: "A single command argument",
			Details:     "Describes one argument passed to the command, prompted as text or chosen from a menu.",
			Children:    []string{"PsiTxtPrompt", "ChiDefCmd", "OmegaEnumCmd", "SigmaEnum", "RandomElement2"},
			Attributes: []AttributeDef{
				{Name: "TauName", Description: "Argument name"},
				{Name: "UpsilonType", Description: "Argument input type: text, menu"},
				{Name: "PhiTranslate", Description: "Whether the argument prompt should be translated"},
			},
		},
		{Name: "PsiTxtPrompt", Description: "Prompt text shown for a command argument"},
		linkHost("ChiDefCmd", "Default command for an argument"),
		linkHost("OmegaEnumCmd", "Command that enumerates argument choices"),
		{Name: "SigmaEnum", Description: "Static enumeration of argument choices"},
		linkHost("ThetaTxt", "Display text of an action"),
		{
			Name:        "IotaMsg",
			Description: "Message shown by an action",
			Children:    []string{"BetaArg"},
		},
		{
			Name:        "BetaArg",
			Description: "Argument substituted into a message",
			Children:    []string{"OmegaA"},
		},
		{
			Name:        "InsertActions",
			Description: "Actions inserted from another entry",
			Children:    []string{"BetaArg"},
		},
		{
			Name:        "ActionCatalog",
			Description: "Reference to a shared action catalog",
			Children:    []string{"BetaArg"},
		},
		{Name: "RandomElement1"},
		{Name: "RandomElement2"},
		{Name: "RandomElement3"},
		{Name: "GammaParamsType"},
		linkHost("AlphaActionTxtType", ""),
		linkHost("RhoCommandType", ""),
		{Name: "TauPromptType"},
		{Name: "UpsilonUserMsgType"},
		{Name: "PhiCargType"},
		{Name: "ChiCargsType"},
		{Name: "PsiAMsgArgumentType"},
		{
			Name:       "OmegaMsgActType",
			Attributes: []AttributeDef{{Name: "GammaId", Description: "Identifier of the referenced message action"}},
		},
		{Name: "BetaParamType"},
		{
			Name: "EpsilonSomeType",
			Attributes: []AttributeDef{
				{Name: "KappaEnabled", Description: "Whether the referenced actions are enabled"},
				{Name: "LambdaFromId", Description: "Entry the actions are taken from"},
				{Name: "MuActionableIdentifiers", Description: "Identifiers of the actions to take"},
			},
		},
		{
			Name: "ZetaActionCatalogIndirectType",
			Attributes: []AttributeDef{
				{Name: "KappaEnabled", Description: "Whether the catalog actions are enabled"},
				{Name: "LambdaFromId", Description: "Entry the catalog is taken from"},
				{Name: "MuIds", Description: "Identifiers of the catalog actions"},
				{Name: "NuId", Description: "Identifier of the catalog"},
			},
		},
		{Name: "PiIntroType"},
		{Name: "GammaHLType"},
		{Name: "DeltaDType"},
	}
}

func actionChildren() []string {
	return []string{"DeltaAction", "InsertActions", "ActionCatalog", "RandomElement3"}
}

func actionContainerAttrs() []AttributeDef {
	return []AttributeDef{
		{Name: "XiExFixThese", Description: "Whether fix-it actions are mutually exclusive"},
		{Name: "KappaEnabled", Description: "Whether actions are enabled"},
		{Name: "MuOrder", Description: "Ordering strategy for actions"},
	}
}

// linkHost declares a text element that may carry OmegaA and SigmaDiag links.
func linkHost(name, description string) *ElementDef {
	return &ElementDef{
		Name:        name,
		Description: description,
		Children:    []string{"OmegaA", "SigmaDiag"},
	}
}

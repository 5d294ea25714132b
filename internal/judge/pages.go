package judge

import (
	"github.com/JaimeStill/penguin/internal/mediation"
	"github.com/JaimeStill/penguin/internal/verdict"
	"github.com/JaimeStill/penguin/pkg/web"
)

// Layout is the shared page layout every view renders into.
const Layout = "app.html"

// Views rendered by the handler.
var (
	InputView    = web.ViewDef{Template: "input.html", Title: "Tell the Penguin what happened"}
	WaitingView  = web.ViewDef{Template: "waiting.html", Title: "The Penguin is deliberating"}
	VerdictView  = web.ViewDef{Template: "verdict.html", Title: "Verdict"}
	NotFoundView = web.ViewDef{Template: "notfound.html", Title: "Not Found"}
)

// Views lists every view for template parsing.
func Views() []web.ViewDef {
	return []web.ViewDef{InputView, WaitingView, VerdictView, NotFoundView}
}

// Messages shown above the form when a submission fails.
const (
	WarningIncomplete = "Please fill in all fields for both partners before asking the Penguin Judge."
	WarningService    = "The Penguin Judge could not reach a verdict right now. Please try again in a moment."
	WarningTooLarge   = "That is a lot to take in. Please shorten your descriptions and try again."
)

// InputPage is the data for the input form.
type InputPage struct {
	Options mediation.Options
	Report  mediation.Report
	Warning string
}

// WaitingPage is the data for the interstitial shown before the verdict.
type WaitingPage struct {
	DelaySeconds int
	Target       string
}

// VerdictPage is the data for the verdict document.
type VerdictPage struct {
	Display verdict.Display
}

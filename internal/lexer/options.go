package lexer

import "midl/internal/diag"

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics; nil discards them.
	Reporter diag.Reporter
}

func (o Options) reporter() diag.Reporter {
	if o.Reporter == nil {
		return diag.NopReporter{}
	}
	return o.Reporter
}

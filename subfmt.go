// Package subfmt compiles substitution format strings into reusable plans
// and evaluates them once per observed event, producing either flat text or
// a structured value tree.
//
// A format string mixes literal text with %COMMAND% tokens:
//
//	Hello, %NAME%! Status: %STATUS(detail):32%
//
// # Basic Usage
//
// Compile a format once, then format any number of events:
//
//	f := subfmt.MustNewFormatter("%METHOD% %PATH% -> %STATUS%")
//	line := f.Format(event)
//
// # Command Syntax
//
// A command token has the form %NAME%, %NAME(SUBCOMMAND)%, %NAME:LENGTH% or
// %NAME(SUBCOMMAND):LENGTH%. NAME uses only A-Z, 0-9 and _. SUBCOMMAND is
// opaque to the grammar and may contain anything except ')'. LENGTH is a
// non-negative integer cap on the produced text. %% is an escaped literal
// '%'. Any other text is copied through verbatim.
//
// # Resolvers
//
// Commands are turned into providers by resolvers. Resolution order is
// fixed: process-wide builtins first, then per-plan resolvers in
// declaration order, then the fallback. Extend the vocabulary by
// implementing CommandResolver:
//
//	type upperResolver struct{}
//
//	func (upperResolver) ResolveCommand(cmd subfmt.Command) subfmt.Provider {
//	    if cmd.Name != "UPPER" {
//	        return nil
//	    }
//	    return subfmt.ProviderFunc(func(ctx subfmt.Context) (string, bool) {
//	        return strings.ToUpper(cmd.Subcommand), true
//	    })
//	}
//
//	f, err := subfmt.NewFormatter("%UPPER(hi)%", subfmt.WithResolvers(upperResolver{}))
//
// # Structured Output
//
// A template document (map/list/string/number) compiles into a structured
// formatter whose output mirrors the document shape:
//
//	doc, _ := subfmt.DocumentFromYAML([]byte("method: '%METHOD%'\ncode: 200\n"))
//	jf, _ := subfmt.NewJSONFormatter(doc, subfmt.WithOmitEmpty())
//	line := jf.Format(event)
//
// # Absence
//
// A provider yielding no value for an event is an expected outcome, never
// an error. Flat formatting substitutes the empty-value placeholder
// (default "-"); structured formatting produces a null that omit-empty
// rules may drop entirely.
//
// # Configuration
//
// All compiled artifacts take functional options:
//
//	f, err := subfmt.NewFormatter(format,
//	    subfmt.WithResolvers(myResolver),
//	    subfmt.WithEmptyValue(""),
//	    subfmt.WithLogger(logger),
//	)
package subfmt

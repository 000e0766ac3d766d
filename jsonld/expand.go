package jsonld

import (
	"context"
	"fmt"

	"github.com/piprate/json-gold/ld"
)

// Options configures Expand/Compact. Loader is the document loader
// hook used to resolve remote contexts encountered during processing.
type Options struct {
	Loader DocumentLoader
}

func (o Options) processorOptions(ctx context.Context) *ld.JsonLdOptions {
	opts := ld.NewJsonLdOptions("")
	if o.Loader != nil {
		opts.DocumentLoader = &goldDocumentLoader{ctx: ctx, dl: o.Loader}
	}
	return opts
}

// Expand runs the W3C JSON-LD 1.1 expansion algorithm over doc,
// producing the fully expanded (absolute-IRI keyed) node array form.
func Expand(ctx context.Context, doc interface{}, opts Options) ([]interface{}, error) {
	proc := ld.NewJsonLdProcessor()
	out, err := proc.Expand(doc, opts.processorOptions(ctx))
	if err != nil {
		return nil, fmt.Errorf("jsonld: expand: %w", err)
	}
	return out, nil
}

// Compact runs the W3C JSON-LD 1.1 compaction algorithm over doc
// against ctxDoc (a context value: a URI string, a []interface{} of
// such, or an inline context object).
func Compact(ctx context.Context, doc interface{}, ctxDoc interface{}, opts Options) (map[string]interface{}, error) {
	proc := ld.NewJsonLdProcessor()
	out, err := proc.Compact(doc, ctxDoc, opts.processorOptions(ctx))
	if err != nil {
		return nil, fmt.Errorf("jsonld: compact: %w", err)
	}
	return out, nil
}

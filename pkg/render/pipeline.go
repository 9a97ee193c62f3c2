package render

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/directive"
	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/document"
	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/extract"
	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/logger"
	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/translation"
)

// TreeRenderer turns a document tree into an HTML string. Implementations
// must be deterministic and must not mutate the document.
type TreeRenderer interface {
	Render(doc *document.Document) (string, error)
}

// Result is the output of one render.
type Result struct {
	// HTML is the final markup after translation and variable substitution.
	HTML string

	// Text is a lossy plain-text derivation of HTML.
	Text string

	// MissingTranslations holds human-readable advisory notes about
	// translation gaps and fallbacks. Empty on a fully translated render.
	MissingTranslations []string
}

// Pipeline is the sole rendering entry point. It is safe for concurrent
// use.
type Pipeline struct {
	renderer     TreeRenderer
	translations *translation.Resolver
	log          *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTranslations enables the translation stage. Without it, renders with
// a non-default language produce untranslated output and a single advisory
// note.
func WithTranslations(r *translation.Resolver) Option {
	return func(p *Pipeline) {
		p.translations = r
	}
}

// WithLogger sets the logger for translation fallback events.
// Default: discard.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// New creates a Pipeline around a TreeRenderer.
func New(renderer TreeRenderer, opts ...Option) *Pipeline {
	p := &Pipeline{
		renderer: renderer,
		log:      logger.NewNope(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render resolves one document into HTML and plain text.
//
// Translation runs on a copy of the tree; the caller's document is never
// mutated. Translation problems degrade to untranslated output with
// advisory notes in Result.MissingTranslations. The only error returned
// is a TreeRenderer failure.
func (p *Pipeline) Render(ctx context.Context, doc *document.Document, opts Options) (Result, error) {
	opts = opts.normalized()

	var res Result

	tree := doc
	if opts.translate() {
		tree, res.MissingTranslations = p.translateTree(ctx, doc, opts)
	}

	html, err := p.renderer.Render(tree)
	if err != nil {
		return Result{}, fmt.Errorf("render: tree renderer: %w", err)
	}

	if opts.replaceVariables() {
		html = directive.Process(html, opts.SampleData)
	}

	res.HTML = html
	res.Text = HTMLToText(html)
	return res, nil
}

// translateTree applies the fallback chain target → default → untranslated
// and returns the tree to render plus advisory notes. It never fails: load
// errors produce a note and the original tree.
func (p *Pipeline) translateTree(ctx context.Context, doc *document.Document, opts Options) (*document.Document, []string) {
	if p.translations == nil {
		return doc, []string{fmt.Sprintf("no translation source configured, rendering %q untranslated", opts.Language)}
	}

	target, err := p.translations.Load(ctx, opts.TemplateID, opts.Language)
	if err != nil {
		p.log.WarnContext(ctx, "translation load failed, rendering untranslated",
			slog.String("template_id", opts.TemplateID),
			slog.String("language", opts.Language),
			slog.Any("error", err))
		return doc, []string{fmt.Sprintf("failed to load translations for %q, rendering untranslated source", opts.Language)}
	}

	p.logGaps(ctx, doc, opts, target)

	if len(target) > 0 {
		return document.ApplyTranslations(doc, target), nil
	}

	fallback, err := p.translations.Load(ctx, opts.TemplateID, opts.DefaultLanguage)
	if err != nil || len(fallback) == 0 {
		return doc, []string{fmt.Sprintf("no translations found for %q or %q, rendering untranslated source", opts.Language, opts.DefaultLanguage)}
	}

	note := fmt.Sprintf("no translations found for %q, using %q", opts.Language, opts.DefaultLanguage)
	return document.ApplyTranslations(doc, fallback), []string{note}
}

// logGaps records a pending row for every translatable occurrence the
// target language map does not cover. Called only after a successful
// target load, so an unreachable store is not flooded with writes.
func (p *Pipeline) logGaps(ctx context.Context, doc *document.Document, opts Options, target map[string]string) {
	for _, item := range extract.TranslatableText(doc) {
		if _, ok := target[document.MapKey(item.BlockID, item.TranslationKey)]; ok {
			continue
		}
		p.translations.LogMissing(ctx, opts.TemplateID, opts.Language, item.BlockID, item.TranslationKey)
	}
}

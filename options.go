package s2d

import "log/slog"

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for shader diagnostics and warnings.
// A nil logger keeps the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) { r.logger = loggerOr(l) }
}

// WithStrictLink makes New fail when a program does not link.
//
// By default a link failure is logged and the program handle is kept, so
// draws through it silently render nothing. Strict mode returns the
// *ProgramLinkError from New instead.
func WithStrictLink(strict bool) Option {
	return func(r *Renderer) { r.strictLink = strict }
}

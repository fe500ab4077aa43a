// font contains helper functions for parsing sfnt fonts, probing the
// platform's usual font locations for a usable monospaced face, and
// deriving the discrete size variants used for organic glyph size
// jitter.
//
// Nothing in here is required for generation itself: the pipeline only
// needs "some font or none", and degrades to built-in bitmap glyphs
// when probing fails (see [ErrNoFontFound]).
package font

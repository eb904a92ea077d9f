// Package convert rewrites BBCode markup into Markdown.
//
// The conversion is a fixed, ordered list of rewrite rules. Each rule is a
// case-insensitive, non-greedy pattern whose captured content may span
// newlines. Rules run once each, in declaration order, over the output of the
// rules before them:
//
//  1. [url=LINK]TEXT[/url]      -> [TEXT](LINK)
//  2. [url]LINK[/url]           -> [LINK](LINK)
//  3. [b]TEXT[/b]               -> **TEXT**
//  4. [i]TEXT[/i]               -> *TEXT*
//  5. [u]TEXT[/u]               -> <u>TEXT</u>
//  6. [size=SIZE]TEXT[/size]    -> <span style="font-size:SIZE;">TEXT</span>
//  7. [img]LINK[/img]           -> ![image](LINK)
//
// The link rules run first so that the styling rules never see the bracketed
// URL syntax of a half-converted link.
//
// Conversion is total. Unknown tags, unbalanced tags and plain text pass
// through unchanged, and there is no escape syntax: a literal closing tag
// inside tagged content ends the match early. Nested tags of the same kind are
// not paired up; [b]a[b]b[/b]c[/b] becomes **a[b]b**c[/b].
//
// Nothing in this package performs I/O, logs, or holds mutable state, so all
// functions are safe for concurrent use.
package convert

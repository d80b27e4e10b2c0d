// Package ir builds the flat intermediate representation consumed by the packer.
//
// An IR is the token stream of a file with three kinds of synthetic elements
// mixed in: spacers that keep adjacent tokens from fusing, junk placeholders at
// statement boundaries and paired parenthesis markers around wrappable
// expressions. Placeholders start empty; the justifier grows them later.
package ir

// Package render draws the image artifacts: a line chart for a numeric
// series and a word cloud for a ranked frequency table. Both are built on
// gonum.org/v1/plot and write PNG, SVG or PDF depending on the file
// extension.
package render

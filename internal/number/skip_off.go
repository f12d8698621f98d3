//go:build !skipnumberparsing

package number

const skipNumberParsing = false

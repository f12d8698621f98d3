//go:build !amd64 && !arm64

package number

func selectEightDigitParser() EightDigitParser {
	return Sequential{}
}

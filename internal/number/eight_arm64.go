//go:build arm64

package number

import "golang.org/x/sys/cpu"

func selectEightDigitParser() EightDigitParser {
	if cpu.ARM64.HasASIMD {
		return SWAR{}
	}
	return Sequential{}
}

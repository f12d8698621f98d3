//go:build amd64

package number

import "golang.org/x/sys/cpu"

// The lane sequence needs pmaddubsw (SSSE3) and packusdw (SSE4.1).
func selectEightDigitParser() EightDigitParser {
	if cpu.X86.HasSSSE3 && cpu.X86.HasSSE41 {
		return Lanes{}
	}
	return SWAR{}
}

package quad

import (
	"fmt"
	"os"
	"strings"
)

// ReadShaderSource returns the text of the shader file at path with CRLF
// line endings normalized and every line newline-terminated.
func ReadShaderSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to open file '%s': %w", path, err)
	}

	src := strings.ReplaceAll(string(data), "\r\n", "\n")
	if src != "" && !strings.HasSuffix(src, "\n") {
		src += "\n"
	}
	return src, nil
}

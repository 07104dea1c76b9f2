//go:build windows

package process

// rundll32 avoids the quoting rules of "cmd /c start".
func opener() (string, []string) {
	return "rundll32", []string{"url.dll,FileProtocolHandler"}
}

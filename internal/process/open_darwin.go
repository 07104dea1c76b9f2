//go:build darwin

package process

func opener() (string, []string) {
	return "open", nil
}

//go:build !darwin && !windows

package process

func opener() (string, []string) {
	return "xdg-open", nil
}

//go:build !dialog
// +build !dialog

package main

// pickFile is a stub used when the native dialog build tag isn't set.
func pickFile(title string) (string, error) {
	return "", errNoDialog
}

//go:build dialog
// +build dialog

package main

import (
	"errors"

	"github.com/sqweek/dialog"

	"github.com/milk9111/tilemapeditor/storage"
)

// pickFile opens the native file dialog. A cancelled dialog yields "".
func pickFile(title string) (string, error) {
	path, err := dialog.File().Filter("Bitmap files", storage.ImageExt[1:]).Title(title).Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", nil
	}
	return path, err
}

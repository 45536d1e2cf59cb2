package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

var errUINotReady = errors.New("window is not ready yet")

// wailsUI implements the UI providers of the services on top of the Wails runtime.
// Until startup hands it a context, logs go to stdout and dialogs are skipped.
type wailsUI struct {
	ctx context.Context
}

func (u *wailsUI) OpenFileDialog(title string, filters []string) (string, error) {
	if u.ctx == nil {
		return "", errUINotReady
	}
	fileFilters := make([]runtime.FileFilter, 0, len(filters))
	for _, f := range filters {
		fileFilters = append(fileFilters, runtime.FileFilter{
			DisplayName: fmt.Sprintf("%s (%s)", filterName(f), f),
			Pattern:     f,
		})
	}
	return runtime.OpenFileDialog(u.ctx, runtime.OpenDialogOptions{
		Title:   title,
		Filters: fileFilters,
	})
}

func (u *wailsUI) ShowMessage(title, message string) {
	u.dialog(runtime.InfoDialog, title, message)
}

func (u *wailsUI) ShowError(title, message string) {
	u.dialog(runtime.ErrorDialog, title, message)
}

func (u *wailsUI) Confirm(title, message string) (bool, error) {
	if u.ctx == nil {
		return false, errUINotReady
	}
	res, err := runtime.MessageDialog(u.ctx, runtime.MessageDialogOptions{
		Type:          runtime.QuestionDialog,
		Title:         title,
		Message:       message,
		Buttons:       []string{"Yes", "No"},
		DefaultButton: "No",
		CancelButton:  "No",
	})
	if err != nil {
		return false, err
	}
	return res == "Yes", nil
}

func (u *wailsUI) LogInfof(format string, args ...interface{}) {
	if u.ctx == nil {
		fmt.Printf("INF | "+format+"\n", args...)
		return
	}
	runtime.LogInfof(u.ctx, format, args...)
}

func (u *wailsUI) LogErrorf(format string, args ...interface{}) {
	if u.ctx == nil {
		fmt.Printf("ERR | "+format+"\n", args...)
		return
	}
	runtime.LogErrorf(u.ctx, format, args...)
}

func (u *wailsUI) EventsEmit(eventName string, args ...interface{}) {
	if u.ctx == nil {
		return
	}
	runtime.EventsEmit(u.ctx, eventName, args...)
}

func (u *wailsUI) dialog(kind runtime.DialogType, title, message string) {
	if u.ctx == nil {
		fmt.Printf("%s: %s\n", title, message)
		return
	}
	if _, err := runtime.MessageDialog(u.ctx, runtime.MessageDialogOptions{
		Type:    kind,
		Title:   title,
		Message: message,
	}); err != nil {
		runtime.LogErrorf(u.ctx, "dialog %q failed: %v", title, err)
	}
}

func filterName(pattern string) string {
	if strings.Contains(pattern, ".exe") {
		return "Executable Files"
	}
	return "Pictures"
}

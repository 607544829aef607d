//go:build windows

package locales

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// LOCALE_NAME_MAX_LENGTH
const localeNameMaxLength = 85

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetKeyboardLayoutList = user32.NewProc("GetKeyboardLayoutList")
	procLCIDToLocaleName      = kernel32.NewProc("LCIDToLocaleName")
)

func installedLocaleNames() ([]string, error) {
	count, _, err := procGetKeyboardLayoutList.Call(0, 0)
	if count == 0 {
		return nil, fmt.Errorf("count keyboard layouts: %w", err)
	}

	layouts := make([]uintptr, count)
	count, _, err = procGetKeyboardLayoutList.Call(count, uintptr(unsafe.Pointer(&layouts[0])))
	if count == 0 {
		return nil, fmt.Errorf("get keyboard layout list: %w", err)
	}

	names := make([]string, 0, count)
	buf := make([]uint16, localeNameMaxLength)
	for _, hkl := range layouts[:count] {
		// the low word of a layout handle is its language identifier
		lcid := hkl & 0xffff
		n, _, _ := procLCIDToLocaleName.Call(lcid, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)), 0)
		if n == 0 {
			names = append(names, "")
			continue
		}
		names = append(names, windows.UTF16ToString(buf[:n]))
	}

	return names, nil
}

//go:build linux

package clipboard

import "os"

// imageCommands prefers wl-copy under Wayland, then xclip
func imageCommands() []command {
	wayland := command{name: "wl-copy", args: []string{"--type", "image/png"}}
	xclip := command{name: "xclip", args: []string{"-selection", "clipboard", "-t", "image/png", "-i"}}
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return []command{wayland, xclip}
	}
	return []command{xclip, wayland}
}

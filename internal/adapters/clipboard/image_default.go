//go:build !darwin && !linux && !windows

package clipboard

// imageCommands has no image tool on unsupported platforms
func imageCommands() []command {
	return nil
}

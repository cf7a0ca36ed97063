//go:build windows

package clipboard

func imageCommands() []command {
	script := `Add-Type -AssemblyName System.Windows.Forms; Add-Type -AssemblyName System.Drawing; ` +
		`$in = [Console]::OpenStandardInput(); $ms = New-Object System.IO.MemoryStream; $in.CopyTo($ms); ` +
		`$ms.Position = 0; [System.Windows.Forms.Clipboard]::SetImage([System.Drawing.Image]::FromStream($ms))`
	return []command{{name: "powershell", args: []string{"-NoProfile", "-STA", "-Command", script}}}
}

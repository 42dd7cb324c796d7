// Package shell renders variable assignments that a calling script can eval
// to import window settings into its environment.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// Render returns one assignment per variable in the syntax of shellType,
// joined by newlines. With export the variables are exported (sh), or
// persisted for the user (powershell, cmd). ShellTypeAuto is resolved with
// Resolve first.
func Render(shellType ShellType, vars []Var, export bool) (string, error) {
	resolved, err := Resolve(shellType)
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		line, err := assign(resolved, v.Name, v.Value, export)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func assign(shellType ShellType, name, value string, export bool) (string, error) {
	switch shellType {
	case ShellTypeSh:
		if export {
			return fmt.Sprintf("export %s=%s", name, shQuote(value)), nil
		}
		return fmt.Sprintf("%s=%s", name, shQuote(value)), nil
	case ShellTypePowershell:
		if export {
			return fmt.Sprintf("[System.Environment]::SetEnvironmentVariable(%s,%s,'User')", psQuote(name), psQuote(value)), nil
		}
		return fmt.Sprintf("$Env:%s = %s", name, psQuote(value)), nil
	case ShellTypeCmd:
		if strings.ContainsAny(value, "\r\n\"") {
			return "", fmt.Errorf("cmd cannot assign %q to %s", value, name)
		}
		if export {
			return fmt.Sprintf("setx %s \"%s\"", name, value), nil
		}
		return fmt.Sprintf("set \"%s=%s\"", name, value), nil
	default:
		return "", fmt.Errorf("unsupported shell type: %v", shellType)
	}
}

// shQuote single-quotes s for a POSIX shell; embedded single quotes become '\''.
func shQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Resolve returns shellType unless it is ShellTypeAuto, in which case the
// shell of the calling user is detected. Unknown shells are treated as sh.
func Resolve(shellType ShellType) (ShellType, error) {
	switch shellType {
	case ShellTypeSh, ShellTypePowershell, ShellTypeCmd:
		return shellType, nil
	case ShellTypeAuto:
	default:
		return ShellTypeAuto, fmt.Errorf("unsupported shell type: %v", shellType)
	}
	name, err := DetectUserShell()
	if err != nil {
		return ShellTypeAuto, fmt.Errorf("cannot detect user shell: %w", err)
	}
	return classify(name), nil
}

func classify(name string) ShellType {
	name = strings.TrimSuffix(strings.ToLower(name), ".exe")
	switch name {
	case "powershell", "pwsh":
		return ShellTypePowershell
	case "cmd":
		return ShellTypeCmd
	default:
		return ShellTypeSh
	}
}

var knownShells = []string{
	"bash", "zsh", "fish", "ksh", "sh", "dash", "tcsh", "csh",
	"powershell", "pwsh", "cmd",
}

// DetectUserShell walks the parent process chain looking for a known shell
// and returns its name, e.g. "bash" or "pwsh.exe". SHELL and COMSPEC are
// consulted only when the walk finds nothing, since they name the login
// shell rather than the running one.
func DetectUserShell() (string, error) {
	p, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		return "", fmt.Errorf("cannot get parent process: %w", err)
	}
	seen := map[int32]struct{}{}
	for p != nil {
		if _, ok := seen[p.Pid]; ok {
			break
		}
		seen[p.Pid] = struct{}{}

		name, _ := p.Name()
		if name == "" {
			if exe, _ := p.Exe(); exe != "" {
				name = filepath.Base(exe)
			}
		}
		n := strings.ToLower(name)
		for _, k := range knownShells {
			if strings.Contains(n, k) {
				return name, nil
			}
		}

		parent, perr := p.Parent()
		if perr != nil || parent == nil {
			break
		}
		p = parent
	}

	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh), nil
	}
	if com := os.Getenv("COMSPEC"); com != "" {
		return filepath.Base(com), nil
	}
	return "", fmt.Errorf("user shell not detected")
}

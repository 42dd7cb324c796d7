//go:generate go tool enumer -type=ShellType -trimprefix=ShellType -transform=kebab
package shell

// ShellType selects the assignment syntax emitted by Render.
type ShellType int

const (
	ShellTypeAuto ShellType = iota
	ShellTypeSh
	ShellTypePowershell
	ShellTypeCmd
)

// Var is one variable to assign.
type Var struct {
	Name  string
	Value string
}

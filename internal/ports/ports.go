package ports

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/shini4i/mktemp/internal/ports Namer,CmdRunner

// Namer produces a short unpredictable string usable as a filename component.
type Namer interface {
	Name() string
}

// CmdRunner executes shell commands and returns captured output.
type CmdRunner interface {
	Run(cmd string, args ...string) (stdout string, stderr string, err error)
}

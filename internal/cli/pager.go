package cli

import (
	"context"
	"io"
	"os"
	"os/exec"

	"golang.org/x/term"

	"github.com/avelorn/marklite/internal/wire"
)

const defaultPager = "less -FRSX"

// withPager pipes write's output through the configured pager when out
// is a terminal; otherwise it writes directly.
func withPager(ctx context.Context, app *wire.App, out, errOut io.Writer, write func(io.Writer) error) error {
	outFile, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(outFile.Fd())) {
		return write(out)
	}
	pager := app.V.GetString("pager.command")
	if pager == "" {
		pager = os.Getenv("PAGER")
	}
	if pager == "" {
		pager = defaultPager
	}
	cmd := exec.CommandContext(ctx, "sh", "-c", pager)
	cmd.Stdout = outFile
	if errFile, ok := errOut.(*os.File); ok {
		cmd.Stderr = errFile
	} else {
		cmd.Stderr = os.Stderr
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return write(out)
	}
	if err := cmd.Start(); err != nil {
		return write(out)
	}
	werr := write(stdin)
	stdin.Close()
	if err := cmd.Wait(); err != nil && werr == nil {
		werr = err
	}
	return werr
}

package output

import (
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/pmrewrite/packages/rewrite"
	"github.com/fatih/color"
)

// SuccessMessage is printed once a collection has been written.
const SuccessMessage = "Postman collection updated successfully."

type ConsoleFormatter struct {
	writer    io.Writer
	errWriter io.Writer
	verbose   bool
	noColor   bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer:    os.Stdout,
		errWriter: os.Stderr,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

// WithErrorWriter sets where FormatError writes. Defaults to stderr.
func WithErrorWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.errWriter = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatResult(result *rewrite.Result) {
	if f.verbose {
		f.formatChanges(result)
	}
	fmt.Fprintln(f.writer, SuccessMessage)
}

func (f *ConsoleFormatter) formatChanges(result *rewrite.Result) {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(f.writer, "%s\n", bold("Rewriting: "+result.File))
	if result.Output != "" && result.Output != result.File {
		fmt.Fprintf(f.writer, "Output:    %s\n", result.Output)
	}
	fmt.Fprintf(f.writer, "\n")

	for _, c := range result.Changes {
		name := c.Name
		if name == "" {
			name = c.Location
		}
		before := c.Before
		if c.Method != "" {
			before = c.Method + " " + before
		}
		switch c.Kind {
		case rewrite.ChangePrefixed:
			fmt.Fprintf(f.writer, "  %s %s %s → %s\n", green("~"), name, before, cyan(c.After))
		case rewrite.ChangeHeaderAdded:
			fmt.Fprintf(f.writer, "  %s %s %s\n", green("+"), name, yellow(c.After))
		case rewrite.ChangeVariableAdded:
			fmt.Fprintf(f.writer, "  %s variable %s\n", green("+"), yellow(c.After))
		}
	}
	if !result.Changed() {
		fmt.Fprintf(f.writer, "  %s\n", yellow("no changes"))
	}

	fmt.Fprintf(f.writer, "\n")
	fmt.Fprintf(f.writer, "Requests: %d prefixed, %d headers added, %d total\n",
		result.Count(rewrite.ChangePrefixed),
		result.Count(rewrite.ChangeHeaderAdded),
		result.Requests)
	fmt.Fprintf(f.writer, "Time:     %dms\n", result.Duration.Milliseconds())
	fmt.Fprintf(f.writer, "\n")
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.errWriter, "%s %v\n", red("Error:"), err)
}

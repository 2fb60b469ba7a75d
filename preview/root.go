package preview

import (
	"fmt"
	"os"
	"time"

	"settleedge_web/config"
	"settleedge_web/services"
	"settleedge_web/services/shell"
	"settleedge_web/templates/pages"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	fragment   string
	wide       bool
	transition time.Duration
}

func (o *options) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.fragment, "route", "r", "#/", "initial route as a hash fragment, e.g. #/services")
	fs.BoolVarP(&o.wide, "wide", "w", false, "start with the desktop layout")
	fs.DurationVar(&o.transition, "transition", shell.DefaultTransitionDuration, "length of one page transition")
}

// IsInteractive reports whether stdout is a terminal. Replaced in tests.
var IsInteractive = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// NewRootCmd creates the "preview" command. Without a terminal it prints a
// single snapshot of the initial state instead of starting the UI.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "preview",
		Short:         "Drive the site shell from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	opts.bind(root.Flags())

	root.AddCommand(newRoutesCmd())
	return root
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, r := range shell.Routes {
				fmt.Fprintf(out, "%d  %-10s %-12s %s\n", i+1, r, r.Fragment(), pages.Title(r))
			}
			return nil
		},
	}
}

func run(cmd *cobra.Command, opts *options) error {
	initial, ok := shell.ParseFragment(opts.fragment)
	if !ok {
		return fmt.Errorf("route %q: %w", opts.fragment, shell.ErrUnknownRoute)
	}

	nav, err := config.LoadNavigation()
	if err != nil {
		return err
	}

	sh, err := shell.New(pages.Registry(services.ServiceCatalog), initial, shell.Options{
		TransitionDuration: opts.transition,
	})
	if err != nil {
		return fmt.Errorf("creating shell: %w", err)
	}

	if !IsInteractive() {
		_, err := fmt.Fprint(cmd.OutOrStdout(), Render(sh.Snapshot(), nav, opts.wide))
		return err
	}

	_, err = tea.NewProgram(NewModel(sh, nav, opts.wide)).Run()
	return err
}

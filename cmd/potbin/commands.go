package potbin

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/potbin/internal/version"
	"github.com/arthur-debert/potbin/pkg/cobrax/topics"
	"github.com/arthur-debert/potbin/pkg/config"
	"github.com/arthur-debert/potbin/pkg/logging"
	"github.com/arthur-debert/potbin/pkg/output"
	"github.com/arthur-debert/potbin/pkg/pdec"
	"github.com/arthur-debert/potbin/pkg/runner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

//go:embed topics/*.md
var topicsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	g := &globalOptions{}
	renderer := topics.NewGlamourRenderer(!stdoutIsTerminal() || os.Getenv("NO_COLOR") != "")

	rootCmd := &cobra.Command{
		Use:     "potbin",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(g.verbosity)
			if g.noColor {
				renderer.Style = "notty"
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			// Show help but return an error to indicate incorrect usage
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&g.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, MsgFlagNoColor)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	tm, err := topics.New(topicsFS, "topics", topics.Options{
		Extensions: []string{".md"},
		Renderer:   renderer,
	})
	if err != nil {
		// The topics are embedded, so this only fails on a broken build
		panic(fmt.Errorf(MsgErrTopicsSetup, err))
	}

	// Add all commands
	rootCmd.AddCommand(newSyncCmd(g))
	rootCmd.AddCommand(newResolveCmd(g))
	rootCmd.AddCommand(newGenconfigCmd(g))
	rootCmd.AddCommand(newSyntaxCmd(tm))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Topic-based help system
	tm.Install(rootCmd)
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

func newSyncCmd(g *globalOptions) *cobra.Command {
	var (
		dir   string
		quiet bool
	)

	cmd := &cobra.Command{
		Use:     "sync [files...]",
		Short:   MsgSyncShort,
		Long:    MsgSyncLong,
		Example: MsgSyncExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if dir != "" {
				overrides["declarations.dir"] = dir
			}
			if quiet {
				overrides["output.quiet"] = true
			}
			cfg, err := g.loadConfig(overrides)
			if err != nil {
				return err
			}

			lockPath, err := cfg.LockPath()
			if err != nil {
				return err
			}
			lock, err := runner.AcquireLock(lockPath)
			if err != nil {
				return err
			}
			defer func() {
				if err := lock.Release(); err != nil {
					log.Warn().Err(err).Msg("Failed to release lock")
				}
			}()

			log.Info().
				Str("dir", cfg.DeclarationsDir()).
				Strs("files", args).
				Bool("dry_run", g.dryRun).
				Msg("Syncing declarations")

			reporter := output.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Output.NoColor)
			reporter.Quiet = cfg.Output.Quiet
			r := newPipeline(cfg, g.dryRun).runner(cfg, reporter)

			var summary runner.Summary
			if len(args) > 0 {
				summary, err = r.RunFiles(args)
			} else {
				summary, err = r.RunDir(cfg.DeclarationsDir())
			}

			reporter.Summary(summary, g.dryRun)
			if g.dryRun {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", MsgFlagDir)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, MsgFlagQuiet)
	return cmd
}

func newResolveCmd(g *globalOptions) *cobra.Command {
	var (
		with  []string
		cloud string
	)

	cmd := &cobra.Command{
		Use:     "resolve <expression>",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		Example: MsgResolveExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(nil)
			if err != nil {
				return err
			}
			// Resolution never mutates, but inference must not mark anything either
			p := newPipeline(cfg, true)

			for _, file := range with {
				lines, _, err := p.syntax.ParseFile(p.fs, file)
				if err != nil {
					return fmt.Errorf(MsgErrReadDecl, err)
				}
				for _, line := range lines {
					if line.Kind != pdec.KindDeclaration {
						continue
					}
					name, value, err := p.resolver.Declare(line.Text)
					if err != nil {
						_, _ = fmt.Fprintln(cmd.ErrOrStderr(), output.SkipMessage(line, err))
						continue
					}
					log.Debug().Str("name", name).Str("value", value).Msg("Loaded declaration")
				}
			}

			resolved, err := p.resolver.Expand(args[0])
			if err != nil {
				if decls := p.resolver.Declarations(); decls.Len() > 0 {
					return fmt.Errorf(MsgErrKnownAliases, err, strings.Join(decls.Names(), ", "))
				}
				return err
			}

			if cloud != "" {
				cloudPath, err := p.resolver.Expand(cloud)
				if err != nil {
					return err
				}
				resolved = p.reconciler.InferBasename(cloudPath, resolved)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), resolved)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&with, "with", nil, MsgFlagWith)
	cmd.Flags().StringVar(&cloud, "for", "", MsgFlagFor)
	return cmd
}

func newGenconfigCmd(g *globalOptions) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenconfigShort,
		Long:    MsgGenconfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), config.GenerateConfigContent())
				return nil
			}

			cfg, err := g.loadConfig(nil)
			if err != nil {
				return err
			}
			content, err := config.GenerateTOML(cfg)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newSyntaxCmd(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:     "syntax",
		Short:   MsgSyntaxShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tm.PrintTopic(cmd.OutOrStdout(), "syntax")
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man [dir]",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "POTBIN",
				Section: "1",
				Source:  "potbin " + version.String(),
				Manual:  "potbin manual",
			}

			if len(args) == 0 {
				return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
			}
			if err := os.MkdirAll(args[0], 0755); err != nil {
				return err
			}
			if err := doc.GenManTree(cmd.Root(), header, args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, args[0])
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

package potbin

import (
	"fmt"

	"github.com/arthur-debert/potbin/pkg/config"
	"github.com/arthur-debert/potbin/pkg/filesystem"
	"github.com/arthur-debert/potbin/pkg/output/styles"
	"github.com/arthur-debert/potbin/pkg/pdec"
	"github.com/arthur-debert/potbin/pkg/reconcile"
	"github.com/arthur-debert/potbin/pkg/resolver"
	"github.com/arthur-debert/potbin/pkg/runner"
	"github.com/arthur-debert/potbin/pkg/types"
)

// globalOptions holds the persistent flags.
type globalOptions struct {
	verbosity  int
	dryRun     bool
	configFile string
	noColor    bool
}

// loadConfig reads the configuration, applying flag overrides.
func (g *globalOptions) loadConfig(overrides map[string]interface{}) (*config.Config, error) {
	if overrides == nil {
		overrides = map[string]interface{}{}
	}
	if g.noColor {
		overrides["output.no_color"] = true
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: g.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	if cfg.Output.Styles != "" {
		if err := styles.LoadStyles(cfg.Output.Styles); err != nil {
			return nil, fmt.Errorf(MsgErrLoadStyles, err)
		}
	}
	return cfg, nil
}

// pipeline is the resolver, reconciler and syntax built from one
// configuration.
type pipeline struct {
	fs         types.FS
	resolver   *resolver.Resolver
	reconciler *reconcile.Reconciler
	syntax     pdec.Syntax
}

func newPipeline(cfg *config.Config, dryRun bool) *pipeline {
	fs := filesystem.NewOS()

	syntax := pdec.DefaultSyntax()
	syntax.DefaultLocal = cfg.Sync.DefaultLocal

	return &pipeline{
		fs:       fs,
		resolver: resolver.New(fs, nil),
		reconciler: reconcile.New(fs, reconcile.Options{
			Marker: cfg.Sync.Marker,
			Ignore: reconcile.NewIgnoreSet(cfg.Sync.Ignore...),
			DryRun: dryRun,
		}),
		syntax: syntax,
	}
}

func (p *pipeline) runner(cfg *config.Config, reporter runner.Reporter) *runner.Runner {
	return runner.New(p.fs, p.resolver, p.reconciler, runner.Options{
		Syntax:    p.syntax,
		Extension: cfg.Declarations.Extension,
		Reporter:  reporter,
	})
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/xni"
	"github.com/lestrrat-go/xni/config"
	"github.com/lestrrat-go/xni/event"
	"github.com/lestrrat-go/xni/internal/cliutil"
	"github.com/lestrrat-go/xni/sax"
	"github.com/lestrrat-go/xni/scanner"
	"github.com/lestrrat-go/xni/settings"
	"golang.org/x/text/language"
)

type cmdopts struct {
	Config            string `long:"config" description:"YAML file with features and parameters"`
	NoNamespaces      bool   `long:"no-namespaces"`
	NamespacePrefixes bool   `long:"namespace-prefixes"`
	NoComments        bool   `long:"no-comments"`
	Continue          bool   `long:"continue" description:"keep going after fatal errors"`
	Locale            string `long:"locale"`
	Quiet             bool   `short:"q" long:"quiet" description:"only report errors"`
	Trace             bool   `long:"trace"`
	Version           bool   `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("xni-events: using xni version %s\n", xni.Version)
}

func showUsage() {
	fmt.Printf(`Usage : xni-events [options] XMLfiles ...
	Parse the XML files and print the events the parser reports
	--config FILE : read features and parameters from FILE
	--no-namespaces : report names without namespace processing
	--namespace-prefixes : report xmlns attributes
	--no-comments : do not report comments
	--continue : do not stop on the first fatal error
	--locale TAG : language of the error messages
	--quiet : only report errors
	--trace : log the parser's progress to stderr
	--version : display the version of the XML library used
`)
}

func newParser(opts *cmdopts) (*xni.Parser, error) {
	p := xni.New(config.WithScanner(scanner.New()))
	if opts.Config != "" {
		cfg, err := cliutil.LoadConfig(opts.Config)
		if err != nil {
			return nil, err
		}
		if err := cfg.Apply(p); err != nil {
			return nil, err
		}
	}

	if opts.NoNamespaces {
		if err := p.SetFeature(settings.FeatureNamespaces, false); err != nil {
			return nil, err
		}
	}
	if opts.NamespacePrefixes {
		if err := p.SetFeature(settings.FeatureNamespacePrefixes, true); err != nil {
			return nil, err
		}
	}
	if opts.Continue {
		if err := p.SetFeature(settings.FeatureContinueAfterFatalError, true); err != nil {
			return nil, err
		}
	}
	if opts.NoComments {
		if err := p.Configuration().SetParameter(config.ParamComments, false); err != nil {
			return nil, err
		}
	}
	if opts.Locale != "" {
		tag, err := language.Parse(opts.Locale)
		if err != nil {
			return nil, err
		}
		p.SetLocale(tag)
	}

	if !opts.Quiet {
		emitter := sax.NewEventEmitter(os.Stdout)
		p.SetContentHandler(emitter)
		if err := p.SetLexicalHandler(emitter); err != nil {
			return nil, err
		}
	}
	p.Configuration().SetErrorHandler(config.NewDefaultErrorHandler(os.Stderr))
	return p, nil
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	var inputs []*sax.InputSource
	switch {
	case len(args) > 0: // filename present
		for _, f := range args {
			inputs = append(inputs, &sax.InputSource{SystemID: f})
		}
	case !cliutil.IsTty(os.Stdin.Fd()):
		inputs = append(inputs, &sax.InputSource{ByteStream: os.Stdin})
	default:
		showUsage()
		return 1
	}

	p, err := newParser(&opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}

	ctx := context.Background()
	if opts.Trace {
		ctx = xni.WithTraceLogger(ctx, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	status := 0
	for _, in := range inputs {
		if err := p.Parse(ctx, in); err != nil {
			// positioned errors were already printed by the error handler
			var perr *sax.ParseError
			if !errors.As(err, &perr) && !event.IsIOError(err) {
				fmt.Fprintf(os.Stderr, "%s\n", err)
			}
			status = 1
		}
	}
	return status
}

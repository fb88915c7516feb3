package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/envmgr/versiongate/actionsutils"
	"github.com/envmgr/versiongate/contextutils"
	"github.com/envmgr/versiongate/manifestutils"
	"github.com/envmgr/versiongate/versiongate"
)

const usageMessage = "Usage: versiongate <tag> <cargo_version>"

var (
	errUsage    = eris.New("expected exactly two arguments")
	errTagAhead = eris.New("tag is ahead of manifest version")
)

func main() {
	ctx := context.Background()
	fs := afero.NewOsFs()

	// The sink paths are part of the process contract and are resolved before
	// any argument handling.
	sinks, err := actionsutils.NewSinksFromEnv(fs)
	if err != nil {
		contextutils.LoggerFrom(ctx).Fatalw("missing required environment configuration", zap.Error(err))
	}

	if err := rootCommand(ctx, sinks, fs).Execute(); err != nil {
		switch {
		case eris.Is(err, errUsage):
			fmt.Println(usageMessage)
		case eris.Is(err, errTagAhead):
			// The step summary already carries the explanation.
		default:
			contextutils.LoggerFrom(ctx).Errorw("unable to complete version gate", zap.Error(err))
		}
		os.Exit(1)
	}
}

func rootCommand(ctx context.Context, sinks *actionsutils.Sinks, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "versiongate <tag> <cargo_version>",
		Short:         "Decide whether a release is needed by comparing a tag against the manifest version",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := versiongate.Run(ctx, sinks, args[0], args[1])
			if err != nil {
				return err
			}
			if result.Halt {
				return errTagAhead
			}
			return nil
		},
	}
	cmd.AddCommand(manifestVersionCommand(fs))
	return cmd
}

func manifestVersionCommand(fs afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:           "manifest-version <path>",
		Short:         "Print the package version declared in a Cargo-style manifest",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := manifestutils.GetPackageVersion(fs, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/kofuk/bungie/manifest"
	"github.com/kofuk/bungie/mirror"
	"github.com/spf13/cobra"
)

func newManifestCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Download and mirror the Destiny manifest",
	}

	cmd.AddCommand(newManifestVersionCommand(app))
	cmd.AddCommand(newManifestDownloadCommand(app))
	cmd.AddCommand(newManifestPushCommand(app))
	cmd.AddCommand(newManifestListCommand(app))
	cmd.AddCommand(newManifestPruneCommand(app))
	cmd.AddCommand(newManifestWatchCommand(app))

	return cmd
}

func (a *App) manifestOptions() manifest.Options {
	return manifest.Options{
		Language: a.Config.ManifestLanguage,
		Dir:      a.Config.ManifestDir,
	}
}

func (a *App) mirror(cmd *cobra.Command) (*mirror.Mirror, error) {
	if a.Config.S3Bucket == "" {
		return nil, fmt.Errorf("BUNGIE_S3_BUCKET is not set")
	}
	return mirror.New(cmd.Context(), a.Config.S3Bucket, a.Config.S3ForcePathStyle)
}

func newManifestVersionCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current manifest version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := app.Definitions().ManifestVersion(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, version)
			return nil
		},
	}
}

func newManifestDownloadCommand(app *App) *cobra.Command {
	var (
		asJSON  bool
		force   bool
		name    string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download the manifest to BUNGIE_MANIFEST_DIR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.manifestOptions()
			opts.Name = name
			opts.Force = force
			pool := manifest.NewPoolExecutor(workers)
			opts.Executor = pool
			defer pool.Wait()

			var (
				path string
				err  error
			)
			if asJSON {
				path, err = app.Client.DownloadJSONManifest(cmd.Context(), opts)
			} else {
				path, err = app.Client.DownloadSQLiteManifest(cmd.Context(), opts)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, path)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&asJSON, "json", false, "Download the JSON world content instead of SQLite")
	flags.BoolVarP(&force, "force", "f", false, "Replace an existing SQLite database")
	flags.StringVar(&name, "name", manifest.DefaultName, "File name without extension")
	flags.IntVar(&workers, "workers", 2, "Number of file writers")

	return cmd
}

func newManifestPushCommand(app *App) *cobra.Command {
	var version string

	cmd := &cobra.Command{
		Use:   "push <file>",
		Short: "Upload a downloaded manifest to the mirror bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.mirror(cmd)
			if err != nil {
				return err
			}
			if version == "" {
				if version, err = app.Client.FetchManifestVersion(cmd.Context()); err != nil {
					return err
				}
			}
			key, err := m.Push(cmd.Context(), version, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, key)
			return nil
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "Manifest version (defaults to the current one)")

	return cmd
}

func newManifestListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List mirrored manifests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.mirror(cmd)
			if err != nil {
				return err
			}
			entries, err := m.List(cmd.Context())
			if err != nil {
				return err
			}
			return app.print(entries)
		},
	}
}

func newManifestPruneCommand(app *App) *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete old mirrored manifests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if keep < 1 {
				return fmt.Errorf("--keep must be at least 1")
			}
			m, err := app.mirror(cmd)
			if err != nil {
				return err
			}
			deleted, err := m.Prune(cmd.Context(), keep)
			if err != nil {
				return err
			}
			return app.print(deleted)
		},
	}

	cmd.Flags().IntVar(&keep, "keep", 3, "Number of versions to keep")

	return cmd
}

func newManifestWatchCommand(app *App) *cobra.Command {
	var push bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Download the manifest whenever a new version is published",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := NewWatcher(app.Client, app.manifestOptions())
			w.invalidate = app.Definitions().Invalidate
			if push {
				m, err := app.mirror(cmd)
				if err != nil {
					return err
				}
				w.mirror = m
			}
			return w.Run(cmd.Context(), app.Config.ManifestSchedule)
		},
	}

	cmd.Flags().BoolVar(&push, "push", false, "Upload each new version to the mirror bucket")

	return cmd
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	locale "github.com/goliatone/go-locale"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("LOCALEINFO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "localeinfo [locale...]",
		Short: "Print the numeric and time conventions of locales",
		Long: `localeinfo prints what the native locale subsystem reports for the
current user, or for each locale named on the command line. Anything the
system cannot answer falls back to invariant data.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), v, args)
		},
	}

	flags := cmd.Flags()
	flags.StringP("format", "f", "text", "output format: text, json or yaml")
	flags.StringSlice("overrides", nil, "JSON or YAML override tables consulted before the system")
	flags.Bool("system-only", false, "query the native subsystem without fallback")
	flags.BoolP("verbose", "v", false, "log every factory query to stderr")
	_ = v.BindPFlags(flags)

	cmd.AddCommand(newBackendCommand())
	return cmd
}

func newBackendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backend",
		Short: "Print the native locale backend compiled into this binary",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), locale.NewSystemFactory().Backend())
		},
	}
}

func run(out io.Writer, v *viper.Viper, ids []string) error {
	level := slog.LevelWarn
	if v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger := newLogger(os.Stderr, level)

	factory := buildFactory(v, logger)

	if len(ids) == 0 {
		ids = []string{locale.Current}
	}

	doc := locale.TableDocument{Locales: make(map[string]locale.LocaleDocument, len(ids))}
	var failed []error
	for _, id := range ids {
		entry, err := describe(factory, id)
		if err != nil {
			logger.Error("query failed", "locale", id, "error", err)
			failed = append(failed, err)
		}
		doc.Locales[displayName(id)] = entry
	}

	if err := render(out, v.GetString("format"), ids, doc); err != nil {
		return err
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d locales could not be fully resolved", len(failed), len(ids))
	}
	return nil
}

func buildFactory(v *viper.Viper, logger *slog.Logger) locale.Factory {
	hook := locale.LoggingHook(logger)

	if v.GetBool("system-only") {
		return locale.WrapFactoryWithHooks(locale.NewSystemFactory(), hook)
	}

	opts := []locale.Option{
		locale.WithLogger(logger),
		locale.WithHooks(hook),
	}
	if paths := v.GetStringSlice("overrides"); len(paths) > 0 {
		opts = append(opts, locale.WithOverrides(paths...), locale.WithOverrideFallback(locale.ParentFallbackResolver{}))
	}
	return locale.UserFactory(opts...)
}

func describe(factory locale.Factory, id string) (locale.LocaleDocument, error) {
	var (
		entry locale.LocaleDocument
		errs  []error
	)

	if n, err := factory.NumericInfo(id); err != nil {
		errs = append(errs, err)
	} else {
		entry.Numeric = locale.NewNumericDocument(n)
	}

	if t, err := factory.TimeInfo(id); err != nil {
		errs = append(errs, err)
	} else {
		entry.Time = locale.NewTimeDocument(t)
	}

	if len(errs) > 0 {
		return entry, errs[0]
	}
	return entry, nil
}

func displayName(id string) string {
	if id == locale.Current {
		return "current"
	}
	return id
}

func render(out io.Writer, format string, ids []string, doc locale.TableDocument) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml", "yml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return renderText(out, ids, doc)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func renderText(out io.Writer, ids []string, doc locale.TableDocument) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for i, id := range ids {
		if i > 0 {
			fmt.Fprintln(w)
		}
		name := displayName(id)
		entry := doc.Locales[name]
		fmt.Fprintf(w, "[%s]\n", name)

		if n := entry.Numeric; n != nil {
			fmt.Fprintf(w, "decimal\t%q\n", n.Decimal)
			fmt.Fprintf(w, "grouping separator\t%q\n", n.GroupingSeparator)
			fmt.Fprintf(w, "grouping\t%v\n", n.Grouping)
		}
		if t := entry.Time; t != nil {
			for _, style := range locale.Styles() {
				pattern := t.Layouts[style.String()]
				goLayout, err := locale.GoLayout(pattern)
				if err != nil {
					goLayout = "(" + err.Error() + ")"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", style, pattern, goLayout)
			}
			fmt.Fprintf(w, "am/pm\t%q / %q\n", t.AM, t.PM)
			fmt.Fprintf(w, "first weekday\t%s\n", t.FirstWeekday)
		}
	}
	return w.Flush()
}

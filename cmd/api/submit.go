package main

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/spf13/cobra"

	"go-writing-services/internal/container"
	"go-writing-services/internal/form"
	"go-writing-services/internal/logger"
	"go-writing-services/internal/render"
	"go-writing-services/internal/ui"
	"go-writing-services/internal/view"
)

var (
	submitFields = map[string]*string{
		"lang":            new(string),
		"content":         new(string),
		"text":            new(string),
		"target_tone":     new(string),
		"original_text":   new(string),
		"comparison_text": new(string),
	}
	submitTheme string
)

var submitCmd = &cobra.Command{
	Use:   "submit <service>",
	Short: "Submit text to one service and print the result",
	Example: `  writing-services submit spelling-check --lang en --content "Ths is a tst."
  writing-services submit textual-tone-shifts --lang en --text "send it now" --target-tone formal`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

func init() {
	flags := submitCmd.Flags()
	flags.StringVar(submitFields["lang"], "lang", "en", "language code")
	flags.StringVar(submitFields["content"], "content", "", "content to spell check")
	flags.StringVar(submitFields["text"], "text", "", "text to enhance, connect or shift")
	flags.StringVar(submitFields["target_tone"], "target-tone", "", "tone to shift the text to")
	flags.StringVar(submitFields["original_text"], "original-text", "", "original text of a plagiarism check")
	flags.StringVar(submitFields["comparison_text"], "comparison-text", "", "text compared against the original")
	flags.StringVar(&submitTheme, "theme", string(ui.ModeLight), "terminal palette: light or dark")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// Keep stdout for the rendered result.
	logger.Configure(cfg.LogLevel, cmd.ErrOrStderr())

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	defer c.Close()

	svc, err := c.Registry().Lookup(args[0])
	if err != nil {
		return fmt.Errorf("%w (known services: %s)", err, strings.Join(c.Registry().Slugs(), ", "))
	}

	values := url.Values{}
	for name, v := range submitFields {
		values.Set(name, *v)
	}
	req := svc.NewRequest()
	if err := binding.MapFormWithTag(req, values, "form"); err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
	defer cancel()

	outcome, err := c.Submitter().Submit(ctx, form.NewMachine(), svc, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch outcome.Status {
	case form.StatusInvalid:
		fields := make([]string, 0, len(outcome.FieldErrors))
		for field := range outcome.FieldErrors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(cmd.ErrOrStderr(), "--%s: %s\n", strings.ReplaceAll(field, "_", "-"), outcome.FieldErrors[field])
		}
		return fmt.Errorf("invalid input for %s", svc.Slug)
	case form.StatusFailed:
		return fmt.Errorf("%s: %w", svc.FailureMessage, outcome.Err)
	}

	term := render.NewTerminal(ui.PaletteFor(ui.ParseMode(submitTheme)))
	fmt.Fprint(out, term.Render(view.WithChanges(svc.View(outcome.Result), outcome.Changes)))
	fmt.Fprintln(out, outcome.Notification.Message)
	if outcome.Mocked {
		fmt.Fprintln(out, "(served from canned responses)")
	}
	return nil
}

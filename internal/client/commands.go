// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/MKhiriev/go-pass-vault/models"
)

type command struct {
	run func(ctx context.Context, args []string) error
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"register": {run: a.register},
		"generate": {run: a.generate},
		"add":      {run: a.add},
		"list":     {run: a.list},
		"show":     {run: a.show},
		"copy":     {run: a.copy},
		"edit":     {run: a.edit},
		"delete":   {run: a.delete},
		"version":  {run: a.version},
	}
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// parseWithID parses flags placed before or after the entry id.
func parseWithID(fs *flag.FlagSet, args []string) (string, error) {
	var id string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		id, args = args[0], args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if id == "" {
		id = fs.Arg(0)
	}
	if strings.TrimSpace(id) == "" {
		return "", ErrMissingEntryID
	}
	return id, nil
}

// policyFlags registers the generation policy flags on fs.
func policyFlags(fs *flag.FlagSet) *models.GenerationPolicy {
	p := models.DefaultGenerationPolicy()
	fs.IntVar(&p.Length, "length", p.Length, "Password length")
	fs.BoolVar(&p.UseLower, "lower", p.UseLower, "Use lowercase letters")
	fs.BoolVar(&p.UseUpper, "upper", p.UseUpper, "Use uppercase letters")
	fs.BoolVar(&p.UseDigits, "numbers", p.UseDigits, "Use digits")
	fs.BoolVar(&p.UseSymbols, "symbols", p.UseSymbols, "Use symbols")
	fs.BoolVar(&p.ExcludeAmbiguous, "exclude-ambiguous", p.ExcludeAmbiguous, "Exclude I, l, 1, O and 0")
	return &p
}

func (a *App) register(ctx context.Context, args []string) error {
	if !a.cfg.IsRemote() {
		return service.ErrRemoteModeOnly
	}
	if err := a.newFlagSet("register").Parse(args); err != nil {
		return err
	}

	pass, err := a.passphrase("New master passphrase: ")
	if err != nil {
		return err
	}
	if a.getenv(passphraseEnv) == "" {
		repeated, err := a.secrets.ReadSecret("Repeat master passphrase: ")
		if err != nil {
			return err
		}
		if repeated != pass {
			return ErrPassphraseMismatch
		}
	}

	if _, err = a.services.AuthService.Register(ctx, a.cfg.App.Login, pass); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s\n", a.cfg.App.Login)
	return nil
}

func (a *App) generate(ctx context.Context, args []string) error {
	fs := a.newFlagSet("generate")
	policy := policyFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	generated, err := a.services.VaultService.Generate(ctx, *policy)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, generated.Password)
	fmt.Fprintf(a.out, "entropy: %.1f bits\n", generated.EntropyBits)
	return nil
}

// entryFlags are the editable fields of an entry.
type entryFlags struct {
	title, username, url, notes, password string
	generate                              bool
	policy                                *models.GenerationPolicy
}

func registerEntryFlags(fs *flag.FlagSet) *entryFlags {
	f := &entryFlags{}
	fs.StringVar(&f.title, "title", "", "Entry title")
	fs.StringVar(&f.username, "username", "", "Login on the target service")
	fs.StringVar(&f.url, "url", "", "Address of the target service")
	fs.StringVar(&f.notes, "notes", "", "Free-form notes")
	fs.StringVar(&f.password, "password", "", "Password (prompted for when omitted)")
	fs.BoolVar(&f.generate, "generate", false, "Generate the password")
	f.policy = policyFlags(fs)
	return f
}

// resolvePassword returns the password to store: a generated one, the flag
// value, or one read from the terminal.
func (a *App) resolvePassword(ctx context.Context, f *entryFlags) (string, error) {
	if f.generate {
		generated, err := a.services.VaultService.Generate(ctx, *f.policy)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(a.out, "Generated password (%.1f bits)\n", generated.EntropyBits)
		return generated.Password, nil
	}
	if f.password != "" {
		return f.password, nil
	}
	return a.secrets.ReadSecret("Password: ")
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func (a *App) add(ctx context.Context, args []string) error {
	fs := a.newFlagSet("add")
	f := registerEntryFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	session, err := a.unlock(ctx)
	if err != nil {
		return err
	}

	password, err := a.resolvePassword(ctx, f)
	if err != nil {
		return err
	}

	entry, err := a.services.VaultService.Save(ctx, session, models.EntryInput{
		Title:    f.title,
		Username: f.username,
		URL:      optional(f.url),
		Notes:    optional(f.notes),
		Password: password,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Saved %s\n", entry.ID)
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	if err := a.newFlagSet("list").Parse(args); err != nil {
		return err
	}

	session, err := a.unlock(ctx)
	if err != nil {
		return err
	}

	entries, err := a.services.VaultService.List(ctx, session)
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, tui.RenderEntries(entries))
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	fs := a.newFlagSet("show")
	reveal := fs.Bool("reveal", false, "Print the password")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	session, err := a.unlock(ctx)
	if err != nil {
		return err
	}

	entry, password, err := a.services.VaultService.Reveal(ctx, session, id)
	if err != nil {
		return err
	}
	if !*reveal {
		password = ""
	}

	fmt.Fprint(a.out, tui.RenderEntry(entry, password))
	return nil
}

// copy puts the password on the clipboard and blocks until it is cleared.
func (a *App) copy(ctx context.Context, args []string) error {
	fs := a.newFlagSet("copy")
	clearAfter := fs.Duration("clear-after", a.cfg.Clipboard.ClearAfter, "Clipboard clear delay")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	session, err := a.unlock(ctx)
	if err != nil {
		return err
	}

	entry, password, err := a.services.VaultService.Reveal(ctx, session, id)
	if err != nil {
		return err
	}

	if err = a.clipboard.WriteAll(password); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	a.logger.Info().Str("entry_id", entry.ID).Dur("clear_after", *clearAfter).Msg("password copied")

	jobs := []workers.Worker{workers.NewClipboardCleaner(a.clipboard, password, *clearAfter, a.logger)}
	if a.interactive {
		jobs = append(jobs, tui.NewCountdown("Copied password of "+entry.Title, *clearAfter, a.in, a.out))
	} else {
		fmt.Fprintf(a.out, "Copied password of %s. Clipboard is cleared in %s\n", entry.Title, *clearAfter)
	}

	return workers.New(jobs...).Run(ctx)
}

func (a *App) edit(ctx context.Context, args []string) error {
	fs := a.newFlagSet("edit")
	f := registerEntryFlags(fs)
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	session, err := a.unlock(ctx)
	if err != nil {
		return err
	}

	current, err := a.services.VaultService.Get(ctx, session, id)
	if err != nil {
		return err
	}

	input := models.EntryInput{
		Title:    current.Title,
		Username: current.Username,
		URL:      current.URL,
		Notes:    current.Notes,
	}
	if set["title"] {
		input.Title = f.title
	}
	if set["username"] {
		input.Username = f.username
	}
	if set["url"] {
		input.URL = optional(f.url)
	}
	if set["notes"] {
		input.Notes = optional(f.notes)
	}
	if f.generate || set["password"] {
		if input.Password, err = a.resolvePassword(ctx, f); err != nil {
			return err
		}
	}

	entry, err := a.services.VaultService.Edit(ctx, session, id, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Updated %s\n", entry.ID)
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	fs := a.newFlagSet("delete")
	yes := fs.Bool("y", false, "Do not ask for confirmation")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	session, err := a.unlock(ctx)
	if err != nil {
		return err
	}

	if !*yes {
		if !a.interactive {
			return ErrConfirmationRequired
		}
		entry, err := a.services.VaultService.Get(ctx, session, id)
		if err != nil {
			return err
		}
		confirmed, err := tui.Confirm(ctx, entry.Title, a.in, a.out)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(a.out, "Cancelled")
			return nil
		}
	}

	if err = a.services.VaultService.Delete(ctx, session, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deleted %s\n", id)
	return nil
}

func (a *App) version(ctx context.Context, args []string) error {
	if err := a.newFlagSet("version").Parse(args); err != nil {
		return err
	}

	var serverVersion string
	if a.server != nil {
		v, err := a.server.Version(ctx)
		switch {
		case err == nil:
			serverVersion = v
		case errors.Is(err, context.Canceled):
			return err
		default:
			a.logger.Warn().Err(err).Msg("server version unavailable")
			serverVersion = "unavailable"
		}
	}

	fmt.Fprint(a.out, tui.RenderBuildInfo(a.buildInfo, serverVersion))
	return nil
}

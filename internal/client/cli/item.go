package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/spycats/internal/client/client"
	"github.com/dmitrijs2005/spycats/internal/client/forms"
	"github.com/dmitrijs2005/spycats/internal/client/models"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// Show fetches one cat and prints it. The details are always fetched fresh.
func (a *App) Show(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		a.println("Usage: show <id>")
		return err
	}

	defer a.details.Close()
	err = a.details.Open(ctx, id)
	s := a.details.State()
	if err != nil {
		if s.Error != "" {
			a.printError(s.Error)
		} else {
			a.printError(err.Error())
		}
		return err
	}
	if s.Cat != nil {
		renderCat(a.out, *s.Cat)
	}
	return nil
}

// target returns the cat with id from the roster, or from the server when the
// roster does not hold it.
func (a *App) target(ctx context.Context, id int64) (models.Cat, error) {
	if c, ok := a.roster.Find(id); ok {
		return c, nil
	}
	c, err := a.api.GetCat(ctx, id)
	if err != nil {
		a.printError(client.MessageOf(err, forms.MsgDetailsFailed))
		return models.Cat{}, err
	}
	return c, nil
}

// Edit changes the salary of one cat.
func (a *App) Edit(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		a.println("Usage: edit <id>")
		return err
	}
	cat, err := a.target(ctx, id)
	if err != nil {
		return err
	}

	f := forms.NewEditForm(a.api, cat, a.roster.Replace, a.logger)
	a.printf("Editing %s (current salary %s)\n", cat.Name, formatUSD(cat.Salary))

	for {
		text, err := GetTextWithDefault(a.reader, "New salary (USD)", f.SalaryText(), a.out)
		if err != nil {
			f.Close()
			a.println()
			return err
		}
		f.SetSalaryText(text)

		updated, err := f.Submit(ctx)
		if err == nil {
			a.printf("Salary of %s is now %s\n", updated.Name, formatUSD(updated.Salary))
			return nil
		}

		a.printError(f.State().Error)
		if !GetConfirmation(a.reader, "Try again?", a.out) {
			f.Close()
			return err
		}
	}
}

// Delete removes one cat after an explicit confirmation.
func (a *App) Delete(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		a.println("Usage: delete <id>")
		return err
	}
	cat, err := a.target(ctx, id)
	if err != nil {
		return err
	}

	d := forms.NewDeleteConfirm(a.api, cat, a.roster.Remove, a.logger)
	for {
		if !GetConfirmation(a.reader, d.Prompt(), a.out) {
			d.Cancel()
			a.println("Cancelled")
			return nil
		}

		err := d.Confirm(ctx)
		if err == nil {
			a.printf("Spy cat %s deleted\n", cat.Name)
			return nil
		}
		a.printError(d.State().Error)
	}
}

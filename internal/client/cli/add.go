package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/spycats/internal/client/forms"
	"github.com/dmitrijs2005/spycats/internal/client/models"
)

// Add asks for a new cat and creates it. After a failed submit the user may
// try again with the previous answers as defaults.
func (a *App) Add(ctx context.Context) error {
	f := forms.NewCreateForm(a.api, a.roster.Insert, a.logger)
	f.Open()

	for {
		d, err := a.readDraft(f.Draft())
		if err != nil {
			f.Close()
			a.println()
			return err
		}
		f.SetDraft(d)

		cat, err := f.Submit(ctx)
		if err == nil {
			a.printf("Spy cat %s added with id %d\n", cat.Name, cat.ID)
			return nil
		}

		a.printError(f.State().Error)
		if !GetConfirmation(a.reader, "Try again?", a.out) {
			f.Close()
			return err
		}
	}
}

func (a *App) readDraft(prev models.CatCreate) (models.CatCreate, error) {
	var d models.CatCreate
	var err error

	if d.Name, err = GetTextWithDefault(a.reader, "Name", prev.Name, a.out); err != nil {
		return d, err
	}
	if d.YearsOfExperience, err = a.readInt("Years of experience", prev.YearsOfExperience); err != nil {
		return d, err
	}
	if d.Breed, err = GetTextWithDefault(a.reader, "Breed", prev.Breed, a.out); err != nil {
		return d, err
	}
	if d.Salary, err = a.readFloat("Salary (USD)", prev.Salary); err != nil {
		return d, err
	}
	return d, nil
}

// readInt re-asks until the answer is a whole number.
func (a *App) readInt(prompt string, def int) (int, error) {
	for {
		s, err := GetTextWithDefault(a.reader, prompt, strconv.Itoa(def), a.out)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err == nil {
			return n, nil
		}
		a.printError("please enter a whole number")
	}
}

// readFloat re-asks until the answer is a number. Range checks are left to
// form validation.
func (a *App) readFloat(prompt string, def float64) (float64, error) {
	defText := ""
	if def != 0 {
		defText = models.FormatSalary(def)
	}
	for {
		s, err := GetTextWithDefault(a.reader, prompt, defText, a.out)
		if err != nil {
			return 0, err
		}
		if s == "" {
			return 0, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return v, nil
		}
		a.printError("please enter a number")
	}
}

package cli

import (
	"context"
	"fmt"
	"os"
)

// List prints the checklist, one item per line, with a checkbox marker and
// the item id (needed for toggle/delete).
func (a *App) List(ctx context.Context) error {
	items, err := a.api.List(ctx)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		printlnFn("(list is empty)")
		return nil
	}

	for _, item := range items {
		mark := " "
		if item.Done {
			mark = "x"
		}
		printlnFn(fmt.Sprintf("[%s] %s  (%s)", mark, item.Name, item.ID))
	}
	return nil
}

// Add prompts for an item name and creates it.
func (a *App) Add(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter item name", os.Stdout)
	if err != nil {
		return err
	}

	item, err := a.api.Add(ctx, name)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Added %q (%s)", item.Name, item.ID))
	return nil
}

// Toggle prompts for an item id and flips its done flag.
func (a *App) Toggle(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter item id", os.Stdout)
	if err != nil {
		return err
	}

	item, err := a.api.Toggle(ctx, id)
	if err != nil {
		return err
	}

	state := "todo"
	if item.Done {
		state = "done"
	}
	printlnFn(fmt.Sprintf("%q is now %s", item.Name, state))
	return nil
}

// Delete prompts for an item id and removes it.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter item id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.Delete(ctx, id); err != nil {
		return err
	}

	printlnFn("Deleted")
	return nil
}

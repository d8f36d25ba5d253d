package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/propedit/internal/control/edit"
	"github.com/ja-he/propedit/internal/schema"
	"github.com/ja-he/propedit/internal/util"
)

// MenuCommand holds the flags for the `menu` command.
type MenuCommand struct {
	SettingsFlags

	out      io.Writer
	registry *schema.Registry
}

// Execute prints the menu the selected object would be edited with: one line
// per field with its label, kind, current value and settings path.
func (command *MenuCommand) Execute(args []string) error {
	out := command.out
	if out == nil {
		out = os.Stdout
	}
	registry := command.registry
	if registry == nil {
		registry = schema.Default
	}

	session, err := command.open(context.Background(), registry)
	if err != nil {
		return err
	}
	defer session.provider.Close()

	editor := edit.New(nil, "menu", edit.Options{})
	editor.SetRegistry(registry)
	if err := editor.BeginEdit(session.object, session.table, session.keyMap, nil); err != nil {
		return err
	}
	description := editor.Menu()

	if description.Empty() {
		_, err := fmt.Fprintf(out, "nothing to edit for '%s' in '%s'\n", session.object.GetObjectType(), session.provider.Location())
		return err
	}

	labelWidth, kindWidth, valueWidth := 0, 0, 0
	rows := make([][4]string, len(description.Fields))
	for i, f := range description.Fields {
		rows[i] = [4]string{f.Label, f.Kind.String(), fmt.Sprint(f.Get()), f.Path.String()}
		labelWidth = max(labelWidth, runewidth.StringWidth(rows[i][0]))
		kindWidth = max(kindWidth, runewidth.StringWidth(rows[i][1]))
		valueWidth = max(valueWidth, runewidth.StringWidth(rows[i][2]))
	}
	for _, row := range rows {
		_, err := fmt.Fprintf(out, "%s  %s  %s  %s\n",
			util.PadRight(row[0], labelWidth),
			util.PadRight(row[1], kindWidth),
			util.PadRight(row[2], valueWidth),
			row[3],
		)
		if err != nil {
			return err
		}
	}
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"resumeview/internal/layout"
	"resumeview/internal/resume"
	"resumeview/internal/section"
)

// Placement says where a registered section is drawn.
type Placement struct {
	ID     section.ID `json:"id"`
	Key    string     `json:"key"`
	Where  string     `json:"where"`
	Slot   *int       `json:"slot,omitempty"`
	Hidden bool       `json:"hidden,omitempty"`
}

var columnNames = [layout.NumColumns]string{"left", "right"}

// Placements lists every registered section in declaration order with its
// column slot; IDs without a slot are the header or unplaced.
func Placements(reg section.Registry, names section.Names, engine *layout.Engine) []Placement {
	var out []Placement
	for _, id := range reg.IDs() {
		payload := reg[id]
		p := Placement{ID: id, Key: names[id], Hidden: payload.Hidden()}
		if slot, ok := engine.Locate(id); ok {
			i := slot.Index
			p.Where, p.Slot = columnNames[slot.Column], &i
		} else if !payload.Contact.IsZero() {
			p.Where = "header"
		} else {
			p.Where = "unplaced"
		}
		out = append(out, p)
	}
	return out
}

func sectionsCmd(app *App) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "sections <file>",
		Short: "List the sections a résumé registers and where they are laid out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := resume.Load(args[0])
			if err != nil {
				return err
			}
			names, err := app.cfg.SectionNames()
			if err != nil {
				return err
			}
			engine, err := app.cfg.NewEngine()
			if err != nil {
				return err
			}
			placements := Placements(section.Build(doc, names), names, engine)

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(placements)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range placements {
				where := p.Where
				if p.Slot != nil {
					where = fmt.Sprintf("%s #%d", p.Where, *p.Slot+1)
				}
				if p.Hidden {
					where += " (hidden)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Key, where)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

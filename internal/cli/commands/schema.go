package commands

import (
	"fmt"
	"strings"

	"github.com/lumbunggroup/lumbung-backend/models/contact"
	"github.com/spf13/cobra"
)

func SchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the contact form fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, f := range contact.ContactSchema().Fields() {
				required := "optional"
				if f.Required {
					required = "required"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", f.Key, f.Kind, required, f.Label)
				if len(f.Options) > 0 {
					values := make([]string, 0, len(f.Options))
					for _, opt := range f.Options {
						values = append(values, opt.Value)
					}
					fmt.Fprintf(out, "\toptions: %s\n", strings.Join(values, ", "))
				}
			}
			return nil
		},
	}
}

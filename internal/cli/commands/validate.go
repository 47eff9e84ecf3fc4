package commands

import (
	"fmt"
	"os"

	"github.com/lumbunggroup/lumbung-backend/models/contact"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func ValidateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate contact form values read from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readValues(file)
			if err != nil {
				return err
			}
			schema := contact.ContactSchema()
			values, err := schema.NewValues(raw)
			if err != nil {
				return err
			}
			result := contact.Validate(schema, values)
			out := cmd.OutOrStdout()
			if result.Valid() {
				fmt.Fprintln(out, "ok")
				return nil
			}
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "%s: %s\n", issue.Field, issue.Message)
			}
			return fmt.Errorf("%d invalid field(s)", len(result.Issues))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with field values")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readValues(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw := map[string]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return raw, nil
}

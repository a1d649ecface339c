package cli

import (
	"fmt"

	"github.com/dom/hxh-catalog/internal/client"
	"github.com/dom/hxh-catalog/internal/domain"
	"github.com/spf13/cobra"
)

func addCharacterFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Character name (required)")
	cmd.Flags().String("image-url", "", "Image URL (required)")
	cmd.Flags().Int("age", 0, "Age")
	cmd.Flags().Int("height", 0, "Height in cm")
	cmd.Flags().Int("weight", 0, "Weight in kg")
	cmd.Flags().String("nen-type", "", "Nen category")
	cmd.Flags().String("origin", "", "Place of origin")
	cmd.Flags().String("notes", "", "Free-form notes")

	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("image-url")
}

// characterFromFlags leaves optional fields nil unless their flag was given.
func characterFromFlags(cmd *cobra.Command) *domain.Character {
	flags := cmd.Flags()

	optionalInt := func(name string) *int {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetInt(name)
		return &v
	}
	optionalString := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	name, _ := flags.GetString("name")
	imageURL, _ := flags.GetString("image-url")

	return &domain.Character{
		Name:     name,
		ImageURL: imageURL,
		Age:      optionalInt("age"),
		HeightCM: optionalInt("height"),
		WeightKG: optionalInt("weight"),
		NenType:  optionalString("nen-type"),
		Origin:   optionalString("origin"),
		Notes:    optionalString("notes"),
	}
}

func newCreateCmd(newClient func() *client.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a character",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := newClient().Create(cmd.Context(), characterFromFlags(cmd))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), created)
		},
	}

	addCharacterFlags(cmd)

	return cmd
}

func newUpdateCmd(newClient func() *client.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a character; omitted optional fields are cleared",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := newClient().Update(cmd.Context(), args[0], characterFromFlags(cmd))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), updated)
		},
	}

	addCharacterFlags(cmd)

	return cmd
}

func newDeleteCmd(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := newClient().Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

func newSeedCmd(newClient func() *client.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reset, _ := cmd.Flags().GetBool("reset")

			created, err := newClient().Seed(cmd.Context(), reset)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d characters\n", len(created))
			return nil
		},
	}

	cmd.Flags().Bool("reset", false, "Delete every existing character first")

	return cmd
}

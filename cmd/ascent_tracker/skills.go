package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ascent-tracker/internal/observability"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage the shared skills taxonomy",
}

var skillsAddCategoryCmd = &cobra.Command{
	Use:   "add-category",
	Short: "Add a category to a hierarchical family",
	RunE:  runSkillsAddCategory,
}

var skillsRenameCategoryCmd = &cobra.Command{
	Use:   "rename-category",
	Short: "Rename a category, keeping its subskills and display position",
	RunE:  runSkillsRenameCategory,
}

var skillsDeleteCategoryCmd = &cobra.Command{
	Use:   "delete-category",
	Short: "Delete a category and all its subskills",
	Long:  "Delete a category and all its subskills. Members who already hold skills from the category keep them; assignments are never retracted.",
	RunE:  runSkillsDeleteCategory,
}

var skillsAddSubskillCmd = &cobra.Command{
	Use:   "add-subskill",
	Short: "Add one subskill to a category",
	RunE:  runSkillsAddSubskill,
}

var skillsAddSubskillsCmd = &cobra.Command{
	Use:   "add-subskills",
	Short: "Add comma-separated subskills to a category, skipping duplicates",
	RunE:  runSkillsAddSubskills,
}

var skillsRenameSubskillCmd = &cobra.Command{
	Use:   "rename-subskill",
	Short: "Rename a subskill in place",
	RunE:  runSkillsRenameSubskill,
}

var skillsDeleteSubskillCmd = &cobra.Command{
	Use:   "delete-subskill",
	Short: "Delete one subskill from a category",
	RunE:  runSkillsDeleteSubskill,
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show a family's categories and subskills",
	RunE:  runSkillsList,
}

var certCmd = &cobra.Command{
	Use:   "cert",
	Short: "Manage the certification catalog",
}

var certAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a certification to the catalog",
	RunE:  runCertAdd,
}

var certRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove certifications from the catalog",
	RunE:  runCertRemove,
}

var certRenameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename a certification in place",
	RunE:  runCertRename,
}

var (
	skillsFamilyFlag string
	skillsCategory   string
	skillsName       string
	skillsNewName    string
	skillsValues     string
	certNames        []string
	certName         string
	certNewName      string
)

func init() {
	for _, cmd := range []*cobra.Command{
		skillsAddCategoryCmd, skillsRenameCategoryCmd, skillsDeleteCategoryCmd,
		skillsAddSubskillCmd, skillsAddSubskillsCmd, skillsRenameSubskillCmd,
		skillsDeleteSubskillCmd, skillsListCmd,
	} {
		cmd.Flags().StringVar(&skillsFamilyFlag, "family", "", "Skill family: technical, soft or software (required)")
		cmd.MarkFlagRequired("family")
	}

	for _, cmd := range []*cobra.Command{
		skillsAddSubskillCmd, skillsAddSubskillsCmd, skillsRenameSubskillCmd, skillsDeleteSubskillCmd,
	} {
		cmd.Flags().StringVar(&skillsCategory, "category", "", "Category name (required)")
		cmd.MarkFlagRequired("category")
	}

	for _, cmd := range []*cobra.Command{
		skillsAddCategoryCmd, skillsRenameCategoryCmd, skillsDeleteCategoryCmd,
		skillsAddSubskillCmd, skillsRenameSubskillCmd, skillsDeleteSubskillCmd,
	} {
		cmd.Flags().StringVar(&skillsName, "name", "", "Category or subskill name (required)")
		cmd.MarkFlagRequired("name")
	}

	for _, cmd := range []*cobra.Command{skillsRenameCategoryCmd, skillsRenameSubskillCmd} {
		cmd.Flags().StringVar(&skillsNewName, "new-name", "", "New name (required)")
		cmd.MarkFlagRequired("new-name")
	}

	skillsAddSubskillsCmd.Flags().StringVar(&skillsValues, "values", "", "Comma-separated subskills (required)")
	skillsAddSubskillsCmd.MarkFlagRequired("values")

	certAddCmd.Flags().StringVar(&certName, "name", "", "Certification name (required)")
	certAddCmd.MarkFlagRequired("name")
	certRemoveCmd.Flags().StringArrayVar(&certNames, "name", nil, "Certification name (repeatable, required)")
	certRemoveCmd.MarkFlagRequired("name")
	certRenameCmd.Flags().StringVar(&certName, "name", "", "Current certification name (required)")
	certRenameCmd.Flags().StringVar(&certNewName, "new-name", "", "New certification name (required)")
	certRenameCmd.MarkFlagRequired("name")
	certRenameCmd.MarkFlagRequired("new-name")

	certCmd.AddCommand(certAddCmd, certRemoveCmd, certRenameCmd)
	skillsCmd.AddCommand(skillsAddCategoryCmd, skillsRenameCategoryCmd, skillsDeleteCategoryCmd,
		skillsAddSubskillCmd, skillsAddSubskillsCmd, skillsRenameSubskillCmd,
		skillsDeleteSubskillCmd, skillsListCmd, certCmd)
	rootCmd.AddCommand(skillsCmd)
}

func runSkillsAddCategory(cmd *cobra.Command, args []string) error {
	family, err := parseFamily(skillsFamilyFlag)
	if err != nil {
		return err
	}
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if err := app.taxonomy.AddCategory(family, skillsName); err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Category %q added to %s\n", skillsName, family)
	return nil
}

func runSkillsRenameCategory(cmd *cobra.Command, args []string) error {
	family, err := parseFamily(skillsFamilyFlag)
	if err != nil {
		return err
	}
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if err := app.taxonomy.RenameCategory(family, skillsName, skillsNewName); err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Category %q has been renamed to %q\n", skillsName, skillsNewName)
	return nil
}

func runSkillsDeleteCategory(cmd *cobra.Command, args []string) error {
	family, err := parseFamily(skillsFamilyFlag)
	if err != nil {
		return err
	}
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if err := app.taxonomy.DeleteCategory(family, skillsName); err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Category %q and all its subskills deleted from %s\n", skillsName, family)
	return nil
}

func runSkillsAddSubskill(cmd *cobra.Command, args []string) error {
	family, err := parseFamily(skillsFamilyFlag)
	if err != nil {
		return err
	}
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if err := app.taxonomy.AddSubskill(family, skillsCategory, skillsName); err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Subskill %q added to %q\n", skillsName, skillsCategory)
	return nil
}

func runSkillsAddSubskills(cmd *cobra.Command, args []string) error {
	family, err := parseFamily(skillsFamilyFlag)
	if err != nil {
		return err
	}
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	added, err := app.taxonomy.AddSubskillsBulk(family, skillsCategory, skillsValues)
	if err != nil {
		return err
	}
	if added == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No new subskills were added")
		return nil
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %d new subskills to %q\n", added, skillsCategory)
	return nil
}

func runSkillsRenameSubskill(cmd *cobra.Command, args []string) error {
	family, err := parseFamily(skillsFamilyFlag)
	if err != nil {
		return err
	}
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if err := app.taxonomy.RenameSubskill(family, skillsCategory, skillsName, skillsNewName); err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Subskill %q has been renamed to %q\n", skillsName, skillsNewName)
	return nil
}

func runSkillsDeleteSubskill(cmd *cobra.Command, args []string) error {
	family, err := parseFamily(skillsFamilyFlag)
	if err != nil {
		return err
	}
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if err := app.taxonomy.DeleteSubskill(family, skillsCategory, skillsName); err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Subskill %q deleted from %q\n", skillsName, skillsCategory)
	return nil
}

func runSkillsList(cmd *cobra.Command, args []string) error {
	family, err := parseFamily(skillsFamilyFlag)
	if err != nil {
		return err
	}
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintTaxonomy(family, app.taxonomy.ListCategories(family), func(category string) []string {
		return app.taxonomy.ListSubskills(family, category)
	}, app.taxonomy.Certifications())
	return nil
}

func runCertAdd(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if err := app.taxonomy.AddCertification(certName); err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Certification %q has been added\n", certName)
	return nil
}

func runCertRemove(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	removed := app.taxonomy.RemoveCertifications(certNames)
	if removed == 0 {
		return fmt.Errorf("no matching certifications found")
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d certification(s)\n", removed)
	return nil
}

func runCertRename(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if err := app.taxonomy.RenameCertification(certName, certNewName); err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Certification %q has been renamed to %q\n", certName, certNewName)
	return nil
}

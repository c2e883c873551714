package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ascent-tracker/internal/observability"
	"github.com/jonathan/ascent-tracker/internal/types"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage team members",
}

var memberAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a team member",
	RunE:  runMemberAdd,
}

var memberModifyCmd = &cobra.Command{
	Use:   "modify",
	Short: "Update a member's job title, join date and birthday",
	RunE:  runMemberModify,
}

var memberRenameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename a team member, preserving all their data",
	RunE:  runMemberRename,
}

var memberDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a team member",
	RunE:  runMemberDelete,
}

var memberShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a member's record",
	RunE:  runMemberShow,
}

var memberListCmd = &cobra.Command{
	Use:   "list",
	Short: "List team member names",
	RunE:  runMemberList,
}

var memberAssignCmd = &cobra.Command{
	Use:   "assign-skill",
	Short: "Assign a taxonomy skill or certification to a member",
	RunE:  runMemberAssign,
}

var memberUnassignCmd = &cobra.Command{
	Use:   "unassign-skill",
	Short: "Remove an assigned skill or certification from a member",
	RunE:  runMemberUnassign,
}

var memberSetProfileCmd = &cobra.Command{
	Use:   "set-profile",
	Short: "Replace a member's profile field group",
	RunE:  runMemberSetProfile,
}

var memberSetProgressionCmd = &cobra.Command{
	Use:   "set-progression",
	Short: "Replace a member's goals, development plan and achievements",
	RunE:  runMemberSetProgression,
}

var memberAchieveGoalCmd = &cobra.Command{
	Use:   "achieve-goal",
	Short: "Move a goal (by position) to the member's achievements",
	RunE:  runMemberAchieveGoal,
}

var (
	memberName       string
	memberNewName    string
	memberJobTitle   string
	memberJoinDate   string
	memberBirthday   string
	memberFamilyFlag string
	memberCategory   string
	memberSubskill   string
	memberCert       string
	memberSkill      string
	memberHobbies    string
	memberInterests  string
	memberFamilyInfo string
	memberOther      string
	memberGoals      []string
	memberDevPlan    string
	memberAchieved   []string
	memberIssues     string
	memberGoalIndex  int
)

func init() {
	for _, cmd := range []*cobra.Command{
		memberAddCmd, memberModifyCmd, memberRenameCmd, memberDeleteCmd,
		memberShowCmd, memberAssignCmd, memberUnassignCmd,
		memberSetProfileCmd, memberSetProgressionCmd, memberAchieveGoalCmd,
	} {
		cmd.Flags().StringVarP(&memberName, "name", "n", "", "Member name (required)")
		cmd.MarkFlagRequired("name")
	}

	for _, cmd := range []*cobra.Command{memberAddCmd, memberModifyCmd, memberSetProfileCmd} {
		cmd.Flags().StringVar(&memberJobTitle, "job-title", "", "Job title")
		cmd.Flags().StringVar(&memberJoinDate, "join-date", "", "Join date (DD/MM/YYYY)")
		cmd.Flags().StringVar(&memberBirthday, "birthday", "", "Birthday (DD/MM/YYYY)")
	}

	memberRenameCmd.Flags().StringVar(&memberNewName, "new-name", "", "New member name (required)")
	memberRenameCmd.MarkFlagRequired("new-name")

	for _, cmd := range []*cobra.Command{memberAssignCmd, memberUnassignCmd} {
		cmd.Flags().StringVar(&memberFamilyFlag, "family", "", "Skill family: technical, soft, software or certifications (required)")
		cmd.MarkFlagRequired("family")
	}
	memberAssignCmd.Flags().StringVar(&memberCategory, "category", "", "Taxonomy category (hierarchical families)")
	memberAssignCmd.Flags().StringVar(&memberSubskill, "subskill", "", "Taxonomy subskill (hierarchical families)")
	memberAssignCmd.Flags().StringVar(&memberCert, "cert", "", "Certification value (certifications family)")
	memberUnassignCmd.Flags().StringVar(&memberSkill, "skill", "", "Assigned skill string to remove (required)")
	memberUnassignCmd.MarkFlagRequired("skill")

	memberSetProfileCmd.Flags().StringVar(&memberHobbies, "hobbies", "", "Comma-separated hobbies")
	memberSetProfileCmd.Flags().StringVar(&memberInterests, "interests", "", "Comma-separated interests")
	memberSetProfileCmd.Flags().StringVar(&memberFamilyInfo, "family-info", "", "Family details")
	memberSetProfileCmd.Flags().StringVar(&memberOther, "other", "", "Other personal details")

	memberSetProgressionCmd.Flags().StringArrayVar(&memberGoals, "goal", nil, "Goal (repeatable)")
	memberSetProgressionCmd.Flags().StringVar(&memberDevPlan, "dev-plan", "", "Development plan")
	memberSetProgressionCmd.Flags().StringArrayVar(&memberAchieved, "achievement", nil, "Achievement (repeatable)")
	memberSetProgressionCmd.Flags().StringVar(&memberIssues, "issues", "", "Issues/concerns")

	memberAchieveGoalCmd.Flags().IntVar(&memberGoalIndex, "index", 0, "Goal position, starting at 0")

	memberCmd.AddCommand(memberAddCmd, memberModifyCmd, memberRenameCmd, memberDeleteCmd,
		memberShowCmd, memberListCmd, memberAssignCmd, memberUnassignCmd,
		memberSetProfileCmd, memberSetProgressionCmd, memberAchieveGoalCmd)
	rootCmd.AddCommand(memberCmd)
}

func runMemberAdd(cmd *cobra.Command, args []string) error {
	req := types.AddMemberRequest{
		Name:     memberName,
		JobTitle: memberJobTitle,
		JoinDate: memberJoinDate,
		Birthday: memberBirthday,
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid member details: %w", err)
	}

	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if err := app.registry.AddMember(req.Name, req.JobTitle, req.JoinDate, req.Birthday); err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s has been added to the team\n", req.Name)
	return nil
}

func runMemberModify(cmd *cobra.Command, args []string) error {
	req := types.UpdateIdentityRequest{
		JobTitle: memberJobTitle,
		JoinDate: memberJoinDate,
		Birthday: memberBirthday,
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid member details: %w", err)
	}

	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if err := app.registry.UpdateIdentity(memberName, req); err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s's information has been updated\n", memberName)
	return nil
}

func runMemberRename(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if err := app.registry.RenameMember(memberName, memberNewName); err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", memberName, memberNewName)
	return nil
}

func runMemberDelete(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if err := app.registry.DeleteMember(memberName); err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s has been deleted from the team\n", memberName)
	return nil
}

func runMemberShow(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	member, err := app.registry.Get(memberName)
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintMember(memberName, member)
	return nil
}

func runMemberList(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	for _, name := range app.registry.ListMembers() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runMemberAssign(cmd *cobra.Command, args []string) error {
	family, err := parseFamily(memberFamilyFlag)
	if err != nil {
		return err
	}

	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if family == types.Certifications {
		err = app.registry.AssignCertification(memberName, memberCert)
	} else {
		err = app.registry.AssignSkill(memberName, family, memberCategory, memberSubskill)
	}
	if err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Skill added to %s's %s\n", memberName, family)
	return nil
}

func runMemberUnassign(cmd *cobra.Command, args []string) error {
	family, err := parseFamily(memberFamilyFlag)
	if err != nil {
		return err
	}

	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if err := app.registry.UnassignSkill(memberName, family, memberSkill); err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%q removed from %s's %s\n", memberSkill, memberName, family)
	return nil
}

func runMemberSetProfile(cmd *cobra.Command, args []string) error {
	req := types.UpdateProfileRequest{
		JobTitle:             memberJobTitle,
		JoinDate:             memberJoinDate,
		Birthday:             memberBirthday,
		Hobbies:              splitCommaList(memberHobbies),
		Interests:            splitCommaList(memberInterests),
		Family:               memberFamilyInfo,
		OtherPersonalDetails: memberOther,
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid profile details: %w", err)
	}

	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if err := app.registry.UpdateProfile(memberName, req); err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s's profile has been updated\n", memberName)
	return nil
}

func runMemberSetProgression(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	req := types.UpdateProgressionRequest{
		Goals:           memberGoals,
		DevelopmentPlan: memberDevPlan,
		Achievements:    memberAchieved,
		IssuesConcerns:  memberIssues,
	}
	if err := app.registry.UpdateProgression(memberName, req); err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s's progression has been updated\n", memberName)
	return nil
}

func runMemberAchieveGoal(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	goal, err := app.registry.MoveGoalToAchievement(memberName, memberGoalIndex)
	if err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "The goal %q has been moved to achievements\n", goal)
	return nil
}

// splitCommaList turns a comma-separated flag value into trimmed entries,
// dropping empties.
func splitCommaList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/astralforge/starcalc/internal/config"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage saved profiles",
	Long: `Manage the named profiles stored in the database.

Examples:
  starcalc profiles list
  starcalc profiles save midgame --profile ./midgame.yaml
  starcalc profiles show midgame
  starcalc profiles delete midgame`,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	Run:   runProfilesList,
}

var profilesSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a profile under a name",
	Long: `Validate the current profile (from --profile or the default
search order) and store it in the database under the given name.
An existing profile of the same name is replaced.`,
	Args: cobra.ExactArgs(1),
	Run:  runProfilesSave,
}

var profilesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a saved profile as YAML",
	Args:  cobra.ExactArgs(1),
	Run:   runProfilesShow,
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved profile and its snapshots",
	Args:  cobra.ExactArgs(1),
	Run:   runProfilesDelete,
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesSaveCmd)
	profilesCmd.AddCommand(profilesShowCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)
}

func runProfilesList(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	entries, err := store.ListProfiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing profiles: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No saved profiles.")
		fmt.Println()
		fmt.Println("Run 'starcalc profiles save <name>' to save one.")
		return
	}

	fmt.Println("Saved profiles:")
	fmt.Println()
	fmt.Printf("  %-20s  %s\n", "Name", "Updated")
	fmt.Printf("  %-20s  %s\n", "----", "-------")
	for _, e := range entries {
		fmt.Printf("  %-20s  %s\n", e.Name, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func runProfilesSave(cmd *cobra.Command, args []string) {
	name := args[0]

	profile, err := config.Load(flagProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		os.Exit(1)
	}
	if err := profile.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	body, err := config.Marshal(profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding profile: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	if err := store.SaveProfile(name, body); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Profile %q saved.\n", name)
}

func runProfilesShow(cmd *cobra.Command, args []string) {
	name := args[0]

	store := openStore()
	defer store.Close()

	body, err := store.GetProfile(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading profile: %v\n", err)
		os.Exit(1)
	}
	if body == nil {
		fmt.Fprintf(os.Stderr, "Error: no saved profile %q\n", name)
		os.Exit(1)
	}

	os.Stdout.Write(body)
}

func runProfilesDelete(cmd *cobra.Command, args []string) {
	name := args[0]

	store := openStore()
	defer store.Close()

	if err := store.DeleteProfile(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting profile: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Profile %q deleted.\n", name)
}

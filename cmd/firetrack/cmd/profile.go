package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/firetrack/fire-tracker/internal/domain"
	"github.com/firetrack/fire-tracker/pkg/dateutil"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the user profile",
	Long: `Show the profile, or set the birth date with --birth-date.

A set birth date lets simulations derive the current age automatically.`,
	RunE: runProfile,
}

var profileBirthDate string

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVar(&profileBirthDate, "birth-date", "", "birth date, YYYY-MM-DD")
}

func runProfile(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if profileBirthDate != "" {
		if _, err := dateutil.ParseISODate(profileBirthDate); err != nil {
			return fmt.Errorf("invalid birth date: %w", err)
		}
		if err := env.profile.Save(domain.Profile{BirthDate: profileBirthDate}); err != nil {
			return err
		}
		fmt.Println("Profile updated.")
		return nil
	}

	profile, err := env.profile.Load()
	if err != nil {
		return err
	}

	fmt.Printf("User:       %s\n", env.cfg.User)
	if profile.BirthDate == "" {
		fmt.Println("Birth date: not set")
		return nil
	}
	fmt.Printf("Birth date: %s\n", profile.BirthDate)
	if age, ok := profile.Age(time.Now()); ok {
		fmt.Printf("Age:        %d\n", age)
	}
	return nil
}

package cli

import (
	"fmt"

	"restaurant-ordering/order-svc/internal/domain"

	"github.com/spf13/cobra"
)

func (a *app) newUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage staff accounts",
	}

	roleCommand := func(use, short string, role domain.Role) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <email>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				user, err := a.services.Users.SetRole(cmd.Context(), args[0], role)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s; new sessions pick up the change\n", user.Email, user.Role)
				return nil
			},
		}
	}

	cmd.AddCommand(
		roleCommand("promote", "Grant the administrator role", domain.RoleAdmin),
		roleCommand("demote", "Revoke the administrator role", domain.RoleCustomer),
	)
	return cmd
}

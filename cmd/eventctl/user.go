package main

import (
	"fmt"
	"strings"

	"event_manager/internal/domain"
	"event_manager/internal/service"
	"event_manager/internal/store"

	"github.com/spf13/cobra"
)

func newCreateUserCmd() *cobra.Command {
	var (
		in   service.NewAccount
		role string
		cost int
	)
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an account, e.g. the first admin when public admin signup is disabled",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDB()
			if err != nil {
				return err
			}
			if err := store.Migrate(db); err != nil {
				return err
			}
			if cost == 0 {
				cost = cfg.BcryptCost // Default to the server's BCRYPT_COST
			}
			in.Role = domain.Role(role)

			// Operators may always create admins; no session manager is needed to register
			accounts := service.NewAccounts(store.NewAccountStore(db, cost), nil, true)
			id, err := accounts.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s user %q with id %d\n", in.Role, strings.TrimSpace(in.Username), id)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Username, "username", "", "account username")
	cmd.Flags().StringVar(&in.Password, "password", "", "account password")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleAdmin), "admin or user")
	cmd.Flags().IntVar(&cost, "bcrypt-cost", 0, "bcrypt cost for the password hash (default BCRYPT_COST)")
	return cmd
}

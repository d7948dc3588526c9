package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-openapi/strfmt"
	"github.com/spf13/cobra"

	"github.com/fidelidade/fidelidade-client/client"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("FIDELIDADE_PASSWORD")
			}
			if password == "" {
				return fmt.Errorf("--password or FIDELIDADE_PASSWORD is required")
			}
			return a.run(cmd, "/login", func(ctx context.Context, c *client.Client) (any, error) {
				out, err := c.Login(ctx, email, password)
				if err != nil {
					return nil, err
				}
				return out.User, nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (or $FIDELIDADE_PASSWORD)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "/logout", func(ctx context.Context, c *client.Client) (any, error) {
				if err := c.Logout(ctx); err != nil {
					return nil, err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "logged out")
				return nil, nil
			})
		},
	}
}

func newMeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "/me", func(ctx context.Context, c *client.Client) (any, error) {
				return c.Me(ctx)
			})
		},
	}
}

func newCustomersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "List and enroll customers",
	}

	var cpf string
	var page, perPage int
	list := &cobra.Command{
		Use:   "list",
		Short: "List customers, optionally filtered by CPF",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "/customers", func(ctx context.Context, c *client.Client) (any, error) {
				return c.ListCustomers(ctx, client.ListCustomersParams{
					CPF:        cpf,
					PageParams: client.PageParams{Page: page, PerPage: perPage},
				})
			})
		},
	}
	list.Flags().StringVar(&cpf, "cpf", "", "Filter by CPF")
	addPageFlags(list, &page, &perPage)

	var req client.CreateCustomerRequest
	var birthday string
	var storeID int
	create := &cobra.Command{
		Use:   "create",
		Short: "Enroll a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if birthday != "" {
				var d strfmt.Date
				if err := d.UnmarshalText([]byte(birthday)); err != nil {
					return fmt.Errorf("--birthday must be YYYY-MM-DD: %w", err)
				}
				req.Birthday = &d
			}
			if storeID > 0 {
				req.StoreID = &storeID
			}
			return a.run(cmd, "/customers", func(ctx context.Context, c *client.Client) (any, error) {
				return c.CreateCustomer(ctx, req)
			})
		},
	}
	create.Flags().StringVar(&req.Name, "name", "", "Customer name (required)")
	create.Flags().StringVar(&req.CPF, "cpf", "", "Customer CPF (required)")
	create.Flags().StringVar(&req.Phone, "phone", "", "Phone number")
	create.Flags().StringVar(&req.Email, "email", "", "Email address")
	create.Flags().StringVar(&birthday, "birthday", "", "Birthday (YYYY-MM-DD)")
	create.Flags().IntVar(&storeID, "store-id", 0, "Store ID (admins only; others use their own store)")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("cpf")

	cmd.AddCommand(list, create)
	return cmd
}

func newVisitsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visits",
		Short: "List and register visits",
	}

	var page, perPage int
	list := &cobra.Command{
		Use:   "list",
		Short: "List visits, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "/visits", func(ctx context.Context, c *client.Client) (any, error) {
				return c.ListVisits(ctx, client.PageParams{Page: page, PerPage: perPage})
			})
		},
	}
	addPageFlags(list, &page, &perPage)

	var req client.RegisterVisitRequest
	register := &cobra.Command{
		Use:   "register",
		Short: "Register a visit for a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := req.Validate(); err != nil {
				return err
			}
			return a.run(cmd, "/visits", func(ctx context.Context, c *client.Client) (any, error) {
				return c.RegisterVisit(ctx, req)
			})
		},
	}
	addSelectorFlags(register, &req.CPF, &req.ClientID)

	cmd.AddCommand(list, register)
	return cmd
}

func newRedeemCmd(a *app) *cobra.Command {
	var req client.RedeemRequest

	cmd := &cobra.Command{
		Use:   "redeem",
		Short: "Hand a gift to a customer who reached the visit goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := req.Validate(); err != nil {
				return err
			}
			return a.run(cmd, "/redeem", func(ctx context.Context, c *client.Client) (any, error) {
				return c.Redeem(ctx, req)
			})
		},
	}
	addSelectorFlags(cmd, &req.CPF, &req.ClientID)
	cmd.Flags().StringVar(&req.GiftName, "gift", "", "Gift name (backend default when empty)")

	return cmd
}

func newRedemptionsCmd(a *app) *cobra.Command {
	var page, perPage int

	cmd := &cobra.Command{
		Use:   "redemptions",
		Short: "List redemptions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "/redemptions", func(ctx context.Context, c *client.Client) (any, error) {
				return c.ListRedemptions(ctx, client.PageParams{Page: page, PerPage: perPage})
			})
		},
	}
	addPageFlags(cmd, &page, &perPage)

	return cmd
}

func newKPIsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kpis",
		Short: "Show the dashboard counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "/kpis", func(ctx context.Context, c *client.Client) (any, error) {
				return c.KPIs(ctx)
			})
		},
	}
}

func newBirthdaysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "birthdays",
		Short: "List customers with a birthday this month",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "/birthdays", func(ctx context.Context, c *client.Client) (any, error) {
				return c.Birthdays(ctx)
			})
		},
	}
}

func newStoresCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stores",
		Short: "Manage stores (admin only)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List stores",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "/stores", func(ctx context.Context, c *client.Client) (any, error) {
				return c.ListStores(ctx)
			})
		},
	}

	var req client.CreateStoreRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "/stores", func(ctx context.Context, c *client.Client) (any, error) {
				return c.CreateStore(ctx, req)
			})
		},
	}
	create.Flags().StringVar(&req.Name, "name", "", "Store name (required)")
	create.Flags().IntVar(&req.MetaVisitas, "meta-visitas", 0, "Visits needed before a redemption (backend default when 0)")
	_ = create.MarkFlagRequired("name")

	cmd.AddCommand(list, create)
	return cmd
}

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage back-office users (admin only)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "/users", func(ctx context.Context, c *client.Client) (any, error) {
				return c.ListUsers(ctx)
			})
		},
	}

	var req client.CreateUserRequest
	var storeID int
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if storeID > 0 {
				req.StoreID = &storeID
			}
			return a.run(cmd, "/users", func(ctx context.Context, c *client.Client) (any, error) {
				return c.CreateUser(ctx, req)
			})
		},
	}
	create.Flags().StringVar(&req.Name, "name", "", "User name (required)")
	create.Flags().StringVar(&req.Email, "email", "", "User email (required)")
	create.Flags().StringVar(&req.Password, "password", "", "Initial password (required)")
	create.Flags().StringVar(&req.Role, "role", client.RoleAttendant, "ADMIN, GERENTE or ATENDENTE")
	create.Flags().IntVar(&storeID, "store-id", 0, "Pin the user to this store")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(list, create)
	return cmd
}

func addPageFlags(cmd *cobra.Command, page, perPage *int) {
	cmd.Flags().IntVar(page, "page", 0, "Page number (backend default when 0)")
	cmd.Flags().IntVar(perPage, "per-page", 0, "Page size (backend default when 0)")
}

func addSelectorFlags(cmd *cobra.Command, cpf *string, clientID *int) {
	cmd.Flags().StringVar(cpf, "cpf", "", "Customer CPF")
	cmd.Flags().IntVar(clientID, "client-id", 0, "Customer ID")
	cmd.MarkFlagsMutuallyExclusive("cpf", "client-id")
}

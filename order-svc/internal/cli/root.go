package cli

import (
	"context"

	"restaurant-ordering/order-svc/internal/domain"

	"github.com/spf13/cobra"
)

// MenuAdmin is the part of the menu service the seed command needs.
type MenuAdmin interface {
	Get(ctx context.Context, category domain.Category, dishID string) (*domain.Dish, error)
	Create(ctx context.Context, sess *domain.Session, dish *domain.Dish) error
	Update(ctx context.Context, sess *domain.Session, dish *domain.Dish) error
}

type TableAdmin interface {
	Create(ctx context.Context, sess *domain.Session, table *domain.Table) error
}

type OrderAdmin interface {
	ListAll(ctx context.Context, sess *domain.Session) ([]domain.UserOrders, error)
	UpdateStatus(ctx context.Context, sess *domain.Session, userID, orderID string, status domain.OrderStatus) (*domain.Order, error)
}

type UserAdmin interface {
	SetRole(ctx context.Context, email string, role domain.Role) (domain.User, error)
}

type Services struct {
	Menu   MenuAdmin
	Tables TableAdmin
	Orders OrderAdmin
	Users  UserAdmin
}

// Connect opens the backing stores. It runs once, before any subcommand,
// and the returned cleanup runs after it.
type Connect func(ctx context.Context) (*Services, func(), error)

// operator is the session every command acts as. It never reaches the
// HTTP layer and has no token.
var operator = &domain.Session{
	ID:          "menuctl",
	UserID:      "menuctl",
	DisplayName: "menuctl",
	Role:        domain.RoleAdmin,
}

type app struct {
	connect  Connect
	services *Services
	cleanup  func()
}

func NewRootCommand(connect Connect) *cobra.Command {
	a := &app{connect: connect}

	cmd := &cobra.Command{
		Use:   "menuctl",
		Short: "Administer the restaurant ordering backend",
		Long:  "Seed menus and tables, inspect orders and manage staff accounts directly against the order store.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			services, cleanup, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			a.services, a.cleanup = services, cleanup
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.cleanup != nil {
				a.cleanup()
			}
		},
		SilenceUsage: true,
	}

	cmd.AddCommand(a.newSeedCommand())
	cmd.AddCommand(a.newOrdersCommand())
	cmd.AddCommand(a.newUsersCommand())

	return cmd
}

package cmd

import (
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&accountCmd{}, "book")
	c.Register(&rmAccountCmd{}, "book")
	c.Register(&cardCmd{}, "book")

	c.Register(&expenseCmd{}, "transactions")
	c.Register(&incomeCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&rmCmd{}, "transactions")
	c.Register(&statusCmd{}, "transactions")
	c.Register(&payCmd{}, "transactions")
	c.Register(&yieldCmd{}, "transactions")

	c.Register(&txCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&invoicesCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

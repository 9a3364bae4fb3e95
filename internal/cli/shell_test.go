package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/cli"
	"marketplace/internal/log"
	"marketplace/internal/repos"
	"marketplace/internal/services"
)

type run struct {
	out  string
	logs string
	dir  string
}

// play feeds lines to a fresh shell over an empty CSV data dir.
func play(t *testing.T, dir string, lines ...string) run {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	st, err := repos.OpenStore(repos.BackendCSV, dir, "")
	require.NoError(t, err)
	r, err := repos.Open(st)
	require.NoError(t, err)

	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { _, _ = log.Setup("info", "") })

	var out bytes.Buffer
	sh := cli.NewShell(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, cli.NewDeps(r, services.PlainPasswords{}))
	require.NoError(t, sh.Run())
	return run{out: out.String(), logs: logs.String(), dir: dir}
}

func TestShell_SellAndBuy(t *testing.T) {
	res := play(t, "",
		"1", "alice", "pw1",
		"2", "alice", "pw1",
		"1", "electronics", "iPhone 12", "like new", "apple", "", "400", "1",
		"2",
		"0",
		"1", "bob", "pw2",
		"2", "bob", "pw2",
		"3", "1", "1",
		"3",
		"6",
		"0",
		"0",
	)

	assert.Contains(t, res.out, "Registered: Alice (User ID: 1)")
	assert.Contains(t, res.out, "Logged in as Alice")
	assert.Contains(t, res.out, "Suggested price: $270.00 (range $243.00 - $297.00)")
	assert.Contains(t, res.out, "Posted listing 1 for Iphone 12 at $400.00 x1")
	assert.Contains(t, res.out, "- ID: 1 | Status: ACTIVE | Name: Iphone 12 | Brand: Apple | [Electronics] (LIKE_NEW) | $400.00 x1 | seller: Alice")
	assert.Contains(t, res.out, "Order 1 created: $400.00 for 1 unit(s).")
	assert.Contains(t, res.out, "No active listings.")
	assert.Contains(t, res.out, "- Order ID: 1 | Item: Iphone 12 | Brand: Apple | Qty: 1 | Unit: $400.00 | Total: $400.00 | Buyer: Bob | Seller: Alice | Status: COMPLETED")
	assert.Contains(t, res.out, "Goodbye ~")

	assert.Contains(t, res.logs, `"msg":"order.place"`)
	assert.Contains(t, res.logs, `"msg":"listing.create"`)

	// the seller sees the sale in a later session
	again := play(t, res.dir, "2", "alice", "pw1", "7", "2", "0", "0")
	assert.Contains(t, again.out, "You have 1 order(s) for your listings:")
	assert.Contains(t, again.out, "Status: SOLD_OUT")
}

func TestShell_BackAbortsWithoutChanges(t *testing.T) {
	res := play(t, "",
		"1", "cd ..",
		"1", "carol", "pw",
		"2", "carol", "pw",
		"1", "books", "Dune", "good", "CD ..",
		"2",
		"0", "0",
	)
	assert.Contains(t, res.out, "Registered: Carol (User ID: 1)")
	assert.Contains(t, res.out, "You have no listings yet.")
	assert.NotContains(t, res.out, "Posted listing")
}

func TestShell_DefaultPriceAndReprompts(t *testing.T) {
	res := play(t, "",
		"1", "dan", "pw",
		"2", "dan", "pw",
		"9",
		"1", "garden", "toys", "", "Lego Set", "mint", "new", "Lego", "", "", "abc", "0", "2",
		"0", "0",
	)
	assert.Contains(t, res.out, "Invalid command.")
	assert.Contains(t, res.out, "Unknown category. Available categories are:")
	assert.Contains(t, res.out, "Input cannot be empty.")
	assert.Contains(t, res.out, "Unknown condition. Choose from: NEW, LIKE_NEW, VERY_GOOD, GOOD, ACCEPTABLE")
	assert.Contains(t, res.out, "Please enter a valid integer.")
	assert.Contains(t, res.out, "Value must be >= 1")
	assert.Contains(t, res.out, "Posted listing 1 for Lego Set at $25.00 x2")
}

func TestShell_Failures(t *testing.T) {
	res := play(t, "",
		"1", "erin", "pw",
		"1", "ERIN", "other",
		"2", "erin", "wrong",
		"2", "erin", "pw",
		"1", "home", "Lamp", "good", "Ikea", "", "15", "3",
		"3", "1", "1",
		"0",
		"1", "finn", "pw",
		"2", "finn", "pw",
		"3", "1", "5",
		"1", "home", "Rug", "good", "Ikea", "", "", "1",
		"4", "1",
		"0", "0",
	)
	assert.Contains(t, res.out, `Error: username "Erin" already exists`)
	assert.Contains(t, res.out, "Unmatched username and password.")
	assert.Contains(t, res.out, "Error: cannot buy your own listing 1")
	assert.Contains(t, res.out, "Error: only 3 left on listing 1, requested 5")
	assert.Contains(t, res.out, "Error: listing 1 belongs to another seller")
	assert.NotContains(t, res.out, "Listing deleted (soft).")

	assert.Contains(t, res.logs, `"msg":"auth.login.fail"`)
	assert.Contains(t, res.logs, `"msg":"order.place.fail"`)
	assert.Contains(t, res.logs, `"msg":"listing.delete.fail"`)
	assert.Contains(t, res.logs, `"reason":"authorization"`)
}

func TestShell_SearchAndDelete(t *testing.T) {
	res := play(t, "",
		"1", "gus", "pw",
		"2", "gus", "pw",
		"1", "sports", "Tennis Racket", "very good", "Wilson", "", "50", "1",
		"4", "1",
		"4",
		"0",
		"4", "sports",
		"5", "tennis racket",
		"0",
	)
	assert.Contains(t, res.out, "Listing deleted (soft).")
	assert.Contains(t, res.out, "You have no active listings to delete.")
	assert.Contains(t, res.out, "No listings in this category.")
	assert.Contains(t, res.out, "No listings of tennis racket found.")
}

func TestShell_EOFEndsQuietly(t *testing.T) {
	res := play(t, "", "1", "hal")
	assert.Contains(t, res.out, "Password (type 'cd ..' to go back): ")
	assert.Contains(t, res.logs, "shell.eof")
}

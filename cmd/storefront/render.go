package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	shopapp "github.com/dwikikusuma/storefront/internal/shop/app"
)

const orderTimeLayout = "January 2, 2006, 3:04 PM"

type printer struct {
	out   io.Writer
	title lipgloss.Style
	muted lipgloss.Style
}

func newPrinter(out io.Writer) *printer {
	r := lipgloss.NewRenderer(out)
	return &printer{
		out:   out,
		title: r.NewStyle().Bold(true),
		muted: r.NewStyle().Faint(true),
	}
}

func (p *printer) heading(s string) { fmt.Fprintln(p.out, p.title.Render(s)) }

func (p *printer) note(s string) { fmt.Fprintln(p.out, p.muted.Render(s)) }

func (p *printer) table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(p.out, t.String())
}

func (p *printer) storefront(sf shopapp.Storefront) {
	p.heading(fmt.Sprintf("Storefront (cart: %d)", sf.CartCount))
	if len(sf.Products) == 0 {
		p.heading("No Products Found")
		if sf.Query != "" {
			p.note("Try adjusting your search.")
		} else {
			p.note("The store is currently empty. Please check back later!")
		}
		return
	}
	rows := make([][]string, 0, len(sf.Products))
	for _, pr := range sf.Products {
		rows = append(rows, []string{strconv.FormatUint(pr.ID, 10), pr.Name, pr.Status})
	}
	p.table([]string{"ID", "Name", "Status"}, rows)
}

func (p *printer) cart(snap cartdomain.Snapshot) {
	if snap.IsEmpty() {
		p.heading("Your Cart is Empty")
		p.note("Looks like you haven't added anything yet.")
		return
	}
	p.heading("Your Cart")
	rows := make([][]string, 0, len(snap.Lines))
	for _, ln := range snap.Lines {
		rows = append(rows, []string{strconv.FormatUint(ln.Item.ID, 10), ln.Item.Name, strconv.Itoa(ln.Quantity)})
	}
	p.table([]string{"ID", "Item", "Qty"}, rows)
	fmt.Fprintf(p.out, "Total Items: %d\n", snap.TotalQuantity())
}

func (p *printer) summary(s checkoutdomain.Summary) {
	p.heading("Order Summary")
	rows := make([][]string, 0, len(s.Lines))
	for _, ln := range s.Lines {
		rows = append(rows, []string{ln.Name, strconv.Itoa(ln.Quantity)})
	}
	p.table([]string{"Item", "Qty"}, rows)
	fmt.Fprintf(p.out, "Total Items: %d\n", s.TotalItems)
}

func (p *printer) orders(orders []orderdomain.Order) {
	p.heading("My Orders")
	if len(orders) == 0 {
		p.note("You haven't placed any orders yet.")
		return
	}
	for _, o := range orders {
		fmt.Fprintln(p.out)
		p.heading(fmt.Sprintf("Order #%d", o.ID))
		line := "Placed on: " + o.CreatedAt.Local().Format(orderTimeLayout)
		if o.User.Username != "" {
			line += " by " + o.User.Username
		}
		p.note(line)
		rows := make([][]string, 0, len(o.Cart.Lines))
		for _, ln := range o.Cart.Lines {
			rows = append(rows, []string{ln.Item.Name, strconv.Itoa(ln.Quantity)})
		}
		p.table([]string{"Item", "Qty"}, rows)
		fmt.Fprintf(p.out, "Total Items: %d\n", o.TotalQuantity())
	}
}

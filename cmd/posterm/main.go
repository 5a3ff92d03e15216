package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"restoflow/pos"
)

// posterm is a line-based POS terminal: it logs a cashier in, mirrors
// the tenant's catalog, and runs the checkout/offline-queue flow
// against the RestoFlow API.
func main() {
	var (
		server    = flag.String("server", "http://localhost:5000", "RestoFlow API base URL")
		email     = flag.String("email", "cashier@demo.local", "cashier email")
		password  = flag.String("password", "cashier123", "cashier password")
		queuePath = flag.String("queue", "posterm-queue.db", "offline queue database path")
		timeout   = flag.Duration("timeout", 5*time.Second, "server request timeout")
	)
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gateway := pos.NewHTTPGateway(*server, "", *timeout)
	login, err := gateway.Login(ctx, *email, *password)
	if err != nil {
		log.Fatalf("login: %v", err)
	}
	if login.Restaurant == nil {
		log.Fatal("account has no restaurant")
	}
	rest := *login.Restaurant
	fmt.Printf("signed in: %s @ %s\n", login.User.Name, rest.Name)

	queue, err := pos.OpenQueue(*queuePath)
	if err != nil {
		log.Fatalf("open offline queue: %v", err)
	}

	catalog := pos.NewCatalog()
	register := pos.NewRegister()
	if items, err := gateway.Items(ctx, rest.ID); err == nil {
		catalog.Replace(items)
	}
	if orders, err := gateway.Orders(ctx, rest.ID); err == nil {
		register.Refresh(orders)
	}

	submitter := &pos.Submitter{
		Gateway:    gateway,
		Queue:      queue,
		Register:   register,
		Catalog:    catalog,
		Restaurant: rest,
		CashierID:  login.User.ID,
	}

	agent := &pos.SyncAgent{
		Gateway:  gateway,
		Queue:    queue,
		Register: register,
		Catalog:  catalog,
		TenantID: rest.ID,
	}
	prober := pos.NewProber(*server+"/health", 10*time.Second)
	go prober.Run(ctx)
	go agent.Run(ctx, prober)

	cart := pos.NewCart()
	repl(ctx, cart, submitter, catalog, register, rest.Currency)
}

func repl(ctx context.Context, cart *pos.Cart, submitter *pos.Submitter,
	catalog *pos.Catalog, register *pos.Register, currency string) {

	fmt.Println("commands: items | add <itemId> | qty <itemId> <delta> | cart | checkout | orders | clear | quit")
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			return
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "items":
			for _, it := range catalog.Items() {
				flag := ""
				if !it.Available {
					flag = " (unavailable)"
				}
				fmt.Printf("  #%d %s %s%s stock=%d%s\n", it.ID, it.Name, currency, it.Price.StringFixed(2), it.Stock, flag)
			}

		case "add":
			if len(fields) < 2 {
				fmt.Println("usage: add <itemId>")
				continue
			}
			id, _ := strconv.ParseUint(fields[1], 10, 32)
			item, ok := catalog.Find(uint(id))
			if !ok {
				fmt.Println("unknown item")
				continue
			}
			cart.AddItem(item)
			printCart(cart, submitter, currency)

		case "qty":
			if len(fields) < 3 {
				fmt.Println("usage: qty <itemId> <delta>")
				continue
			}
			id, _ := strconv.ParseUint(fields[1], 10, 32)
			delta, _ := strconv.Atoi(fields[2])
			cart.UpdateQuantity(uint(id), delta)
			printCart(cart, submitter, currency)

		case "cart":
			printCart(cart, submitter, currency)

		case "clear":
			cart.Clear()

		case "checkout":
			order, err := submitter.Checkout(ctx, cart)
			if err != nil {
				fmt.Printf("checkout failed: %v\n", err)
				continue
			}
			if order == nil {
				fmt.Println("cart is empty")
				continue
			}
			fmt.Printf("order %s total %s%s\n", order.Code, currency, order.Total.StringFixed(2))

		case "orders":
			for _, e := range register.Entries() {
				fmt.Printf("  %s %s%s [%s]\n", e.Order.Code, currency, e.Order.Total.StringFixed(2), e.Status)
			}

		case "quit", "exit":
			return

		default:
			fmt.Println("unknown command")
		}
	}
}

func printCart(cart *pos.Cart, submitter *pos.Submitter, currency string) {
	for _, l := range cart.Lines() {
		fmt.Printf("  %dx %s @ %s%s\n", l.Quantity, l.Name, currency, l.UnitPrice.StringFixed(2))
	}
	t := pos.Calculate(cart.Lines(), submitter.Restaurant.TaxRate)
	fmt.Printf("  subtotal %s%s  tax %s%s  total %s%s\n",
		currency, t.Subtotal.StringFixed(2),
		currency, t.Tax.StringFixed(2),
		currency, t.Total.StringFixed(2))
}

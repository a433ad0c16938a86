// Command shop runs a scripted shopping session: it mutates a persisted
// cart against the demo catalog and optionally submits it as an order.
//
//	shop -actions add:bacon,add:bacon,set:eggs=3,rm:ham -submit
//
// The cart survives between runs in a JSON file (or redis with -redis)
// and is deliberately not cleared after a successful submission.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"cartflow/pkg/cart"
	"cartflow/pkg/cart/storage"
	"cartflow/pkg/catalog"
	"cartflow/pkg/logger"
	"cartflow/pkg/order"
	"cartflow/pkg/order/client"
)

func main() {
	var (
		apiURL    = flag.String("api", "http://localhost:8080", "order API base URL")
		cartPath  = flag.String("cart", "cart.json", "cart file path")
		redisAddr = flag.String("redis", "", "redis address for cart storage (overrides -cart)")
		actions   = flag.String("actions", "", "comma-separated cart actions: add:NAME, set:NAME=N, rm:NAME")
		list      = flag.Bool("list", false, "print the catalog and exit")
		submit    = flag.Bool("submit", false, "submit the cart as an order after applying actions")
	)
	flag.Parse()

	log, err := logger.New("cartflow-shop")
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	ctx := context.Background()

	cat := catalog.Default()
	if *list {
		for _, p := range cat.Products() {
			fmt.Printf("%-10s %6.2f$  (max %d)\n", p.Name, p.UnitPrice, p.Quantity)
		}
		return
	}

	var st cart.Storage
	if *redisAddr != "" {
		st = storage.NewRedis(redis.NewClient(&redis.Options{Addr: *redisAddr}))
	} else {
		st = storage.NewFile(*cartPath)
	}
	store := cart.New(ctx, cat, st, log)

	for _, action := range strings.Split(*actions, ",") {
		action = strings.TrimSpace(action)
		if action == "" {
			continue
		}
		if err := apply(ctx, store, cat, action); err != nil {
			if errors.Is(err, cart.ErrLimitReached) {
				fmt.Printf("%s: quantity limit reached\n", action)
				continue
			}
			log.Error("apply action", zap.String("action", action), zap.Error(err))
			os.Exit(1)
		}
	}

	for _, l := range store.Lines() {
		fmt.Printf("%-10s %6.2f$ x %d\n", l.Name, l.UnitPrice, l.Quantity)
	}
	fmt.Printf("Total price: %.2f\n", store.TotalPrice())

	if !*submit {
		return
	}
	items := make([]order.Item, 0, len(store.Lines()))
	for _, l := range store.Lines() {
		items = append(items, order.Item{Name: l.Name, UnitPrice: l.UnitPrice, Quantity: l.Quantity})
	}
	if err := client.New(*apiURL, log).Submit(ctx, items); err != nil {
		fmt.Println("Order failed")
		os.Exit(1)
	}
	// The cart is kept as-is after submission; clearing it is a
	// separate, explicit action.
	fmt.Println("Order created")
}

// apply parses and executes one cart action.
func apply(ctx context.Context, store *cart.Store, cat *catalog.Catalog, action string) error {
	op, arg, ok := strings.Cut(action, ":")
	if !ok {
		return fmt.Errorf("malformed action %q", action)
	}
	switch op {
	case "add":
		p, ok := cat.Get(arg)
		if !ok {
			return fmt.Errorf("unknown product %q", arg)
		}
		return store.Add(ctx, p)
	case "rm":
		return store.Remove(ctx, arg)
	case "set":
		name, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("malformed action %q", action)
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("malformed quantity in %q", action)
		}
		return store.SetQuantity(ctx, name, n)
	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

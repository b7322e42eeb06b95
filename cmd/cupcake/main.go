package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/Victor-armando18/cupcake-corner/internal/config"
	"github.com/Victor-armando18/cupcake-corner/internal/domain"
	"github.com/Victor-armando18/cupcake-corner/internal/infrastructure"
	"github.com/Victor-armando18/cupcake-corner/internal/usecase"
	"github.com/Victor-armando18/cupcake-corner/internal/usecase/session"
)

type options struct {
	configPath string
	endpoint   string
	flavor     string
	quantity   int
	special    bool
	frosting   bool
	sprinkles  bool
	name       string
	street     string
	city       string
	eircode    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "cupcake: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	set := flag.NewFlagSet("cupcake", flag.ContinueOnError)

	var opts options
	set.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	set.StringVar(&opts.endpoint, "endpoint", "", "override the order endpoint URL")
	set.StringVar(&opts.flavor, "flavor", domain.Flavors[0], "flavor name or index: "+strings.Join(domain.Flavors[:], ", "))
	set.IntVar(&opts.quantity, "quantity", domain.DefaultQuantity, "number of cakes (3-20)")
	set.BoolVar(&opts.special, "special", false, "enable special requests")
	set.BoolVar(&opts.frosting, "frosting", false, "add extra frosting (needs -special)")
	set.BoolVar(&opts.sprinkles, "sprinkles", false, "add sprinkles (needs -special)")
	set.StringVar(&opts.name, "name", "", "delivery name")
	set.StringVar(&opts.street, "street", "", "street address")
	set.StringVar(&opts.city, "city", "", "city")
	set.StringVar(&opts.eircode, "eircode", "", "eircode")

	if err := set.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func resolveFlavor(v string) (int, error) {
	if i, err := strconv.Atoi(v); err == nil {
		if _, ok := domain.FlavorName(i); ok {
			return i, nil
		}
	} else if i, ok := domain.FlavorIndex(v); ok {
		return i, nil
	}
	return 0, fmt.Errorf("unknown flavor %q", v)
}

func run(ctx context.Context, args []string, out io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	flavorType, err := resolveFlavor(opts.flavor)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.endpoint != "" {
		cfg.Endpoint = opts.endpoint
	}
	logger := cfg.Logger()

	checkout := usecase.NewCheckoutService(
		infrastructure.NewHTTPGateway(cfg.Endpoint, cfg.RequestTimeout),
		infrastructure.NewMergePatchDiffer(),
		logger,
	)

	loop := session.NewLoop()
	defer loop.Close()

	var (
		sess  *session.Session
		order domain.Order
		ready bool
	)
	loop.Do(func() {
		sess = session.New(loop, checkout, logger)
		sess.Update(func(o *domain.Order) {
			o.Type = flavorType
			o.Quantity = opts.quantity
			o.SetSpecialRequestEnabled(opts.special)
			if opts.special {
				o.ExtraFrosting = opts.frosting
				o.AddSprinkles = opts.sprinkles
			}
			o.Name = opts.name
			o.StreetAddress = opts.street
			o.City = opts.city
			o.Eircode = opts.eircode
		})
		order = sess.Order()
		ready = sess.CanCheckout()
	})

	displayOrderSummary(out, order)
	if !ready {
		return errors.New("delivery details incomplete: name, street, city and eircode are required")
	}

	type outcome struct {
		alert domain.Alert
		shown bool
		err   error
	}
	done := make(chan outcome, 1)
	loop.Do(func() {
		sess.PlaceOrder(ctx, func(c domain.Confirmation, err error) {
			alert, shown := usecase.AlertFor(c, err)
			done <- outcome{alert: alert, shown: shown, err: err}
		})
	})

	var res outcome
	select {
	case res = <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	if res.shown {
		displayAlert(out, res.alert)
	} else {
		fmt.Fprintln(out, "\nInvalid response from server")
	}
	return res.err
}

func displayOrderSummary(out io.Writer, o domain.Order) {
	flavor, _ := domain.FlavorName(o.Type)

	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintln(out, "   CUPCAKE CORNER - CHECK OUT")
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintf(out, "   Cakes:       %dx %s\n", o.Quantity, flavor)
	fmt.Fprintf(out, "   Frosting:    %s\n", yesNo(o.ExtraFrosting))
	fmt.Fprintf(out, "   Sprinkles:   %s\n", yesNo(o.AddSprinkles))
	fmt.Fprintf(out, "   Deliver to:  %s, %s, %s, %s\n", o.Name, o.StreetAddress, o.City, o.Eircode)
	fmt.Fprintf(out, "\n   Your total is: %s\n", domain.FormatCost(o.Cost()))
}

func displayAlert(out io.Writer, a domain.Alert) {
	fmt.Fprintln(out, "\n"+strings.Repeat("-", 60))
	fmt.Fprintf(out, "   %s\n   %s\n", a.Title, a.Message)
	fmt.Fprintln(out, strings.Repeat("-", 60))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

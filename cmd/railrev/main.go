// SPDX-License-Identifier: MIT

// Command railrev computes the maximum revenue of the companies in a scenario file.
//
//	railrev [-v N] [-route-graph] [-company PR] [-details] scenario.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/railrev/builder"
	"github.com/katalvlaran/railrev/revenue"
	"github.com/katalvlaran/railrev/scenario"
)

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	routeGraph := flag.Bool("route-graph", false, "search the route graph instead of the company graph")
	company := flag.String("company", "", "comma separated companies to compute (default all)")
	details := flag.Bool("details", false, "list earned bonuses and modifier explanations")
	verbosity := flag.String("v", "0", "log verbosity")
	flag.Parse()
	fset.Set("v", *verbosity)

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: railrev [-v N] [-route-graph] [-company X] [-details] scenario.yaml")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, flag.Arg(0), *company, *routeGraph, *details)
	stop()
	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, "railrev:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path, companies string, routeGraph, details bool) error {
	s, err := scenario.LoadFile(path)
	if err != nil {
		return err
	}
	board, err := s.Board()
	if err != nil {
		return err
	}
	base, err := builder.BuildNetwork(board, builder.WithContext(ctx))
	if err != nil {
		return err
	}

	opts := []revenue.ServiceOption{revenue.WithBonusTemplates(s.Templates())}
	if routeGraph {
		opts = append(opts, revenue.WithRouteGraphs())
	}
	if len(s.VisitSets) > 0 {
		opts = append(opts, revenue.WithAdapterOptions(revenue.WithVisitSets(s.VisitSets...)))
	}
	svc := revenue.NewService(base, s.GamePhase(), opts...)

	ids := s.CompanyIDs()
	if companies != "" {
		ids = strings.Split(companies, ",")
	}
	results := make([]revenue.Result, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, strings.TrimSpace(id)
		g.Go(func() error {
			roster, err := s.Roster(id)
			if err != nil {
				return err
			}
			res, err := svc.Revenue(gctx, id, roster)
			if err != nil {
				return errors.Wrapf(err, "company %s", id)
			}
			results[i] = res
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		fmt.Printf("== %s (phase %s, %s)\n", res.Company, s.Phase, res.Usage)
		if details {
			fmt.Println(res.Pretty)
		} else {
			for _, r := range res.Runs {
				if r.IsEmpty() {
					fmt.Printf("%s: does not run\n", r.Train)
					continue
				}
				fmt.Printf("%s: %s = %d\n", r.Train, r, r.Value())
			}
			fmt.Printf("Total: %d\n", res.Total)
		}
		klog.V(1).Infof("railrev: %s: %s", res.Company, res.Stats)
	}

	return nil
}

// SPDX-License-Identifier: MIT
//
// File: service.go
// Role: Service, a concurrency-safe front computing revenue per company from
// one shared base graph.

package revenue

import (
	"context"
	"fmt"
	"strings"

	"github.com/plan-systems/klog"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/railrev/bonus"
	"github.com/katalvlaran/railrev/builder"
	"github.com/katalvlaran/railrev/core"
	"github.com/katalvlaran/railrev/train"
)

// Result is the outcome of one Service request.
type Result struct {
	Company     string
	Total       int
	Runs        []TrainRun
	Stats       Statistics
	Usage       UsageKind
	Explanation string
	Pretty      string
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceConfig)

type serviceConfig struct {
	manager     *Manager
	routeGraph  bool
	templates   []bonus.Template
	adapterOpts []Option
}

// WithServiceManager sets the modifier registry shared by all requests.
func WithServiceManager(m *Manager) ServiceOption {
	return func(c *serviceConfig) { c.manager = m }
}

// WithRouteGraphs makes requests search the route graph instead of the company graph.
func WithRouteGraphs() ServiceOption {
	return func(c *serviceConfig) { c.routeGraph = true }
}

// WithBonusTemplates sets the templates resolved for every request. Templates
// naming trains or vertices a company lacks are skipped for that company.
func WithBonusTemplates(templates []bonus.Template) ServiceOption {
	return func(c *serviceConfig) { c.templates = append(c.templates, templates...) }
}

// WithAdapterOptions passes options to every adapter the service creates.
func WithAdapterOptions(opts ...Option) ServiceOption {
	return func(c *serviceConfig) { c.adapterOpts = append(c.adapterOpts, opts...) }
}

// Service computes revenue for companies on a shared base graph.
// Concurrent identical requests share one search; nothing is cached once it ends.
type Service struct {
	base  *core.Graph
	phase core.Phase
	cfg   serviceConfig
	group singleflight.Group
}

// NewService returns a service over base, which must not be mutated afterwards.
func NewService(base *core.Graph, phase core.Phase, opts ...ServiceOption) *Service {
	cfg := serviceConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.manager == nil {
		cfg.manager = NewManager()
	}

	return &Service{base: base, phase: phase, cfg: cfg}
}

// Revenue computes the optimal revenue of company running roster.
func (s *Service) Revenue(ctx context.Context, company string, roster []train.Train) (Result, error) {
	key := requestKey(company, s.phase, roster)
	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		return s.calculate(ctx, company, roster)
	})
	if err != nil {
		return Result{}, err
	}
	if shared {
		klog.V(2).Infof("revenue: request %s shared", key)
	}
	res := v.(Result)
	res.Runs = append([]TrainRun(nil), res.Runs...)

	return res, nil
}

func (s *Service) calculate(ctx context.Context, company string, roster []train.Train) (Result, error) {
	m := s.cfg.manager
	g, err := builder.CompanyGraph(s.base, company,
		builder.WithContext(ctx),
		builder.WithGraphModifiers(m.GraphModifiers()...),
	)
	if err != nil {
		return Result{}, err
	}
	if s.cfg.routeGraph {
		if g, err = builder.RouteGraph(g, builder.WithContext(ctx)); err != nil {
			return Result{}, err
		}
	}

	opts := append(append([]Option(nil), s.cfg.adapterOpts...), WithManager(m))
	a := NewAdapter(g, company, s.phase, opts...)
	for _, t := range roster {
		a.AddTrain(t)
	}
	if err = a.AddBonusTemplates(s.cfg.templates, bonus.IgnoreUnknownTrains(), bonus.IgnoreUnknownVertices()); err != nil {
		return Result{}, err
	}
	total, err := a.CalculateRevenue(ctx)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Company:     company,
		Total:       total,
		Runs:        a.OptimalRun(),
		Stats:       a.Statistics(),
		Usage:       a.UsageKind(),
		Explanation: a.ModifierExplanation(),
		Pretty:      a.OptimalRunPrettyPrint(true),
	}, nil
}

func requestKey(company string, phase core.Phase, roster []train.Train) string {
	names := make([]string, len(roster))
	for i, t := range roster {
		names[i] = fmt.Sprintf("%+v", t)
	}

	return company + "|" + phase.Name + "|" + strings.Join(names, ",")
}

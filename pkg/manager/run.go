package manager

import (
	"context"
	"time"

	// Packages
	uuid "github.com/google/uuid"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	probe "github.com/mutablelogic/go-llm-probe"
	prober "github.com/mutablelogic/go-llm-probe/pkg/prober"
	schema "github.com/mutablelogic/go-llm-probe/pkg/schema"
	logrus "github.com/sirupsen/logrus"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run probes every model in the catalog on each configured surface in turn,
// saving the working models for each surface before moving to the next.
// When the context is cancelled it returns the context error and saves
// nothing further.
// An empty prompt uses the configured prompt. It returns the working
// models keyed by surface.
func (m *Manager) Run(ctx context.Context, catalog *schema.Catalog, prompt string) (_ map[schema.Surface]*schema.Catalog, err error) {
	if catalog == nil {
		catalog = schema.NewCatalog()
	}
	if prompt == "" {
		prompt = m.config.Prompt
	}
	run := uuid.New().String()

	// Otel span
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "Run",
		attribute.String("run", run),
		attribute.Int("candidates", catalog.Len()),
	)
	defer func() { endSpan(err) }()

	result := make(map[schema.Surface]*schema.Catalog, len(m.config.Surfaces))
	for _, surface := range m.config.Surfaces {
		logger := m.logger.WithFields(logrus.Fields{
			"run":     run,
			"surface": surface.String(),
		})
		logger.WithField("candidates", catalog.Len()).Info("probing models")

		// Probe every candidate
		started := time.Now()
		results, err := m.prober.Schedule(ctx, catalog.Data, surface, prompt)
		if err != nil {
			return nil, err
		}

		// An interrupted batch is incomplete, so keep the previous outputs
		if err := ctx.Err(); err != nil {
			logger.WithError(err).Warn("probe interrupted, nothing saved")
			return nil, err
		}

		// Save the working models
		working := schema.NewCatalog(prober.Partition(results)...)
		name := m.config.OutputName(surface)
		if err := m.store.Save(ctx, name, working); err != nil {
			return nil, err
		}
		result[surface] = working

		// Save the report
		if m.config.Report {
			if err := m.store.Save(ctx, m.config.ReportName(surface), schema.NewReport(run, surface, started, results)); err != nil {
				return nil, err
			}
		}

		logger.WithFields(logrus.Fields{
			"working": working.Len(),
			"output":  name,
			"elapsed": time.Since(started).Truncate(time.Millisecond).String(),
		}).Info("saved working models")
	}

	// Return success
	return result, nil
}

// Probe loads the named input catalog from the store, fills in the
// configured probe parameters where a model has none, and calls Run. An
// empty input uses the configured input.
func (m *Manager) Probe(ctx context.Context, input, prompt string) (map[schema.Surface]*schema.Catalog, error) {
	if input == "" {
		input = m.config.Input
	}
	catalog, err := m.store.Load(ctx, input)
	if err != nil {
		return nil, err
	}
	return m.Run(ctx, catalog.WithDefaults(m.config.MaxTokens, m.config.Temperature), prompt)
}

// Refresh fetches the upstream model listing and saves it, together with
// the free models which become the input for Probe. The client must be
// able to list models.
func (m *Manager) Refresh(ctx context.Context) (_ *schema.Catalog, err error) {
	lister, ok := m.client.(probe.Lister)
	if !ok {
		return nil, probe.ErrNotImplemented.With("client cannot list models")
	}

	// Otel span
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "Refresh")
	defer func() { endSpan(err) }()

	all, err := lister.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	if err := m.store.Save(ctx, ModelsName, all); err != nil {
		return nil, err
	}

	free := schema.FreeModels(all)
	if err := m.store.Save(ctx, m.config.Input, free); err != nil {
		return nil, err
	}

	m.logger.WithFields(logrus.Fields{
		"models": all.Len(),
		"free":   free.Len(),
	}).Info("refreshed models")

	// Return success
	return free, nil
}

// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/AleutianAI/AleutianMigrate/services/validator/analyzer"
	"github.com/AleutianAI/AleutianMigrate/services/validator/compare"
	"github.com/AleutianAI/AleutianMigrate/services/validator/datatypes"
	"github.com/AleutianAI/AleutianMigrate/services/validator/enrich"
	"github.com/AleutianAI/AleutianMigrate/services/validator/handlers"
	"github.com/AleutianAI/AleutianMigrate/services/validator/observability"
	"github.com/AleutianAI/AleutianMigrate/services/validator/routes"
	"github.com/AleutianAI/AleutianMigrate/services/validator/session"
)

func initTracer() (func(context.Context), error) {
	ctx := context.Background()

	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint == "" {
		otelEndpoint = "aleutian-otel-collector:4317"
	}
	conn, err := grpc.NewClient(otelEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("validator-service")))
	if err != nil {
		return nil, err
	}
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.
		TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}, nil
}

func main() {
	port := os.Getenv("VALIDATOR_PORT")
	if port == "" {
		port = "12310"
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cleanup, err := initTracer()
	if err != nil {
		log.Fatalf("failed to setup the OTLP tracer: %v", err)
	}
	defer cleanup(context.Background())

	promRegistry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(promRegistry)

	// The enrichment collaborator is optional: without an API key the
	// comparator runs purely deterministic comparisons.
	var comparatorOpts []compare.Option
	comparatorOpts = append(comparatorOpts, compare.WithLogger(logger), compare.WithMetrics(metrics))
	if os.Getenv("OPENAI_API_KEY") != "" {
		assessor, err := enrich.NewOpenAIAssessor()
		if err != nil {
			slog.Warn("enrichment disabled, assessor init failed", "error", err)
		} else {
			comparatorOpts = append(comparatorOpts, compare.WithAssessor(assessor))
		}
	} else {
		slog.Info("OPENAI_API_KEY not set, running without LLM enrichment")
	}
	comparator := compare.NewSemanticComparator(comparatorOpts...)

	registry := analyzer.NewRegistry()
	registry.Register(
		analyzer.Key{Technology: analyzer.TechnologyAny, InputType: datatypes.InputTypeManifest},
		func() (analyzer.Analyzer, error) { return analyzer.NewManifestAnalyzer(), nil },
	)

	pipeline := session.NewPipeline(registry, comparator,
		session.WithLogger(logger),
		session.WithMetrics(metrics),
	)
	store := session.NewStore()

	router := gin.Default()
	router.Use(otelgin.Middleware("validator-service"))
	routes.Register(router, handlers.NewHandlers(pipeline, comparator, store, logger), promRegistry)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("validator service listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		slog.Info("shutting down validator service")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("validator service exited with error: %v", err)
	}
}

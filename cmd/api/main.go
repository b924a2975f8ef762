package main

import (
	"log"
	"net/http"

	"github.com/FlavioOdas/store-graphql/graph"
	"github.com/FlavioOdas/store-graphql/internal/app/store"
	"github.com/FlavioOdas/store-graphql/internal/config"
	"github.com/FlavioOdas/store-graphql/internal/payments"
	"github.com/FlavioOdas/store-graphql/internal/platform"
	httptransport "github.com/FlavioOdas/store-graphql/internal/transport/http"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
)

const defaultPort = "8080"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	port := cfg.HTTP.Port
	if port == "" {
		port = defaultPort
	}

	platformClient := platform.NewClient(cfg.Platform.BaseURL, cfg.Platform.AppToken)
	paymentsClient := payments.NewClient(cfg.Payments.GatewayURL, cfg.Payments.Token)
	storeService := store.NewService(platformClient, paymentsClient)

	gqlSrv := handler.New(graph.NewExecutableSchema(graph.Config{
		Resolvers: &graph.Resolver{
			Store: storeService,
		},
	}))

	gqlSrv.AddTransport(transport.Options{})
	gqlSrv.AddTransport(transport.GET{})
	gqlSrv.AddTransport(transport.POST{})

	gqlSrv.SetQueryCache(lru.New(1000))

	gqlSrv.Use(extension.Introspection{})
	gqlSrv.Use(extension.AutomaticPersistedQuery{
		Cache: lru.New(100),
	})

	mux := http.NewServeMux()
	mux.Handle("/", playground.Handler("GraphQL playground", "/query"))
	mux.Handle("/query", gqlSrv)

	checkoutMw := httptransport.CheckoutMiddleware{
		Host: cfg.Platform.Host,
	}

	log.Printf("connect to http://localhost:%s/ for GraphQL playground", port)
	log.Fatal(http.ListenAndServe(":"+port, checkoutMw.Wrap(mux)))
}
